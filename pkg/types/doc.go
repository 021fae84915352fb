// Package types defines the small set of shared types used across kitutil:
// the injected Logger interface and the immutable numeric Pair produced by
// tuple conversion and consumed by range sampling.
package types
