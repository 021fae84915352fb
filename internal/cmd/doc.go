// Package cmd implements the kitutil command line. Each command is a thin
// wrapper around one of the library packages and writes its result to the
// command's output stream, so commands can be exercised in tests through
// SetArgs and SetOut.
package cmd
