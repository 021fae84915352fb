// Package sniff guesses what kind of data a value or byte buffer holds
// without fully parsing it.
package sniff
