// Package metadata owns the kernel-launch descriptor format.
//
// Ownership boundary:
// - token reading from the line-oriented hex dump
// - positional decode into Record
// - encode back to the dump format
package metadata
