//go:build !windows

package eol

// Sep is the line terminator.
const Sep = "\n"
