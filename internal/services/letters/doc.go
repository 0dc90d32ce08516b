// Package letters builds the A005, E002 and X002 initialization letters of a
// stored user and writes them to the user's letters directory.
package letters
