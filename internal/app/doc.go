// Package app wires application dependencies for the CLI.
//
// It loads Config from the home directory (.env, config.yaml, EBICSLETTER_*
// variables), builds the file stores, message sets and high-level services,
// and exposes them via the Wire struct for commands to use.
package app
