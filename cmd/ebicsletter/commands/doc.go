// Package commands defines the ebicsletter CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Create a user, generate its keys and write its letters
//   - letters      Rewrite the A005, E002 and X002 initialization letters
//   - fingerprint  Print the key fingerprints as printed in the letters
//   - show         List stored users
//
// # Implementation
//
// The root command loads the configuration from the home directory and
// builds a dependency graph (stores, message sets, services) before any
// subcommand runs, so handlers share one app context.
package commands
