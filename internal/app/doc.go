// Package app wires engine dependencies for the CLI.
//
// It builds the protocol steps, shared-data registry, and manager from Config,
// exposing them via the Wire struct for commands to use.
package app
