// Package commands defines the viaduct CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - chain      Boot mapping data and print the translation chain for a
//     client/server version pair
//   - versions   List the protocol versions the engine bridges
//
// # Implementation
//
// The root command parses the TOML engine definition and builds the
// dependency graph (steps, shared-data registry, manager) before any
// subcommand runs, so handlers share one engine context.
package commands
