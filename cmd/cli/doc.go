// Package cli constructs the projectinit command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. Invoking the root command with no arguments performs the
// project bootstrap; the init subcommand names the same operation explicitly.
package cli
