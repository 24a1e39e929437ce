// Package cli implements the biofabric command-line interface: the
// "external collaborator" of spec.md §6 that wraps the pure core/layout/
// alignment/session packages behind a cobra command tree, passing flags
// through to the relevant component and mapping its errors to exit codes.
//
// # Commands
//
// layout, render, info, convert, align, compare, extract, export-order,
// and search, one file each, registered onto a shared root command.
//
// # Logging
//
// Every command logs through a single github.com/charmbracelet/log logger
// carried on the cobra command's context. --quiet silences it to
// log.FatalLevel; -v/--verbose raises it to log.DebugLevel.
package cli
