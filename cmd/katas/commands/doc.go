// Package commands wires the katas CLI.
//
// Every kata is a subcommand:
//
//	katas compass
//	katas expand 'thumbnail.{png,jp{e,}g}'
//	katas zigzag 4
//	katas dominoes 1:1 2:2 1:2
//	katas ranges 0 1 2 5 7 8 9
//	katas ranges --parse 0-2,5,7-9
//
// Output is plain text unless --output json (or KATAS_OUTPUT=json) is set.
// Diagnostics go to stderr through log/slog at KATAS_LOG_LEVEL.
package commands
