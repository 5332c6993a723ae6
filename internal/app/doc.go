// Package app wires configuration, logging and the puzzle solvers together.
// It reads one puzzle input, runs the selected solver and writes each
// result as a decimal integer on its own line. Diagnostics go to the
// logger, never to the result stream.
package app
