// Package cli parses command-line arguments, merges an optional HCL
// configuration file, validates the result and maps failures to process
// exit codes.
package cli
