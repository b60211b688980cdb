// Package cli is responsible for parsing command-line arguments, validating
// user input, and translating flags into the application's configuration.
package cli
