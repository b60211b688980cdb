// Package app contains the core application logic: configuration merging,
// logger construction, and the generation pipeline, decoupled from the CLI
// entrypoint.
package app
