// Package cmd provides CLI command implementations.
package cmd

// GlobalOptions contains global CLI options.
type GlobalOptions struct {
	Config string `help:"Path to the javelin.yaml configuration file" env:"JAVELIN_CONFIG" type:"path"`
	Quiet  bool   `short:"q" help:"Suppress compiler diagnostics"`
}
