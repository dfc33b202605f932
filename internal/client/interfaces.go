package client

import "context"

// Client defines the lifecycle contract of the command-line application.
type Client interface {
	// Run executes the command in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}
