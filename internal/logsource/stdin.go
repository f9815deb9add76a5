package logsource

import (
	"context"
	"os"
)

// StdinSource reads log lines from stdin.
type StdinSource struct {
	*readerSource
}

// NewStdinSource creates a StdinSource that reads from stdin in a
// background goroutine until EOF or Stop.
func NewStdinSource(ctx context.Context, conf ...Config) *StdinSource {
	var c Config
	if len(conf) > 0 {
		c = conf[0]
	}
	return &StdinSource{newReaderSource(ctx, "stdin", os.Stdin, nil, c)}
}
