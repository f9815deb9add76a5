package logsource

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads log lines from a file on disk, start to finish.
type FileSource struct {
	*readerSource
}

// NewFileSource opens path and reads it in a background goroutine. The
// file is closed when reading finishes or the source is stopped.
func NewFileSource(ctx context.Context, path string, conf ...Config) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	var c Config
	if len(conf) > 0 {
		c = conf[0]
	}
	return &FileSource{newReaderSource(ctx, "file", f, f, c)}, nil
}
