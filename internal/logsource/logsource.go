package logsource

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"

	"github.com/tinytelemetry/pulse/internal/model"
)

const (
	// DefaultLineBuffer is the default channel buffer size for raw lines.
	DefaultLineBuffer = model.DefaultLineBuffer

	// DefaultMaxLineSize is the default maximum size (in bytes) of a single line.
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// LogSource is a unified interface for log input sources (stdin, file).
type LogSource interface {
	Lines() <-chan model.IngestEnvelope // read-only channel of raw lines
	Stop()                              // graceful shutdown
	Name() string                       // "stdin", "file"
}

// Config holds tunable parameters shared by all sources.
type Config struct {
	BufferSize  int
	MaxLineSize int
}

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultLineBuffer
	}
	if c.MaxLineSize <= 0 {
		c.MaxLineSize = DefaultMaxLineSize
	}
	return c
}

// readerSource scans lines from an io.Reader in a background goroutine
// and delivers them as envelopes. stdin and file sources share it.
type readerSource struct {
	name   string
	ch     chan model.IngestEnvelope
	cancel context.CancelFunc
}

func newReaderSource(ctx context.Context, name string, r io.Reader, closer io.Closer, conf Config) *readerSource {
	conf = conf.withDefaults()
	ctx, cancel := context.WithCancel(ctx)
	s := &readerSource{
		name:   name,
		ch:     make(chan model.IngestEnvelope, conf.BufferSize),
		cancel: cancel,
	}
	go s.read(ctx, r, closer, conf.MaxLineSize)
	return s
}

func (s *readerSource) read(ctx context.Context, r io.Reader, closer io.Closer, maxLineSize int) {
	defer close(s.ch)
	if closer != nil {
		defer closer.Close()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		select {
		case s.ch <- model.IngestEnvelope{Source: s.name, Line: line}:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			log.Printf("logsource: %s line exceeded max size (%d bytes), stopping source", s.name, maxLineSize)
			return
		}
		log.Printf("logsource: %s scanner error: %v", s.name, err)
	}
}

func (s *readerSource) Lines() <-chan model.IngestEnvelope { return s.ch }
func (s *readerSource) Stop()                              { s.cancel() }
func (s *readerSource) Name() string                       { return s.name }
