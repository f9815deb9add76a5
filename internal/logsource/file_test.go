package logsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSource_ReadsAllLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.log")
	content := "{\"a\":1}\n\n{\"b\":2}\n{\"c\":3}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := NewFileSource(context.Background(), path)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	defer src.Stop()

	var lines []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case env, ok := <-src.Lines():
			if !ok {
				// Blank lines are dropped.
				if len(lines) != 3 {
					t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
				}
				if env.Source != "" {
					t.Errorf("closed channel env should be zero value")
				}
				for i, want := range []string{`{"a":1}`, `{"b":2}`, `{"c":3}`} {
					if lines[i] != want {
						t.Errorf("line[%d] = %q, want %q", i, lines[i], want)
					}
				}
				return
			}
			if env.Source != "file" {
				t.Errorf("envelope source = %q, want file", env.Source)
			}
			lines = append(lines, env.Line)
		case <-timeout:
			t.Fatal("timed out waiting for file source")
		}
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	if _, err := NewFileSource(context.Background(), "/nonexistent/pulse.log"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSource_StopUnblocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		f.WriteString("{\"n\":1}\n")
	}
	f.Close()

	// Tiny buffer so the reader blocks on the channel, then stop it.
	src, err := NewFileSource(context.Background(), path, Config{BufferSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	src.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-src.Lines():
			if !ok {
				return // channel closed, reader exited
			}
		case <-deadline:
			t.Fatal("source did not shut down after Stop")
		}
	}
}
