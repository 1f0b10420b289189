package output

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Writer prints every text it receives to w and remembers the last one.
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	last Memory
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Text(ctx context.Context) (string, bool, error) {
	return w.last.Text(ctx)
}

func (w *Writer) SetText(ctx context.Context, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintln(w.w, text); err != nil {
		return fmt.Errorf("output: write: %w", err)
	}
	return w.last.SetText(ctx, text)
}
