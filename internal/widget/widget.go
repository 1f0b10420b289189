// Package widget runs the health check and renders its result into an
// output element.
package widget

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Rin0913/healthping/internal/health"
	"github.com/Rin0913/healthping/internal/output"
	"github.com/google/uuid"
)

type Widget struct {
	client *http.Client
	target output.Target
}

func New(client *http.Client, target output.Target) *Widget {
	return &Widget{
		client: client,
		target: target,
	}
}

// Run fetches health.URL once and writes the rendered body to the target.
// On any error the target is left untouched.
func (w *Widget) Run(ctx context.Context) (*health.Result, error) {
	runID := uuid.NewString()
	start := time.Now()

	res, err := health.Fetch(ctx, w.client)
	latency := int(time.Since(start) / time.Millisecond)
	if err != nil {
		return nil, err
	}

	text, err := Render(res)
	if err != nil {
		return nil, err
	}

	if err := w.target.SetText(ctx, text); err != nil {
		return nil, err
	}

	log.Printf("[INFO] health check %s rendered: status=%d latency=%dms bytes=%d\n",
		runID, res.StatusCode, latency, len(text))

	return &health.Result{
		RunID:      runID,
		StatusCode: res.StatusCode,
		Latency:    latency,
		LastCheck:  time.Now(),
		Text:       text,
	}, nil
}
