// Package output holds the text slot the health check renders into.
package output

import "context"

// ElementID identifies the default output element.
const ElementID = "out"

// Target is a single text slot. SetText replaces the whole content.
// Text reports false while nothing has been written yet.
type Target interface {
	Text(ctx context.Context) (string, bool, error)
	SetText(ctx context.Context, text string) error
}
