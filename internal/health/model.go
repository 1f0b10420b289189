package health

import "time"

// URL is the only endpoint the widget ever talks to.
const URL = "http://127.0.0.1:8000/api/health/"

// Response is the decoded body returned by the health endpoint. No schema
// is assumed; Value holds whatever Decode produced.
type Response struct {
	StatusCode int
	Value      any
}

type Result struct {
	RunID      string    `json:"run_id"`
	StatusCode int       `json:"status_code"`
	Latency    int       `json:"latency_ms"`
	LastCheck  time.Time `json:"last_check"`
	Text       string    `json:"text"`
}
