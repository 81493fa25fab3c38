package model

import "time"

// Flash is a one-shot status message queued for a browser session and
// shown on the next rendered page.
type Flash struct {
	ID           int64     `json:"id"`
	SessionToken string    `json:"session_token"`
	Category     string    `json:"category"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
