package model

import "time"

// Session per-browser login state. It lives until the browser session ends.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
}
