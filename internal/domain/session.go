package domain

import "time"

// Session associates an opaque client-presented token with an authenticated
// user. Sessions live server-side in Redis, keyed by token, with a TTL.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
