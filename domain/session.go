package domain

import "time"

// Session is what a session token resolves to.
type Session struct {
	UserID string    `json:"id"`
	Device string    `json:"device"`
	Ip     string    `json:"ip"`
	Expiry time.Time `json:"expiry"`
}
