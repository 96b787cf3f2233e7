package models

import "time"

// Session is a live login. The token doubles as the primary key, so
// logout can revoke a signed token before it expires.
type Session struct {
	Token    string
	Username string
	Expires  time.Time
}
