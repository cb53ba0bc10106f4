package session

import "time"

// Session is the server-side half of a login. The cookie token carries ID as
// its jti claim; deleting the record revokes the token.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}
