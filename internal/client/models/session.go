// Package models contains value types shared by the client layers.
package models

// AuthSession is the client's view of its authentication state.
//
// Invariant: Authenticated implies both Username and Token are set;
// an unauthenticated session carries neither.
type AuthSession struct {
	Authenticated bool
	Username      string
	Token         string
}

// Unauthenticated returns the zero session value.
func Unauthenticated() AuthSession {
	return AuthSession{}
}

// Authenticated builds a valid authenticated session.
func Authenticated(username, token string) AuthSession {
	return AuthSession{Authenticated: true, Username: username, Token: token}
}
