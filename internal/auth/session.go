package auth

// Session is the authentication state of one Service.
// The zero value is logged out with no error.
type Session struct {
	LastError     *string
	Authenticated bool
}

// clone returns a copy that shares no memory with s
func (s Session) clone() Session {
	out := Session{Authenticated: s.Authenticated}
	if s.LastError != nil {
		msg := *s.LastError
		out.LastError = &msg
	}
	return out
}
