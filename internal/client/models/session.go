package models

// SessionStatus is the state of the active session.
//
//	Loading -> Unauthenticated | Authenticated
//	Unauthenticated -> Authenticated   (login, signup)
//	Authenticated -> Unauthenticated   (logout)
//
// Loading is only ever the initial state.
type SessionStatus int

const (
	StatusLoading SessionStatus = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionState is a point-in-time copy of the session, safe to keep.
type SessionState struct {
	Status SessionStatus
	User   *User
}

// Loading reports whether the startup restore has not finished yet.
func (s SessionState) Loading() bool {
	return s.Status == StatusLoading
}
