package entity

// Session is the client-held identity state: the current user and, for
// supplier-side accounts, the supplier profile they operate. A zero Session
// is the anonymous state.
type Session struct {
	User     *User
	Supplier *Supplier
}

// Authenticated reports whether the session holds an identified user.
func (s Session) Authenticated() bool {
	return s.User != nil
}
