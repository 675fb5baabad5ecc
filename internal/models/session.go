package models

// Session is the per-client state carried in the signed session cookie.
type Session struct {
	IsPremium         bool
	CheckoutSessionID string

	modified bool
}

// MarkPremium flips the premium flag after the success redirect.
func (s *Session) MarkPremium(checkoutSessionID string) {
	s.IsPremium = true
	if checkoutSessionID != "" {
		s.CheckoutSessionID = checkoutSessionID
	}
	s.modified = true
}

// Modified reports whether the session must be written back to the client.
func (s *Session) Modified() bool {
	return s.modified
}
