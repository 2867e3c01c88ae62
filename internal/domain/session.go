package domain

import "strings"

// RoleDeliveryPartner is the role the console operates under.
const RoleDeliveryPartner = "delivery_partner"

// Session - the authenticated partner identity.
type Session struct {
	Token  string
	Role   string
	UserID string
	Name   string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}
