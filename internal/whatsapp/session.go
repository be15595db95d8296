package whatsapp

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrSessionNotFound = errors.New("whatsapp session not found")
	ErrInvalidTarget   = errors.New("invalid whatsapp target")
)

// JID suffixes used by WhatsApp for user addresses
const (
	UserServer   = "s.whatsapp.net"
	LegacyServer = "c.us"
)

// SendResult describes an accepted outbound message
type SendResult struct {
	ID     string
	Status string
}

// NumberCheck is the outcome of an existence lookup. TransientError marks a
// response that neither confirms nor denies the number.
type NumberCheck struct {
	Exists         bool
	JID            string
	TransientError bool
}

// Session is one authenticated sending connection
type Session interface {
	// SendMessage delivers a text payload to a digits-only number or a JID
	SendMessage(ctx context.Context, target, payload string) (SendResult, error)
	// CheckNumberExists asks whether a digits-only number has a WhatsApp
	// account. A non-nil error is always transient.
	CheckNumberExists(ctx context.Context, number string) (NumberCheck, error)
}

// NumberToJID builds the user JID of a digits-only number
func NumberToJID(number string) string {
	return number + "@" + UserServer
}

// JIDToNumber strips the server suffix (and any device part) from a JID
func JIDToNumber(jid string) string {
	user := jid
	if at := strings.IndexByte(user, '@'); at >= 0 {
		user = user[:at]
	}
	if colon := strings.IndexByte(user, ':'); colon >= 0 {
		user = user[:colon]
	}
	return user
}

// DigitsOnly drops every non-digit character
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
