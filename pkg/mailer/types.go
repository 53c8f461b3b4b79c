package mailer

import (
	"fmt"
	"net/mail"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}

// ParseAddress accepts "user@example.com" or "Name <user@example.com>".
func ParseAddress(s string) (Address, error) {
	a, err := mail.ParseAddress(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address{Email: a.Address, Name: a.Name}, nil
}

// String formats the address as RFC 5322 ("Name <email>" or bare email).
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Tags are provider-specific labels attached to an email.
// Providers that have no tagging concept may map them to headers.
type Tags map[string]string

// Email is a fully prepared message ready for a Sender.
type Email struct {
	Headers map[string]string
	Tags    Tags
	// From overrides the provider's default sender when set.
	From    *Address
	ReplyTo *Address
	Subject string
	HTML    string
	// Text is the plain text alternative.
	Text string
	// To must hold at least one address.
	To          []Address
	CC          []Address
	BCC         []Address
	Attachments []Attachment
}

// Attachment is a file attached to an email.
type Attachment struct {
	Filename    string
	ContentType string // MIME type, e.g. "application/pdf"
	ContentID   string // Set for inline parts referenced by cid:
	Content     []byte
}
