package socketlabs

import (
	"errors"
	"fmt"
)

// Address is an email address with an optional display name.
type Address struct {
	Email        string `json:"EmailAddress"`
	FriendlyName string `json:"FriendlyName,omitempty"`
}

// NewAddress builds an Address. Pass an empty name to omit the display name.
func NewAddress(email, friendlyName string) Address {
	return Address{Email: email, FriendlyName: friendlyName}
}

// Header is a custom MIME header attached to a message or attachment.
type Header struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// Attachment is a binary part of a message.
// Content is sent base64-encoded.
type Attachment struct {
	Name          string   `json:"Name"`
	ContentType   string   `json:"ContentType"`
	ContentID     string   `json:"ContentId,omitempty"`
	Content       []byte   `json:"Content"`
	CustomHeaders []Header `json:"CustomHeaders,omitempty"`
}

// MergeField is a single field/value pair for inline merge.
type MergeField struct {
	Field string `json:"Field"`
	Value string `json:"Value"`
}

// MergeData holds inline merge values.
// Each PerMessage entry describes one delivery and should contain a
// "DeliveryAddress" field; Global values apply to every delivery.
type MergeData struct {
	PerMessage [][]MergeField `json:"PerMessage,omitempty"`
	Global     []MergeField   `json:"Global,omitempty"`
}

// Message is a single email in an injection request.
// At least one recipient and one of TextBody or HTMLBody are required.
type Message struct {
	ReplyTo       *Address     `json:"ReplyTo,omitempty"`
	MergeData     *MergeData   `json:"MergeData,omitempty"`
	From          Address      `json:"From"`
	Subject       string       `json:"Subject"`
	TextBody      string       `json:"TextBody,omitempty"`
	HTMLBody      string       `json:"HtmlBody,omitempty"`
	MailingID     string       `json:"MailingId,omitempty"`
	MessageID     string       `json:"MessageId,omitempty"`
	Charset       string       `json:"Charset,omitempty"`
	To            []Address    `json:"To"`
	CC            []Address    `json:"Cc,omitempty"`
	BCC           []Address    `json:"Bcc,omitempty"`
	CustomHeaders []Header     `json:"CustomHeaders,omitempty"`
	Attachments   []Attachment `json:"Attachments,omitempty"`
}

// AddTo appends a recipient.
func (m *Message) AddTo(email, friendlyName string) {
	m.To = append(m.To, NewAddress(email, friendlyName))
}

// AddCC appends a carbon-copy recipient.
func (m *Message) AddCC(email, friendlyName string) {
	m.CC = append(m.CC, NewAddress(email, friendlyName))
}

// AddBCC appends a blind carbon-copy recipient.
func (m *Message) AddBCC(email, friendlyName string) {
	m.BCC = append(m.BCC, NewAddress(email, friendlyName))
}

// SetReplyTo sets the reply-to address.
func (m *Message) SetReplyTo(email, friendlyName string) {
	addr := NewAddress(email, friendlyName)
	m.ReplyTo = &addr
}

// AddHeader appends a custom header. Headers keep insertion order.
func (m *Message) AddHeader(name, value string) {
	m.CustomHeaders = append(m.CustomHeaders, Header{Name: name, Value: value})
}

// Validate checks the fields required by the Injection API.
// Content is not inspected beyond presence.
func (m Message) Validate() error {
	if m.From.Email == "" {
		return errors.Join(ErrValidation, errors.New("from address is required"))
	}
	if len(m.To) == 0 {
		return errors.Join(ErrValidation, errors.New("at least one recipient is required"))
	}
	if m.TextBody == "" && m.HTMLBody == "" {
		return errors.Join(ErrValidation, errors.New("text or html body is required"))
	}
	if err := validateAddresses("to", m.To); err != nil {
		return err
	}
	if err := validateAddresses("cc", m.CC); err != nil {
		return err
	}
	if err := validateAddresses("bcc", m.BCC); err != nil {
		return err
	}
	if m.ReplyTo != nil && m.ReplyTo.Email == "" {
		return errors.Join(ErrValidation, errors.New("reply-to address is empty"))
	}
	for i, a := range m.Attachments {
		if a.Name == "" {
			return errors.Join(ErrValidation, fmt.Errorf("attachment %d: name is required", i))
		}
	}
	return nil
}

func validateAddresses(field string, addrs []Address) error {
	for i, a := range addrs {
		if a.Email == "" {
			return errors.Join(ErrValidation, fmt.Errorf("%s[%d]: email address is empty", field, i))
		}
	}
	return nil
}
