// Package socketlabs implements mailer.Sender on top of the SocketLabs
// Injection API client.
package socketlabs

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/socketlabs"
	"github.com/dmitrymomot/socketlabs/pkg/mailer"
	"github.com/dmitrymomot/socketlabs/pkg/sanitizer"
)

// Tag keys mapped onto SocketLabs tracking headers. Other tags are sent as
// "X-Tag-<name>" custom headers.
const (
	TagMailingID = "mailing_id"
	TagMessageID = "message_id"
)

var (
	// ErrMissingSender is returned by New without a default sender address.
	ErrMissingSender = errors.New("socketlabs: missing sender email")

	// ErrRejected is returned when the API answers but refuses the message.
	ErrRejected = errors.New("socketlabs: message rejected")
)

// Sender implements mailer.Sender.
type Sender struct {
	client *socketlabs.Client
	from   socketlabs.Address
}

// New creates a Sender. Client options such as WithHTTPClient or
// WithEndpoint are passed through to socketlabs.New.
func New(cfg Config, opts ...socketlabs.Option) (*Sender, error) {
	if cfg.SenderEmail == "" {
		return nil, ErrMissingSender
	}
	client, err := socketlabs.New(cfg.ServerID, cfg.APIKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Sender{
		client: client,
		from:   socketlabs.NewAddress(cfg.SenderEmail, cfg.SenderName),
	}, nil
}

// Send implements mailer.Sender.
// When the email has HTML but no text, a text part is derived from the HTML.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	result, err := s.client.Send(ctx, s.convert(email))
	if err != nil {
		return err
	}
	if !result.Success {
		details := strings.Join(result.MessageErrors, "; ")
		if details == "" {
			details = result.ErrorCode.Description()
		}
		return errors.Join(ErrRejected, fmt.Errorf("%s (receipt %q): %s", result.ErrorCode, result.TransactionReceipt, details))
	}
	return nil
}

func (s *Sender) convert(email *mailer.Email) socketlabs.Message {
	msg := socketlabs.Message{
		From:     s.from,
		Subject:  email.Subject,
		HTMLBody: email.HTML,
		TextBody: email.Text,
		To:       addresses(email.To),
		CC:       addresses(email.CC),
		BCC:      addresses(email.BCC),
	}
	if email.From != nil {
		msg.From = address(*email.From)
	}
	if email.ReplyTo != nil {
		replyTo := address(*email.ReplyTo)
		msg.ReplyTo = &replyTo
	}
	if msg.TextBody == "" && msg.HTMLBody != "" {
		msg.TextBody = sanitizer.PlainText(msg.HTMLBody)
	}

	for _, name := range slices.Sorted(maps.Keys(email.Headers)) {
		msg.AddHeader(name, email.Headers[name])
	}
	for _, name := range slices.Sorted(maps.Keys(email.Tags)) {
		value := email.Tags[name]
		switch name {
		case TagMailingID:
			msg.MailingID = value
		case TagMessageID:
			msg.MessageID = value
		default:
			msg.AddHeader("X-Tag-"+name, value)
		}
	}

	for _, a := range email.Attachments {
		msg.Attachments = append(msg.Attachments, socketlabs.Attachment{
			Name:        a.Filename,
			ContentType: a.ContentType,
			ContentID:   a.ContentID,
			Content:     a.Content,
		})
	}
	return msg
}

func address(a mailer.Address) socketlabs.Address {
	return socketlabs.NewAddress(a.Email, a.Name)
}

func addresses(in []mailer.Address) []socketlabs.Address {
	if len(in) == 0 {
		return nil
	}
	out := make([]socketlabs.Address, len(in))
	for i, a := range in {
		out[i] = address(a)
	}
	return out
}
