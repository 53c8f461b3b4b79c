package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes a templated email.
type SendParams struct {
	Data     any
	To       Address
	Template string // File name relative to the renderer's template dir

	// Optional overrides
	From        *Address
	ReplyTo     *Address
	Subject     string // Takes precedence over the template's Subject
	Layout      string // Takes precedence over Config.DefaultLayout
	Headers     map[string]string
	Tags        Tags
	CC          []Address
	BCC         []Address
	Attachments []Attachment
}

// Send renders params.Template and sends it.
// Subject precedence: params.Subject, then frontmatter Subject, then
// Config.FallbackSubject. The chosen subject is executed as a text/template
// with params.Data.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To.Email == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	rendered, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if s, ok := rendered.Metadata["Subject"].(string); ok && s != "" {
			subject = s
		} else {
			subject = m.config.FallbackSubject
		}
	}
	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	return m.SendRaw(ctx, &Email{
		Headers:     params.Headers,
		Tags:        params.Tags,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		Subject:     subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		To:          []Address{params.To},
		CC:          params.CC,
		BCC:         params.BCC,
		Attachments: params.Attachments,
	})
}

// SendRaw sends a prepared email without rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
