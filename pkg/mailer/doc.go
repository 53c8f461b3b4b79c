// Package mailer sends templated email through pluggable providers.
//
// A Sender delivers a prepared Email. A Renderer turns markdown templates
// with YAML frontmatter into HTML and plain text. Mailer ties the two
// together and resolves subjects and layouts.
//
// # Usage
//
//	sender, err := socketlabs.New(socketlabs.Config{
//		ServerID:    os.Getenv("SOCKETLABS_SERVER_ID"),
//		APIKey:      os.Getenv("SOCKETLABS_API_KEY"),
//		SenderEmail: "team@example.com",
//		SenderName:  "Team",
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	err = m.Send(ctx, mailer.SendParams{
//		To:       mailer.Address{Email: "user@example.com", Name: "Ada"},
//		Template: "welcome.md",
//		Data:     map[string]any{"Name": "Ada"},
//	})
//
// # Templates
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	Hello **{{.Name}}**, thanks for signing up.
//
// The body is executed with text/template, converted to HTML with goldmark
// (GitHub-flavoured markdown) and placed into the layout's {{.Content}}.
// The executed markdown doubles as the plain text part.
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: email rejected before sending
//   - ErrTemplateNotFound, ErrLayoutNotFound: missing files
//   - ErrRenderFailed, ErrInvalidFrontmatter: template problems
//   - ErrSendFailed: the Sender returned an error (joined with it)
package mailer
