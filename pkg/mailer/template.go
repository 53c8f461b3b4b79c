package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Template is a parsed template file: YAML frontmatter plus markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the "Subject" frontmatter value, if it is a string.
func (t *Template) Subject() (string, bool) {
	s, ok := t.Metadata["Subject"].(string)
	return s, ok && s != ""
}

// ParseTemplate splits content into frontmatter and body.
//
// Frontmatter is optional. When present it starts on the first line with
// "---" and ends at the next line consisting of "---". CRLF line endings are
// accepted. A missing closing delimiter or malformed YAML returns
// ErrInvalidFrontmatter.
func ParseTemplate(content []byte) (*Template, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	first, rest, _ := strings.Cut(text, "\n")
	if strings.TrimSpace(first) != frontmatterDelimiter {
		return &Template{Metadata: map[string]any{}, Body: text}, nil
	}

	var (
		front  []string
		body   string
		closed bool
	)
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		if strings.TrimSpace(line) == frontmatterDelimiter {
			closed = true
			body = rest
			break
		}
		front = append(front, line)
	}
	if !closed {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := map[string]any{}
	if raw := strings.Join(front, "\n"); strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: body}, nil
}
