package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

var (
	blockEnd  = regexp.MustCompile(`(?i)</(p|div|li|tr|h[1-6]|blockquote|pre|table|ul|ol)\s*>`)
	lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Formatting that survives in email clients; no images or styles.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes every tag and the contents of script and style
// elements. The result is still HTML-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeHTML keeps basic formatting (paragraphs, headings, emphasis,
// lists, tables, links) and drops scripts, event handlers and
// javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies policy. Returns s unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

// PlainText converts an HTML body into a readable text alternative.
// Block elements end lines, entities are unescaped, runs of spaces are
// collapsed and at most one blank line is kept between paragraphs.
func PlainText(s string) string {
	initPolicies()

	s = lineBreak.ReplaceAllString(s, "\n")
	s = blockEnd.ReplaceAllString(s, "\n$0")
	s = html.UnescapeString(strictPolicy.Sanitize(s))

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
