// Package sanitizer cleans HTML for email bodies.
//
// SanitizeHTML keeps a small set of formatting tags, StripHTML removes all
// markup, and PlainText turns an HTML body into a text/plain alternative for
// messages that only carry HTML.
package sanitizer
