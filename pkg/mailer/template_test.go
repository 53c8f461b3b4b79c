package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("with frontmatter", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("---\nSubject: Welcome\n---\n# Hello\n"))
		require.NoError(t, err)
		require.Equal(t, "Welcome", tmpl.Metadata["Subject"])
		require.Equal(t, "# Hello\n", tmpl.Body)

		subject, ok := tmpl.Subject()
		require.True(t, ok)
		require.Equal(t, "Welcome", subject)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("Just a body"))
		require.NoError(t, err)
		require.Empty(t, tmpl.Metadata)
		require.Equal(t, "Just a body", tmpl.Body)

		_, ok := tmpl.Subject()
		require.False(t, ok)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("---\n---\nBody"))
		require.NoError(t, err)
		require.Empty(t, tmpl.Metadata)
		require.Equal(t, "Body", tmpl.Body)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("---\r\nSubject: Hi\r\n---\r\nLine 1\r\nLine 2"))
		require.NoError(t, err)
		require.Equal(t, "Hi", tmpl.Metadata["Subject"])
		require.Equal(t, "Line 1\nLine 2", tmpl.Body)
	})

	t.Run("delimiter inside body is kept", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("---\nSubject: Hi\n---\nabove\n---\nbelow"))
		require.NoError(t, err)
		require.Equal(t, "above\n---\nbelow", tmpl.Body)
	})

	t.Run("nested metadata", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate([]byte("---\nSubject: Hi\nPriority: 2\nTags:\n  - a\n  - b\n---\n"))
		require.NoError(t, err)
		require.Equal(t, 2, tmpl.Metadata["Priority"])
		require.Equal(t, []any{"a", "b"}, tmpl.Metadata["Tags"])
		require.Empty(t, tmpl.Body)
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate([]byte("---\nSubject: Hi\nBody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate([]byte("---\nSubject: [unclosed\n---\nBody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		tmpl, err := ParseTemplate(nil)
		require.NoError(t, err)
		require.Empty(t, tmpl.Body)
	})
}
