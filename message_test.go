package socketlabs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/socketlabs"
)

func TestMessage_Builders(t *testing.T) {
	t.Parallel()

	var msg socketlabs.Message
	msg.AddTo("a@example.com", "A")
	msg.AddTo("b@example.com", "")
	msg.AddCC("c@example.com", "")
	msg.AddBCC("d@example.com", "")
	msg.SetReplyTo("reply@example.com", "Support")
	msg.AddHeader("X-One", "1")
	msg.AddHeader("X-Two", "2")

	assert.Equal(t, []socketlabs.Address{
		{Email: "a@example.com", FriendlyName: "A"},
		{Email: "b@example.com"},
	}, msg.To)
	assert.Len(t, msg.CC, 1)
	assert.Len(t, msg.BCC, 1)
	require.NotNil(t, msg.ReplyTo)
	assert.Equal(t, "Support", msg.ReplyTo.FriendlyName)
	assert.Equal(t, "X-One", msg.CustomHeaders[0].Name)
	assert.Equal(t, "X-Two", msg.CustomHeaders[1].Name)
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	msg := validMessage()
	require.NoError(t, msg.Validate())

	msg.TextBody = ""
	err := msg.Validate()
	require.ErrorIs(t, err, socketlabs.ErrValidation)
	assert.Contains(t, err.Error(), "body is required")

	msg = validMessage()
	msg.AddCC("", "")
	err = msg.Validate()
	require.ErrorIs(t, err, socketlabs.ErrValidation)
	assert.Contains(t, err.Error(), "cc[0]")
}

func TestMessage_JSON(t *testing.T) {
	t.Parallel()

	msg := validMessage()
	msg.Attachments = []socketlabs.Attachment{{
		Name:        "hello.txt",
		ContentType: "text/plain",
		Content:     []byte("hello"),
	}}
	msg.MergeData = &socketlabs.MergeData{
		PerMessage: [][]socketlabs.MergeField{{
			{Field: "DeliveryAddress", Value: "to@example.com"},
			{Field: "Name", Value: "Ann"},
		}},
		Global: []socketlabs.MergeField{{Field: "Company", Value: "Acme"}},
	}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	att := m["Attachments"].([]any)[0].(map[string]any)
	assert.Equal(t, "hello.txt", att["Name"])
	assert.Equal(t, "aGVsbG8=", att["Content"])
	assert.NotContains(t, att, "ContentId")

	merge := m["MergeData"].(map[string]any)
	assert.Len(t, merge["PerMessage"], 1)
	assert.Len(t, merge["Global"], 1)

	assert.NotContains(t, m, "HtmlBody")
	assert.NotContains(t, m, "MessageId")
}
