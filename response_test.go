package socketlabs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSendResult(t *testing.T) {
	t.Parallel()

	t.Run("success code", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{"ErrorCode":"Success","TransactionReceipt":"r"}`))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, PostCode(PostSuccess), result.ErrorCode)
		assert.Equal(t, "r", result.TransactionReceipt)
		assert.Nil(t, result.MessageErrors)
	})

	t.Run("lowercase success flag", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{"success":true,"transactionReceipt":"abc"}`))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "abc", result.TransactionReceipt)
	})

	t.Run("error code wins over success flag", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{"ErrorCode":"OverQuota","Success":true}`))
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, PostCode(PostOverQuota), result.ErrorCode)
	})

	t.Run("empty object is a failure", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{}`))
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{"ErrorCode":"SomethingNew"}`))
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, PostCode(UnknownErrorCode), result.ErrorCode)
		assert.Equal(t, "SocketLabs returned an unknown error code.", result.ErrorCode.Description())
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := decodeSendResult([]byte(`{"ErrorCode":`))
		require.ErrorIs(t, err, ErrDecode)
	})

	t.Run("message errors", func(t *testing.T) {
		t.Parallel()
		result, err := decodeSendResult([]byte(`{
			"ErrorCode": "Warning",
			"MessageResults": [
				{"Index": 1, "ErrorCode": "EmptySubject"},
				{"Index": 2, "ErrorCode": 17}
			]
		}`))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"message 1: EmptySubject: This message contained an empty subject line, which is not allowed.",
			"message 2: UnknownErrorCode: SocketLabs returned an unknown error code.",
		}, result.MessageErrors)
	})
}

func TestCodeDecoding(t *testing.T) {
	t.Parallel()

	var ar AddressResult
	require.NoError(t, json.Unmarshal([]byte(`{"EmailAddress":"a@b","ErrorCode":"InvalidAddress"}`), &ar))
	assert.Equal(t, AddressCode(AddressInvalidAddress), ar.ErrorCode)

	require.NoError(t, json.Unmarshal([]byte(`{"ErrorCode":"Nope"}`), &ar))
	assert.Equal(t, AddressCode(UnknownErrorCode), ar.ErrorCode)

	var mr MessageResult
	require.NoError(t, json.Unmarshal([]byte(`{"ErrorCode":null}`), &mr))
	assert.Empty(t, mr.ErrorCode)

	// Message and post codes share names but not tables.
	require.NoError(t, json.Unmarshal([]byte(`{"ErrorCode":"OverQuota"}`), &mr))
	assert.Equal(t, MessageCode(UnknownErrorCode), mr.ErrorCode)
}

func TestCodeDescriptions(t *testing.T) {
	t.Parallel()

	for code := range postCodes {
		assert.NotEqual(t, unknownErrorCodeDescription, PostCode(code).Description(), code)
	}
	for code := range messageCodes {
		assert.NotEqual(t, unknownErrorCodeDescription, MessageCode(code).Description(), code)
	}
	assert.Equal(t, "The ServerId/ApiKey combination is invalid.", PostCode(PostInvalidAuthentication).Description())
}
