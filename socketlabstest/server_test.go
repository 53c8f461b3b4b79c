package socketlabstest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/socketlabs/socketlabstest"
)

func post(t *testing.T, srv *socketlabstest.Server, body string) (int, map[string]any) {
	t.Helper()

	resp, err := srv.Client().Post(srv.URL(), "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

const validBody = `{"ServerId":1,"ApiKey":"key","Messages":[{"Subject":"hi"}]}`

func TestServer_DefaultResponse(t *testing.T) {
	t.Parallel()

	srv := socketlabstest.NewServer()
	defer srv.Close()

	status, out := post(t, srv, validBody)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Success", out["ErrorCode"])
	assert.NotEmpty(t, out["TransactionReceipt"])

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "1", reqs[0].ServerID.String())
	assert.Equal(t, "key", reqs[0].APIKey)
	assert.Len(t, reqs[0].Messages, 1)
	assert.JSONEq(t, validBody, string(reqs[0].Body))
}

func TestServer_Credentials(t *testing.T) {
	t.Parallel()

	srv := socketlabstest.NewServer(socketlabstest.WithCredentials("1", "other"))
	defer srv.Close()

	_, out := post(t, srv, validBody)
	assert.Equal(t, "InvalidAuthentication", out["ErrorCode"])

	_, out = post(t, srv, `{"ServerId":1,"ApiKey":"other","Messages":[{}]}`)
	assert.Equal(t, "Success", out["ErrorCode"])
}

func TestServer_InvalidRequests(t *testing.T) {
	t.Parallel()

	srv := socketlabstest.NewServer()
	defer srv.Close()

	_, out := post(t, srv, `not json`)
	assert.Equal(t, "InvalidData", out["ErrorCode"])

	_, out = post(t, srv, `{"ServerId":1,"ApiKey":"key","Messages":[]}`)
	assert.Equal(t, "NoMessages", out["ErrorCode"])

	assert.Len(t, srv.Requests(), 2)
}

func TestServer_ConfiguredResponse(t *testing.T) {
	t.Parallel()

	srv := socketlabstest.NewServer(socketlabstest.WithResponse(socketlabstest.Response{
		ErrorCode: "Warning",
		Receipt:   "fixed",
		Results: []socketlabstest.MessageResult{{
			Index:     0,
			ErrorCode: "Warning",
			AddressResults: []socketlabstest.AddressResult{
				{EmailAddress: "bad@", ErrorCode: "InvalidAddress"},
			},
		}},
	}))
	defer srv.Close()

	_, out := post(t, srv, validBody)
	assert.Equal(t, "Warning", out["ErrorCode"])
	assert.Equal(t, "fixed", out["TransactionReceipt"])
	assert.Len(t, out["MessageResults"], 1)

	srv.SetResponse(socketlabstest.Response{Raw: `{"oops":true}`, StatusCode: http.StatusTeapot})
	status, out := post(t, srv, validBody)
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, true, out["oops"])
}

func TestServer_OnlyPostRoute(t *testing.T) {
	t.Parallel()

	srv := socketlabstest.NewServer()
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Empty(t, srv.Requests())
}
