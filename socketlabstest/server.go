// Package socketlabstest provides an in-process fake of the SocketLabs
// Injection API for tests and local development.
package socketlabstest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InjectPath is the route served by the fake, matching the real endpoint.
const InjectPath = "/api/v1/email"

// Request is an injection request as received by the server.
type Request struct {
	Header   http.Header
	ServerID json.Number
	APIKey   string
	Messages []json.RawMessage
	// Body is the raw request body.
	Body []byte
}

// Response is what the server answers. A zero Response produces a
// successful injection with a random transaction receipt.
type Response struct {
	// Raw, when set, is written verbatim instead of encoding the fields below.
	Raw        string
	ErrorCode  string
	Receipt    string
	Results    []MessageResult
	StatusCode int
}

// MessageResult is a per-message failure entry in a Response.
type MessageResult struct {
	ErrorCode      string          `json:"ErrorCode"`
	AddressResults []AddressResult `json:"AddressResult,omitempty"`
	Index          int             `json:"Index"`
}

// AddressResult is a per-recipient failure entry in a MessageResult.
type AddressResult struct {
	EmailAddress string `json:"EmailAddress"`
	ErrorCode    string `json:"ErrorCode"`
	Accepted     bool   `json:"Accepted"`
}

// Option configures a Server.
type Option func(*Server)

// WithCredentials makes the server answer InvalidAuthentication unless the
// request carries this server ID and API key.
func WithCredentials(serverID, apiKey string) Option {
	return func(s *Server) {
		s.serverID = serverID
		s.apiKey = apiKey
	}
}

// WithResponse sets the response for every request.
func WithResponse(resp Response) Option {
	return func(s *Server) {
		s.response = resp
	}
}

// Server is a fake Injection API.
type Server struct {
	srv      *httptest.Server
	serverID string
	apiKey   string
	response Response
	requests []Request
	mu       sync.Mutex
}

// NewServer starts a fake server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post(InjectPath, s.handleInject)
	s.srv = httptest.NewServer(r)

	return s
}

// URL returns the full injection endpoint of the fake.
func (s *Server) URL() string {
	return s.srv.URL + InjectPath
}

// Client returns an HTTP client configured for the server.
func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// SetResponse replaces the response for subsequent requests.
func (s *Server) SetResponse(resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response = resp
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

type injectionBody struct {
	ServerID json.Number       `json:"ServerId"`
	APIKey   string            `json:"ApiKey"`
	Messages []json.RawMessage `json:"Messages"`
}

type postResponse struct {
	ErrorCode          string          `json:"ErrorCode"`
	TransactionReceipt string          `json:"TransactionReceipt,omitempty"`
	MessageResults     []MessageResult `json:"MessageResults,omitempty"`
}

func (s *Server) handleInject(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var in injectionBody
	decodeErr := json.Unmarshal(body, &in)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Header:   r.Header.Clone(),
		ServerID: in.ServerID,
		APIKey:   in.APIKey,
		Messages: in.Messages,
		Body:     body,
	})
	resp := s.response
	wantID, wantKey := s.serverID, s.apiKey
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case decodeErr != nil:
		writeJSON(w, http.StatusOK, postResponse{ErrorCode: "InvalidData"})
		return
	case wantID != "" && (in.ServerID.String() != wantID || in.APIKey != wantKey):
		writeJSON(w, http.StatusOK, postResponse{ErrorCode: "InvalidAuthentication"})
		return
	case len(in.Messages) == 0:
		writeJSON(w, http.StatusOK, postResponse{ErrorCode: "NoMessages"})
		return
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	if resp.Raw != "" {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp.Raw)
		return
	}

	out := postResponse{
		ErrorCode:          resp.ErrorCode,
		TransactionReceipt: resp.Receipt,
		MessageResults:     resp.Results,
	}
	if out.ErrorCode == "" {
		out.ErrorCode = "Success"
	}
	if out.TransactionReceipt == "" {
		out.TransactionReceipt = uuid.NewString()
	}
	writeJSON(w, status, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
