package socketlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/socketlabs/pkg/logger"
)

const (
	// DefaultEndpoint is the Injection API send-email URL.
	DefaultEndpoint = "https://inject.socketlabs.com/api/v1/email"

	defaultUserAgent = "socketlabs-go"
)

// Credentials identify a SocketLabs server.
type Credentials struct {
	ServerID string `env:"SOCKETLABS_SERVER_ID,required"`
	APIKey   string `env:"SOCKETLABS_API_KEY,required"`
}

// Client sends messages through the Injection API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	httpClient  HTTPDoer
	logger      *slog.Logger
	credentials Credentials
	endpoint    string
	userAgent   string
}

// New creates a Client for the given server.
// Returns ErrConfig if serverID or apiKey is empty, if serverID is not a
// positive integer, or if the endpoint set via WithEndpoint is not an
// absolute URL.
func New(serverID, apiKey string, opts ...Option) (*Client, error) {
	if serverID == "" {
		return nil, errors.Join(ErrConfig, errors.New("server ID is required"))
	}
	if apiKey == "" {
		return nil, errors.Join(ErrConfig, errors.New("API key is required"))
	}
	id, err := strconv.ParseUint(serverID, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.Join(ErrConfig, fmt.Errorf("server ID must be a positive integer, got %q", serverID))
	}

	c := &Client{
		// Canonical form keeps the ServerId a valid JSON number ("007" -> "7").
		credentials: Credentials{ServerID: strconv.FormatUint(id, 10), APIKey: apiKey},
		endpoint:    DefaultEndpoint,
		userAgent:   defaultUserAgent,
		httpClient:  &http.Client{},
		logger:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(ErrConfig, fmt.Errorf("invalid endpoint %q", c.endpoint))
	}

	return c, nil
}

// NewFromCredentials is New with the values taken from creds.
func NewFromCredentials(creds Credentials, opts ...Option) (*Client, error) {
	return New(creds.ServerID, creds.APIKey, opts...)
}

// Send injects a single message.
//
// The message is validated first; an invalid message returns ErrValidation
// and nothing is sent. Otherwise exactly one POST is issued and never retried.
// A decoded response is returned even when the API reports a failure in
// SendResult.ErrorCode; check SendResult.Success.
func (c *Client) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return c.inject(ctx, []Message{msg})
}

// SendBatch injects several messages in one request.
// Validation errors name the index of the offending message.
func (c *Client) SendBatch(ctx context.Context, msgs []Message) (*SendResult, error) {
	if len(msgs) == 0 {
		return nil, errors.Join(ErrValidation, errors.New("at least one message is required"))
	}
	for i, msg := range msgs {
		if err := msg.Validate(); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return c.inject(ctx, msgs)
}

type injectionRequest struct {
	APIKey   string      `json:"ApiKey"`
	ServerID json.Number `json:"ServerId"`
	Messages []Message   `json:"Messages"`
}

func (c *Client) inject(ctx context.Context, msgs []Message) (*SendResult, error) {
	payload, err := json.Marshal(injectionRequest{
		ServerID: json.Number(c.credentials.ServerID),
		APIKey:   c.credentials.APIKey,
		Messages: msgs,
	})
	if err != nil {
		return nil, fmt.Errorf("socketlabs: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.DebugContext(ctx, "injecting messages",
		slog.Int("messages", len(msgs)),
		slog.String("endpoint", c.endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "injection request failed", slog.String("error", err.Error()))
		return nil, errors.Join(ErrTransport, err)
	}
	if resp == nil {
		return nil, errors.Join(ErrTransport, errors.New("nil response"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "injection rejected",
			slog.Int("status", resp.StatusCode),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	result, err := decodeSendResult(body)
	if err != nil {
		return nil, err
	}

	if !result.Success {
		c.logger.WarnContext(ctx, "injection reported failure",
			slog.String("error_code", string(result.ErrorCode)),
			slog.String("transaction_receipt", result.TransactionReceipt),
			slog.Int("message_errors", len(result.MessageErrors)),
		)
	} else {
		c.logger.DebugContext(ctx, "injection accepted",
			slog.String("transaction_receipt", result.TransactionReceipt),
		)
	}

	return result, nil
}
