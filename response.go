package socketlabs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SendResult is the decoded outcome of an injection request.
type SendResult struct {
	// TransactionReceipt identifies the injection; SocketLabs support asks
	// for it when troubleshooting.
	TransactionReceipt string
	ErrorCode          PostCode
	// MessageErrors flattens MessageResults into readable lines, in the
	// order the API reported them.
	MessageErrors  []string
	MessageResults []MessageResult
	Success        bool
}

// MessageResult reports a failed or partially failed message.
type MessageResult struct {
	ErrorCode      MessageCode     `json:"ErrorCode"`
	AddressResults []AddressResult `json:"AddressResult"`
	// Index refers to the position of the message in the request.
	Index int `json:"Index"`
}

// AddressResult reports a rejected recipient.
type AddressResult struct {
	EmailAddress string      `json:"EmailAddress"`
	ErrorCode    AddressCode `json:"ErrorCode"`
	Accepted     bool        `json:"Accepted"`
}

// postResponse mirrors the PostResponse body. Success is not part of the
// documented contract; it is honoured only when ErrorCode is absent.
type postResponse struct {
	ErrorCode          *PostCode       `json:"ErrorCode"`
	Success            *bool           `json:"Success"`
	TransactionReceipt string          `json:"TransactionReceipt"`
	MessageResults     []MessageResult `json:"MessageResults"`
}

func decodeSendResult(body []byte) (*SendResult, error) {
	var resp postResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	result := &SendResult{
		TransactionReceipt: resp.TransactionReceipt,
		MessageResults:     resp.MessageResults,
	}

	switch {
	case resp.ErrorCode != nil:
		result.ErrorCode = *resp.ErrorCode
		result.Success = result.ErrorCode == PostSuccess
	case resp.Success != nil:
		result.Success = *resp.Success
	}

	result.MessageErrors = messageErrors(resp.MessageResults)
	return result, nil
}

func messageErrors(results []MessageResult) []string {
	if len(results) == 0 {
		return nil
	}
	out := make([]string, 0, len(results))
	for _, mr := range results {
		if mr.ErrorCode != "" {
			out = append(out, fmt.Sprintf("message %d: %s: %s", mr.Index, mr.ErrorCode, mr.ErrorCode.Description()))
		}
		for _, ar := range mr.AddressResults {
			if ar.Accepted {
				continue
			}
			out = append(out, fmt.Sprintf("message %d: %s: %s: %s", mr.Index, ar.EmailAddress, ar.ErrorCode, ar.ErrorCode.Description()))
		}
	}
	return out
}
