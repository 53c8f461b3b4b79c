package socketlabs

import "encoding/json"

// UnknownErrorCode is substituted for any code the API returns that is not
// listed below.
const UnknownErrorCode = "UnknownErrorCode"

// Post-level codes describe the outcome of the whole injection request.
const (
	PostSuccess               = "Success"
	PostWarning               = "Warning"
	PostAccountDisabled       = "AccountDisabled"
	PostInternalError         = "InternalError"
	PostInvalidAuthentication = "InvalidAuthentication"
	PostInvalidData           = "InvalidData"
	PostNoMessages            = "NoMessages"
	PostEmptyMessage          = "EmptyMessage"
	PostOverQuota             = "OverQuota"
	PostTooManyErrors         = "TooManyErrors"
	PostTooManyMessages       = "TooManyMessages"
	PostTooManyRecipients     = "TooManyRecipients"
	PostNoValidRecipients     = "NoValidRecipients"
)

// Message-level codes describe why a single message failed.
const (
	MessageWarning            = "Warning"
	MessageInvalidAttachment  = "InvalidAttachment"
	MessageTooLarge           = "MessageTooLarge"
	MessageEmptySubject       = "EmptySubject"
	MessageEmptyToAddress     = "EmptyToAddress"
	MessageInvalidFromAddress = "InvalidFromAddress"
	MessageNoValidBodyParts   = "NoValidBodyParts"
	MessageNoValidRecipients  = "NoValidRecipients"
	MessageInvalidMergeData   = "InvalidMergeData"
	MessageInvalidTemplateID  = "InvalidTemplateId"
	MessageBodyConflict       = "MessageBodyConflict"
)

// AddressInvalidAddress is the only address-level code.
const AddressInvalidAddress = "InvalidAddress"

const unknownErrorCodeDescription = "SocketLabs returned an unknown error code."

var postCodes = map[string]string{
	PostSuccess:               "Success.",
	PostWarning:               "There were one or more failed messages and/or recipients.",
	PostAccountDisabled:       "The account has been disabled.",
	PostInternalError:         "Internal server error. (Please report to SocketLabs support if encountered.)",
	PostInvalidAuthentication: "The ServerId/ApiKey combination is invalid.",
	PostInvalidData:           "PostBody parameter does not have a valid structure, or contains invalid or missing data.",
	PostNoMessages:            "There were no messages to inject included in the request.",
	PostEmptyMessage:          "One or more messages have insufficient content to process.",
	PostOverQuota:             "Rate limit exceeded.",
	PostTooManyErrors:         "Authentication error limit exceeded.",
	PostTooManyMessages:       "Too many messages in a single request.",
	PostTooManyRecipients:     "Too many recipients in a single message.",
	PostNoValidRecipients:     "A merge was attempted, but there were no valid recipients.",
}

var messageCodes = map[string]string{
	MessageWarning:            "The message has one or more bad recipients.",
	MessageInvalidAttachment:  "The message has one or more invalid attachments.",
	MessageTooLarge:           "The message was larger than the allowed size.",
	MessageEmptySubject:       "This message contained an empty subject line, which is not allowed.",
	MessageEmptyToAddress:     "This message does not contain a To address.",
	MessageInvalidFromAddress: "This message does not contain a valid From address.",
	MessageNoValidBodyParts:   "This message does not have a valid text HTML body specified.",
	MessageNoValidRecipients:  "There are no valid addresses specified as message recipients.",
	MessageInvalidMergeData:   "The included merge data does not follow the API specification.",
	MessageInvalidTemplateID:  "The selected API Template does not exist.",
	MessageBodyConflict:       "The Html Body and Text Body cannot be set when also specifying an API Template ID.",
}

var addressCodes = map[string]string{
	AddressInvalidAddress: "The address did not meet specification requirements.",
}

// PostCode is a post-level code. Unknown values decode as UnknownErrorCode.
type PostCode string

// MessageCode is a message-level code. Unknown values decode as UnknownErrorCode.
type MessageCode string

// AddressCode is an address-level code. Unknown values decode as UnknownErrorCode.
type AddressCode string

func (c *PostCode) UnmarshalJSON(data []byte) error {
	*c = PostCode(decodeCode(data, postCodes))
	return nil
}

func (c *MessageCode) UnmarshalJSON(data []byte) error {
	*c = MessageCode(decodeCode(data, messageCodes))
	return nil
}

func (c *AddressCode) UnmarshalJSON(data []byte) error {
	*c = AddressCode(decodeCode(data, addressCodes))
	return nil
}

// Description returns the documented meaning of the code.
func (c PostCode) Description() string { return describe(string(c), postCodes) }

// Description returns the documented meaning of the code.
func (c MessageCode) Description() string { return describe(string(c), messageCodes) }

// Description returns the documented meaning of the code.
func (c AddressCode) Description() string { return describe(string(c), addressCodes) }

// decodeCode never fails: a malformed or unlisted code becomes UnknownErrorCode,
// and an explicit null stays empty.
func decodeCode(data []byte, known map[string]string) string {
	if string(data) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return UnknownErrorCode
	}
	if _, ok := known[s]; !ok {
		return UnknownErrorCode
	}
	return s
}

func describe(code string, known map[string]string) string {
	if d, ok := known[code]; ok {
		return d
	}
	return unknownErrorCodeDescription
}
