package push

import (
	"context"
)

// Message is one multicast send request addressed to many device
// tokens. The provider reports an independent outcome per token.
type Message struct {
	Tokens []string          `json:"tokens"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`

	// display hint so repeated alerts for the same device replace
	// each other on the client instead of stacking
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

type Outcome struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type Response struct {
	SuccessCount int       `json:"successCount"`
	FailureCount int       `json:"failureCount"`
	Responses    []Outcome `json:"responses"`
}

const (
	ErrorCodeTokenNotRegistered = "messaging/registration-token-not-registered"
	ErrorCodeInvalidToken       = "messaging/invalid-registration-token"
)

// IsPermanentFailure reports whether a provider error code means the
// token will never work again. Anything else is treated as transient.
func IsPermanentFailure(code string) bool {
	return code == ErrorCodeTokenNotRegistered || code == ErrorCodeInvalidToken
}

//go:generate moq -rm -out sender_mock.go . Sender
type Sender interface {
	SendEachForMulticast(ctx context.Context, msg Message) (Response, error)
}
