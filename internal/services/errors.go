package services

import "errors"

const (
	MsgPromptRequired = "Prompt is required"
	MsgUpstreamFailed = "An error occurred while processing your request"
)

// ErrEmptyReply is returned when the provider answers without any text.
var ErrEmptyReply = errors.New("model returned an empty response")

type InvalidInputError struct{ Message string }

func (e *InvalidInputError) Error() string { return e.Message }

// UpstreamError wraps a failed provider call. Error returns the cause's text unchanged.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return "upstream provider call failed"
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
