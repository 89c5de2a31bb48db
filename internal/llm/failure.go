package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// FailureKind selects the user-facing message for a failed generation.
type FailureKind int

const (
	FailureUnclassified FailureKind = iota
	FailureConfiguration
	FailureEmptyInput
	FailureEmptyResponse
	FailureCredential
	FailureAuthorization
	FailureQuota
)

func (k FailureKind) String() string {
	switch k {
	case FailureConfiguration:
		return "configuration"
	case FailureEmptyInput:
		return "empty_input"
	case FailureEmptyResponse:
		return "empty_response"
	case FailureCredential:
		return "credential"
	case FailureAuthorization:
		return "authorization"
	case FailureQuota:
		return "quota"
	default:
		return "unclassified"
	}
}

const (
	aiStudioKeyURL = "https://aistudio.google.com/apikey"

	msgEmptyPrompt   = "Prompt cannot be empty."
	msgEmptyResponse = "API returned an empty response."
	msgQuota         = "API quota exceeded. Please check your Gemini API quota."
	msgAuthorization = "Invalid API key. Please verify your Gemini API key from " + aiStudioKeyURL
	msgFailedPrefix  = "Failed to generate paragraph: "
	msgKeyPrefix     = "API key error: "
)

// Failure is the only error type Generate returns. Message is safe to show
// to the user as-is.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf reports the FailureKind carried by err, or FailureUnclassified.
func KindOf(err error) FailureKind {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return FailureUnclassified
}

func emptyInputFailure() *Failure {
	return &Failure{Kind: FailureEmptyInput, Message: msgEmptyPrompt}
}

func emptyResponseFailure() *Failure {
	return &Failure{Kind: FailureEmptyResponse, Message: msgFailedPrefix + msgEmptyResponse}
}

func configurationFailure(message string) *Failure {
	return &Failure{Kind: FailureConfiguration, Message: message}
}

// HTTPStatusError is returned by the plain HTTP adapters for 4xx/5xx replies.
type HTTPStatusError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s API error: %s (%s)", e.Provider, e.Status, strings.TrimSpace(e.Body))
}

// classify converts any error from a remote call into a *Failure.
// Structured status codes win; substring matching on the message is a
// compatibility shim for transports that expose nothing better.
func classify(err error) *Failure {
	if err == nil {
		return nil
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}
	detail := err.Error()

	switch code, status := statusOf(err); {
	case code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED":
		return &Failure{Kind: FailureQuota, Message: msgQuota, Err: err}
	case code == http.StatusUnauthorized || code == http.StatusForbidden ||
		status == "UNAUTHENTICATED" || status == "PERMISSION_DENIED":
		return &Failure{Kind: FailureAuthorization, Message: msgAuthorization, Err: err}
	}

	switch {
	case strings.Contains(detail, "API_KEY") || strings.Contains(detail, "API key"):
		return &Failure{Kind: FailureCredential, Message: msgKeyPrefix + detail, Err: err}
	case strings.Contains(detail, "quota") || strings.Contains(detail, "limit"):
		return &Failure{Kind: FailureQuota, Message: msgQuota, Err: err}
	case strings.Contains(detail, "invalid") || strings.Contains(detail, "401") || strings.Contains(detail, "403"):
		return &Failure{Kind: FailureAuthorization, Message: msgAuthorization, Err: err}
	}
	if detail == "" {
		detail = "Unknown error. Please check your API key and try again."
	}
	return &Failure{Kind: FailureUnclassified, Message: msgFailedPrefix + detail, Err: err}
}

func statusOf(err error) (int, string) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Status
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Status
	}
	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, ""
	}
	return 0, ""
}
