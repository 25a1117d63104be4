package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// antiHijackPrefix guards the platform's JSON responses against script
// inclusion and must be stripped before decoding.
const antiHijackPrefix = "for (;;);"

// Error codes the platform uses for invalidated sessions.
const (
	errCodeNotLoggedIn     = 1357001
	errCodeSessionExpired  = 1357004
	errCodeLoginMaintained = 1357007
)

// GraphError is one entry of the errors array in a mutation response.
type GraphError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// GraphResponse is the decoded body of a mutation response. Data holds the
// mutation payload; the error fields are mutually exclusive with it.
type GraphResponse struct {
	Data             json.RawMessage `json:"data"`
	Errors           []GraphError    `json:"errors"`
	ErrorCode        int             `json:"error"`
	ErrorSummary     string          `json:"errorSummary"`
	ErrorDescription string          `json:"errorDescription"`
}

// ParseAndCheckLogin strips the anti-hijacking prefix, decodes the response
// body, and maps error payloads onto the error taxonomy. A logged-out error
// code becomes an AuthError; any other error/errors payload becomes a
// RemoteError carrying the server's message verbatim.
func ParseAndCheckLogin(body string) (*GraphResponse, error) {
	trimmed := strings.TrimSpace(body)
	trimmed = strings.TrimPrefix(trimmed, antiHijackPrefix)

	var gr GraphResponse
	if err := json.Unmarshal([]byte(trimmed), &gr); err != nil {
		log.Error().Err(err).Msg("failed to decode response body")
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch gr.ErrorCode {
	case 0:
	case errCodeNotLoggedIn, errCodeSessionExpired, errCodeLoginMaintained:
		log.Error().Int("code", gr.ErrorCode).Msg("session is no longer authenticated")
		return nil, &AuthError{Reason: gr.ErrorSummary}
	default:
		log.Error().Int("code", gr.ErrorCode).Str("summary", gr.ErrorSummary).Msg("server returned an error")
		return nil, &RemoteError{
			Code:        gr.ErrorCode,
			Summary:     gr.ErrorSummary,
			Description: gr.ErrorDescription,
		}
	}

	if len(gr.Errors) > 0 {
		first := gr.Errors[0]
		log.Error().Int("code", first.Code).Str("message", first.Message).Msg("mutation returned errors")
		return nil, &RemoteError{
			Code:    first.Code,
			Summary: first.Message,
		}
	}

	return &gr, nil
}
