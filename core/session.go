package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const graphqlPath = "/api/graphql/"

// stateFile is where Persist stores the session snapshot, relative to the
// FileManager root.
const stateFile = "session.json"

// Session holds the identity of the logged-in user and the anti-CSRF form
// token. It is read-only after login and safe to share between concurrent
// operations.
type Session struct {
	wrapper   WebWrapperInterface
	UserID    string
	FormToken string
}

// SessionState is the persisted snapshot of a Session.
type SessionState struct {
	UserID    string    `json:"user_id"`
	FormToken string    `json:"form_token"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewSession builds a Session from already-known identity material.
func NewSession(wrapper WebWrapperInterface, userID, formToken string) *Session {
	return &Session{
		wrapper:   wrapper,
		UserID:    userID,
		FormToken: formToken,
	}
}

// Login fetches the platform shell over the wrapper and extracts the viewer
// identity and form token from it. fallbackUserID is used when the shell does
// not carry a viewer id (some shells only expose it via the config).
func Login(ctx context.Context, wrapper WebWrapperInterface, fallbackUserID string) (*Session, error) {
	resp, err := wrapper.GetURL(ctx, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch platform shell: %w", err)
	}
	body, err := ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read platform shell: %w", err)
	}

	if Extractor.LoggedOut(body) {
		log.Error().Msg("platform served a login wall")
		return nil, &AuthError{Reason: "cookie session rejected"}
	}

	token, err := Extractor.FormToken(body)
	if err != nil {
		log.Error().Err(err).Msg("form token missing from shell")
		return nil, &AuthError{Reason: "form token missing, session likely expired"}
	}

	userID := Extractor.ViewerID(body)
	if userID == "" {
		userID = fallbackUserID
	}

	log.Info().Str("userID", userID).Msg("session established")
	return NewSession(wrapper, userID, token), nil
}

// Wrapper returns the transport this session rides on.
func (s *Session) Wrapper() WebWrapperInterface {
	return s.wrapper
}

// mutationForm assembles the standard form fields every mutation carries.
func (s *Session) mutationForm(friendlyName, docID, variables string) url.Values {
	form := url.Values{}
	form.Set("av", s.UserID)
	form.Set("__user", s.UserID)
	form.Set("fb_dtsg", s.FormToken)
	form.Set("jazoest", Checksum(s.FormToken))
	form.Set("fb_api_caller_class", "RelayModern")
	form.Set("fb_api_req_friendly_name", friendlyName)
	form.Set("doc_id", docID)
	form.Set("variables", variables)
	return form
}

// PostMutation issues one GraphQL-style mutation and returns the decoded
// response. variables is JSON-encoded into the form; the request is built
// fresh per call and never reused.
func (s *Session) PostMutation(ctx context.Context, friendlyName, docID string, variables any) (*GraphResponse, error) {
	encoded, err := json.Marshal(variables)
	if err != nil {
		return nil, fmt.Errorf("failed to encode variables: %w", err)
	}

	form := s.mutationForm(friendlyName, docID, string(encoded))
	resp, err := s.wrapper.PostURL(ctx, graphqlPath, form)
	if err != nil {
		return nil, err
	}
	body, err := ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read mutation response: %w", err)
	}
	return ParseAndCheckLogin(body)
}

// Persist saves a snapshot of the session so later runs can skip the shell
// fetch.
func (s *Session) Persist(fm *FileManager) error {
	state := SessionState{
		UserID:    s.UserID,
		FormToken: s.FormToken,
		SavedAt:   time.Now(),
	}
	return fm.SaveJSONFile(state, stateFile)
}

// RestoreSession rebuilds a Session from a persisted snapshot. Returns
// os.ErrNotExist (wrapped) when no snapshot has been saved yet.
func RestoreSession(wrapper WebWrapperInterface, fm *FileManager) (*Session, error) {
	var state SessionState
	if err := fm.LoadJSONFile(stateFile, &state); err != nil {
		return nil, err
	}
	if state.UserID == "" || state.FormToken == "" {
		return nil, fmt.Errorf("session snapshot is incomplete")
	}
	return NewSession(wrapper, state.UserID, state.FormToken), nil
}
