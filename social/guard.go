package social

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"snb-go/core"
)

// Mutation catalog identifiers for the profile-picture shield. The doc_id is
// an opaque handle into the platform's server-side operation catalog and must
// match it verbatim.
const (
	guardMutationName = "IsShieldedSetMutation"
	guardDocID        = "1477043292367183"
)

// ProfileManager issues profile-level mutations (picture shield, locking) on
// behalf of the session user.
type ProfileManager struct {
	Session *core.Session
}

// NewProfileManager creates a new ProfileManager.
func NewProfileManager(session *core.Session) *ProfileManager {
	return &ProfileManager{Session: session}
}

// resolveTarget defaults an empty target to the session user.
func (pm *ProfileManager) resolveTarget(userID string) (string, error) {
	if userID != "" {
		return userID, nil
	}
	if pm.Session.UserID == "" {
		err := core.NewValidationError("userID", "missing user identity")
		log.Error().Msg("no target user and no session user")
		return "", err
	}
	return pm.Session.UserID, nil
}

// GuardResult echoes the outcome of a profile guard toggle.
type GuardResult struct {
	Success bool   `json:"success"`
	Enabled bool   `json:"enabled"`
	UserID  string `json:"userID"`
	Message string `json:"message"`
}

type guardInput struct {
	IsShielded       bool   `json:"is_shielded"`
	SessionID        string `json:"session_id"`
	ActorID          string `json:"actor_id"`
	ClientMutationID string `json:"client_mutation_id"`
}

// Guard toggles profile-picture download protection. An empty userID targets
// the session user. One request per call, no retries; a failed attempt is
// surfaced immediately.
func (pm *ProfileManager) Guard(ctx context.Context, enable bool, userID string) (*GuardResult, error) {
	target, err := pm.resolveTarget(userID)
	if err != nil {
		return nil, err
	}

	variables := map[string]guardInput{
		"0": {
			IsShielded:       enable,
			SessionID:        core.NewWebsessionID(),
			ActorID:          target,
			ClientMutationID: core.NewMutationID(),
		},
	}

	if _, err := pm.Session.PostMutation(ctx, guardMutationName, guardDocID, variables); err != nil {
		log.Error().Err(err).Str("userID", target).Bool("enable", enable).Msg("profile guard mutation failed")
		return nil, err
	}

	state := "disabled"
	if enable {
		state = "enabled"
	}
	return &GuardResult{
		Success: true,
		Enabled: enable,
		UserID:  target,
		Message: fmt.Sprintf("profile guard %s for user %s", state, target),
	}, nil
}
