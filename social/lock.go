package social

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"snb-go/core"
)

const (
	lockMutationName = "ProfileCometLockingSaveActionMutation"
	lockDocID        = "2810691635654492"
)

// Fixed explanations of what the resulting lock state means for the profile.
const (
	lockedNote   = "Only friends can see the photos, posts and stories on this profile."
	unlockedNote = "Profile content is visible again according to the audience settings."
)

// LockResult echoes the outcome of a profile lock toggle.
type LockResult struct {
	Success bool   `json:"success"`
	Locked  bool   `json:"locked"`
	UserID  string `json:"userID"`
	Message string `json:"message"`
	Note    string `json:"note"`
}

type lockInput struct {
	IsLocked         bool   `json:"is_locked"`
	UserID           string `json:"user_id"`
	ActorID          string `json:"actor_id"`
	ClientMutationID string `json:"client_mutation_id"`
}

// Lock toggles friends-only profile locking. The target user and the acting
// session user travel as distinct fields; an empty userID targets the session
// user.
func (pm *ProfileManager) Lock(ctx context.Context, enable bool, userID string) (*LockResult, error) {
	target, err := pm.resolveTarget(userID)
	if err != nil {
		return nil, err
	}

	variables := map[string]lockInput{
		"input": {
			IsLocked:         enable,
			UserID:           target,
			ActorID:          pm.Session.UserID,
			ClientMutationID: core.NewMutationID(),
		},
	}

	if _, err := pm.Session.PostMutation(ctx, lockMutationName, lockDocID, variables); err != nil {
		log.Error().Err(err).Str("userID", target).Bool("enable", enable).Msg("profile lock mutation failed")
		return nil, err
	}

	state := "unlocked"
	note := unlockedNote
	if enable {
		state = "locked"
		note = lockedNote
	}
	return &LockResult{
		Success: true,
		Locked:  enable,
		UserID:  target,
		Message: fmt.Sprintf("profile %s for user %s", state, target),
		Note:    note,
	}, nil
}
