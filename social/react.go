package social

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"

	"snb-go/core"
)

const (
	reactMutationName = "CometUFIFeedbackReactMutation"
	reactDocID        = "4769042373179384"
	reactSurface      = "CometUFIReactionsMenu.react"
)

// ReactionManager sets and clears reactions on posts.
type ReactionManager struct {
	Session *core.Session
}

// NewReactionManager creates a new ReactionManager.
func NewReactionManager(session *core.Session) *ReactionManager {
	return &ReactionManager{Session: session}
}

// ReactResult echoes the outcome of a reaction mutation.
type ReactResult struct {
	Success       bool   `json:"success"`
	PostID        string `json:"postID"`
	Reaction      string `json:"reaction"`
	ReactionValue int    `json:"reactionValue"`
	Message       string `json:"message"`
}

type reactInput struct {
	AttributionIDV2     string   `json:"attribution_id_v2"`
	FeedbackID          string   `json:"feedback_id"`
	FeedbackReaction    int      `json:"feedback_reaction"`
	FeedbackSource      string   `json:"feedback_source"`
	IsTrackingEncrypted bool     `json:"is_tracking_encrypted"`
	Tracking            []string `json:"tracking"`
	SessionID           string   `json:"session_id"`
	ActorID             string   `json:"actor_id"`
	ClientMutationID    string   `json:"client_mutation_id"`
}

// FeedbackID encodes a post identifier into the reversible token the feedback
// endpoint expects.
func FeedbackID(postID string) string {
	return base64.StdEncoding.EncodeToString([]byte("feedback:" + postID))
}

// React sets or clears a reaction on a post. The reaction name is matched
// case-insensitively against the closed set; NONE (code 0) removes an
// existing reaction.
func (rm *ReactionManager) React(ctx context.Context, postID, reaction string) (*ReactResult, error) {
	if postID == "" {
		err := core.NewValidationError("postID", "missing post id")
		log.Error().Msg("react called without a post id")
		return nil, err
	}
	parsed, err := ParseReaction(reaction)
	if err != nil {
		log.Error().Err(err).Str("postID", postID).Msg("unknown reaction name")
		return nil, err
	}

	variables := map[string]reactInput{
		"input": {
			AttributionIDV2:     core.AttributionID(reactSurface, rm.Session.UserID),
			FeedbackID:          FeedbackID(postID),
			FeedbackReaction:    parsed.Code(),
			FeedbackSource:      "OBJECT",
			IsTrackingEncrypted: true,
			Tracking:            []string{},
			SessionID:           core.NewWebsessionID(),
			ActorID:             rm.Session.UserID,
			ClientMutationID:    core.NewMutationID(),
		},
	}

	if _, err := rm.Session.PostMutation(ctx, reactMutationName, reactDocID, variables); err != nil {
		log.Error().Err(err).Str("postID", postID).Str("reaction", parsed.String()).Msg("reaction mutation failed")
		return nil, err
	}

	message := fmt.Sprintf("reacted with %s to post %s", parsed, postID)
	if parsed == ReactionNone {
		message = fmt.Sprintf("removed reaction from post %s", postID)
	}
	return &ReactResult{
		Success:       true,
		PostID:        postID,
		Reaction:      parsed.String(),
		ReactionValue: parsed.Code(),
		Message:       message,
	}, nil
}
