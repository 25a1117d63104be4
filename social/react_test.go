package social

import (
	"context"
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snb-go/core"
)

func TestFeedbackID(t *testing.T) {
	id := FeedbackID("12345")
	decoded, err := base64.StdEncoding.DecodeString(id)
	require.NoError(t, err)
	assert.Equal(t, "feedback:12345", string(decoded))
}

func TestReactionManager_React(t *testing.T) {
	var captured []url.Values
	session := core.NewSession(capturingWrapper(&captured, mockMutationBody), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	result, err := rm.React(context.Background(), "8765", "love")
	require.NoError(t, err)
	require.Len(t, captured, 1)

	assert.True(t, result.Success)
	assert.Equal(t, "8765", result.PostID)
	assert.Equal(t, "LOVE", result.Reaction)
	assert.Equal(t, 2, result.ReactionValue)
	assert.Contains(t, result.Message, "reacted with LOVE")

	form := captured[0]
	assert.Equal(t, reactDocID, form.Get("doc_id"))
	assert.Equal(t, reactMutationName, form.Get("fb_api_req_friendly_name"))

	input := decodeVariables(t, form)["input"]
	assert.Equal(t, FeedbackID("8765"), input["feedback_id"])
	assert.Equal(t, float64(2), input["feedback_reaction"])
	assert.Equal(t, "OBJECT", input["feedback_source"])
	assert.Equal(t, "100012345678", input["actor_id"])
	assert.NotEmpty(t, input["attribution_id_v2"])
	assert.NotEmpty(t, input["session_id"])
	assert.NotEmpty(t, input["client_mutation_id"])
}

func TestReactionManager_React_CaseInsensitive(t *testing.T) {
	var captured []url.Values
	session := core.NewSession(capturingWrapper(&captured, mockMutationBody), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	lower, err := rm.React(context.Background(), "8765", "love")
	require.NoError(t, err)
	upper, err := rm.React(context.Background(), "8765", "LOVE")
	require.NoError(t, err)

	assert.Equal(t, lower.Reaction, upper.Reaction)
	assert.Equal(t, lower.ReactionValue, upper.ReactionValue)

	// Identical wire payload modulo the per-call correlation tokens.
	require.Len(t, captured, 2)
	first := decodeVariables(t, captured[0])["input"]
	second := decodeVariables(t, captured[1])["input"]
	assert.Equal(t, first["feedback_id"], second["feedback_id"])
	assert.Equal(t, first["feedback_reaction"], second["feedback_reaction"])
	assert.Equal(t, float64(2), second["feedback_reaction"])
}

func TestReactionManager_React_Remove(t *testing.T) {
	var captured []url.Values
	session := core.NewSession(capturingWrapper(&captured, mockMutationBody), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	result, err := rm.React(context.Background(), "8765", "none")
	require.NoError(t, err)

	assert.Equal(t, "NONE", result.Reaction)
	assert.Equal(t, 0, result.ReactionValue)
	assert.Contains(t, result.Message, "removed reaction")

	input := decodeVariables(t, captured[0])["input"]
	assert.Equal(t, float64(0), input["feedback_reaction"])
}

func TestReactionManager_React_MissingPostID(t *testing.T) {
	var captured []url.Values
	session := core.NewSession(capturingWrapper(&captured, mockMutationBody), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	_, err := rm.React(context.Background(), "", "LIKE")
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "missing post id")
	assert.Empty(t, captured)
}

func TestReactionManager_React_UnknownReaction(t *testing.T) {
	var captured []url.Values
	session := core.NewSession(capturingWrapper(&captured, mockMutationBody), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	_, err := rm.React(context.Background(), "8765", "BOGUS")
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)
	for _, name := range []string{"LIKE", "LOVE", "CARE", "HAHA", "WOW", "SAD", "ANGRY", "NONE"} {
		assert.Contains(t, ve.Reason, name)
	}
	assert.Empty(t, captured)
}

func TestReactionManager_React_RemoteError(t *testing.T) {
	var captured []url.Values
	body := `for (;;);{"errors":[{"code":1,"message":"boom"}]}`
	session := core.NewSession(capturingWrapper(&captured, body), "100012345678", "AQHtoken1")
	rm := NewReactionManager(session)

	result, err := rm.React(context.Background(), "8765", "LIKE")
	var re *core.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Nil(t, result)
}
