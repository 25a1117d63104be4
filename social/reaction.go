package social

import (
	"fmt"
	"strings"

	"snb-go/core"
)

// Reaction is the closed set of post reactions the platform accepts, each
// with the fixed integer code the feedback endpoint expects. ReactionNone
// clears an existing reaction.
type Reaction int

const (
	ReactionNone  Reaction = 0
	ReactionLike  Reaction = 1
	ReactionLove  Reaction = 2
	ReactionWow   Reaction = 3
	ReactionHaha  Reaction = 4
	ReactionSad   Reaction = 7
	ReactionAngry Reaction = 8
	ReactionCare  Reaction = 16
)

var reactionNames = map[Reaction]string{
	ReactionNone:  "NONE",
	ReactionLike:  "LIKE",
	ReactionLove:  "LOVE",
	ReactionWow:   "WOW",
	ReactionHaha:  "HAHA",
	ReactionSad:   "SAD",
	ReactionAngry: "ANGRY",
	ReactionCare:  "CARE",
}

var reactionsByName = map[string]Reaction{
	"NONE":  ReactionNone,
	"LIKE":  ReactionLike,
	"LOVE":  ReactionLove,
	"WOW":   ReactionWow,
	"HAHA":  ReactionHaha,
	"SAD":   ReactionSad,
	"ANGRY": ReactionAngry,
	"CARE":  ReactionCare,
}

// validReactionNames lists the accepted names in the order used in error
// messages.
var validReactionNames = []string{"LIKE", "LOVE", "CARE", "HAHA", "WOW", "SAD", "ANGRY", "NONE"}

// String returns the canonical uppercase name of the reaction.
func (r Reaction) String() string {
	if name, ok := reactionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reaction(%d)", int(r))
}

// Code returns the integer code sent on the wire.
func (r Reaction) Code() int {
	return int(r)
}

// ParseReaction matches a reaction name case-insensitively against the closed
// set. An unmatched name fails with a ValidationError enumerating every valid
// option.
func ParseReaction(name string) (Reaction, error) {
	r, ok := reactionsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return ReactionNone, core.NewValidationError("reaction",
			fmt.Sprintf("%q is not a valid reaction, expected one of %s",
				name, strings.Join(validReactionNames, ", ")))
	}
	return r, nil
}
