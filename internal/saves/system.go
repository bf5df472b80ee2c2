package saves

import (
	"context"
	"encoding/json"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
)

// Canonical save names, the interchange vocabulary between systems
const (
	Death     = "death"
	Wands     = "wands"
	Paralysis = "paralysis"
	Breath    = "breath"
	Spell     = "spell"
)

// Canonical lists the five canonical saves
var Canonical = []string{Death, Wands, Paralysis, Breath, Spell}

// IsCanonical reports whether name is a canonical save
func IsCanonical(name string) bool {
	for _, c := range Canonical {
		if c == name {
			return true
		}
	}
	return false
}

// Names is a list of save names. In JSON it may be a single string.
type Names []string

// UnmarshalJSON accepts a string or an array of strings
func (n *Names) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*n = Names{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*n = many
	return nil
}

// RollOptions tune a single saving throw. Abilities maps ability scores to
// modifiers and defaults to the classic table.
type RollOptions struct {
	Modifier  int                 `json:"modifier,omitempty"`
	Reroll    dice.RerollStrategy `json:"reroll,omitempty"`
	Abilities actor.ModifierTable `json:"-"`
}

// Request is everything a resolve function needs
type Request struct {
	Actor     *actor.Actor
	SystemID  string
	System    *System
	Save      string
	Options   RollOptions
	Evaluator *dice.Evaluator
}

// ResolveFunc is a system's custom resolution
type ResolveFunc func(ctx context.Context, req *Request) (*Result, error)

// System is a saving-throw scheme with its own save names and their
// canonical mappings. Resolve replaces the classic class-table resolution
// when set.
type System struct {
	DisplayName string           `json:"displayName"`
	Saves       []string         `json:"saves"`
	Mappings    map[string]Names `json:"mappings"`
	RollFormula string           `json:"rollFormula"`
	Operator    dice.Operator    `json:"operator"`
	Resolve     ResolveFunc      `json:"-"`
}

// Declares reports whether save is one of the system's save names
func (s *System) Declares(save string) bool {
	for _, name := range s.Saves {
		if name == save {
			return true
		}
	}
	return false
}

// Result is the outcome of one saving throw
type Result struct {
	Success bool            `json:"success"`
	Rolls   []*dice.Outcome `json:"rolls"`
	Target  int             `json:"target"`
	Save    string          `json:"save"`
	System  string          `json:"system"`
}
