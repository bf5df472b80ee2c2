package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// SavingThrowSystem is a module naming the saving-throw system actors use
// unless they pick their own
type SavingThrowSystem struct {
	rules.Info
	System string `json:"system"`
}

func (s *SavingThrowSystem) SystemID() string { return s.System }

// SavingThrowModules returns one module per built-in saving-throw system
func SavingThrowModules() []*SavingThrowSystem {
	return []*SavingThrowSystem{
		{Info: rules.Info{Key: "classic", Label: "Classic Saving Throws", Default: true}, System: "classic"},
		{Info: rules.Info{Key: "ability-roll-under", Label: "Roll Under Ability"}, System: "ability-roll-under"},
		{Info: rules.Info{Key: "ability-roll-under-twice", Label: "Roll Under Ability Twice"}, System: "ability-roll-under-twice"},
		{Info: rules.Info{Key: "level-ability-target", Label: "Level and Ability Target"}, System: "level-ability-target"},
	}
}
