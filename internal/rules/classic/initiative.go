package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// IndividualInitiative rolls 1d6 plus dexterity modifier per combatant
type IndividualInitiative struct {
	rules.Info
}

// NewIndividualInitiative creates the default initiative module
func NewIndividualInitiative() *IndividualInitiative {
	return &IndividualInitiative{Info: rules.Info{Key: "individual", Label: "Individual Initiative", Default: true}}
}

func (*IndividualInitiative) Formula() string { return "1d6 + @abilities.dex.mod" }
func (*IndividualInitiative) Group() bool { return false }

// GroupInitiative rolls 1d6 once per side
type GroupInitiative struct {
	rules.Info
}

// NewGroupInitiative creates the group initiative module
func NewGroupInitiative() *GroupInitiative {
	return &GroupInitiative{Info: rules.Info{Key: "group", Label: "Group Initiative"}}
}

func (*GroupInitiative) Formula() string { return "1d6" }
func (*GroupInitiative) Group() bool { return true }

// RollInitiative rolls the module's formula with the combatant's variables
func RollInitiative(eval *dice.Evaluator, module rules.InitiativeModule, vars dice.Variables) (*dice.Outcome, error) {
	return eval.Evaluate(module.Formula(), vars, nil)
}
