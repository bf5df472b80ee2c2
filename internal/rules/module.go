package rules

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
)

// Category is one of the fixed kinds of swappable rule module
type Category string

const (
	CategoryAbilityScores    Category = "ability-scores"
	CategorySavingThrows     Category = "saving-throws"
	CategoryCombat           Category = "combat"
	CategoryInitiative       Category = "initiative"
	CategoryMovement         Category = "movement"
	CategoryEncumbrance      Category = "encumbrance"
	CategoryCharacterActions Category = "character-actions"
)

// Categories lists every category in registration order
var Categories = []Category{
	CategoryAbilityScores,
	CategorySavingThrows,
	CategoryCombat,
	CategoryInitiative,
	CategoryMovement,
	CategoryEncumbrance,
	CategoryCharacterActions,
}

// Valid reports whether c is one of the fixed categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Module is the common identity of every rule module
type Module interface {
	ID() string
	Name() string
	IsDefault() bool
}

// Info implements Module and is meant to be embedded
type Info struct {
	Key     string `json:"id"`
	Label   string `json:"name"`
	Default bool   `json:"default"`
}

func (i Info) ID() string      { return i.Key }
func (i Info) Name() string    { return i.Label }
func (i Info) IsDefault() bool { return i.Default }

// AbilityScoreModule maps ability scores to modifiers
type AbilityScoreModule interface {
	Module
	Modifier(score int) int
}

// SavingThrowModule names the saving-throw system actors use by default
type SavingThrowModule interface {
	Module
	SystemID() string
}

// Defender exposes armour class in both scales
type Defender interface {
	Defense() (ac, aac int)
}

// Attacker exposes the attacker's own THAC0, zero when unset
type Attacker interface {
	THAC0() int
}

// CombatModule decides what an attack roll must reach
type CombatModule interface {
	Module
	// DefenseOf returns the target's defense value on this module's scale
	DefenseOf(target Defender) int
	// TargetNumber is the total an attack roll needs against defense
	TargetNumber(attacker Attacker, defense int) int
}

// InitiativeModule describes how initiative is rolled
type InitiativeModule interface {
	Module
	Formula() string
	// Group reports one roll per side instead of per combatant
	Group() bool
}

// MovementRates are the derived movement speeds in feet
type MovementRates struct {
	Base        int `json:"base"`
	Exploration int `json:"exploration"`
	Encounter   int `json:"encounter"`
	Running     int `json:"running"`
}

// MovementModule derives movement rates from a base rate
type MovementModule interface {
	Module
	BaseRate() int
	Rates(base int) MovementRates
}

// Load is what an actor carries for encumbrance purposes
type Load struct {
	Coins       int    `json:"coins"`
	ArmorWeight string `json:"armorWeight"`
	HeavyGear   bool   `json:"heavyGear"`
}

// EncumbranceModule derives a movement rate from what is carried
type EncumbranceModule interface {
	Module
	MovementRate(base int, load Load) int
}

// CharacterActionsModule supplies the actions every character has
type CharacterActionsModule interface {
	Module
	Actions() []*actions.Action
}

// satisfies reports whether m implements the contract of category
func satisfies(category Category, m Module) bool {
	var ok bool
	switch category {
	case CategoryAbilityScores:
		_, ok = m.(AbilityScoreModule)
	case CategorySavingThrows:
		_, ok = m.(SavingThrowModule)
	case CategoryCombat:
		_, ok = m.(CombatModule)
	case CategoryInitiative:
		_, ok = m.(InitiativeModule)
	case CategoryMovement:
		_, ok = m.(MovementModule)
	case CategoryEncumbrance:
		_, ok = m.(EncumbranceModule)
	case CategoryCharacterActions:
		_, ok = m.(CharacterActionsModule)
	}
	return ok
}
