package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// BaseMovement is the unencumbered base rate in feet per turn
const BaseMovement = 120

// ClassicMovement derives encounter and running speeds from the base rate
type ClassicMovement struct {
	rules.Info
}

// NewClassicMovement creates the default movement module
func NewClassicMovement() *ClassicMovement {
	return &ClassicMovement{Info: rules.Info{Key: "classic", Label: "Classic Movement", Default: true}}
}

func (*ClassicMovement) BaseRate() int { return BaseMovement }

// Rates returns exploration (base), encounter (base/3) and running (base)
func (*ClassicMovement) Rates(base int) rules.MovementRates {
	return rules.MovementRates{
		Base:        base,
		Exploration: base,
		Encounter:   base / 3,
		Running:     base,
	}
}

// Armour weight categories used by basic encumbrance
const (
	ArmorNone  = "none"
	ArmorLight = "light"
	ArmorHeavy = "heavy"
)

// NoEncumbrance never slows anyone down
type NoEncumbrance struct {
	rules.Info
}

// NewNoEncumbrance creates the encumbrance module that ignores load
func NewNoEncumbrance() *NoEncumbrance {
	return &NoEncumbrance{Info: rules.Info{Key: "none", Label: "No Encumbrance"}}
}

func (*NoEncumbrance) MovementRate(base int, _ rules.Load) int { return base }

// BasicEncumbrance slows by armour worn and heavy gear carried
type BasicEncumbrance struct {
	rules.Info
}

// NewBasicEncumbrance creates the default encumbrance module
func NewBasicEncumbrance() *BasicEncumbrance {
	return &BasicEncumbrance{Info: rules.Info{Key: "basic", Label: "Basic Encumbrance", Default: true}}
}

// MovementRate drops a quarter of the base rate per armour step, and one
// more step when carrying heavy gear
func (*BasicEncumbrance) MovementRate(base int, load rules.Load) int {
	steps := 0
	switch load.ArmorWeight {
	case ArmorLight:
		steps = 1
	case ArmorHeavy:
		steps = 2
	}
	if load.HeavyGear {
		steps++
	}
	return base * (4 - steps) / 4
}

// DetailedEncumbrance slows by total coin weight carried
type DetailedEncumbrance struct {
	rules.Info
}

// NewDetailedEncumbrance creates the coin-weight encumbrance module
func NewDetailedEncumbrance() *DetailedEncumbrance {
	return &DetailedEncumbrance{Info: rules.Info{Key: "detailed", Label: "Detailed Encumbrance"}}
}

// MovementRate applies the 400/600/800/1600 coin thresholds. Above 1600
// coins the actor cannot move.
func (*DetailedEncumbrance) MovementRate(base int, load rules.Load) int {
	switch {
	case load.Coins <= 400:
		return base
	case load.Coins <= 600:
		return base * 3 / 4
	case load.Coins <= 800:
		return base / 2
	case load.Coins <= 1600:
		return base / 4
	}
	return 0
}
