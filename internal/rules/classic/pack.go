// Package classic registers the built-in rule modules
package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// Pack registers every built-in module
type Pack struct {
	// THAC0 configures the descending AC module; zero uses DefaultTHAC0
	THAC0 int
}

// RegisterModules answers the bootstrap broadcast
func (p *Pack) RegisterModules(r *rules.Registry) error {
	registrations := []struct {
		category rules.Category
		module   rules.Module
	}{
		{rules.CategoryAbilityScores, NewClassicAbilityScores()},
		{rules.CategoryAbilityScores, NewModernAbilityScores()},
		{rules.CategoryCombat, NewAscendingAC()},
		{rules.CategoryCombat, NewDescendingAC(p.THAC0)},
		{rules.CategoryInitiative, NewIndividualInitiative()},
		{rules.CategoryInitiative, NewGroupInitiative()},
		{rules.CategoryMovement, NewClassicMovement()},
		{rules.CategoryEncumbrance, NewNoEncumbrance()},
		{rules.CategoryEncumbrance, NewBasicEncumbrance()},
		{rules.CategoryEncumbrance, NewDetailedEncumbrance()},
		{rules.CategoryCharacterActions, NewCharacterActions()},
	}
	for _, m := range SavingThrowModules() {
		registrations = append(registrations, struct {
			category rules.Category
			module   rules.Module
		}{rules.CategorySavingThrows, m})
	}

	for _, reg := range registrations {
		if err := r.Register(reg.category, reg.module); err != nil {
			return err
		}
	}
	return nil
}
