package classic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules/classic"
)

type defender struct{ ac, aac int }

func (d defender) Defense() (int, int) { return d.ac, d.aac }

type attacker struct{ thac0 int }

func (a attacker) THAC0() int { return a.thac0 }

func TestClassicAbilityScores_Modifier(t *testing.T) {
	table := classic.NewClassicAbilityScores()
	expected := map[int]int{
		3: -3, 4: -2, 5: -2, 6: -1, 8: -1, 9: 0, 12: 0,
		13: 1, 15: 1, 16: 2, 17: 2, 18: 3,
	}
	for score, mod := range expected {
		assert.Equal(t, mod, table.Modifier(score), "score %d", score)
	}
}

func TestModernAbilityScores_Modifier(t *testing.T) {
	table := classic.NewModernAbilityScores()
	expected := map[int]int{3: -4, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 18: 4}
	for score, mod := range expected {
		assert.Equal(t, mod, table.Modifier(score), "score %d", score)
	}
}

func TestAscendingAC(t *testing.T) {
	m := classic.NewAscendingAC()
	defense := m.DefenseOf(defender{ac: 5, aac: 14})
	assert.Equal(t, 14, defense)
	assert.Equal(t, 14, m.TargetNumber(attacker{}, defense))
}

func TestDescendingAC(t *testing.T) {
	t.Run("module THAC0", func(t *testing.T) {
		m := classic.NewDescendingAC(0)
		defense := m.DefenseOf(defender{ac: 5, aac: 14})
		assert.Equal(t, 5, defense)
		assert.Equal(t, 14, m.TargetNumber(attacker{}, defense))
	})

	t.Run("attacker THAC0 overrides", func(t *testing.T) {
		m := classic.NewDescendingAC(19)
		assert.Equal(t, 12, m.TargetNumber(attacker{thac0: 17}, 5))
	})

	t.Run("negative armour class", func(t *testing.T) {
		m := classic.NewDescendingAC(19)
		assert.Equal(t, 21, m.TargetNumber(nil, -2))
	})
}

func TestRollInitiative(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 2})
	eval := dice.NewEvaluator(roller)

	outcome, err := classic.RollInitiative(eval, classic.NewIndividualInitiative(), dice.Variables{"abilities.dex.mod": 1})
	require.NoError(t, err)
	assert.Equal(t, 5, outcome.Total)

	outcome, err = classic.RollInitiative(eval, classic.NewGroupInitiative(), dice.Variables{"abilities.dex.mod": 1})
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Total)
}

func TestMovementAndEncumbrance(t *testing.T) {
	rates := classic.NewClassicMovement().Rates(classic.BaseMovement)
	assert.Equal(t, 40, rates.Encounter)
	assert.Equal(t, 120, rates.Running)

	basic := classic.NewBasicEncumbrance()
	assert.Equal(t, 120, basic.MovementRate(120, rules.Load{ArmorWeight: classic.ArmorNone}))
	assert.Equal(t, 90, basic.MovementRate(120, rules.Load{ArmorWeight: classic.ArmorLight}))
	assert.Equal(t, 60, basic.MovementRate(120, rules.Load{ArmorWeight: classic.ArmorHeavy}))
	assert.Equal(t, 30, basic.MovementRate(120, rules.Load{ArmorWeight: classic.ArmorHeavy, HeavyGear: true}))

	detailed := classic.NewDetailedEncumbrance()
	tests := []struct {
		coins    int
		expected int
	}{
		{400, 120},
		{401, 90},
		{600, 90},
		{800, 60},
		{1600, 30},
		{1601, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, detailed.MovementRate(120, rules.Load{Coins: tt.coins}), "coins %d", tt.coins)
	}

	assert.Equal(t, 120, classic.NewNoEncumbrance().MovementRate(120, rules.Load{Coins: 5000}))
}

func TestCharacterActions_AreValid(t *testing.T) {
	acts := classic.NewCharacterActions().Actions()
	require.Len(t, acts, 4)
	for _, a := range acts {
		assert.NoError(t, a.Validate(), a.Name)
	}
	assert.True(t, acts[0].IsLikeAttack())
	assert.False(t, acts[2].IsLikeAttack())
}

func TestPack_RegistersDefaults(t *testing.T) {
	registry := rules.NewRegistry(nil)
	require.NoError(t, rules.Bootstrap(registry, &classic.Pack{}))
	ctx := context.Background()

	for _, category := range rules.Categories {
		m, ok := registry.Default(category)
		require.True(t, ok, "category %s has a default", category)
		assert.NotEmpty(t, m.ID())
	}

	combat, err := rules.Resolve[rules.CombatModule](ctx, registry, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "ascending-ac", combat.ID())

	saves, err := rules.Resolve[rules.SavingThrowModule](ctx, registry, rules.CategorySavingThrows)
	require.NoError(t, err)
	assert.Equal(t, "classic", saves.SystemID())
	assert.Len(t, registry.GetAll(rules.CategorySavingThrows), 4)
}
