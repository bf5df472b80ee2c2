package actions_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

func wandOfHolding(gen uuid.Generator) *actions.Action {
	a := actions.New(gen, "Hold Person")
	a.Flags.UsesAttempt = true
	a.Flags.UsesConsumption = true
	a.Level = &actions.LevelGate{Min: 5, Max: 10}
	a.Uses = actions.Uses{Value: 3, Max: 3, RechargesOn: actions.RechargeDawn}
	a.Consumption = &actions.ItemUses{Amount: 1, ItemRef: "Actor.a1.Item.wand"}
	a.Attempt.Flags.IsLikeAttack = true
	a.Attempt.Attack.Type = actions.AttackMissile

	hold := actions.NewEffect(gen, "Held", &actions.Status{Condition: effects.BuildHeldCondition(9)})
	hold.Flags.CanBeResisted = true
	hold.Flags.IsMagical = true
	hold.Resistance = &actions.Resistance{Check: &actions.SavingThrow{Save: "paralysis"}, Modifier: -2}
	a.AddEffect(hold)

	a.AddEffect(actions.NewEffect(gen, "Sting", &actions.Damage{Formula: "1d4"}))
	return a
}

func TestAction_JSONRoundTrip(t *testing.T) {
	original := wandOfHolding(&uuid.Sequence{Prefix: "id"})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	consumption := raw["consumption"].(map[string]any)
	assert.Equal(t, "item-uses", consumption["type"])
	effectsRaw := raw["effects"].([]any)
	assert.Equal(t, "status-effect", effectsRaw[0].(map[string]any)["type"])

	var decoded actions.Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, &decoded)
}

func TestAction_UnmarshalUnknownVariant(t *testing.T) {
	var a actions.Action
	err := json.Unmarshal([]byte(`{"id":"x","consumption":{"type":"gold","data":{"amount":1}}}`), &a)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":"x","effects":[{"id":"e","type":"teleport"}]}`), &a)
	assert.Error(t, err)
}

func TestAction_UnmarshalMissingEffectType(t *testing.T) {
	var a actions.Action
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","effects":[{"id":"e","name":"Flavour"}]}`), &a))
	require.Len(t, a.Effects, 1)
	assert.Equal(t, actions.EffectNone, a.Effects[0].Type())
}

func TestNew_AssignsIDs(t *testing.T) {
	gen := &uuid.Sequence{Prefix: "act"}
	a := actions.New(gen, "Search")
	e := actions.NewEffect(gen, "Found", &actions.NoEffect{})

	assert.Equal(t, "act-1", a.ID)
	assert.Equal(t, "act-2", e.ID)
	assert.Empty(t, a.Effects)
}

func TestLevelGate_Allows(t *testing.T) {
	gate := &actions.LevelGate{Min: 5, Max: 10}
	tests := []struct {
		level    int
		expected bool
	}{
		{4, false},
		{5, true},
		{10, true},
		{11, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, gate.Allows(tt.level), "level %d", tt.level)
	}

	assert.True(t, (*actions.LevelGate)(nil).Allows(1))
	assert.True(t, (&actions.LevelGate{Min: 3}).Allows(20))
	assert.True(t, (&actions.LevelGate{Max: 3}).Allows(1))
}

func TestRecharge(t *testing.T) {
	a := &actions.Action{ID: "a", Uses: actions.Uses{Value: 1, Max: 3, RechargesOn: actions.RechargeDawn}}

	assert.False(t, actions.Recharge(a, actions.RechargeDusk))
	assert.Equal(t, 1, a.Uses.Value)

	assert.True(t, actions.Recharge(a, actions.RechargeDawn))
	assert.Equal(t, 3, a.Uses.Value)

	assert.False(t, actions.Recharge(a, actions.RechargeDawn), "already full")
	assert.False(t, actions.Recharge(&actions.Action{}, actions.RechargeDawn), "unlimited uses")
}

func TestAction_Validate(t *testing.T) {
	target := 12

	tests := []struct {
		name    string
		mutate  func(a *actions.Action)
		wantErr bool
	}{
		{"valid", func(a *actions.Action) {}, false},
		{"missing id", func(a *actions.Action) { a.ID = "" }, true},
		{"negative range", func(a *actions.Action) { a.Range.Long = -1 }, true},
		{"inverted level gate", func(a *actions.Action) { a.Level = &actions.LevelGate{Min: 8, Max: 3} }, true},
		{"too many uses", func(a *actions.Action) { a.Uses.Value = 4 }, true},
		{"unknown cadence", func(a *actions.Action) { a.Uses.RechargesOn = "solstice" }, true},
		{"consumption without declaration", func(a *actions.Action) { a.Consumption = nil }, true},
		{"item consumption without ref", func(a *actions.Action) { a.Consumption = &actions.ItemQuantity{Amount: 1} }, true},
		{"spell slot out of range", func(a *actions.Action) { a.Consumption = &actions.SpellSlot{Level: 10} }, true},
		{"unknown attack type", func(a *actions.Action) { a.Attempt.Attack.Type = "psychic" }, true},
		{"custom roll without formula", func(a *actions.Action) { a.Attempt.Flags.IsLikeAttack = false }, true},
		{"custom roll complete", func(a *actions.Action) {
			a.Attempt.Flags.IsLikeAttack = false
			a.Attempt.Roll = actions.RollSpec{Formula: "1d20", Operator: dice.GreaterOrEqual, Target: &target}
		}, false},
		{"custom roll against target key", func(a *actions.Action) {
			a.Attempt.Flags.IsLikeAttack = false
			a.Attempt.Roll = actions.RollSpec{Formula: "1d20", Operator: dice.Greater, TargetKey: "aac"}
		}, false},
		{"damage without formula", func(a *actions.Action) { a.Effects[1].Kind = &actions.Damage{} }, true},
		{"status without condition", func(a *actions.Action) { a.Effects[0].Kind = &actions.Status{} }, true},
		{"resistible without resistance", func(a *actions.Action) { a.Effects[0].Resistance = nil }, true},
		{"static resistance bad operator", func(a *actions.Action) {
			a.Effects[0].Resistance.Check = &actions.StaticRoll{Formula: "1d6", Operator: "~"}
		}, true},
		{"duplicate effect ids", func(a *actions.Action) { a.Effects[1].ID = a.Effects[0].ID }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := wandOfHolding(&uuid.Sequence{Prefix: "id"})
			tt.mutate(a)

			err := a.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dnderr.IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConsumption_Cost(t *testing.T) {
	assert.Equal(t, 1, (&actions.HitPoints{}).Cost())
	assert.Equal(t, 3, (&actions.ActionUses{Amount: 3}).Cost())
	assert.True(t, actions.NeedsOriginItem(&actions.SelfQuantity{}))
	assert.False(t, actions.NeedsOriginItem(&actions.ItemQuantity{ItemRef: "x"}))
}
