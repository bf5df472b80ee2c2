package saves_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/saves"
)

type ResolverTestSuite struct {
	suite.Suite
	roller   *mockdice.ManualMockRoller
	resolver *saves.Resolver
	ctx      context.Context
	cleric   *actor.Actor
}

func (s *ResolverTestSuite) SetupTest() {
	s.roller = mockdice.NewManualMockRoller()
	s.resolver = saves.NewResolver(dice.NewEvaluator(s.roller))
	s.Require().NoError(saves.RegisterBuiltins(s.resolver))
	s.ctx = context.Background()
	s.cleric = &actor.Actor{
		ID:        "cleric",
		Level:     6,
		Abilities: map[string]int{actor.Wisdom: 16, actor.Constitution: 9, actor.Strength: 12},
		Class: &actor.Class{
			Key: "cleric",
			Saves: map[int]map[string]int{
				1: {saves.Death: 11, saves.Spell: 15},
				5: {saves.Death: 9, saves.Spell: 12},
			},
		},
	}
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestMappingRoundTrip() {
	for _, id := range s.resolver.Systems() {
		sys, ok := s.resolver.System(id)
		s.Require().True(ok)

		for _, canonical := range saves.Canonical {
			names, err := s.resolver.GetSystemEquivalents(id, canonical)
			s.Require().NoError(err)

			expected := []string{}
			for _, name := range sys.Saves {
				for _, c := range sys.Mappings[name] {
					if c == canonical {
						expected = append(expected, name)
					}
				}
			}
			s.Equal(expected, names, "system %s canonical %s", id, canonical)

			for _, name := range names {
				back, err := s.resolver.GetCanonicalEquivalents(id, name)
				s.Require().NoError(err)
				s.Contains(back, canonical)
			}
		}
	}
}

func (s *ResolverTestSuite) TestRegisterSystem_Validation() {
	err := s.resolver.RegisterSystem("broken", saves.System{
		Saves:    []string{"reflex"},
		Mappings: map[string]saves.Names{"fortitude": {saves.Death}},
	})
	s.True(dnderr.IsConfiguration(err), "undeclared mapping key")

	err = s.resolver.RegisterSystem("broken", saves.System{
		Saves:    []string{"reflex"},
		Mappings: map[string]saves.Names{"reflex": {"dodge"}},
	})
	s.True(dnderr.IsConfiguration(err), "non-canonical value")

	err = s.resolver.RegisterSystem("broken", saves.System{})
	s.True(dnderr.IsConfiguration(err), "no saves")

	err = s.resolver.RegisterSystem("", saves.ClassicSystem())
	s.True(dnderr.IsConfiguration(err), "no id")

	_, ok := s.resolver.System("broken")
	s.False(ok)
}

func (s *ResolverTestSuite) TestRegisterSystem_AppliesDefaults() {
	s.Require().NoError(s.resolver.RegisterSystem("house", saves.System{
		DisplayName: "House",
		Saves:       []string{"reflex"},
		Mappings:    map[string]saves.Names{"reflex": {saves.Breath, saves.Wands}},
	}))

	sys, ok := s.resolver.System("house")
	s.Require().True(ok)
	s.Equal("1d20", sys.RollFormula)
	s.Equal(dice.GreaterOrEqual, sys.Operator)

	names, err := s.resolver.GetSystemEquivalents("house", saves.Wands)
	s.Require().NoError(err)
	s.Equal([]string{"reflex"}, names)
}

func (s *ResolverTestSuite) TestUnknownSystemOrSave() {
	_, err := s.resolver.RollSave(s.ctx, s.cleric, "d20-modern", saves.Death, nil)
	s.True(dnderr.IsConfiguration(err))

	_, err = s.resolver.RollSave(s.ctx, s.cleric, saves.SystemClassic, "fortitude", nil)
	s.True(dnderr.IsConfiguration(err))

	_, err = s.resolver.GetCanonicalEquivalents("d20-modern", "x")
	s.True(dnderr.IsConfiguration(err))
	s.Equal(0, s.roller.Remaining(), "nothing rolled")
}

func (s *ResolverTestSuite) TestClassicResolution() {
	s.Run("meets the class table target", func() {
		s.roller.SetNextRoll(12)
		result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemClassic, saves.Spell, nil)
		s.Require().NoError(err)
		s.True(result.Success)
		s.Equal(12, result.Target)
		s.Equal(saves.Spell, result.Save)
		s.Equal(saves.SystemClassic, result.System)
		s.Require().Len(result.Rolls, 1)
		s.Equal(12, result.Rolls[0].Total)
	})

	s.Run("situational modifier", func() {
		s.roller.SetNextRoll(7)
		result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemClassic, saves.Death, &saves.RollOptions{Modifier: 2})
		s.Require().NoError(err)
		s.True(result.Success)
		s.Equal(9, result.Rolls[0].Total)
	})

	s.Run("fails below target", func() {
		s.roller.SetNextRoll(8)
		result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemClassic, saves.Death, nil)
		s.Require().NoError(err)
		s.False(result.Success)
	})

	s.Run("missing table entry", func() {
		_, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemClassic, saves.Breath, nil)
		s.True(dnderr.IsValidation(err))
	})
}

func (s *ResolverTestSuite) TestAbilityRollUnder() {
	s.roller.SetNextRoll(16)
	result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemAbilityRollUnder, actor.Wisdom, nil)
	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal(16, result.Target)
	s.Len(result.Rolls, 1)

	s.roller.SetNextRoll(17)
	result, err = s.resolver.RollSave(s.ctx, s.cleric, saves.SystemAbilityRollUnder, actor.Wisdom, nil)
	s.Require().NoError(err)
	s.False(result.Success)
}

func (s *ResolverTestSuite) TestAbilityRollUnderTwice() {
	s.Run("both rolls must pass", func() {
		s.roller.SetRolls([]int{3, 15})
		result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemAbilityRollUnderTwice, actor.Strength, nil)
		s.Require().NoError(err)
		s.False(result.Success)
		s.Len(result.Rolls, 2)
		s.True(result.Rolls[0].Succeeded())
		s.False(result.Rolls[1].Succeeded())
	})

	s.Run("two passes succeed", func() {
		s.roller.SetRolls([]int{3, 12})
		result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemAbilityRollUnderTwice, actor.Strength, nil)
		s.Require().NoError(err)
		s.True(result.Success)
	})
}

func (s *ResolverTestSuite) TestLevelAbilityTarget() {
	// level 6, wisdom 16 (+2): 17 - 3 - 2
	s.roller.SetNextRoll(12)
	result, err := s.resolver.RollSave(s.ctx, s.cleric, saves.SystemLevelAbilityTarget, "spell", nil)
	s.Require().NoError(err)
	s.Equal(12, result.Target)
	s.True(result.Success)

	// constitution 9 (0): 17 - 3
	s.roller.SetNextRoll(13)
	result, err = s.resolver.RollSave(s.ctx, s.cleric, saves.SystemLevelAbilityTarget, "poison", nil)
	s.Require().NoError(err)
	s.Equal(14, result.Target)
	s.False(result.Success)
}

func (s *ResolverTestSuite) TestCustomSystem() {
	called := false
	s.Require().NoError(s.resolver.RegisterSystem("luck", saves.System{
		Saves:    []string{"luck"},
		Mappings: map[string]saves.Names{"luck": {saves.Death, saves.Spell}},
		Resolve: func(_ context.Context, req *saves.Request) (*saves.Result, error) {
			called = true
			return &saves.Result{Success: true, Target: req.Actor.Level}, nil
		},
	}))

	result, err := s.resolver.RollSave(s.ctx, s.cleric, "luck", "luck", nil)
	s.Require().NoError(err)
	s.True(called)
	s.True(result.Success)
	s.Equal("luck", result.Save)
}

func TestLevelAbilityTargetFormula(t *testing.T) {
	assert.Equal(t, 17, saves.LevelAbilityTarget(1, 0))
	assert.Equal(t, 15, saves.LevelAbilityTarget(5, 0))
	assert.Equal(t, 13, saves.LevelAbilityTarget(5, 2))
	assert.Equal(t, 18, saves.LevelAbilityTarget(0, -1))
}

func TestNames_UnmarshalJSON(t *testing.T) {
	var sys saves.System
	require.NoError(t, json.Unmarshal([]byte(`{
		"displayName": "Mixed",
		"saves": ["reflex", "will"],
		"mappings": {"reflex": "breath", "will": ["spell", "wands"]}
	}`), &sys))

	assert.Equal(t, saves.Names{"breath"}, sys.Mappings["reflex"])
	assert.Equal(t, saves.Names{"spell", "wands"}, sys.Mappings["will"])

	var bad saves.Names
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}
