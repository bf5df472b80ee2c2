//go:build integration
// +build integration

package action_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/documents"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules/classic"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/testutils"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

func TestActionService_Redis_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	repo := documents.NewRepository(documents.NewRedis(testutils.CreateTestRedisClientOrSkip(t)))

	hero := testutils.CreateTestCharacter("hero", "Brenna")
	hero.Actions = append(hero.Actions, testutils.CreateTestHold("hold", 2))
	omen := &actions.Action{ID: "omen", Name: "Read the Omens", Effects: []*actions.Effect{}}
	omen.AddEffect(&actions.Effect{ID: "omen.draw", Kind: &actions.RollTable{Ref: "RollTable.omens"}})
	omen.AddEffect(&actions.Effect{ID: "omen.echo", Kind: &actions.Macro{Ref: "Macro.echo"}})
	hero.Actions = append(hero.Actions, omen)

	require.NoError(t, repo.SaveActor(ctx, hero))
	require.NoError(t, repo.SaveActor(ctx, testutils.CreateTestMonster("goblin", 7, 12)))
	require.NoError(t, repo.SaveTable(ctx, testutils.CreateTestTable("omens")))
	require.NoError(t, repo.SaveMacro(ctx, testutils.CreateTestMacro("echo")))

	roller := mockdice.NewManualMockRoller()
	eval := dice.NewEvaluator(roller)
	refs := references.NewResolver(repo)

	registry := rules.NewRegistry(nil)
	require.NoError(t, rules.Bootstrap(registry, &classic.Pack{}))

	svc := action.NewService(&action.ServiceConfig{
		Actors:     repo,
		Registry:   registry,
		Evaluator:  eval,
		References: refs,
		Macros:     scripting.NewRunner(scripting.NewEngine(eval), refs),
		Tables:     rolltables.NewDrawer(eval, refs),
		IDs:        &uuid.Sequence{Prefix: "cond"},
	})

	t.Run("attack hits and damages", func(t *testing.T) {
		roller.SetRolls([]int{15, 5})

		result, err := svc.UseAction(ctx, &action.UseActionInput{
			ActorID:   "hero",
			ActionID:  "hero.sword",
			TargetIDs: []string{"goblin"},
		})
		require.NoError(t, err)
		assert.True(t, result.PerTarget["goblin"])

		goblin, err := repo.GetActor(ctx, "goblin")
		require.NoError(t, err)
		assert.Equal(t, 1, goblin.HP.Value)
	})

	t.Run("hold lands and wears off", func(t *testing.T) {
		roller.SetRolls([]int{3})

		result, err := svc.UseAction(ctx, &action.UseActionInput{
			ActorID:   "hero",
			ActionID:  "hold",
			TargetIDs: []string{"goblin"},
		})
		require.NoError(t, err)
		require.Len(t, result.EffectsApplied, 1)
		assert.False(t, result.EffectsApplied[0].Resisted)

		goblin, err := repo.GetActor(ctx, "goblin")
		require.NoError(t, err)
		require.Len(t, goblin.Conditions, 1)
		assert.Equal(t, 2, goblin.Conditions[0].RemainingRounds)

		round, err := svc.EndRound(ctx, "goblin")
		require.NoError(t, err)
		assert.Equal(t, 1, round.Conditions)

		round, err = svc.EndRound(ctx, "goblin")
		require.NoError(t, err)
		assert.Len(t, round.Expired, 1)

		goblin, err = repo.GetActor(ctx, "goblin")
		require.NoError(t, err)
		assert.Empty(t, goblin.Conditions)
	})

	t.Run("omens draw a table and run a macro", func(t *testing.T) {
		roller.SetRolls([]int{4})

		result, err := svc.UseAction(ctx, &action.UseActionInput{
			ActorID:   "hero",
			ActionID:  "omen",
			TargetIDs: []string{"goblin"},
		})
		require.NoError(t, err)
		require.Len(t, result.EffectsApplied, 2)
		assert.Equal(t, "The wind dies", result.EffectsApplied[0].Output)
		assert.Equal(t, "omen.echo on goblin for 0", result.EffectsApplied[1].Output)
	})
}
