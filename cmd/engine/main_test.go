package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/testutils"
)

func writeSeed(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(seedFile{
		Actors: []*actor.Actor{
			testutils.CreateTestCharacter("hero", "Brenna"),
			testutils.CreateTestMonster("goblin", 7, 12),
		},
		Macros: []*scripting.Macro{testutils.CreateTestMacro("echo")},
		Tables: []*rolltables.Table{testutils.CreateTestTable("omens")},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newProvider(t *testing.T, rolls ...int) *services.Provider {
	t.Helper()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)

	p, err := services.NewProvider(context.Background(), &services.ProviderConfig{Roller: roller})
	require.NoError(t, err)
	require.NoError(t, loadSeed(context.Background(), p.Documents, writeSeed(t)))
	return p
}

func TestLoadSeed(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	ids, err := p.Documents.ListActorIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hero", "goblin"}, ids)

	table, err := p.Documents.GetTable(ctx, "omens")
	require.NoError(t, err)
	assert.Len(t, table.Entries, 3)

	assert.Error(t, loadSeed(ctx, p.Documents, filepath.Join(t.TempDir(), "missing.json")))
}

func TestRunUse(t *testing.T) {
	p := newProvider(t, 17, 2)

	out, err := run(context.Background(), p, "use", []string{"-actor", "hero", "-action", "hero.sword", "-targets", "goblin, "})
	require.NoError(t, err)

	result, ok := out.(*resolver.Result)
	require.True(t, ok)
	assert.True(t, result.PerTarget["goblin"])
	require.Len(t, result.EffectsApplied, 1)
	assert.Equal(t, 3, result.EffectsApplied[0].Amount)
}

func TestRunActionsAndRounds(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	out, err := run(ctx, p, "actions", []string{"-actor", "hero"})
	require.NoError(t, err)
	available, ok := out.([]*action.AvailableAction)
	require.True(t, ok)
	require.Len(t, available, 1)
	assert.True(t, available[0].Available)

	_, err = run(ctx, p, "recharge", []string{"-actor", "hero"})
	assert.Error(t, err)

	out, err = run(ctx, p, "recharge", []string{"-actor", "hero", "-cadence", "rest"})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(ctx, p, "end-round", []string{"-actor", "goblin"})
	require.NoError(t, err)
	round, ok := out.(*action.RoundResult)
	require.True(t, ok)
	assert.Equal(t, 0, round.Conditions)
}

func TestRunConditions(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	held := effects.Instantiate("held-1", effects.BuildHeldCondition(3), effects.Origin{ActionID: "hero.hold"}, time.Now())
	_, err := p.Documents.UpdateDocument(ctx, "Actor.goblin", actor.NewPatch().AddCondition(held))
	require.NoError(t, err)

	out, err := run(ctx, p, "conditions", []string{"-actor", "goblin"})
	require.NoError(t, err)
	active, ok := out.([]*effects.Condition)
	require.True(t, ok)
	require.Len(t, active, 1)
	assert.Equal(t, "Held", active[0].Name)

	_, err = run(ctx, p, "dispel", []string{"-actor", "goblin"})
	assert.Error(t, err)

	out, err = run(ctx, p, "dispel", []string{"-actor", "goblin", "-action", "hero.hold"})
	require.NoError(t, err)
	assert.Equal(t, []string{"held-1"}, out)

	_, err = run(ctx, p, "dispel", []string{"-actor", "goblin", "-condition", "held-1"})
	assert.Error(t, err)
}

func TestRunRules(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	out, err := run(ctx, p, "select", []string{"-category", "combat", "-module", "descending-ac"})
	require.NoError(t, err)

	listings, ok := out.([]ruleListing)
	require.True(t, ok)
	for _, l := range listings {
		if l.Category == "combat" {
			assert.Equal(t, "descending-ac", l.Selected)
			assert.Contains(t, l.Modules, "ascending-ac")
		}
	}

	_, err = run(ctx, p, "select", []string{"-category", "weather", "-module", "rain"})
	assert.Error(t, err)
	_, err = run(ctx, p, "select", []string{"-category", "combat", "-module", "hex"})
	assert.Error(t, err)
	_, err = run(ctx, p, "dance", nil)
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", dnderr.InvalidArgument("actor is required"), exitRejected},
		{"validation", dnderr.Validation("no uses remaining"), exitRejected},
		{"not found", dnderr.Wrap(dnderr.NotFound("actor missing"), "use failed"), exitNotFound},
		{"configuration", dnderr.Configurationf("no %s module", "combat"), exitConfig},
		{"internal", dnderr.Internal("store offline"), exitInternal},
		{"evaluation", dnderr.Evaluationf("bad formula"), exitFailure},
		{"plain", assert.AnError, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestFailureDetail(t *testing.T) {
	err := dnderr.Validationf("%s has no uses remaining", "Smite").WithAction("smite").WithActor("hero")
	assert.Equal(t, " [validation action_id=smite actor_id=hero]", failureDetail(err))
	assert.Equal(t, " [unknown]", failureDetail(assert.AnError))
}
