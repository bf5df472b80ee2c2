package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mocksrd "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd/mock"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/settings"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/testutils"
)

func TestNewProvider_Defaults(t *testing.T) {
	ctx := context.Background()

	p, err := services.NewProvider(ctx, &services.ProviderConfig{})
	require.NoError(t, err)

	assert.NotNil(t, p.ActionService)
	assert.NotNil(t, p.ConditionService)
	assert.Nil(t, p.MonsterService)

	combat, err := rules.Resolve[rules.CombatModule](ctx, p.Registry, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "ascending-ac", combat.ID())
}

func TestNewProvider_AppliesSelectionsOnce(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewInMemory()
	require.NoError(t, repo.SetSelected(ctx, rules.CategoryInitiative, "individual"))

	p, err := services.NewProvider(ctx, &services.ProviderConfig{
		SettingsRepository: repo,
		Selections: map[string]string{
			"combat":     "descending-ac",
			"initiative": "group",
		},
	})
	require.NoError(t, err)

	combat, err := rules.Resolve[rules.CombatModule](ctx, p.Registry, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "descending-ac", combat.ID())

	selected, err := repo.SelectedModuleID(ctx, rules.CategoryInitiative)
	require.NoError(t, err)
	assert.Equal(t, "individual", selected)
}

func TestNewProvider_RejectsUnknownSelections(t *testing.T) {
	ctx := context.Background()

	_, err := services.NewProvider(ctx, &services.ProviderConfig{
		Selections: map[string]string{"weather": "rainy"},
	})
	assert.True(t, dnderr.IsConfiguration(err))

	_, err = services.NewProvider(ctx, &services.ProviderConfig{
		Selections: map[string]string{"combat": "hex-grid"},
	})
	assert.True(t, dnderr.IsConfiguration(err))
}

func TestNewProvider_WiresServices(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	roller := mockdice.NewManualMockRoller()

	p, err := services.NewProvider(ctx, &services.ProviderConfig{
		Roller:    roller,
		SRDClient: mocksrd.NewMockClient(ctrl),
	})
	require.NoError(t, err)
	require.NotNil(t, p.MonsterService)

	require.NoError(t, p.Documents.SaveActor(ctx, testutils.CreateTestCharacter("hero", "Brenna")))
	require.NoError(t, p.Documents.SaveActor(ctx, testutils.CreateTestMonster("goblin", 7, 12)))

	roller.SetRolls([]int{18, 6})
	result, err := p.ActionService.UseAction(ctx, &action.UseActionInput{
		ActorID:   "hero",
		ActionID:  "hero.sword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	goblin, err := p.Documents.GetActor(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, 0, goblin.HP.Value)
}
