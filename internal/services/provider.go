package services

import (
	"context"
	"log"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/chat"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/documents"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/settings"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules/classic"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
	actionService "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action"
	conditionService "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/condition"
	monsterService "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/monster"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Documents      *documents.Repository
	Settings       settings.Repository
	Registry       *rules.Registry
	Evaluator      *dice.Evaluator
	References     *references.Resolver
	Bus              *events.Bus
	ActionService    actionService.Service
	ConditionService conditionService.Service
	MonsterService   monsterService.Service // nil without an SRD client
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DocumentStore      documents.Store
	SettingsRepository settings.Repository
	SRDClient          srd.Client
	Roller             dice.Roller
	Sink               *chat.Sink

	// Selections are rule module ids by category name, written only to
	// categories with no stored selection
	Selections map[string]string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	store := cfg.DocumentStore
	if store == nil {
		store = documents.NewMemory()
	}

	settingsRepo := cfg.SettingsRepository
	if settingsRepo == nil {
		settingsRepo = settings.NewInMemory()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	registry := rules.NewRegistry(settingsRepo)
	if err := rules.Bootstrap(registry, &classic.Pack{}); err != nil {
		return nil, err
	}
	if err := applySelections(ctx, registry, settingsRepo, cfg.Selections); err != nil {
		return nil, err
	}

	repo := documents.NewRepository(store)
	evaluator := dice.NewEvaluator(roller)
	refs := references.NewResolver(repo)
	bus := events.NewBus()
	runner := scripting.NewRunner(scripting.NewEngine(evaluator), refs)

	svcCfg := &actionService.ServiceConfig{
		Actors:     repo,
		Registry:   registry,
		Evaluator:  evaluator,
		References: refs,
		Macros:     runner,
		Scripts:    runner,
		Tables:     rolltables.NewDrawer(evaluator, refs),
		Bus:        bus,
		IDs:        uuid.NewGoogleUUIDGenerator(),
	}
	// Typed nils must not reach the interface fields
	if cfg.Sink != nil {
		svcCfg.Sink = cfg.Sink
		svcCfg.Notifier = cfg.Sink
	}

	p := &Provider{
		Documents:     repo,
		Settings:      settingsRepo,
		Registry:      registry,
		Evaluator:     evaluator,
		References:    refs,
		Bus:           bus,
		ActionService: actionService.NewService(svcCfg),
	}
	p.ConditionService = conditionService.NewService(&conditionService.ServiceConfig{
		Actors:   repo,
		Registry: registry,
	})

	if cfg.SRDClient != nil {
		p.MonsterService = monsterService.NewService(&monsterService.ServiceConfig{
			SRDClient: cfg.SRDClient,
			Actors:    repo,
		})
	}

	return p, nil
}

// applySelections stores configured module choices for categories that
// have none yet
func applySelections(ctx context.Context, registry *rules.Registry, repo settings.Repository, selections map[string]string) error {
	if len(selections) == 0 {
		return nil
	}

	current, err := repo.Selections(ctx)
	if err != nil {
		return dnderr.Wrap(err, "failed to read rule selections")
	}

	for name, id := range selections {
		category := rules.Category(name)
		if !category.Valid() {
			return dnderr.Configurationf("unknown rule category %q", name)
		}
		if _, ok := registry.Get(category, id); !ok {
			return dnderr.Configurationf("no %s module %q is registered", category, id)
		}
		if current[category] != "" {
			continue
		}
		if err := repo.SetSelected(ctx, category, id); err != nil {
			return dnderr.Wrapf(err, "failed to select %s module %q", category, id)
		}
		log.Printf("Provider: selected %s module %s", category, id)
	}
	return nil
}
