package monster

//go:generate mockgen -destination=mock/mock_service.go -package=mockmonster -source=service.go

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Service defines the monster service interface
type Service interface {
	// GetMonster fetches a specific SRD monster by key
	GetMonster(ctx context.Context, key string) (*actor.Actor, error)

	// GetMonstersByCR returns monsters within a CR range
	GetMonstersByCR(ctx context.Context, minCR, maxCR float64) ([]*actor.Actor, error)

	// GetRandomMonsters returns random monsters for a given difficulty
	GetRandomMonsters(ctx context.Context, difficulty string, count int) ([]*actor.Actor, error)

	// ImportMonster stores an SRD monster as an actor document. The document
	// id defaults to the monster key.
	ImportMonster(ctx context.Context, key, id string) (*actor.Actor, error)
}

// ActorSaver stores imported monsters
type ActorSaver interface {
	SaveActor(ctx context.Context, a *actor.Actor) error
}

// challengeRatings are the CR values the SRD API filters on
var challengeRatings = []float64{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

type service struct {
	srdClient srd.Client
	actors    ActorSaver

	mu           sync.RWMutex
	monsterCache map[string]*actor.Actor
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	SRDClient srd.Client // Required
	Actors    ActorSaver // Required for ImportMonster
}

// NewService creates a new monster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.SRDClient == nil {
		panic("SRD client is required")
	}

	return &service{
		srdClient:    cfg.SRDClient,
		actors:       cfg.Actors,
		monsterCache: make(map[string]*actor.Actor),
	}
}

// GetMonster fetches a specific monster by key
func (s *service) GetMonster(ctx context.Context, key string) (*actor.Actor, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("monster key is required")
	}

	s.mu.RLock()
	cached, ok := s.monsterCache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	monster, err := s.srdClient.GetMonster(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get monster '%s'", key)
	}

	s.mu.Lock()
	s.monsterCache[key] = monster
	s.mu.Unlock()

	return monster, nil
}

// GetMonstersByCR returns monsters within a CR range
func (s *service) GetMonstersByCR(ctx context.Context, minCR, maxCR float64) ([]*actor.Actor, error) {
	if minCR > maxCR {
		return nil, dnderr.InvalidArgumentf("min CR %v is above max CR %v", minCR, maxCR)
	}

	var keys []string
	for _, cr := range challengeRatings {
		if cr < minCR || cr > maxCR {
			continue
		}
		found, err := s.srdClient.ListMonsterKeysByCR(cr)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to list monsters at CR %v", cr)
		}
		keys = append(keys, found...)
	}

	monsters := make([]*actor.Actor, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, key := range keys {
		g.Go(func() error {
			m, err := s.GetMonster(ctx, key)
			if err != nil {
				return err
			}
			monsters[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return monsters, nil
}

// GetRandomMonsters returns random monsters for a given difficulty
func (s *service) GetRandomMonsters(ctx context.Context, difficulty string, count int) ([]*actor.Actor, error) {
	var minCR, maxCR float64

	switch strings.ToLower(difficulty) {
	case "easy":
		minCR, maxCR = 0, 0.5
	case "medium":
		minCR, maxCR = 0.25, 1
	case "hard":
		minCR, maxCR = 0.5, 2
	case "deadly":
		minCR, maxCR = 1, 3
	default:
		return nil, dnderr.InvalidArgument("difficulty must be easy, medium, hard, or deadly")
	}

	availableMonsters, err := s.GetMonstersByCR(ctx, minCR, maxCR)
	if err != nil {
		return nil, err
	}

	if len(availableMonsters) == 0 {
		return nil, dnderr.NotFound("no monsters found for difficulty")
	}

	result := make([]*actor.Actor, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, availableMonsters[rand.Intn(len(availableMonsters))])
	}

	return result, nil
}

// ImportMonster saves a copy of the monster under id
func (s *service) ImportMonster(ctx context.Context, key, id string) (*actor.Actor, error) {
	if s.actors == nil {
		return nil, dnderr.Internal("no actor store configured")
	}

	monster, err := s.GetMonster(ctx, key)
	if err != nil {
		return nil, err
	}

	doc := *monster
	if id != "" {
		doc.ID = id
	}

	if err := s.actors.SaveActor(ctx, &doc); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save monster '%s' as %s", key, doc.ID)
	}

	log.Printf("MonsterService: imported %s as %s with %d actions", key, doc.ID, len(doc.Actions))
	return &doc, nil
}
