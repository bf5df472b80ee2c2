package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules/classic"
)

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemory()

	id, err := repo.SelectedModuleID(ctx, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, repo.SetSelected(ctx, rules.CategoryCombat, "ascending"))
	assert.Error(t, repo.SetSelected(ctx, rules.CategoryCombat, ""))

	id, err = repo.SelectedModuleID(ctx, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "ascending", id)

	all, err := repo.Selections(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[rules.Category]string{rules.CategoryCombat: "ascending"}, all)

	require.NoError(t, repo.ClearSelected(ctx, rules.CategoryCombat))
	id, err = repo.SelectedModuleID(ctx, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestInMemoryDrivesRegistry(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemory()
	registry := rules.NewRegistry(repo)
	require.NoError(t, rules.Bootstrap(registry, &classic.Pack{THAC0: 19}))

	combat, err := rules.Resolve[rules.CombatModule](ctx, registry, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "ascending-ac", combat.ID())

	require.NoError(t, repo.SetSelected(ctx, rules.CategoryCombat, "descending-ac"))
	combat, err = rules.Resolve[rules.CombatModule](ctx, registry, rules.CategoryCombat)
	require.NoError(t, err)
	assert.Equal(t, "descending-ac", combat.ID())
}

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.client)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSelectedModuleID() {
	s.mock.ExpectHGet(selectionsKey, "combat").SetVal("descending")
	id, err := s.repo.SelectedModuleID(s.ctx, rules.CategoryCombat)
	s.Require().NoError(err)
	s.Equal("descending", id)

	s.mock.ExpectHGet(selectionsKey, "saving-throws").RedisNil()
	id, err = s.repo.SelectedModuleID(s.ctx, rules.CategorySavingThrows)
	s.Require().NoError(err)
	s.Empty(id)

	s.mock.ExpectHGet(selectionsKey, "combat").SetErr(errors.New("redis error"))
	_, err = s.repo.SelectedModuleID(s.ctx, rules.CategoryCombat)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestSetAndClear() {
	s.mock.ExpectHSet(selectionsKey, "combat", "ascending").SetVal(1)
	s.NoError(s.repo.SetSelected(s.ctx, rules.CategoryCombat, "ascending"))

	s.Error(s.repo.SetSelected(s.ctx, rules.CategoryCombat, ""))

	s.mock.ExpectHDel(selectionsKey, "combat").SetVal(1)
	s.NoError(s.repo.ClearSelected(s.ctx, rules.CategoryCombat))
}

func (s *RedisRepoTestSuite) TestSelections() {
	s.mock.ExpectHGetAll(selectionsKey).SetVal(map[string]string{"combat": "ascending", "saving-throws": "classic"})
	all, err := s.repo.Selections(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[rules.Category]string{
		rules.CategoryCombat:       "ascending",
		rules.CategorySavingThrows: "classic",
	}, all)
}
