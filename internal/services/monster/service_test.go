package monster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mocksrd "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd/mock"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/monster"
	mockmonster "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/monster/mock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	client  *mocksrd.MockClient
	actors  *mockmonster.MockActorSaver
	service monster.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.client = mocksrd.NewMockClient(s.ctrl)
	s.actors = mockmonster.NewMockActorSaver(s.ctrl)
	s.service = monster.NewService(&monster.ServiceConfig{
		SRDClient: s.client,
		Actors:    s.actors,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func monsterDoc(key string) *actor.Actor {
	return &actor.Actor{ID: key, Name: key, Kind: actor.KindMonster, Level: 1}
}

func (s *ServiceTestSuite) TestGetMonsterCaches() {
	s.client.EXPECT().GetMonster("goblin").Return(monsterDoc("goblin"), nil).Times(1)

	first, err := s.service.GetMonster(s.ctx, "goblin")
	s.Require().NoError(err)
	second, err := s.service.GetMonster(s.ctx, "goblin")
	s.Require().NoError(err)

	s.Same(first, second)
}

func (s *ServiceTestSuite) TestGetMonsterErrors() {
	_, err := s.service.GetMonster(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))

	s.client.EXPECT().GetMonster("tarrasque").Return(nil, dnderr.NotFound("monster tarrasque not found"))
	_, err = s.service.GetMonster(s.ctx, "tarrasque")
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestGetMonstersByCR() {
	s.client.EXPECT().ListMonsterKeysByCR(0.25).Return([]string{"goblin", "skeleton"}, nil)
	s.client.EXPECT().ListMonsterKeysByCR(0.5).Return([]string{"orc"}, nil)
	for _, key := range []string{"goblin", "skeleton", "orc"} {
		s.client.EXPECT().GetMonster(key).Return(monsterDoc(key), nil)
	}

	monsters, err := s.service.GetMonstersByCR(s.ctx, 0.2, 0.5)
	s.Require().NoError(err)
	s.Require().Len(monsters, 3)
	s.Equal("goblin", monsters[0].ID)
	s.Equal("skeleton", monsters[1].ID)
	s.Equal("orc", monsters[2].ID)
}

func (s *ServiceTestSuite) TestGetMonstersByCRErrors() {
	_, err := s.service.GetMonstersByCR(s.ctx, 2, 1)
	s.True(dnderr.IsInvalidArgument(err))

	s.client.EXPECT().ListMonsterKeysByCR(float64(1)).Return(nil, errors.New("api down"))
	_, err = s.service.GetMonstersByCR(s.ctx, 1, 1)
	s.Require().Error(err)
	s.Contains(err.Error(), "api down")
}

func (s *ServiceTestSuite) TestGetRandomMonsters() {
	s.client.EXPECT().ListMonsterKeysByCR(0.25).Return([]string{"goblin"}, nil)
	s.client.EXPECT().ListMonsterKeysByCR(gomock.Any()).Return(nil, nil).AnyTimes()
	s.client.EXPECT().GetMonster("goblin").Return(monsterDoc("goblin"), nil)

	monsters, err := s.service.GetRandomMonsters(s.ctx, "Easy", 3)
	s.Require().NoError(err)
	s.Require().Len(monsters, 3)
	for _, m := range monsters {
		s.Equal("goblin", m.ID)
	}

	_, err = s.service.GetRandomMonsters(s.ctx, "impossible", 1)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetRandomMonstersNoneFound() {
	s.client.EXPECT().ListMonsterKeysByCR(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.service.GetRandomMonsters(s.ctx, "deadly", 2)
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestImportMonster() {
	s.client.EXPECT().GetMonster("goblin").Return(monsterDoc("goblin"), nil)
	s.actors.EXPECT().SaveActor(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *actor.Actor) error {
		s.Equal("goblin-2", a.ID)
		s.Equal(actor.KindMonster, a.Kind)
		return nil
	})

	doc, err := s.service.ImportMonster(s.ctx, "goblin", "goblin-2")
	s.Require().NoError(err)
	s.Equal("goblin-2", doc.ID)

	cached, err := s.service.GetMonster(s.ctx, "goblin")
	s.Require().NoError(err)
	s.Equal("goblin", cached.ID)
}

func (s *ServiceTestSuite) TestImportMonsterDefaultsID() {
	s.client.EXPECT().GetMonster("orc").Return(monsterDoc("orc"), nil)
	s.actors.EXPECT().SaveActor(s.ctx, gomock.Any()).Return(nil)

	doc, err := s.service.ImportMonster(s.ctx, "orc", "")
	s.Require().NoError(err)
	s.Equal("orc", doc.ID)
}

func (s *ServiceTestSuite) TestImportMonsterSaveFails() {
	s.client.EXPECT().GetMonster("orc").Return(monsterDoc("orc"), nil)
	s.actors.EXPECT().SaveActor(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.ImportMonster(s.ctx, "orc", "")
	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
}

func TestImportWithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := monster.NewService(&monster.ServiceConfig{SRDClient: mocksrd.NewMockClient(ctrl)})

	_, err := svc.ImportMonster(context.Background(), "goblin", "")
	if err == nil {
		t.Fatal("expected an error without an actor store")
	}
}
