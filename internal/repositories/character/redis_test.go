package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	mockclock "github.com/KirkDiggler/ryuutama-sheet/internal/pkg/clock/mock"
	"github.com/KirkDiggler/ryuutama-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
	"github.com/KirkDiggler/ryuutama-sheet/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redis.Client
	server    *miniredis.Miniredis
	cleanup   func()
	repo      characterrepo.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.client, s.server, s.cleanup = testutils.CreateTestRedisServer(s.T())
	s.now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
		Dir:    "/sheets",
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := characterrepo.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = characterrepo.NewRedis(&characterrepo.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	character := testutils.CreateTestCharacterAtStage(testutils.StageEquipped)
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: "/sheets/kaede.json", Character: character})
	s.Require().NoError(err)

	s.True(s.server.Exists("character:/sheets/kaede.json"))
	members, err := s.server.SMembers("character:dir:/sheets")
	s.Require().NoError(err)
	s.Equal([]string{"/sheets/kaede.json"}, members)

	loaded, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: "/sheets/kaede.json"})
	s.Require().NoError(err)
	s.Equal(character, loaded.Character)
}

func (s *RedisRepositoryTestSuite) TestLoadFailures() {
	s.Run("missing", func() {
		_, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: "/sheets/nobody.json"})
		s.True(errors.IsLoadFailed(err))
	})

	s.Run("corrupt", func() {
		s.server.HSet("character:/sheets/bad.json", "document", "{oops")
		_, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: "/sheets/bad.json"})
		s.True(errors.IsLoadFailed(err))
	})
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	for i, name := range []string{"alpha", "beta", "gamma"} {
		character := testutils.CreateTestCharacter()
		character.Name = name
		s.mockClock.EXPECT().Now().Return(s.now.Add(time.Duration(i) * time.Minute))
		_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: "/sheets/" + name + ".json", Character: character})
		s.Require().NoError(err)
	}
	s.server.SAdd("character:dir:/sheets", "/sheets/ghost.json")

	out, err := s.repo.List(s.ctx, characterrepo.ListInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Previews, 2)
	s.Equal("gamma", out.Previews[0].Name)
	s.Equal("beta", out.Previews[1].Name)
	s.True(out.Previews[0].LastModified.Equal(s.now.Add(2 * time.Minute)))

	out, err = s.repo.List(s.ctx, characterrepo.ListInput{Dir: "/elsewhere"})
	s.Require().NoError(err)
	s.Empty(out.Previews)
}

func (s *RedisRepositoryTestSuite) TestPreview() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: "/sheets/kaede.json", Character: testutils.CreateTestCharacter()})
	s.Require().NoError(err)

	out, err := s.repo.Preview(s.ctx, characterrepo.PreviewInput{Path: "/sheets/kaede.json"})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, out.Preview.Name)
	s.Equal("/sheets/kaede.json", out.Preview.Path)

	_, err = s.repo.Preview(s.ctx, characterrepo.PreviewInput{})
	s.True(errors.IsInvalidArgument(err))
}
