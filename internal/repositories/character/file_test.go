package character_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
	"github.com/KirkDiggler/ryuutama-sheet/internal/testutils"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo characterrepo.Repository
	ctx  context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "RyuutamaCharacters")
	repo, err := characterrepo.NewFileStore(&characterrepo.FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) TestNewFileStoreValidation() {
	_, err := characterrepo.NewFileStore(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = characterrepo.NewFileStore(&characterrepo.FileConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveAndLoad() {
	character := testutils.CreateTestCharacterAtStage(testutils.StageTraveled)
	path := filepath.Join(s.dir, "kaede.json")

	out, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: path, Character: character})
	s.Require().NoError(err)
	s.Equal(path, out.Path)

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1, "no temp files left behind")
	s.Equal("kaede.json", entries[0].Name())

	loaded, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: path})
	s.Require().NoError(err)
	s.Equal(character, loaded.Character)
	s.Equal(path, loaded.Path)
}

func (s *FileRepositoryTestSuite) TestSaveOverwrites() {
	path := filepath.Join(s.dir, "kaede.json")
	character := testutils.CreateTestCharacter()

	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: path, Character: character})
	s.Require().NoError(err)

	character.Level = 4
	_, err = s.repo.Save(s.ctx, characterrepo.SaveInput{Path: path, Character: character})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: path})
	s.Require().NoError(err)
	s.Equal(4, loaded.Character.Level)
}

func (s *FileRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: filepath.Join(s.dir, "x.json")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, characterrepo.SaveInput{Character: testutils.CreateTestCharacter()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveFailure() {
	blocker := filepath.Join(s.T().TempDir(), "not-a-dir")
	s.Require().NoError(os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{
		Path:      filepath.Join(blocker, "kaede.json"),
		Character: testutils.CreateTestCharacter(),
	})
	s.True(errors.IsSaveFailed(err), "got %v", err)
}

func (s *FileRepositoryTestSuite) TestLoadFailures() {
	s.Run("missing file", func() {
		_, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: filepath.Join(s.dir, "missing.json")})
		s.True(errors.IsLoadFailed(err))
	})

	s.Run("corrupt file", func() {
		path := filepath.Join(s.T().TempDir(), "corrupt.json")
		s.Require().NoError(os.WriteFile(path, []byte(`{"name": `), 0o600))

		out, err := s.repo.Load(s.ctx, characterrepo.LoadInput{Path: path})
		s.Nil(out)
		s.True(errors.IsLoadFailed(err))
	})

	s.Run("empty path", func() {
		_, err := s.repo.Load(s.ctx, characterrepo.LoadInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *FileRepositoryTestSuite) TestList() {
	s.Run("creates the directory when absent", func() {
		out, err := s.repo.List(s.ctx, characterrepo.ListInput{})
		s.Require().NoError(err)
		s.Empty(out.Previews)

		info, err := os.Stat(s.dir)
		s.Require().NoError(err)
		s.True(info.IsDir())
	})

	s.Run("newest first with limit", func() {
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, name := range []string{"alpha", "beta", "gamma"} {
			character := testutils.CreateTestCharacter()
			character.Name = name
			character.Level = i + 1
			path := filepath.Join(s.dir, name+".json")
			_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: path, Character: character})
			s.Require().NoError(err)
			modified := base.Add(time.Duration(i) * time.Hour)
			s.Require().NoError(os.Chtimes(path, modified, modified))
		}
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "broken.json"), []byte("not json"), 0o600))
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("hello"), 0o600))

		out, err := s.repo.List(s.ctx, characterrepo.ListInput{})
		s.Require().NoError(err)
		s.Require().Len(out.Previews, 3)
		s.Equal("gamma", out.Previews[0].Name)
		s.Equal(3, out.Previews[0].Level)
		s.Equal("alpha", out.Previews[2].Name)

		out, err = s.repo.List(s.ctx, characterrepo.ListInput{Limit: 2})
		s.Require().NoError(err)
		s.Require().Len(out.Previews, 2)
		s.Equal("beta", out.Previews[1].Name)
		s.Equal(filepath.Join(s.dir, "beta.json"), out.Previews[1].Path)
	})
}

func (s *FileRepositoryTestSuite) TestPreview() {
	path := filepath.Join(s.dir, "kaede.json")
	_, err := s.repo.Save(s.ctx, characterrepo.SaveInput{Path: path, Character: testutils.CreateTestCharacter()})
	s.Require().NoError(err)

	out, err := s.repo.Preview(s.ctx, characterrepo.PreviewInput{Path: path})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, out.Preview.Name)
	s.Equal("Minstrel", out.Preview.Class)
	s.Equal("Technical", out.Preview.Type)
	s.False(out.Preview.LastModified.IsZero())

	_, err = s.repo.Preview(s.ctx, characterrepo.PreviewInput{Path: filepath.Join(s.dir, "nobody.json")})
	s.True(errors.IsLoadFailed(err))
}

func (s *FileRepositoryTestSuite) TestPreviewCreatesSaveDirectory() {
	dir := filepath.Join(s.T().TempDir(), "RyuutamaCharacters")
	repo, err := characterrepo.NewFileStore(&characterrepo.FileConfig{Dir: dir})
	s.Require().NoError(err)

	_, err = repo.Preview(s.ctx, characterrepo.PreviewInput{Path: filepath.Join(dir, "nobody.json")})
	s.True(errors.IsLoadFailed(err))

	info, err := os.Stat(dir)
	s.Require().NoError(err)
	s.True(info.IsDir())
}

func (s *FileRepositoryTestSuite) TestPreviewUnnamedDocument() {
	path := filepath.Join(s.dir, "blank.json")
	s.Require().NoError(os.MkdirAll(s.dir, 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(`{"level": 2}`), 0o600))

	out, err := s.repo.Preview(s.ctx, characterrepo.PreviewInput{Path: path})
	s.Require().NoError(err)
	s.Equal(ryuutama.UnnamedPreview, out.Preview.Name)
	s.Equal(2, out.Preview.Level)
}
