package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet/mock"
	"github.com/KirkDiggler/ryuutama-sheet/internal/testutils/builders"
)

type CommandTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *sheetmock.MockService
	saveDir string
}

func (s *CommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = sheetmock.NewMockService(s.ctrl)
	s.saveDir = s.T().TempDir()
	s.T().Setenv("RYUUTAMA_SAVE_DIR", s.saveDir)
	s.T().Setenv("RYUUTAMA_STORE", "file")
	s.T().Setenv("RYUUTAMA_LOG_LEVEL", "error")
}

func (s *CommandTestSuite) TearDownTest() {
	closeSession()
	characterFile = ""
	newService = buildService
	s.ctrl.Finish()
}

// execute runs the root command with svc as the session; a nil svc builds the real one
func (s *CommandTestSuite) execute(svc sheet.Service, args ...string) (string, error) {
	closeSession()
	characterFile = ""
	recalculateInitiative = false
	newClass, newType = "", ""
	if svc != nil {
		service = svc
	}

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func (s *CommandTestSuite) expectLoad(path string) {
	s.mockSvc.EXPECT().
		Load(gomock.Any(), &sheet.LoadInput{Path: path}).
		Return(&sheet.LoadOutput{Path: path}, nil)
}

func (s *CommandTestSuite) expectSave(path string) {
	s.mockSvc.EXPECT().Unsaved().Return(true)
	s.mockSvc.EXPECT().
		Save(gomock.Any(), &sheet.SaveInput{}).
		Return(&sheet.SaveOutput{Path: path}, nil)
}

func (s *CommandTestSuite) TestDie() {
	s.expectLoad("kaede.json")
	s.mockSvc.EXPECT().StepDie(gomock.Any(), ryuutama.StatDex, ryuutama.StepUp).Return(true, nil)
	s.mockSvc.EXPECT().Current().Return(builders.NewCharacterBuilder().
		WithStat(ryuutama.StatDex, ryuutama.D8, 5).
		Build())
	s.expectSave("kaede.json")

	out, err := s.execute(s.mockSvc, "die", "DEX", "up", "--file", "kaede.json")
	s.Require().NoError(err)
	s.Equal("DEX is now d8 (5)\n", out)
}

func (s *CommandTestSuite) TestDieRejectsBadArguments() {
	_, err := s.execute(s.mockSvc, "die", "luck", "up", "--file", "kaede.json")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.execute(s.mockSvc, "die", "str", "sideways", "--file", "kaede.json")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandTestSuite) TestRequiresFile() {
	_, err := s.execute(s.mockSvc, "show")
	s.Require().Error(err)
	s.Equal("--file is required", describe(err))
}

func (s *CommandTestSuite) TestCheckReportsCures() {
	s.expectLoad("kaede.json")
	s.mockSvc.EXPECT().
		RollConditionCheck(gomock.Any(), &sheet.RollConditionCheckInput{Stat: ryuutama.StatStr}).
		Return(&sheet.RollConditionCheckOutput{
			Stat:  ryuutama.StatStr,
			Roll:  4,
			Total: 10,
			Cured: []ryuutama.StatusKey{ryuutama.StatusTired},
		}, nil)
	s.expectSave("kaede.json")

	out, err := s.execute(s.mockSvc, "check", "str", "-f", "kaede.json")
	s.Require().NoError(err)
	s.Equal("STR check: rolled 4, total 10\nTired has been cured\n", out)
}

func (s *CommandTestSuite) TestShopBuyWithoutGold() {
	s.expectLoad("kaede.json")
	s.mockSvc.EXPECT().
		Buy(gomock.Any(), &sheet.BuyInput{ShopKey: "chain_mail"}).
		Return(nil, errors.FailedPrecondition("Chain Mail costs 1000 gold, only 40 available"))

	_, err := s.execute(s.mockSvc, "shop", "buy", "chain_mail", "-f", "kaede.json")
	s.Require().Error(err)
	s.Equal("Chain Mail costs 1000 gold, only 40 available", describe(err))
}

func (s *CommandTestSuite) TestUnchangedCharacterIsNotSaved() {
	s.expectLoad("kaede.json")
	s.mockSvc.EXPECT().StepDie(gomock.Any(), ryuutama.StatInt, ryuutama.StepDown).Return(false, nil)
	s.mockSvc.EXPECT().Current().Return(builders.NewCharacterBuilder().
		WithStat(ryuutama.StatInt, ryuutama.D4, 3).
		Build())
	s.mockSvc.EXPECT().Unsaved().Return(false)

	out, err := s.execute(s.mockSvc, "die", "int", "down", "-f", "kaede.json")
	s.Require().NoError(err)
	s.Equal("INT is already d4\n", out)
}

func (s *CommandTestSuite) TestLoadFailureMessage() {
	s.mockSvc.EXPECT().
		Load(gomock.Any(), &sheet.LoadInput{Path: "broken.json"}).
		Return(nil, errors.LoadFailed("broken.json is not a character document"))

	_, err := s.execute(s.mockSvc, "show", "-f", "broken.json")
	s.Require().Error(err)
	s.Equal(errors.CodeLoadFailed.UserMessage(), describe(err))
}

func (s *CommandTestSuite) TestReferenceTables() {
	out, err := s.execute(s.mockSvc, "classes", "minstrel")
	s.Require().NoError(err)
	s.Contains(out, ryuutama.ClassMinstrel)

	out, err = s.execute(s.mockSvc, "shop", "list")
	s.Require().NoError(err)
	s.Contains(out, "light_blade")

	out, err = s.execute(s.mockSvc, "status")
	s.Require().NoError(err)
	s.Contains(out, "injury")

	_, err = s.execute(s.mockSvc, "classes", "pirate")
	s.True(errors.IsNotFound(err))
}

func (s *CommandTestSuite) TestFileStoreRoundTrip() {
	path := filepath.Join(s.saveDir, "sora.json")

	out, err := s.execute(nil, "new", "--name", "Sora", "--class", "hunter", "--type", "attack", "-f", path)
	s.Require().NoError(err)
	s.Contains(out, "Saved to "+path)

	_, err = s.execute(nil, "die", "str", "up", "-f", path)
	s.Require().NoError(err)
	_, err = s.execute(nil, "status", "poison", "on", "-f", path)
	s.Require().NoError(err)
	_, err = s.execute(nil, "env", "--terrain", "mountain", "--weather", "cold", "-f", path)
	s.Require().NoError(err)
	_, err = s.execute(nil, "equip", "item", "--name", "Rope", "--size", "3", "-f", path)
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	loaded, err := ryuutama.Unmarshal(data)
	s.Require().NoError(err)

	s.Equal("Sora", loaded.Name)
	s.Equal(ryuutama.ClassHunter, loaded.CharacterClass)
	s.Equal(ryuutama.TypeAttack, loaded.Type)
	s.Equal(ryuutama.D8, loaded.Str.DieSize)
	s.True(loaded.StatusEffects[ryuutama.StatusPoison])
	s.Equal(ryuutama.TerrainKey("mountain"), loaded.CurrentTerrain)
	s.Require().Len(loaded.TravelersOutfit, 1)
	s.NotEmpty(loaded.TravelersOutfit[0].ID)

	out, err = s.execute(nil, "show", "-f", path)
	s.Require().NoError(err)
	s.Contains(out, "Sora")
	s.Contains(out, "Poison")

	out, err = s.execute(nil, "list")
	s.Require().NoError(err)
	s.Contains(out, "Sora")
}

func (s *CommandTestSuite) TestAbilityAndInitiative() {
	path := filepath.Join(s.saveDir, "mika.json")

	_, err := s.execute(nil, "new", "--name", "Mika", "-f", path)
	s.Require().NoError(err)
	_, err = s.execute(nil, "die", "dex", "up", "-f", path)
	s.Require().NoError(err)

	out, err := s.execute(nil, "initiative", "-f", path)
	s.Require().NoError(err)
	s.Equal("Initiative 12 (DEX + INT = 11)\n", out)

	out, err = s.execute(nil, "initiative", "--recalc", "-f", path)
	s.Require().NoError(err)
	s.Equal("Initiative 11 (DEX + INT = 11)\n", out)

	out, err = s.execute(nil, "ability", "2", "Keen", "eyes", "-f", path)
	s.Require().NoError(err)
	s.Equal("Level 2: Keen eyes\n", out)

	_, err = s.execute(nil, "ability", "9", "Flight", "-f", path)
	s.True(errors.IsInvalidArgument(err))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	loaded, err := ryuutama.Unmarshal(data)
	s.Require().NoError(err)
	s.Equal(11, loaded.Initiative)
	s.Equal("Keen eyes", loaded.Abilities[2])
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
