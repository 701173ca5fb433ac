package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/export/pdf"
	"github.com/KirkDiggler/ryuutama-sheet/internal/testutils"
)

type ExporterTestSuite struct {
	suite.Suite
	dir      string
	exporter pdf.Exporter
	ctx      context.Context
}

func TestExporterSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}

func (s *ExporterTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	exporter, err := pdf.NewExporter(&pdf.Config{})
	s.Require().NoError(err)
	s.exporter = exporter
	s.ctx = context.Background()
}

func (s *ExporterTestSuite) assertPDF(path string) {
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF header")
}

func (s *ExporterTestSuite) TestExportFullSheet() {
	character := testutils.CreateTestCharacterAtStage(testutils.StageTraveled)
	character.Notes = strings.Repeat("A long road through the reeds. ", 40)
	character.Abilities[1] = "Pocket: Your Carrying Capacity is increased +3"
	character.Hometown = "Mühlendorf"
	path := filepath.Join(s.dir, "kaede.pdf")

	out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: character, Path: path})
	s.Require().NoError(err)
	s.Equal(path, out.Path)
	s.assertPDF(path)
}

func (s *ExporterTestSuite) TestExportNonLatinText() {
	for name, text := range map[string]string{
		"latin-1":   "Zoë",
		"latin-ext": "Łucja of Kraków",
		"cjk":       "龍の旅人",
	} {
		s.Run(name, func() {
			character := testutils.CreateTestCharacter()
			character.Name = text
			character.Hometown = text
			character.Notes = strings.Repeat(text+" ", 30)
			character.Weapons = append(character.Weapons, ryuutama.Weapon{
				Equipment: ryuutama.Equipment{ID: "equip_" + name, Name: text},
			})

			out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: character, Path: filepath.Join(s.dir, name+".pdf")})
			s.Require().NoError(err)
			s.assertPDF(out.Path)
		})
	}
}

func (s *ExporterTestSuite) TestExportAddsExtension() {
	out, err := s.exporter.Export(s.ctx, pdf.ExportInput{
		Character: testutils.CreateTestCharacter(),
		Path:      filepath.Join(s.dir, "sheets", "kaede"),
	})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "sheets", "kaede.pdf"), out.Path)
	s.assertPDF(out.Path)
}

func (s *ExporterTestSuite) TestExportWithImage() {
	imagePath := filepath.Join(s.dir, "portrait.png")
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	f, err := os.Create(imagePath)
	s.Require().NoError(err)
	s.Require().NoError(png.Encode(f, img))
	s.Require().NoError(f.Close())

	character := testutils.CreateTestCharacter()
	character.ImagePath = imagePath

	out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: character, Path: filepath.Join(s.dir, "with-image.pdf")})
	s.Require().NoError(err)
	s.assertPDF(out.Path)
}

func (s *ExporterTestSuite) TestBrokenImageFallsBack() {
	s.Run("missing file", func() {
		character := testutils.CreateTestCharacter()
		character.ImagePath = filepath.Join(s.dir, "gone.png")

		out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: character, Path: filepath.Join(s.dir, "missing.pdf")})
		s.Require().NoError(err)
		s.assertPDF(out.Path)
	})

	s.Run("undecodable file", func() {
		imagePath := filepath.Join(s.dir, "broken.png")
		s.Require().NoError(os.WriteFile(imagePath, []byte("not an image"), 0o600))
		character := testutils.CreateTestCharacter()
		character.ImagePath = imagePath

		out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: character, Path: filepath.Join(s.dir, "broken.pdf")})
		s.Require().NoError(err)
		s.assertPDF(out.Path)
	})
}

func (s *ExporterTestSuite) TestExportBlankCharacter() {
	out, err := s.exporter.Export(s.ctx, pdf.ExportInput{Character: ryuutama.NewCharacter(), Path: filepath.Join(s.dir, "blank.pdf")})
	s.Require().NoError(err)
	s.assertPDF(out.Path)
}

func (s *ExporterTestSuite) TestExportFailures() {
	_, err := s.exporter.Export(s.ctx, pdf.ExportInput{Path: filepath.Join(s.dir, "x.pdf")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.exporter.Export(s.ctx, pdf.ExportInput{Character: testutils.CreateTestCharacter()})
	s.True(errors.IsInvalidArgument(err))

	blocker := filepath.Join(s.dir, "blocker")
	s.Require().NoError(os.WriteFile(blocker, []byte("x"), 0o600))
	_, err = s.exporter.Export(s.ctx, pdf.ExportInput{
		Character: testutils.CreateTestCharacter(),
		Path:      filepath.Join(blocker, "kaede.pdf"),
	})
	s.True(errors.IsExportFailed(err), "got %v", err)
}

func (s *ExporterTestSuite) TestConfigValidation() {
	_, err := pdf.NewExporter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = pdf.NewExporter(&pdf.Config{Margin: -1})
	s.True(errors.IsInvalidArgument(err))
}
