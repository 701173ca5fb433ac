// Package pdf renders a character to a printable PDF summary
package pdf

//go:generate mockgen -destination=mock/mock_exporter.go -package=pdfmock github.com/KirkDiggler/ryuutama-sheet/internal/export/pdf Exporter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

// Extension is appended to export paths that lack it
const Extension = ".pdf"

// Exporter writes a character summary document
type Exporter interface {
	// Export renders the character to the path and returns the path written
	// Returns errors.InvalidArgument for a nil character or empty path
	// Returns errors.ExportFailed when the document cannot be rendered or written
	Export(ctx context.Context, input ExportInput) (*ExportOutput, error)
}

// ExportInput defines the input for exporting a character
type ExportInput struct {
	Character *ryuutama.Character
	Path      string
}

// ExportOutput defines the output for exporting a character
type ExportOutput struct {
	Path string
}

// Config contains configuration for the PDF exporter.
type Config struct {
	// PageSize is an fpdf page size name; defaults to Letter
	PageSize string
	// Margin in millimetres; defaults to half an inch
	Margin float64
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Margin < 0 {
		return errors.InvalidArgument("margin cannot be negative")
	}
	return nil
}

type exporter struct {
	pageSize string
	margin   float64
}

// NewExporter creates an fpdf-backed exporter
func NewExporter(cfg *Config) (Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &exporter{pageSize: cfg.PageSize, margin: cfg.Margin}
	if e.pageSize == "" {
		e.pageSize = "Letter"
	}
	if e.margin == 0 {
		e.margin = 12.7
	}
	return e, nil
}

func (e *exporter) Export(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.InvalidArgument("path cannot be empty")
	}

	path := input.Path
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		path += Extension
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExportFailed, "failed to create export directory").
			WithMeta("path", path)
	}

	doc := fpdf.New("P", "mm", e.pageSize, "")
	doc.SetMargins(e.margin, e.margin, e.margin)
	doc.SetAutoPageBreak(true, e.margin)
	doc.SetTitle("Ryuutama Character Sheet - "+input.Character.Name, true)
	doc.AddPage()

	if err := render(ctx, doc, e.margin, input.Character); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExportFailed, "failed to render character sheet").
			WithMeta("path", path)
	}
	if err := doc.Error(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExportFailed, "failed to render character sheet").
			WithMeta("path", path)
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExportFailed, "failed to write PDF").
			WithMeta("path", path)
	}

	slog.InfoContext(ctx, "exported character", "name", input.Character.Name, "path", path)
	return &ExportOutput{Path: path}, nil
}

// render lays out the sheet. A panic inside the PDF library becomes an error.
func render(ctx context.Context, doc *fpdf.Fpdf, margin float64, c *ryuutama.Character) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Internalf("pdf layout: %v", r)
		}
	}()

	newSheetWriter(doc, margin).writeCharacter(ctx, c)
	return nil
}
