package pdf

import (
	"context"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

func TestStatusHeaderColumnsAreDistinct(t *testing.T) {
	seen := make(map[string]bool, len(statusHeader))
	for _, column := range statusHeader {
		assert.False(t, seen[column], "duplicate column %q", column)
		seen[column] = true
	}
	assert.Equal(t, "Status", statusHeader[0])
	assert.Equal(t, "Effect", statusHeader[len(statusHeader)-1])
}

func TestRowWrapsTranslatedText(t *testing.T) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.AddPage()
	w := newSheetWriter(doc, 12.7)

	start := doc.GetY()
	w.row(w.left, []float64{20, 20}, []string{"Zoë", "Ünterwald Ünterwald Ünterwald"}, lineHeight, func(int) bool { return false })
	require.NoError(t, doc.Error())
	assert.Greater(t, doc.GetY()-start, lineHeight, "long cell should wrap onto a second line")
}

func TestRenderRecoversFromLayoutPanics(t *testing.T) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.AddPage()

	var c *ryuutama.Character
	err := render(context.Background(), doc, 12.7, c)
	assert.Error(t, err)
}
