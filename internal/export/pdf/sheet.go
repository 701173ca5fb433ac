package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 5.0
	smallLine  = 4.0
	imageSize  = 38.0
	cellPad    = 2.0
)

var statusHeader = []string{"Status", "Active", "Type", "Recovery Stat", "Effect"}

// sheetWriter lays out the sheet sections top to bottom
type sheetWriter struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	left   float64
	width  float64
	bottom float64
}

func newSheetWriter(doc *fpdf.Fpdf, margin float64) *sheetWriter {
	pageW, pageH := doc.GetPageSize()
	return &sheetWriter{
		pdf:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
		left:   margin,
		width:  pageW - 2*margin,
		bottom: pageH - margin,
	}
}

func (w *sheetWriter) writeCharacter(ctx context.Context, c *ryuutama.Character) {
	w.title("Ryuutama Character Sheet - " + c.Name)
	w.basicInfo(ctx, c)
	w.classDetails(c)
	w.stats(c)
	w.equipment(c)
	w.travel(c)
	w.statusEffects(c)
	w.background(c)
	w.abilities(c)
}

func (w *sheetWriter) title(text string) {
	w.pdf.SetFont(fontFamily, "B", 16)
	w.pdf.CellFormat(w.width, 10, w.tr(text), "", 1, "C", false, 0, "")
	w.pdf.Ln(2)
}

func (w *sheetWriter) section(text string) {
	w.ensureSpace(3 * lineHeight)
	w.pdf.Ln(3)
	w.pdf.SetFont(fontFamily, "B", 12)
	w.pdf.CellFormat(w.width, 7, w.tr(text), "", 1, "L", false, 0, "")
}

func (w *sheetWriter) subheading(text string) {
	w.ensureSpace(2 * lineHeight)
	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.CellFormat(w.width, lineHeight, w.tr(text), "", 1, "L", false, 0, "")
}

// basicInfo places the character image beside the info grid, falling back to
// the grid alone when the image is missing or cannot be decoded.
func (w *sheetWriter) basicInfo(ctx context.Context, c *ryuutama.Character) {
	rows := [][]string{
		{"Character Name:", c.Name, "Player Name:", c.PlayerName},
		{"Level:", strconv.Itoa(c.Level), "Experience:", strconv.Itoa(c.Exp)},
		{"Class:", c.CharacterClass, "Type:", c.Type},
		{"Gender:", c.Gender, "Age:", c.Age},
	}

	imageName, ok := w.registerImage(ctx, c.ImagePath)
	if !ok {
		w.labelGrid(w.left, w.width, rows)
		return
	}

	top := w.pdf.GetY()
	w.pdf.ImageOptions(imageName, w.left, top, imageSize, imageSize, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	gridLeft := w.left + imageSize + 4
	w.pdf.SetXY(gridLeft, top)
	w.labelGrid(gridLeft, w.width-imageSize-4, rows)
	if w.pdf.GetY() < top+imageSize {
		w.pdf.SetY(top + imageSize)
	}
	w.pdf.SetX(w.left)
}

func (w *sheetWriter) registerImage(ctx context.Context, path string) (string, bool) {
	if strings.TrimSpace(path) == "" {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		slog.WarnContext(ctx, "character image unavailable", "path", path, "error", err)
		return "", false
	}

	info := w.pdf.RegisterImageOptions(path, fpdf.ImageOptions{ReadDpi: true})
	if w.pdf.Err() || info == nil {
		slog.WarnContext(ctx, "character image could not be decoded", "path", path, "error", w.pdf.Error())
		w.pdf.ClearError()
		return "", false
	}
	return path, true
}

func (w *sheetWriter) classDetails(c *ryuutama.Character) {
	w.section("Class Details")
	w.labelGrid(w.left, w.width, [][]string{
		{"Class Skills:", c.ClassSkill, "Stats Used:", c.StatsUsed},
		{"Effect:", c.Effect, "Mastered Weapon:", c.MasteredWeapon},
		{"Specialized Terrain:", c.SpecializedTerrain, "Personal Item:", c.PersonalItem},
	})

	class, ok := ryuutama.LookupClass(c.CharacterClass)
	if !ok {
		return
	}
	w.pdf.Ln(2)
	w.table(
		[]float64{0.2, 0.15, 0.15, 0.5},
		[]string{"Skill", "Stats", "Target", "Effect"},
		classSkillRows(class),
	)
}

func classSkillRows(class ryuutama.Class) [][]string {
	rows := make([][]string, len(class.Skills))
	for i, skill := range class.Skills {
		rows[i] = []string{skill.Name, skill.StatUsed, skill.TargetNumber, skill.Effect}
	}
	return rows
}

func (w *sheetWriter) stats(c *ryuutama.Character) {
	w.section("Character Stats")
	w.labelGrid(w.left, w.width, [][]string{
		{"STR", formatStat(c.Str.StatBlock) + fmt.Sprintf(" [%d/%d]", c.Str.Current, c.Str.Max), "DEX", formatStat(c.Dex)},
		{"INT", formatStat(c.Int), "SPI", formatStat(c.Spi.StatBlock) + fmt.Sprintf(" [%d/%d]", c.Spi.Current, c.Spi.Max)},
		{"HP", fmt.Sprintf("%d / %d", c.HP.Current, c.HP.Max), "MP", fmt.Sprintf("%d / %d", c.MP.Current, c.MP.Max)},
		{"Initiative", strconv.Itoa(c.Initiative), "Fumble Points", strconv.Itoa(c.FumblePoints)},
		{"Gold", strconv.Itoa(c.Gold), "Carrying", fmt.Sprintf("%d / %d", c.TotalOutfitSize(), c.CarryingCapacity())},
	})
}

func formatStat(block ryuutama.StatBlock) string {
	return fmt.Sprintf("%d (%s)", block.Value, block.DieSize)
}

func (w *sheetWriter) equipment(c *ryuutama.Character) {
	w.section("Equipment")

	if len(c.Weapons) > 0 {
		w.subheading("Weapons")
		rows := make([][]string, len(c.Weapons))
		for i, weapon := range c.Weapons {
			rows[i] = []string{weapon.Name, strconv.Itoa(weapon.Accuracy), strconv.Itoa(weapon.Damage), strconv.Itoa(weapon.Durability), weapon.Effect}
		}
		w.table([]float64{0.2, 0.13, 0.13, 0.13, 0.41}, []string{"Name", "Accuracy", "Damage", "Durability", "Effect"}, rows)
		w.pdf.Ln(2)
	}

	var gear [][]string
	if c.Shield != nil {
		gear = append(gear, []string{"Shield", c.Shield.Name, fmt.Sprintf("Defense: %d", c.Shield.Defense), fmt.Sprintf("Durability: %d", c.Shield.Durability), c.Shield.Effect})
	}
	if c.Armor != nil {
		gear = append(gear, []string{"Armor", c.Armor.Name, fmt.Sprintf("Defense: %d", c.Armor.DefensePoints), fmt.Sprintf("Penalty: %d", c.Armor.Penalty), c.Armor.Effect})
	}
	if len(gear) > 0 {
		w.table([]float64{0.13, 0.2, 0.15, 0.17, 0.35}, nil, gear)
		w.pdf.Ln(2)
	}

	if len(c.TravelersOutfit) > 0 {
		w.subheading("Traveler's Outfit")
		rows := make([][]string, len(c.TravelersOutfit))
		for i, item := range c.TravelersOutfit {
			rows[i] = []string{item.Name, strconv.Itoa(item.Size), strconv.Itoa(item.Durability), item.Effect}
		}
		w.table([]float64{0.25, 0.13, 0.13, 0.49}, []string{"Name", "Size", "Durability", "Effect"}, rows)
	}
}

func (w *sheetWriter) travel(c *ryuutama.Character) {
	if c.CurrentTerrain == "" && c.CurrentWeather == "" {
		return
	}

	w.section("Travel Conditions")
	effects := c.Effects()
	var mods []string
	for _, key := range ryuutama.StatKeys() {
		if effects[key] != 0 {
			mods = append(mods, fmt.Sprintf("%s %+d", strings.ToUpper(string(key)), effects[key]))
		}
	}
	if len(mods) == 0 {
		mods = append(mods, "none")
	}

	w.labelGrid(w.left, w.width, [][]string{
		{"Terrain:", ryuutama.DisplayName(string(c.CurrentTerrain)), "Weather:", ryuutama.DisplayName(string(c.CurrentWeather))},
		{"Modifiers:", strings.Join(mods, ", "), "Topography:", strconv.Itoa(c.TopographyTarget())},
	})
}

func (w *sheetWriter) statusEffects(c *ryuutama.Character) {
	w.section("Status Effects")
	var rows [][]string
	for _, key := range ryuutama.StatusKeys() {
		effect, _ := ryuutama.LookupStatusEffect(key)
		active := "No"
		if c.StatusEffects[key] {
			active = "Yes"
		}
		rows = append(rows, []string{
			ryuutama.DisplayName(string(key)),
			active,
			ryuutama.DisplayName(string(effect.Category)),
			strings.ToUpper(string(effect.CheckStat)),
			effect.Effect,
		})
	}
	w.table([]float64{0.17, 0.12, 0.12, 0.19, 0.4}, statusHeader, rows)
}

func (w *sheetWriter) background(c *ryuutama.Character) {
	w.section("Background & Notes")
	rows := [][]string{
		{"Hometown:", c.Hometown},
		{"Reason for Travel:", c.ReasonForTravel},
		{"Appearance:", c.Appearance},
		{"Notes:", c.Notes},
	}
	for _, row := range rows {
		w.row(w.left, []float64{0.25 * w.width, 0.75 * w.width}, row, lineHeight, func(i int) bool { return i == 0 })
	}
}

func (w *sheetWriter) abilities(c *ryuutama.Character) {
	written := false
	for level := 1; level <= ryuutama.MaxAbilityLevel; level++ {
		if strings.TrimSpace(c.Abilities[level]) != "" {
			written = true
			break
		}
	}
	if !written {
		return
	}

	w.section("Abilities & Spells")
	for level := 1; level <= ryuutama.MaxAbilityLevel; level++ {
		text := c.Abilities[level]
		if strings.TrimSpace(text) == "" {
			continue
		}
		w.subheading(fmt.Sprintf("Level %d", level))
		w.pdf.SetFont(fontFamily, "", 10)
		w.pdf.MultiCell(w.width, lineHeight, w.tr(text), "", "L", false)
		w.pdf.Ln(2)
	}
}

// labelGrid draws rows of label/value pairs with shaded label cells
func (w *sheetWriter) labelGrid(left, width float64, rows [][]string) {
	widths := []float64{0.22 * width, 0.28 * width, 0.22 * width, 0.28 * width}
	for _, row := range rows {
		w.row(left, widths, row, lineHeight, func(i int) bool { return i%2 == 0 })
	}
}

// table draws a header row and data rows; fractions are shares of the page width
func (w *sheetWriter) table(fractions []float64, header []string, rows [][]string) {
	widths := make([]float64, len(fractions))
	for i, f := range fractions {
		widths[i] = f * w.width
	}

	if header != nil {
		w.row(w.left, widths, header, smallLine, func(int) bool { return true })
	}
	for _, row := range rows {
		w.row(w.left, widths, row, smallLine, func(i int) bool { return header == nil && i == 0 })
	}
}

// row draws one bordered row whose height fits the tallest wrapped cell
func (w *sheetWriter) row(left float64, widths []float64, cells []string, line float64, shaded func(int) bool) {
	size := 10.0
	if line == smallLine {
		size = 8
	}
	w.pdf.SetFont(fontFamily, "", size)

	lines := 1
	for i, cell := range cells {
		if n := len(w.pdf.SplitLines([]byte(w.tr(cell)), widths[i]-cellPad)); n > lines {
			lines = n
		}
	}
	height := float64(lines) * line
	w.ensureSpace(height)

	y := w.pdf.GetY()
	x := left
	w.pdf.SetFillColor(220, 220, 220)
	w.pdf.SetDrawColor(128, 128, 128)
	for i, cell := range cells {
		style := "D"
		if shaded(i) {
			style = "FD"
			w.pdf.SetFont(fontFamily, "B", size)
		} else {
			w.pdf.SetFont(fontFamily, "", size)
		}
		w.pdf.Rect(x, y, widths[i], height, style)
		w.pdf.SetXY(x, y)
		w.pdf.MultiCell(widths[i], line, w.tr(cell), "", "L", false)
		x += widths[i]
	}
	w.pdf.SetXY(left, y+height)
}

func (w *sheetWriter) ensureSpace(height float64) {
	if w.pdf.GetY()+height > w.bottom {
		w.pdf.AddPage()
	}
}
