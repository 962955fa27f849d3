package ui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

// DefaultDamageDuration is how long a damage number stays on screen
const DefaultDamageDuration = 600 * time.Millisecond

var (
	themeColors = map[entities.Theme][2]tcell.Color{
		entities.ThemePrairie:  {tcell.NewRGBColor(86, 130, 3), tcell.NewRGBColor(104, 150, 20)},
		entities.ThemeDesert:   {tcell.NewRGBColor(194, 160, 90), tcell.NewRGBColor(212, 178, 108)},
		entities.ThemeArctic:   {tcell.NewRGBColor(170, 200, 220), tcell.NewRGBColor(190, 216, 234)},
		entities.ThemeMountain: {tcell.NewRGBColor(110, 110, 110), tcell.NewRGBColor(130, 130, 130)},
	}

	highlightColors = map[turn.Color]tcell.Color{
		turn.ColorSelected: tcell.ColorYellow,
		turn.ColorMove:     tcell.ColorGreen,
		turn.ColorAttack:   tcell.ColorRed,
	}

	healthColors = map[entities.HealthStatus]tcell.Color{
		entities.HealthCritical: tcell.ColorRed,
		entities.HealthNormal:   tcell.ColorYellow,
		entities.HealthHigh:     tcell.ColorGreen,
	}

	unitLabels = map[entities.Kind]string{
		entities.KindSwordsman: "Sw",
		entities.KindBowman:    "Bw",
		entities.KindMagician:  "Mg",
		entities.KindUndead:    "Ud",
		entities.KindVampire:   "Vp",
		entities.KindDaemon:    "Dm",
	}
)

// TerminalConfig holds the dependencies for the terminal renderer
type TerminalConfig struct {
	Screen         *Screen
	Geometry       grid.Geometry
	DamageDuration time.Duration
}

// Validate ensures all required dependencies are provided
func (c *TerminalConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Screen == nil {
		vb.RequiredField("Screen")
	}
	if c.Geometry.Size <= 0 {
		vb.RequiredField("Geometry")
	}

	return vb.Build()
}

type unitView struct {
	kind   entities.Kind
	side   entities.Side
	health float64
}

// Terminal draws the board on a tcell screen. It keeps its own copy of what
// is shown and redraws the whole frame on every change.
type Terminal struct {
	screen         *Screen
	geo            grid.Geometry
	layout         Layout
	damageDuration time.Duration

	mu          sync.Mutex
	theme       entities.Theme
	units       map[int]unitView
	highlights  map[int]turn.Color
	damage      map[int]float64
	cursor      turn.Cursor
	tooltip     string
	notice      string
	noticeError bool
}

var _ turn.Renderer = (*Terminal)(nil)

// NewTerminal creates a terminal renderer
func NewTerminal(cfg *TerminalConfig) (*Terminal, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	d := cfg.DamageDuration
	if d <= 0 {
		d = DefaultDamageDuration
	}

	return &Terminal{
		screen:         cfg.Screen,
		geo:            cfg.Geometry,
		layout:         NewLayout(cfg.Geometry),
		damageDuration: d,
		theme:          entities.ThemePrairie,
		units:          make(map[int]unitView),
		highlights:     make(map[int]turn.Color),
		damage:         make(map[int]float64),
		cursor:         turn.CursorAuto,
	}, nil
}

// Layout returns the cell layout used for drawing
func (t *Terminal) Layout() Layout {
	return t.layout
}

func (t *Terminal) DrawBoard(theme entities.Theme) {
	t.update(func() {
		t.theme = theme
		t.highlights = make(map[int]turn.Color)
		t.damage = make(map[int]float64)
		t.tooltip = ""
		t.notice = ""
	})
}

func (t *Terminal) RedrawUnits(units []*entities.PlacedUnit) {
	t.update(func() {
		t.units = make(map[int]unitView, len(units))
		for _, p := range units {
			t.units[p.Position] = unitView{kind: p.Unit.Kind, side: p.Side(), health: p.Unit.Health}
		}
	})
}

func (t *Terminal) HighlightCell(index int, color turn.Color) {
	t.update(func() { t.highlights[index] = color })
}

func (t *Terminal) ClearHighlight(index int) {
	t.update(func() { delete(t.highlights, index) })
}

func (t *Terminal) SetCursor(cursor turn.Cursor) {
	t.update(func() { t.cursor = cursor })
}

func (t *Terminal) ShowTooltip(text string, _ int) {
	t.update(func() { t.tooltip = text })
}

func (t *Terminal) HideTooltip(_ int) {
	t.update(func() { t.tooltip = "" })
}

// ShowDamage prints the amount on the cell and acknowledges after the
// damage duration
func (t *Terminal) ShowDamage(ctx context.Context, index int, amount float64) <-chan struct{} {
	t.update(func() { t.damage[index] = amount })

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-time.After(t.damageDuration):
		case <-ctx.Done():
		}
		t.update(func() { delete(t.damage, index) })
	}()
	return done
}

func (t *Terminal) ShowUserError(message string) {
	t.update(func() {
		t.notice = message
		t.noticeError = true
	})
}

func (t *Terminal) ShowMessage(message string) {
	t.update(func() {
		t.notice = message
		t.noticeError = false
	})
}

func (t *Terminal) update(change func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	change()
	t.draw()
}

func (t *Terminal) draw() {
	t.screen.Draw(t.paint)
}

func (t *Terminal) paint() {
	for i := 0; i < t.geo.Cells(); i++ {
		t.drawCell(i)
		t.drawFrame(i)
	}

	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	t.screen.Text(0, t.layout.StatusLine(0), t.tooltip, plain)

	if t.notice != "" {
		style := plain.Bold(true)
		if t.noticeError {
			style = style.Foreground(tcell.ColorRed)
		}
		t.screen.Text(0, t.layout.StatusLine(1), t.notice, style)
	}

	help := fmt.Sprintf("%s | %s | n: new game  s: save  q: quit", t.theme, t.cursor)
	t.screen.Text(0, t.layout.StatusLine(2), help, plain.Foreground(tcell.ColorGray))
}

func (t *Terminal) drawCell(index int) {
	x, y := t.layout.Origin(index)
	c := t.geo.CoordinatesOf(index)

	bg := themeColors[t.theme][(c.Row+c.Col)%2]
	if color, ok := t.highlights[index]; ok {
		bg = highlightColors[color]
	}
	base := tcell.StyleDefault.Background(bg)

	for dy := 0; dy < CellHeight; dy++ {
		for dx := 0; dx < CellWidth; dx++ {
			t.screen.SetContent(x+dx, y+dy, ' ', base)
		}
	}

	if u, ok := t.units[index]; ok {
		fg := tcell.ColorNavy
		if u.side == entities.SideComputer {
			fg = tcell.ColorMaroon
		}
		t.screen.Text(x+2, y, unitLabels[u.kind], base.Foreground(fg).Bold(true))

		bars := int(math.Ceil(math.Max(u.health, 0) / 25))
		bar := base.Foreground(healthColors[entities.HealthLevel(u.health)])
		for i := 0; i < bars && i < CellWidth-2; i++ {
			t.screen.SetContent(x+1+i, y+1, '▮', bar)
		}
	}

	if amount, ok := t.damage[index]; ok {
		label := "-" + strconv.FormatFloat(amount, 'f', -1, 64)
		t.screen.Text(x+1, y+2, label, base.Foreground(tcell.ColorRed).Bold(true))
	}
}

// drawFrame draws the board edge next to a cell
func (t *Terminal) drawFrame(index int) {
	x, y := t.layout.Origin(index)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	tile := t.geo.TileOf(index)

	top := tile == grid.TileTopLeft || tile == grid.TileTop || tile == grid.TileTopRight
	bottom := tile == grid.TileBottomLeft || tile == grid.TileBottom || tile == grid.TileBottomRight
	left := tile == grid.TileTopLeft || tile == grid.TileLeft || tile == grid.TileBottomLeft
	right := tile == grid.TileTopRight || tile == grid.TileRight || tile == grid.TileBottomRight

	for dx := 0; dx < CellWidth; dx++ {
		if top {
			t.screen.SetContent(x+dx, y-1, tcell.RuneHLine, style)
		}
		if bottom {
			t.screen.SetContent(x+dx, y+CellHeight, tcell.RuneHLine, style)
		}
	}
	for dy := 0; dy < CellHeight; dy++ {
		if left {
			t.screen.SetContent(x-1, y+dy, tcell.RuneVLine, style)
		}
		if right {
			t.screen.SetContent(x+CellWidth, y+dy, tcell.RuneVLine, style)
		}
	}

	switch tile {
	case grid.TileTopLeft:
		t.screen.SetContent(x-1, y-1, tcell.RuneULCorner, style)
	case grid.TileTopRight:
		t.screen.SetContent(x+CellWidth, y-1, tcell.RuneURCorner, style)
	case grid.TileBottomLeft:
		t.screen.SetContent(x-1, y+CellHeight, tcell.RuneLLCorner, style)
	case grid.TileBottomRight:
		t.screen.SetContent(x+CellWidth, y+CellHeight, tcell.RuneLRCorner, style)
	}
}
