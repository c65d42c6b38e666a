// Package tui is the terminal presentation host for the game core. It talks
// to the engine exclusively through the input controller and the per-cell
// observations, and renders the board from CellViews.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hexmines/hex"
	"github.com/lox/hexmines/internal/config"
	"github.com/lox/hexmines/internal/game"
	"github.com/lox/hexmines/internal/input"
	"github.com/lox/hexmines/internal/randutil"
)

// Board placement within the view: one column of left margin, two rows of
// chrome above. Mouse coordinates are translated by the same offsets.
const (
	boardLeft = 1
	boardTop  = 2
)

// maxEventLines is how many recent event lines the footer keeps.
const maxEventLines = 3

// tickMsg drives the elapsed-time readout.
type tickMsg time.Time

// Model is the Bubble Tea model for an interactive game session.
type Model struct {
	cfg    *config.Config
	logger *log.Logger
	styles Styles
	clock  quartz.Clock

	engine     *game.Engine
	controller *input.Controller
	layout     hex.Layout
	events     *eventLog

	gameIndex int
	started   time.Time
	elapsed   time.Duration
	finished  bool

	width       int
	height      int
	initialized bool
	quitting    bool
}

// eventLog collects formatted event lines. It is shared by pointer so the
// bus subscription survives Bubble Tea's value-copied model updates.
type eventLog struct {
	lines []string
}

// OnEvent implements game.EventSubscriber
func (l *eventLog) OnEvent(event game.GameEvent) {
	var line string
	switch e := event.(type) {
	case game.GameStartEvent:
		line = fmt.Sprintf("new game: radius %d, %d mines in %d cells", e.Radius, e.MineCount, e.CellCount)
	case game.CellsRevealedEvent:
		if e.HitMine {
			line = fmt.Sprintf("mine at %s", e.Seed)
		} else {
			line = fmt.Sprintf("revealed %d cell(s) from %s, %d covered", len(e.Revealed), e.Seed, e.Remaining)
		}
	case game.FlagToggledEvent:
		if e.Flagged {
			line = fmt.Sprintf("flagged %s", e.Cell)
		} else {
			line = fmt.Sprintf("unflagged %s", e.Cell)
		}
	case game.GameOverEvent:
		line = fmt.Sprintf("game %s", e.Outcome)
	default:
		return
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > maxEventLines {
		l.lines = l.lines[len(l.lines)-maxEventLines:]
	}
}

// New creates a model, generates the first board and starts the session
// clock.
func New(cfg *config.Config, logger *log.Logger, clock quartz.Clock) *Model {
	m := &Model{
		cfg:    cfg,
		logger: logger,
		styles: NewStyles(cfg.Game.Theme),
		clock:  clock,
		events: &eventLog{},
		layout: hex.Layout{Radius: cfg.Game.Radius},
	}
	m.newGame()
	return m
}

// newGame builds a fresh board, engine and controller. Each game derives
// its own seed so restarts are reproducible from the configured seed.
func (m *Model) newGame() {
	seed := randutil.Derive(m.cfg.Mines.Seed, m.gameIndex)
	m.gameIndex++

	var rule game.MineRule
	switch m.cfg.Mines.Rule {
	case config.RuleSpaced:
		rule = game.EveryKth(m.cfg.Mines.Spacing)
	default:
		rule = game.RandomCount(randutil.New(seed), m.cfg.Mines.Count)
	}

	board, err := game.Generate(m.cfg.Game.Radius, rule)
	if err != nil {
		// Config is validated before the model is built.
		m.logger.Error("Board generation failed", "error", err)
		return
	}

	m.engine = game.NewEngine(board, m.logger)
	m.events.lines = nil
	m.engine.EventBus().Subscribe(m.events)
	m.events.OnEvent(game.NewGameStartEvent(board))

	m.controller = input.New(m.engine, m.logger)
	m.controller.SetHover(hex.Origin)
	m.started = m.clock.Now()
	m.elapsed = 0
	m.finished = false
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initialized = true
		return m, nil

	case tickMsg:
		if !m.finished {
			m.elapsed = m.clock.Since(m.started)
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "n":
		m.newGame()
		return m, nil
	}

	if m.finished {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.moveCursor(hex.Hex{Q: -1, R: 0}, hex.Hex{})
	case "right", "l":
		m.moveCursor(hex.Hex{Q: 1, R: 0}, hex.Hex{})
	case "up", "k":
		// Prefer the north-west neighbor, fall back to north-east.
		m.moveCursor(hex.Hex{Q: 0, R: -1}, hex.Hex{Q: 1, R: -1})
	case "down", "j":
		m.moveCursor(hex.Hex{Q: 0, R: 1}, hex.Hex{Q: -1, R: 1})
	case "enter", " ":
		m.primary()
	case "f":
		m.secondary()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	c, ok := m.layout.HexAt(msg.X-boardLeft, msg.Y-boardTop)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.controller.SetHover(c)
	case tea.MouseActionPress:
		m.controller.SetHover(c)
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.primary()
		case tea.MouseButtonRight:
			m.secondary()
		}
	}
	return m, nil
}

// moveCursor shifts the keyboard cursor by delta, trying alt when delta
// leaves the board. The cursor doubles as the hover for both input paths.
func (m *Model) moveCursor(delta, alt hex.Hex) {
	cur, ok := m.controller.Hover()
	if !ok {
		m.controller.SetHover(hex.Origin)
		return
	}
	board := m.engine.State().Board()
	next := cur.Add(delta)
	if !board.Contains(next) && alt != (hex.Hex{}) {
		next = cur.Add(alt)
	}
	if board.Contains(next) {
		m.controller.SetHover(next)
	}
}

func (m *Model) primary() {
	if _, acted := m.controller.Primary(); acted {
		m.checkOutcome()
	}
}

func (m *Model) secondary() {
	m.controller.Secondary()
}

// checkOutcome freezes the session clock and input once the game is
// decided. The engine keeps its own rules; stopping is presentation policy.
func (m *Model) checkOutcome() {
	if m.engine.State().Outcome() != game.InProgress {
		m.elapsed = m.clock.Since(m.started)
		m.finished = true
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	state := m.engine.State()

	b.WriteString(m.styles.Header.Render(" Hexmines "))
	b.WriteString(m.styles.Status.Render(fmt.Sprintf("  mines %d  flags %d  %s",
		state.MinesRemaining(), state.FlagCount(), formatElapsed(m.elapsed))))
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	switch state.Outcome() {
	case game.Won:
		b.WriteString(m.styles.WinBan.Render("You win!"))
		b.WriteString("\n")
	case game.Lost:
		b.WriteString(m.styles.LossBan.Render("Boom! You hit a mine."))
		b.WriteString("\n")
	}

	for _, line := range m.events.lines {
		b.WriteString(m.styles.Event.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("arrows/hjkl move · enter reveal · f flag · n new game · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderBoard draws the hex region row by row. Cells are two columns wide
// at a four-column pitch, so each row of the pointy-top grid interleaves
// with its neighbors at a two-column offset.
func (m *Model) renderBoard() string {
	radius := m.layout.Radius
	hover, hovering := m.controller.Hover()

	var b strings.Builder
	for r := -radius; r <= radius; r++ {
		lo := max(-radius, -radius-r)
		x, _ := m.layout.ScreenPos(hex.Hex{Q: lo, R: r})
		b.WriteString(strings.Repeat(" ", boardLeft+x))

		hi := min(radius, radius-r)
		for q := lo; q <= hi; q++ {
			c := hex.Hex{Q: q, R: r}
			view, _ := m.engine.State().Cell(c)
			b.WriteString(m.renderCell(view, hovering && c == hover))
			if q < hi {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderCell(v game.CellView, hovered bool) string {
	glyph, style := m.cellGlyph(v)
	if hovered && !m.finished {
		style = m.styles.Hover
	}
	return style.Render(glyph)
}

func (m *Model) cellGlyph(v game.CellView) (string, lipgloss.Style) {
	switch {
	case v.Covered && v.Flagged:
		return "F", m.styles.Flag
	case v.Covered:
		return "#", m.styles.Covered
	case v.Mine:
		return "*", m.styles.Mine
	case v.Adjacent > 0:
		return fmt.Sprintf("%d", v.Adjacent), m.styles.Numbers[v.Adjacent]
	default:
		return ".", m.styles.Blank
	}
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
