package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/errors"
	"github.com/matzehuels/klondike/pkg/game"
	"github.com/matzehuels/klondike/pkg/geom"
)

// headerLines is the number of lines rendered above the table canvas.
// Mouse coordinates are offset by this much before hit-testing.
const headerLines = 2

// =============================================================================
// playModel - interactive game
// =============================================================================

// playModel is the bubbletea model for an interactive game. All game state
// lives in the Table; the model only tracks presentation state (cursor,
// picked-up run, status line).
type playModel struct {
	table  *game.Table
	cfg    Config
	logger *log.Logger

	refs   []game.Ref
	cursor int
	depth  int // run depth the next pickup will use
	src    *selection
	status string
}

func newPlayModel(cfg Config, logger *log.Logger) (playModel, error) {
	table, err := newTable(cfg, logger)
	if err != nil {
		return playModel{}, err
	}
	return playModel{
		table:  table,
		cfg:    cfg,
		logger: logger,
		refs:   table.Refs(),
		depth:  1,
	}, nil
}

// newTable deals a fresh game, drawing a time-based seed when the config
// does not pin one.
func newTable(cfg Config, logger *log.Logger) (*game.Table, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.New(game.Config{
		Seed:      seed,
		DrawCount: cfg.DrawCount,
		Layout:    cfg.Layout,
		Logger:    logger,
	})
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
			m.depth = 1
		}
	case "right", "l":
		if m.cursor < len(m.refs)-1 {
			m.cursor++
			m.depth = 1
		}
	case "up", "k":
		m.depth = m.clampDepth(m.depth + 1)
	case "down", "j":
		m.depth = m.clampDepth(m.depth - 1)
	case "enter", " ":
		m = m.activate(m.refs[m.cursor], m.depth)
	case "d":
		m = m.draw()
	case "a":
		moved := m.table.AutoFoundation()
		m.status = fmt.Sprintf("moved %d cards to the foundations", moved)
		m = m.checkWin()
	case "n":
		fresh, err := newPlayModel(m.cfg, m.logger)
		if err != nil {
			m.status = errors.UserMessage(err)
			return m, nil
		}
		fresh.status = "new deal"
		return fresh, nil
	}
	return m, nil
}

func (m playModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	pt := geom.Point{X: float64(msg.X), Y: float64(msg.Y - headerLines)}
	ref, ok := m.table.PileAt(pt)
	if !ok {
		return m, nil
	}
	for i, r := range m.refs {
		if r == ref {
			m.cursor = i
			break
		}
	}
	return m.activate(ref, m.pickDepth(ref, pt)), nil
}

// pickDepth translates a click inside a tableau fan into a run depth: the
// topmost card whose rectangle contains the point, and everything above
// it. Other zones always move a single card.
func (m playModel) pickDepth(ref game.Ref, pt geom.Point) int {
	if ref.Zone != game.ZoneTableau {
		return 1
	}
	p, err := m.table.Pile(ref)
	if err != nil {
		return 1
	}
	cards := p.Cards()
	for i := len(cards) - 1; i >= 0; i-- {
		if p.CardRect(cards[i]).Contains(pt) {
			return m.clampDepthFor(ref, len(cards)-i)
		}
	}
	return 1
}

// activate is the shared select-or-move step for keyboard and mouse: the
// first activation picks cards up, the second tries to place them.
func (m playModel) activate(ref game.Ref, depth int) playModel {
	if ref.Zone == game.ZoneStock {
		m.src = nil
		return m.draw()
	}

	if m.src == nil {
		p, err := m.table.Pile(ref)
		if err != nil || p.Empty() {
			return m
		}
		m.src = &selection{ref: ref, depth: depth}
		m.status = fmt.Sprintf("picked up %d from %s", depth, ref)
		return m
	}

	if m.src.ref == ref {
		m.src = nil
		m.status = "put back"
		return m
	}

	err := m.table.Move(m.src.ref, ref, m.src.depth)
	m.src = nil
	m.depth = 1
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.status = fmt.Sprintf("moved to %s", ref)
	return m.checkWin()
}

func (m playModel) draw() playModel {
	if err := m.table.Draw(); err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.status = "drew from stock"
	return m
}

func (m playModel) checkWin() playModel {
	if m.table.Won() {
		m.status = fmt.Sprintf("you won in %d moves!", m.table.Moves())
	}
	return m
}

// clampDepth bounds a requested run depth for the pile under the cursor.
func (m playModel) clampDepth(d int) int {
	return m.clampDepthFor(m.refs[m.cursor], d)
}

func (m playModel) clampDepthFor(ref game.Ref, d int) int {
	max := 1
	if ref.Zone == game.ZoneTableau {
		if fu := m.table.FaceUp(ref.Index); fu > 1 {
			max = fu
		}
	}
	if d < 1 {
		return 1
	}
	if d > max {
		return max
	}
	return d
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("klondike"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  moves %d", m.table.Moves())))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ pile  ↑/↓ run  ⏎ pick/place  d draw  a auto  n new  q quit"))
	b.WriteString("\n")

	b.WriteString(renderTable(m.table, m.src, &m.refs[m.cursor]))

	if m.table.Won() {
		b.WriteString(styleWin.Render(m.status))
	} else {
		b.WriteString(styleStatus.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// runPlay starts the interactive TUI and blocks until the player quits.
func runPlay(cfg Config, logger *log.Logger) error {
	m, err := newPlayModel(cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
