package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"routine/internal/engine"
	"routine/internal/period"
	"routine/internal/ui"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputDaily
	inputWeekly
	inputAlternative
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	date  time.Time
	board engine.Board

	selected int
	// focusID is re-selected after the next refresh, when still present.
	focusID int64

	mode  inputMode
	input textinput.Model
	// target is the task an alternative is being typed for.
	target int64

	lastLog string
	// busy is set while a command is using svc; no other command starts
	// until it reports back.
	busy    bool
	loading bool
}

type loadedMsg struct {
	board engine.Board
}

type mutatedMsg struct {
	board   engine.Board
	focusID int64
	log     string
	err     error
}

// line is one selectable row across both sections.
type line struct {
	kind engine.ListKind
	row  engine.Row
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 40
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		date:    svc.Today(),
		input:   ti,
		busy:    true,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		return loadedMsg{board: m.svc.View(date)}
	}
}

// mutateCmd runs op and returns the refreshed board with a status line.
func (m boardModel) mutateCmd(focusID int64, op func() (string, error)) tea.Cmd {
	date := m.date
	return func() tea.Msg {
		log, err := op()
		return mutatedMsg{board: m.svc.View(date), focusID: focusID, log: log, err: err}
	}
}

func (m boardModel) lines() []line {
	out := make([]line, 0, len(m.board.Daily.Rows)+len(m.board.Weekly.Rows))
	for _, r := range m.board.Daily.Rows {
		out = append(out, line{kind: engine.Daily, row: r})
	}
	for _, r := range m.board.Weekly.Rows {
		out = append(out, line{kind: engine.Weekly, row: r})
	}
	return out
}

func (m boardModel) current() (line, bool) {
	lines := m.lines()
	if m.selected < 0 || m.selected >= len(lines) {
		return line{}, false
	}
	return lines[m.selected], true
}

func (m *boardModel) setBoard(b engine.Board) {
	m.board = b
	lines := m.lines()
	if m.focusID != 0 {
		for i, l := range lines {
			if l.row.ID == m.focusID {
				m.selected = i
				break
			}
		}
		m.focusID = 0
	}
	if m.selected >= len(lines) {
		m.selected = len(lines) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) shiftDate(days int) (boardModel, tea.Cmd) {
	if days == 0 {
		m.date = m.svc.Today()
	} else {
		m.date = period.AddDays(m.date, days)
	}
	m.busy = true
	m.loading = true
	return m, m.loadCmd()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.busy = false
		m.loading = false
		m.setBoard(msg.board)
		return m, nil
	case mutatedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = ui.IconError + " " + msg.err.Error()
		} else if msg.log != "" {
			m.lastLog = msg.log
		}
		m.focusID = msg.focusID
		m.setBoard(msg.board)
		return m, nil
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	if m.mode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.lines())-1 {
			m.selected++
		}
		return m, nil
	case "a":
		return m.startInput(inputDaily, "New daily task (name, alt, ...): ")
	case "w":
		return m.startInput(inputWeekly, "New weekly task (name, alt, ...): ")
	}

	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		return m.shiftDate(-1)
	case "right", "l":
		return m.shiftDate(1)
	case "t":
		return m.shiftDate(0)
	case "r":
		m.busy = true
		m.loading = true
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Clock().Now().Format("15:04:05"))
		return m, m.loadCmd()
	}

	cur, ok := m.current()
	if !ok {
		return m, nil
	}
	id, kind, name := cur.row.ID, cur.kind, cur.row.Name

	switch msg.String() {
	case "c", " ":
		date := m.date
		m.busy = true
		return m, m.mutateCmd(id, func() (string, error) {
			if _, err := m.svc.Toggle(m.ctx, kind, id, date); err != nil {
				return "", err
			}
			if cur.row.Done {
				return fmt.Sprintf("%s Undone: %s", ui.IconTodo, name), nil
			}
			return fmt.Sprintf("%s Done: %s", ui.IconDone, name), nil
		})
	case "K", "J", "shift+up", "shift+down":
		dir := 1
		if msg.String() == "K" || msg.String() == "shift+up" {
			dir = -1
		}
		m.busy = true
		return m, m.mutateCmd(id, func() (string, error) {
			moved, err := m.svc.Move(m.ctx, kind, id, dir)
			if err != nil || !moved {
				return "", err
			}
			return fmt.Sprintf("%s Moved %s", ui.IconMove, name), nil
		})
	case "s":
		if len(cur.row.Alternatives) == 0 {
			m.lastLog = name + " has no alternatives (press A to add one)."
			return m, nil
		}
		next := cur.row.Alternatives[0]
		m.busy = true
		return m, m.mutateCmd(id, func() (string, error) {
			if _, err := m.svc.Swap(m.ctx, kind, id, next); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s %s → %s", ui.IconSwap, name, next), nil
		})
	case "A":
		m.target = id
		return m.startInput(inputAlternative, "Alternative for "+name+": ")
	case "d", "delete":
		m.busy = true
		return m, m.mutateCmd(0, func() (string, error) {
			if _, err := m.svc.Remove(m.ctx, kind, id); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s Removed %s", ui.IconTrash, name), nil
		})
	}
	return m, nil
}

func (m boardModel) startInput(mode inputMode, prompt string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		m.target = 0
		m.lastLog = "Cancelled."
		return m, nil
	case "enter":
		if m.busy {
			m.lastLog = "Still saving, press enter again."
			return m, nil
		}
		mode, value, target := m.mode, m.input.Value(), m.target
		m.mode = inputNone
		m.input.Blur()
		m.target = 0
		return m.submit(mode, value, target)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) submit(mode inputMode, value string, target int64) (tea.Model, tea.Cmd) {
	switch mode {
	case inputDaily, inputWeekly:
		kind := engine.Daily
		if mode == inputWeekly {
			kind = engine.Weekly
		}
		parts := engine.SplitAlternatives(value)
		if len(parts) == 0 {
			m.lastLog = ui.IconWarn + " " + engine.ErrEmptyName.Error()
			return m, nil
		}
		m.busy = true
		return m, func() tea.Msg {
			t, err := m.svc.Add(m.ctx, kind, parts[0], parts[1:])
			log := ""
			if err == nil {
				log = fmt.Sprintf("%s Added %s task: %s", ui.IconPlus, kind, t.Name)
			}
			return mutatedMsg{board: m.svc.View(m.date), focusID: t.ID, log: log, err: err}
		}
	case inputAlternative:
		cur, ok := m.current()
		if !ok || cur.row.ID != target {
			return m, nil
		}
		kind := cur.kind
		candidate := strings.TrimSpace(value)
		m.busy = true
		return m, m.mutateCmd(target, func() (string, error) {
			added, err := m.svc.AddAlternative(m.ctx, kind, target, candidate)
			if err != nil || !added {
				return "", err
			}
			return fmt.Sprintf("%s Added alternative %q to %s", ui.IconPlus, candidate, cur.row.Name), nil
		})
	}
	return m, nil
}
