package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

type editMode int

const (
	modeBrowse editMode = iota
	modeEditReps
	modeEditWeight
)

// rowRef addresses one selectable row in the editor: a set within an
// exercise, or the exercise header itself (setIdx == -1).
type rowRef struct {
	exIdx  int
	setIdx int
}

type sessionReloadedMsg struct {
	session *domain.Session
	err     error
}

type tipFetchedMsg struct {
	exercise string
	text     string
}

type finishedMsg struct {
	session *domain.Session
	err     error
}

// sessionModel is the interactive set-logging editor for one session.
type sessionModel struct {
	app     *App
	session *domain.Session

	rows   []rowRef
	cursor int
	mode   editMode

	input       textinput.Model
	pendingReps int

	spin        spinner.Model
	fetchingTip bool
	tip         string
	tipExercise string

	err  error
	done bool
}

func newSessionModel(app *App, s *domain.Session) *sessionModel {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 10

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorYellow)

	m := &sessionModel{
		app:     app,
		session: s,
		input:   ti,
		spin:    sp,
	}
	m.rebuildRows()
	return m
}

func (m *sessionModel) rebuildRows() {
	m.rows = m.rows[:0]
	for i, ex := range m.session.Exercises {
		m.rows = append(m.rows, rowRef{exIdx: i, setIdx: -1})
		for j := range ex.Sets {
			m.rows = append(m.rows, rowRef{exIdx: i, setIdx: j})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *sessionModel) current() rowRef {
	if len(m.rows) == 0 {
		return rowRef{setIdx: -1}
	}
	return m.rows[m.cursor]
}

func (m *sessionModel) currentExercise() *domain.SessionExercise {
	r := m.current()
	if r.exIdx >= len(m.session.Exercises) {
		return nil
	}
	return &m.session.Exercises[r.exIdx]
}

func (m *sessionModel) currentSet() *domain.SetEntry {
	r := m.current()
	ex := m.currentExercise()
	if ex == nil || r.setIdx < 0 || r.setIdx >= len(ex.Sets) {
		return nil
	}
	return &ex.Sets[r.setIdx]
}

func (m *sessionModel) Init() tea.Cmd {
	return nil
}

func (m *sessionModel) reload(mutate func(ctx context.Context) (*domain.Session, error)) tea.Cmd {
	return func() tea.Msg {
		s, err := mutate(context.Background())
		return sessionReloadedMsg{session: s, err: err}
	}
}

func (m *sessionModel) fetchTip(name string) tea.Cmd {
	return func() tea.Msg {
		text := m.app.Coach.ExerciseTip(context.Background(), name)
		return tipFetchedMsg{exercise: name, text: text}
	}
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session
		m.err = nil
		m.rebuildRows()
		return m, nil

	case tipFetchedMsg:
		m.fetchingTip = false
		m.tip = msg.text
		m.tipExercise = msg.exercise
		return m, nil

	case finishedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.fetchingTip {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *sessionModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		// Save-and-exit snapshots the running total.
		if err := m.app.Workouts.SaveProgress(context.Background(), m.session); err != nil {
			m.err = err
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "a":
		ex := m.currentExercise()
		if ex == nil {
			return m, nil
		}
		id := ex.ExerciseID
		return m, m.reload(func(ctx context.Context) (*domain.Session, error) {
			return m.app.Workouts.AddSet(ctx, m.session.ID, id)
		})

	case "d":
		set := m.currentSet()
		ex := m.currentExercise()
		if set == nil || ex == nil {
			return m, nil
		}
		exID, setID := ex.ExerciseID, set.ID
		return m, m.reload(func(ctx context.Context) (*domain.Session, error) {
			return m.app.Workouts.RemoveSet(ctx, m.session.ID, exID, setID)
		})

	case " ":
		set := m.currentSet()
		ex := m.currentExercise()
		if set == nil || ex == nil {
			return m, nil
		}
		exID, setID := ex.ExerciseID, set.ID
		toggled := !set.IsCompleted
		return m, m.reload(func(ctx context.Context) (*domain.Session, error) {
			return m.app.Workouts.UpdateSet(ctx, m.session.ID, exID, setID, domain.SetPatch{IsCompleted: &toggled})
		})

	case "enter":
		set := m.currentSet()
		if set == nil {
			return m, nil
		}
		m.mode = modeEditReps
		m.input.SetValue(fmt.Sprintf("%d", set.Reps))
		m.input.Focus()
		return m, textinput.Blink

	case "t":
		ex := m.currentExercise()
		if ex == nil || m.fetchingTip {
			return m, nil
		}
		m.fetchingTip = true
		m.tip = ""
		return m, tea.Batch(m.spin.Tick, m.fetchTip(ex.Name))

	case "f":
		return m, func() tea.Msg {
			s, err := m.app.Workouts.Finish(context.Background(), m.session.ID)
			return finishedMsg{session: s, err: err}
		}
	}

	return m, nil
}

func (m *sessionModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeEditReps:
			m.pendingReps = parseRepsOrZero(value)
			set := m.currentSet()
			m.mode = modeEditWeight
			if set != nil {
				m.input.SetValue(formatFloat(set.Weight))
			} else {
				m.input.SetValue("")
			}
			return m, nil

		case modeEditWeight:
			weight := parseWeightOrZero(value)
			reps := m.pendingReps
			set := m.currentSet()
			ex := m.currentExercise()
			m.mode = modeBrowse
			m.input.Blur()
			if set == nil || ex == nil {
				return m, nil
			}
			exID, setID := ex.ExerciseID, set.ID
			return m, m.reload(func(ctx context.Context) (*domain.Session, error) {
				return m.app.Workouts.UpdateSet(ctx, m.session.ID, exID, setID, domain.SetPatch{
					Reps:   &reps,
					Weight: &weight,
				})
			})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *sessionModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	title := m.app.Catalog.TemplateTitle(m.session.TemplateID)
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		formatter.Bold(title),
		formatter.Dim(formatter.HumanDate(m.session.Date)),
		formatter.FormatVolume(m.session.ComputeTotalVolume(), string(m.session.Unit))))
	b.WriteString("\n")

	for _, r := range m.rowsView() {
		b.WriteString(r)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeEditReps:
		b.WriteString("\nReps: " + m.input.View() + "\n")
	case modeEditWeight:
		b.WriteString(fmt.Sprintf("\nReps: %d  Weight: %s\n", m.pendingReps, m.input.View()))
	}

	if m.fetchingTip {
		b.WriteString("\n" + m.spin.View() + " Asking the coach...\n")
	} else if m.tip != "" {
		b.WriteString("\n" + formatter.RenderBox("Tip: "+m.tipExercise, m.tip) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · enter edit · space done · a add set · d delete · t tip · f finish · q save & quit") + "\n")
	return b.String()
}

func (m *sessionModel) rowsView() []string {
	out := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		ex := m.session.Exercises[r.exIdx]
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}

		if r.setIdx == -1 {
			out = append(out, fmt.Sprintf("%s%s %s", prefix, formatter.Bold(ex.Name), formatter.MuscleGroupBadge(ex.MuscleGroup)))
			continue
		}

		set := ex.Sets[r.setIdx]
		out = append(out, fmt.Sprintf("%s  %s set %d: %d x %s = %s",
			prefix,
			formatter.CheckMark(set.IsCompleted),
			r.setIdx+1,
			set.Reps,
			formatter.FormatWeight(set.Weight, string(m.session.Unit)),
			formatter.FormatVolume(set.Volume, string(m.session.Unit))))
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
