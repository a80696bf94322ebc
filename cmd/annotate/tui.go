package annotatecmder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/marginaliaco/annotate/pkg/annotation"
	"github.com/marginaliaco/annotate/pkg/store"
	"github.com/marginaliaco/annotate/pkg/utils"
)

func init() {
	// Force TrueColor profile to fix lipgloss color detection issue
	// See: https://github.com/charmbracelet/lipgloss/issues/439
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.TrueColor))
	renderer.SetColorProfile(termenv.TrueColor)
	lipgloss.SetDefaultRenderer(renderer)
}

type listView int

const (
	viewBrowsing listView = iota
	viewConfirming
)

// ageColumnWidth right-aligns the relative age column; "59 minutes ago" is
// the widest regular rendering.
const ageColumnWidth = 14

type listModel struct {
	annotations  []annotation.Annotation
	cursor       int
	confirmIndex int
	confirmYes   bool
	view         listView
	width        int
	height       int
	previewWidth int
	dirty        bool
	now          func() time.Time
	keys         listKeyMap
	help         help.Model
}

var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	listMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	listAgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	listDividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	listSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")).Bold(true)
	listContentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	confirmTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	confirmBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("237")).Padding(1, 2)
	choiceStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	choiceActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("203")).Bold(true)
)

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Yes    key.Binding
	No     key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Delete, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Down, k.Up, k.Delete}, {k.Yes, k.No, k.Quit}}
}

func defaultListKeyMap() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Delete: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "delete")),
		Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		No:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// runListTUI owns the in-memory collection for the duration of the session
// and hands it back to the driver on exit. Save happens exactly once, and
// only when a deletion occurred.
func runListTUI(ctx context.Context, driver store.Driver, annotations []annotation.Annotation, previewWidth int) error {
	model, err := newListModel(annotations, previewWidth, time.Now)
	if err != nil {
		return err
	}

	program := bubbletea.NewProgram(model,
		bubbletea.WithContext(ctx),
		bubbletea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return err
	}

	finalModel, ok := final.(listModel)
	if !ok || !finalModel.dirty {
		return nil
	}

	return driver.Save(ctx, finalModel.annotations)
}

// newListModel validates the collection before the event loop starts: a
// future-dated record would render an undefined age, so it is rejected here
// as a corrupt-store class error.
func newListModel(annotations []annotation.Annotation, previewWidth int, now func() time.Time) (listModel, error) {
	current := now()
	for i, a := range annotations {
		if _, err := a.Age(current); err != nil {
			return listModel{}, fmt.Errorf("annotation %d: %w", i+1, err)
		}
	}

	return listModel{
		annotations:  annotations,
		previewWidth: previewWidth,
		now:          now,
		keys:         defaultListKeyMap(),
		help:         help.New(),
	}, nil
}

func (m listModel) Init() bubbletea.Cmd {
	return nil
}

func (m listModel) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case bubbletea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m listModel) handleKey(msg bubbletea.KeyMsg) (bubbletea.Model, bubbletea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, bubbletea.Quit
	}

	switch m.view {
	case viewBrowsing:
		return m.handleBrowsingKey(msg)
	case viewConfirming:
		return m.handleConfirmingKey(msg)
	}

	return m, nil
}

func (m listModel) handleBrowsingKey(msg bubbletea.KeyMsg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg.String() {
	case "q":
		return m, bubbletea.Quit
	case "j", "down":
		return m.moveCursor(1)
	case "k", "up":
		return m.moveCursor(-1)
	case "enter":
		if len(m.annotations) == 0 {
			return m, nil
		}
		m.view = viewConfirming
		m.confirmIndex = m.cursor
		m.confirmYes = false
		return m, nil
	}

	return m, nil
}

func (m listModel) handleConfirmingKey(msg bubbletea.KeyMsg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg.String() {
	case "y":
		return m.deleteConfirmed()
	case "n", "esc":
		m.view = viewBrowsing
		return m, nil
	case "left", "right", "tab", "h", "l":
		m.confirmYes = !m.confirmYes
		return m, nil
	case "enter":
		if m.confirmYes {
			return m.deleteConfirmed()
		}
		m.view = viewBrowsing
		return m, nil
	}

	return m, nil
}

// deleteConfirmed removes the captured index from the in-memory collection.
// Displayed order always mirrors collection order, so the list index is the
// collection index.
func (m listModel) deleteConfirmed() (bubbletea.Model, bubbletea.Cmd) {
	i := m.confirmIndex
	if i < 0 || i >= len(m.annotations) {
		m.view = viewBrowsing
		return m, nil
	}

	m.annotations = append(m.annotations[:i:i], m.annotations[i+1:]...)
	m.dirty = true
	m.cursor = clamp(m.cursor, len(m.annotations)-1)
	m.view = viewBrowsing

	return m, nil
}

func (m listModel) moveCursor(delta int) (bubbletea.Model, bubbletea.Cmd) {
	if len(m.annotations) == 0 {
		return m, nil
	}
	m.cursor = clamp(m.cursor+delta, len(m.annotations)-1)
	return m, nil
}

func (m listModel) View() string {
	switch m.view {
	case viewConfirming:
		return m.viewConfirming()
	default:
		return m.viewBrowsing()
	}
}

func (m listModel) viewBrowsing() string {
	header := listTitleStyle.Render("annotations")
	count := listMutedStyle.Render(fmt.Sprintf("%d notes", len(m.annotations)))

	lines := make([]string, 0, len(m.annotations)+6)
	lines = append(lines, header+"  "+count, m.renderRule(), "")

	if len(m.annotations) == 0 {
		lines = append(lines,
			listContentStyle.Render("You have not registered any annotation!"),
			listMutedStyle.Render("Try: annotate [text]"),
		)
	} else {
		now := m.now()
		for i, a := range m.annotations {
			lines = append(lines, m.renderRow(i, a, now))
		}
	}

	lines = append(lines, "", m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

func (m listModel) renderRow(i int, a annotation.Annotation, now time.Time) string {
	age, err := a.Age(now)
	if err != nil {
		// Records are validated before the session starts and time only
		// moves forward, so this branch is unreachable in practice.
		age = "?"
	}

	content := a.Content
	if m.previewWidth > 0 {
		content = utils.Truncate(content, m.previewWidth)
	}

	row := fmt.Sprintf("%*s | %s", ageColumnWidth, age, content)
	if i == m.cursor {
		return listSelectedStyle.Render("> " + row)
	}
	return "  " + listAgeStyle.Render(fmt.Sprintf("%*s", ageColumnWidth, age)) +
		listDividerStyle.Render(" | ") + listContentStyle.Render(content)
}

func (m listModel) viewConfirming() string {
	a := m.annotations[m.confirmIndex]
	age, err := a.Age(m.now())
	if err != nil {
		age = "?"
	}

	yes := choiceStyle.Render("[ Yes ]")
	no := choiceActiveStyle.Render("[ No ]")
	if m.confirmYes {
		yes = choiceActiveStyle.Render("[ Yes ]")
		no = choiceStyle.Render("[ No ]")
	}

	body := strings.Join([]string{
		confirmTitleStyle.Render("Delete this annotation?"),
		"",
		listAgeStyle.Render(age) + listDividerStyle.Render(" | ") + listContentStyle.Render(a.Content),
		"",
		yes + "  " + no,
		"",
		listMutedStyle.Render("y confirm · n cancel · arrows switch · enter choose"),
	}, "\n")

	return confirmBoxStyle.Render(body)
}

func (m listModel) renderRule() string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	return listDividerStyle.Render(strings.Repeat("─", width))
}

func clamp(v, maxIndex int) int {
	if maxIndex < 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > maxIndex {
		return maxIndex
	}
	return v
}
