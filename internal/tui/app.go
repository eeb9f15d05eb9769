// internal/tui/app.go
//
// The terminal UI for inkstone, following bubbletea's Elm architecture: one
// model, messages in, new model and commands out. The host side is reached
// only through the bridge; host→UI traffic arrives via a listen command that
// re-arms itself after every envelope.

package tui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomvale/inkstone/internal/bridge"
	"github.com/tomvale/inkstone/internal/content"
	"github.com/tomvale/inkstone/internal/settings"
)

var docTitles = map[content.ID]string{
	content.CustomInstructions: "Custom Instructions",
	content.ProjectNotes:       "Project Notes",
	content.PromptPreamble:     "Prompt Preamble",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// docItem implements list.Item for one content document.
type docItem struct {
	id content.ID
}

func (i docItem) Title() string       { return docTitles[i.id] }
func (i docItem) Description() string { return i.id.FileName() }
func (i docItem) FilterValue() string { return string(i.id) }

type hostEnvelopeMsg struct {
	env bridge.Envelope
}

type hostClosedMsg struct{}

type editorFinishedMsg struct {
	err error
}

// App is the root model: the document menu, a preview of the selected
// document, and the refresh coordinator bound to the current selection.
type App struct {
	bridge      *bridge.Bridge
	sub         bridge.Subscription
	settingsDir string
	cfg         settings.Settings

	menu      list.Model
	spin      spinner.Model
	coord     Coordinator
	documents map[content.ID]string

	statusErr string
	width     int
	height    int
}

// NewApp builds the UI model and subscribes it to host→UI traffic.
func NewApp(b *bridge.Bridge, settingsDir string, cfg settings.Settings) *App {
	ids := content.All()
	items := make([]list.Item, len(ids))
	for i, id := range ids {
		items[i] = docItem{id: id}
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Content Documents"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		bridge:      b,
		sub:         b.SubscribeUI(),
		settingsDir: settingsDir,
		cfg:         cfg,
		menu:        menu,
		spin:        spin,
		coord:       NewCoordinator(ids[0], b.PostToHost, cfg.BannerDuration()),
		documents:   map[content.ID]string{},
	}
}

// Init starts the host listener and the spinner.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.listenToHost(), a.spin.Tick)
}

// listenToHost waits for the next host→UI envelope. The command is re-armed
// from Update after each receipt; a closed subscription ends the loop.
func (a *App) listenToHost() tea.Cmd {
	sub := a.sub
	return func() tea.Msg {
		env, ok := <-sub.Events
		if !ok {
			return hostClosedMsg{}
		}
		return hostEnvelopeMsg{env: env}
	}
}

// Update routes messages to the menu, the coordinator, and the spinner.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width/2, msg.Height-4)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			a.sub.Close()
			return a, tea.Quit
		case "r":
			var cmd tea.Cmd
			a.coord, cmd = a.coord.Refresh()
			return a, cmd
		case "e":
			return a, a.editSelected()
		}
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		a.syncSelection()
		return a, cmd

	case hostEnvelopeMsg:
		cmd := a.handleHostMessage(msg.env.Msg)
		return a, tea.Batch(cmd, a.listenToHost())

	case hostClosedMsg:
		return a, nil

	case bannerExpiredMsg:
		var cmd tea.Cmd
		a.coord, cmd = a.coord.Update(msg)
		return a, cmd

	case editorFinishedMsg:
		if msg.err != nil {
			a.statusErr = msg.err.Error()
			return a, nil
		}
		a.statusErr = ""
		var cmd tea.Cmd
		a.coord, cmd = a.coord.Refresh()
		return a, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleHostMessage applies one host→UI message to the model.
func (a *App) handleHostMessage(msg bridge.Message) tea.Cmd {
	switch msg := msg.(type) {
	case bridge.StateSnapshot:
		a.documents = msg.Documents
		return nil
	case bridge.ContentRefreshed:
		var cmd tea.Cmd
		a.coord, cmd = a.coord.Update(msg)
		return cmd
	}
	return nil
}

// syncSelection rebinds the coordinator when the menu selection moves to a
// different document, discarding any stale refresh tracking and banner timer.
func (a *App) syncSelection() {
	id := a.selectedID()
	if id != a.coord.BoundTo() {
		a.coord = a.coord.Rebind(id)
	}
}

func (a *App) selectedID() content.ID {
	item, ok := a.menu.SelectedItem().(docItem)
	if !ok {
		return content.All()[0]
	}
	return item.id
}

// editSelected suspends the TUI and runs the configured editor on the
// selected document; a refresh follows so the host normalizes the result.
func (a *App) editSelected() tea.Cmd {
	id := a.selectedID()
	path, ok := content.Resolve(a.settingsDir, id)
	if !ok {
		return nil
	}
	cmd := exec.Command(a.cfg.EditorCommand(), path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the menu beside a preview of the selected document, with a
// one-line status strip underneath.
func (a *App) View() string {
	header := titleStyle.Render("inkstone")
	previewWidth := a.width - a.width/2 - 4
	if previewWidth < 20 {
		previewWidth = 20
	}
	preview := a.documents[a.selectedID()]
	if strings.TrimSpace(preview) == "" {
		preview = hintStyle.Render("(empty)")
	}
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.menu.View(),
		previewStyle.Width(previewWidth).Render(preview),
	)
	return strings.Join([]string{header, body, a.statusLine()}, "\n")
}

func (a *App) statusLine() string {
	if a.statusErr != "" {
		return errStyle.Render(fmt.Sprintf("editor failed: %s", a.statusErr))
	}
	if a.coord.Refreshing() {
		return a.spin.View() + " Refreshing…"
	}
	if a.coord.ShowSuccessBanner() {
		return bannerStyle.Render("✓ Content refreshed")
	}
	return hintStyle.Render("r refresh · e edit · ↑/↓ select · q quit")
}
