package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomvale/inkstone/internal/bridge"
	"github.com/tomvale/inkstone/internal/content"
	"github.com/tomvale/inkstone/internal/settings"
)

func newTestApp() (*App, *bridge.Bridge) {
	b := bridge.New()
	return NewApp(b, "/tmp/inkstone-test", settings.Settings{}), b
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStateSnapshotUpdatesDocuments(t *testing.T) {
	app, b := newTestApp()
	b.PostToUI(bridge.StateSnapshot{Documents: map[content.ID]string{
		content.CustomInstructions: "be brief",
	}})
	env := <-app.sub.Events
	model, _ := app.Update(hostEnvelopeMsg{env: env})
	app = model.(*App)
	if app.documents[content.CustomInstructions] != "be brief" {
		t.Fatalf("snapshot not applied: %+v", app.documents)
	}
}

func TestRefreshKeyDrivesCoordinatorAndBridge(t *testing.T) {
	app, b := newTestApp()
	hostSub := b.SubscribeHost()
	defer hostSub.Close()
	model, cmd := app.Update(keyMsg('r'))
	app = model.(*App)
	if !app.coord.Refreshing() {
		t.Fatalf("refresh key must set refreshing synchronously")
	}
	if cmd == nil {
		t.Fatalf("expected send command")
	}
	cmd()
	env := <-hostSub.Events
	req, ok := env.Msg.(bridge.RefreshRequest)
	if !ok || req.ID != content.CustomInstructions {
		t.Fatalf("expected refresh request for bound document, got %#v", env.Msg)
	}
}

func TestRefreshedResponseShowsBanner(t *testing.T) {
	app, b := newTestApp()
	model, _ := app.Update(keyMsg('r'))
	app = model.(*App)
	b.PostToUI(bridge.ContentRefreshed{ID: content.CustomInstructions, Success: true})
	env := <-app.sub.Events
	model, _ = app.Update(hostEnvelopeMsg{env: env})
	app = model.(*App)
	if app.coord.Refreshing() {
		t.Fatalf("response must clear refreshing")
	}
	if !app.coord.ShowSuccessBanner() {
		t.Fatalf("success response must show banner")
	}
}

func TestResponseForOtherDocumentLeavesAppUntouched(t *testing.T) {
	app, b := newTestApp()
	model, _ := app.Update(keyMsg('r'))
	app = model.(*App)
	b.PostToUI(bridge.ContentRefreshed{ID: content.PromptPreamble, Success: true})
	env := <-app.sub.Events
	model, _ = app.Update(hostEnvelopeMsg{env: env})
	app = model.(*App)
	if !app.coord.Refreshing() {
		t.Fatalf("mismatched response must not complete the refresh")
	}
}

func TestSelectionChangeRebindsCoordinator(t *testing.T) {
	app, _ := newTestApp()
	model, _ := app.Update(keyMsg('r'))
	app = model.(*App)
	app.menu.Select(1)
	app.syncSelection()
	if app.coord.BoundTo() != content.ProjectNotes {
		t.Fatalf("expected rebind to %s, got %s", content.ProjectNotes, app.coord.BoundTo())
	}
	if app.coord.Refreshing() {
		t.Fatalf("rebind must discard in-flight refresh tracking")
	}
}

func TestEditorFinishTriggersRefresh(t *testing.T) {
	app, b := newTestApp()
	hostSub := b.SubscribeHost()
	defer hostSub.Close()
	model, cmd := app.Update(editorFinishedMsg{})
	app = model.(*App)
	if !app.coord.Refreshing() {
		t.Fatalf("finished edit must start a refresh")
	}
	if cmd == nil {
		t.Fatalf("expected send command")
	}
	cmd()
	env := <-hostSub.Events
	if _, ok := env.Msg.(bridge.RefreshRequest); !ok {
		t.Fatalf("expected refresh request after edit, got %#v", env.Msg)
	}
}
