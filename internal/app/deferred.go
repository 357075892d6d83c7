package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"habhook/internal/types"
)

type actionKind int

const (
	actionReload actionKind = iota
	actionSave
	actionDelete
)

// action is a transport-issuing operation held as data so it can sit in a
// confirmation prompt or wait out a rate-limit window and replay unchanged.
// At most one is pending at a time; any newer transport-issuing operation
// overwrites it.
type action struct {
	kind    actionKind
	webhook types.Webhook // actionSave
	save    saveKind      // actionSave
	id      string        // actionDelete
}

func reloadAction() action {
	return action{kind: actionReload}
}

func saveAction(webhook types.Webhook, kind saveKind) action {
	return action{kind: actionSave, webhook: webhook, save: kind}
}

func deleteAction(id string) action {
	return action{kind: actionDelete, id: id}
}

// run issues the transport call for an action and re-registers it as the
// pending deferred action, so a rate-limited replay stays replayable.
func (m *Model) run(a action) tea.Cmd {
	if m.dash == nil {
		return nil
	}
	m.dash.pending = &a
	switch a.kind {
	case actionSave:
		return saveWebhookCmd(m.webhookAPI, a.webhook, a.save)
	case actionDelete:
		return deleteWebhookCmd(m.webhookAPI, a.id)
	default:
		return reloadWebhooksCmd(m.userAPI)
	}
}
