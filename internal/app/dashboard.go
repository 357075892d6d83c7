package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"habhook/internal/api"
	"habhook/internal/types"
)

type listState int

const (
	listReady listState = iota
	listRefreshing
	listSaving
	listFailed
)

type saveKind int

const (
	saveCreate saveKind = iota
	saveUpdate
	saveDelete
)

// bannerError is the one-line failure surfaced above the list. It is born
// unseen, demoted to seen by the next dashboard action, and cleared by the
// next successful reload.
type bannerError struct {
	text string
	seen bool
}

type groupEntry struct {
	name    string
	err     string
	pending bool
}

// dashboard is the workspace that exists only while authenticated. It is
// created whole from the login seed and discarded on logout; nothing in it
// survives a session.
type dashboard struct {
	state    listState
	saving   saveKind
	failText string
	webhooks []types.Webhook
	selected int
	partyID  string
	groups   map[string]groupEntry
	banner   *bannerError
	editor   *editorController
	confirm  *confirmController
	pending  *action
}

func newDashboard(seed *api.UserSeed) *dashboard {
	d := &dashboard{
		state:  listReady,
		groups: map[string]groupEntry{},
	}
	if seed != nil {
		d.webhooks = seed.Webhooks
		d.partyID = seed.PartyID
	}
	return d
}

func (d *dashboard) selectedWebhook() (types.Webhook, bool) {
	if d.selected < 0 || d.selected >= len(d.webhooks) {
		return types.Webhook{}, false
	}
	return d.webhooks[d.selected], true
}

func (d *dashboard) clampSelection() {
	if d.selected >= len(d.webhooks) {
		d.selected = len(d.webhooks) - 1
	}
	if d.selected < 0 {
		d.selected = 0
	}
}

// touchBanner implicitly acknowledges the current banner: any dashboard
// action after the failure means the user has seen it.
func (d *dashboard) touchBanner() {
	if d.banner != nil {
		d.banner.seen = true
	}
}

func (d *dashboard) busy() bool {
	return d.state == listRefreshing || d.state == listSaving
}

func (m *Model) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	d := m.dash
	if d.editor != nil {
		return m.updateEditor(msg)
	}
	if d.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch msg.String() {
	case "up", "k":
		d.touchBanner()
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		d.touchBanner()
		if d.selected < len(d.webhooks)-1 {
			d.selected++
		}
	case "r":
		return m.beginReload()
	case "n":
		d.touchBanner()
		d.editor = newEditorController(nil, m.width)
	case "enter", "e":
		d.touchBanner()
		if webhook, ok := d.selectedWebhook(); ok {
			d.editor = newEditorController(&webhook, m.width)
		}
	case "d":
		return m.requestDelete()
	case "c":
		d.touchBanner()
		if webhook, ok := d.selectedWebhook(); ok {
			return copyToClipboardCmd("url", webhook.URL)
		}
	case "i":
		d.touchBanner()
		if webhook, ok := d.selectedWebhook(); ok && webhook.Persisted() {
			return copyToClipboardCmd("id", webhook.ID)
		}
	case "esc":
		m.logout()
	}
	return nil
}

func (m *Model) beginReload() tea.Cmd {
	if m.blocked() {
		m.status = m.rateLimitNotice()
		return nil
	}
	d := m.dash
	d.touchBanner()
	d.state = listRefreshing
	m.status = ""
	return tea.Batch(m.run(reloadAction()), m.loader.Tick)
}

func (m *Model) requestDelete() tea.Cmd {
	d := m.dash
	d.touchBanner()
	webhook, ok := d.selectedWebhook()
	if !ok || !webhook.Persisted() {
		// Unsaved entries have nothing to delete server-side.
		return nil
	}
	label := webhook.Label
	if strings.TrimSpace(label) == "" {
		label = webhook.URL
	}
	d.confirm = newConfirmController(
		"Delete webhook",
		fmt.Sprintf("Delete webhook %q? This cannot be undone.", label),
		deleteAction(webhook.ID),
	)
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	d := m.dash
	handled, choice := d.confirm.HandleKey(msg)
	if !handled {
		return nil
	}
	switch choice {
	case confirmChoiceCancel:
		d.confirm = nil
	case confirmChoiceConfirm:
		return m.confirmAccept()
	}
	return nil
}

// confirmAccept replays the action stored in the confirmation prompt. Only
// deletes are confirmed today, but the prompt carries the action as data so
// this stays true for anything stored in it.
func (m *Model) confirmAccept() tea.Cmd {
	if m.blocked() {
		m.status = m.rateLimitNotice()
		return nil
	}
	d := m.dash
	accepted := d.confirm.accept
	d.confirm = nil
	if accepted.kind == actionDelete {
		d.state = listSaving
		d.saving = saveDelete
	}
	m.status = ""
	return tea.Batch(m.run(accepted), m.loader.Tick)
}

// handleReloaded resolves the list-refresh call, whether user-initiated or
// the automatic resync after a failed mutation.
func (m *Model) handleReloaded(msg webhooksReloadedMsg) tea.Cmd {
	d := m.dash
	if d == nil {
		return nil
	}
	switch msg.outcome.Kind {
	case api.OutcomeRateLimited:
		m.freeze(msg.outcome.RetryAfter)
		return nil
	case api.OutcomeFailed:
		d.state = listFailed
		d.failText = msg.outcome.Message
		d.pending = nil
		return nil
	default:
		d.state = listReady
		if msg.seed != nil {
			d.webhooks = msg.seed.Webhooks
			d.partyID = msg.seed.PartyID
		}
		d.banner = nil
		d.pending = nil
		d.clampSelection()
		return tea.Batch(m.groupLookupCmds()...)
	}
}

func (m *Model) handleSaved(msg webhookSavedMsg) tea.Cmd {
	text := "Something went wrong while saving the webhook."
	return m.handleMutationOutcome(msg.outcome, text)
}

func (m *Model) handleDeleted(msg webhookDeletedMsg) tea.Cmd {
	text := "Something went wrong while deleting the webhook."
	return m.handleMutationOutcome(msg.outcome, text)
}

// handleMutationOutcome implements the shared recovery path for save and
// delete. Rate limiting freezes everything in place so the deferred action
// replays verbatim. A generic failure surfaces a fresh banner and reloads
// immediately: the mutation's real effect is unknown, so the list is
// resynchronized against server truth. Success also reloads, because the
// server response does not carry the updated list.
func (m *Model) handleMutationOutcome(outcome api.Outcome, failText string) tea.Cmd {
	d := m.dash
	if d == nil {
		return nil
	}
	switch outcome.Kind {
	case api.OutcomeRateLimited:
		m.freeze(outcome.RetryAfter)
		return nil
	case api.OutcomeFailed:
		d.banner = &bannerError{text: failText}
		d.state = listRefreshing
		return m.run(reloadAction())
	default:
		d.banner = nil
		d.state = listRefreshing
		return m.run(reloadAction())
	}
}

// handleGroupName caches a group lookup result. It touches nothing but the
// cache; list, editor and confirmation state are none of its business.
func (m *Model) handleGroupName(msg groupNameMsg) {
	d := m.dash
	if d == nil {
		return
	}
	if msg.outcome.IsOK() {
		d.groups[msg.id] = groupEntry{name: msg.name}
		return
	}
	// A rate-limited lookup carries no message; the cache entry must still
	// read as a failure, not as an unresolved id.
	text := msg.outcome.Message
	if text == "" {
		text = "group lookup failed"
	}
	d.groups[msg.id] = groupEntry{err: text}
}

// groupLookupCmds issues one name lookup per distinct unresolved group id
// referenced by the current webhooks. The cache entry is written before the
// command exists, so a second webhook naming the same group never causes a
// duplicate request. Malformed ids are cached as errors without ever being
// sent.
func (m *Model) groupLookupCmds() []tea.Cmd {
	d := m.dash
	var cmds []tea.Cmd
	for _, webhook := range d.webhooks {
		options, ok := webhook.Options.(types.GroupChatOptions)
		if !ok {
			continue
		}
		id := strings.TrimSpace(options.GroupID)
		if id == "" {
			continue
		}
		if _, known := d.groups[id]; known {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			d.groups[id] = groupEntry{err: "malformed group id"}
			continue
		}
		d.groups[id] = groupEntry{pending: true}
		cmds = append(cmds, groupNameCmd(m.groupAPI, id))
	}
	return cmds
}
