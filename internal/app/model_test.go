package app

import (
	"testing"
	"time"

	"habhook/internal/api"
	"habhook/internal/types"
)

func setCredentials(m *Model, user, key string) {
	m.login.user.SetValue(user)
	m.login.key.SetValue(key)
}

func TestSubmitLoginRequiresCredentials(t *testing.T) {
	m, user, _, _ := newTestModel(nil, nil, nil)

	if cmd := m.submitLogin(); cmd != nil {
		t.Fatalf("empty credentials issued a command")
	}
	if m.session != sessionLoggedOut {
		t.Fatalf("session = %d", m.session)
	}
	if user.calls != 0 {
		t.Fatalf("login reached the transport")
	}
	if m.status == "" {
		t.Fatalf("no status hint shown")
	}
}

func TestSubmitLoginRefusedWhileBlocked(t *testing.T) {
	m, user, _, _ := newTestModel(nil, nil, nil)
	setCredentials(m, "user-1", "key-1")
	m.deadline = time.Now().Add(time.Minute)

	if cmd := m.submitLogin(); cmd != nil {
		t.Fatalf("blocked login issued a command")
	}
	if m.session != sessionLoggedOut {
		t.Fatalf("session = %d", m.session)
	}
	if user.calls != 0 {
		t.Fatalf("blocked login reached the transport")
	}
}

func TestLoginSuccessBuildsWorkspace(t *testing.T) {
	seed := &api.UserSeed{
		Webhooks: []types.Webhook{{ID: "a", URL: "https://a.example", Options: types.TaskActivityOptions{Scored: true}}},
		PartyID:  "party-1",
	}
	m, user, _, _ := newTestModel(&userAPIMock{seed: seed, outcome: api.OK()}, nil, nil)
	setCredentials(m, "user-1", "key-1")

	cmd := m.submitLogin()
	if m.session != sessionAuthenticating {
		t.Fatalf("session = %d after submit", m.session)
	}
	msgs := drainCmd(cmd)
	if user.calls != 1 {
		t.Fatalf("fetch calls = %d", user.calls)
	}
	if user.creds.UserID != "user-1" || user.creds.APIKey != "key-1" {
		t.Fatalf("credentials = %+v", user.creds)
	}

	var login loginMsg
	found := false
	for _, msg := range msgs {
		if lm, ok := msg.(loginMsg); ok {
			login = lm
			found = true
		}
	}
	if !found {
		t.Fatalf("no login result among %v", msgs)
	}

	m.handleLogin(login)
	if m.session != sessionAuthenticated {
		t.Fatalf("session = %d after success", m.session)
	}
	if m.dash == nil || len(m.dash.webhooks) != 1 {
		t.Fatalf("workspace not built from seed")
	}
	if m.dash.partyID != "party-1" {
		t.Fatalf("partyID = %q", m.dash.partyID)
	}
}

func TestLoginFailureRecordsReason(t *testing.T) {
	m, _, _, _ := newTestModel(nil, nil, nil)
	m.session = sessionAuthenticating

	m.handleLogin(loginMsg{outcome: api.Failed("There is no account that uses those credentials.")})
	if m.session != sessionAuthFailed {
		t.Fatalf("session = %d", m.session)
	}
	if m.failReason != "There is no account that uses those credentials." {
		t.Fatalf("failReason = %q", m.failReason)
	}
	if m.dash != nil {
		t.Fatalf("workspace created on failure")
	}
}

func TestLoginRateLimitedSetsDeadline(t *testing.T) {
	m, _, _, _ := newTestModel(nil, nil, nil)
	m.session = sessionAuthenticating

	m.handleLogin(loginMsg{outcome: api.RateLimited(10 * time.Second)})
	if m.session != sessionAuthFailed {
		t.Fatalf("session = %d", m.session)
	}
	if !m.blocked() {
		t.Fatalf("no deadline recorded")
	}
}

func TestStaleLoginResponseDropped(t *testing.T) {
	m, _, _, _ := newTestModel(nil, nil, nil)

	m.handleLogin(loginMsg{seed: &api.UserSeed{}, outcome: api.OK()})
	if m.session != sessionLoggedOut {
		t.Fatalf("stale response moved session to %d", m.session)
	}
	if m.dash != nil {
		t.Fatalf("stale response built a workspace")
	}
}

func TestTickReplayFiresExactlyOnce(t *testing.T) {
	m, user, _, _ := newTestModel(nil, nil, nil)
	authenticated(m)
	base := time.Now()
	m.deadline = base.Add(5 * time.Second)
	pending := reloadAction()
	m.dash.pending = &pending

	if cmd := m.handleTick(base.Add(4 * time.Second)); cmd != nil {
		t.Fatalf("replay fired before the deadline")
	}
	if m.deadline.IsZero() || m.dash.pending == nil {
		t.Fatalf("early tick consumed deadline or pending action")
	}

	cmd := m.handleTick(base.Add(5 * time.Second))
	if cmd == nil {
		t.Fatalf("replay did not fire at the deadline")
	}
	drainCmd(cmd)
	if user.calls != 1 {
		t.Fatalf("replay calls = %d, want 1", user.calls)
	}
	if !m.deadline.IsZero() {
		t.Fatalf("deadline not consumed")
	}
	if m.dash.pending == nil || m.dash.pending.kind != actionReload {
		t.Fatalf("replayed action not re-registered: %+v", m.dash.pending)
	}

	if cmd := m.handleTick(base.Add(6 * time.Second)); cmd != nil {
		t.Fatalf("replay fired twice")
	}
	if user.calls != 1 {
		t.Fatalf("replay calls = %d after later tick", user.calls)
	}
}

func TestSecondRateLimitExtendsDeadline(t *testing.T) {
	m, user, _, _ := newTestModel(nil, nil, nil)
	authenticated(m)
	pending := saveAction(types.Webhook{ID: "hook-1", URL: "https://a.example", Options: types.TaskActivityOptions{}}, saveUpdate)
	m.dash.pending = &pending
	m.dash.state = listSaving
	m.dash.saving = saveUpdate

	m.handleSaved(webhookSavedMsg{kind: saveUpdate, outcome: api.RateLimited(5 * time.Second)})
	first := m.deadline
	if first.IsZero() {
		t.Fatalf("no deadline after first rate limit")
	}

	if cmd := m.handleSaved(webhookSavedMsg{kind: saveUpdate, outcome: api.RateLimited(30 * time.Second)}); cmd != nil {
		t.Fatalf("second rate limit produced a command")
	}
	if !m.deadline.After(first) {
		t.Fatalf("deadline %v not extended past %v", m.deadline, first)
	}
	if m.dash.pending == nil || m.dash.pending.kind != actionSave {
		t.Fatalf("pending = %+v, want save preserved through both windows", m.dash.pending)
	}
	if m.dash.state != listSaving {
		t.Fatalf("state = %d, want still frozen saving", m.dash.state)
	}
	if user.calls != 0 {
		t.Fatalf("rate limits reached the transport")
	}
}

func TestTickWithoutPendingClearsDeadline(t *testing.T) {
	m, user, _, _ := newTestModel(nil, nil, nil)
	authenticated(m)
	m.deadline = time.Now().Add(-time.Second)

	if cmd := m.handleTick(time.Now()); cmd != nil {
		t.Fatalf("tick without pending action issued a command")
	}
	if !m.deadline.IsZero() {
		t.Fatalf("deadline not cleared")
	}
	if user.calls != 0 {
		t.Fatalf("tick reached the transport")
	}
}

func TestLogoutDiscardsWorkspaceKeepsDeadline(t *testing.T) {
	m, _, _, _ := newTestModel(nil, nil, nil)
	authenticated(m, types.Webhook{ID: "a", URL: "https://a.example", Options: types.TaskActivityOptions{}})
	m.deadline = time.Now().Add(time.Minute)

	m.updateDashboard(keyMsg("esc"))
	if m.session != sessionLoggedOut {
		t.Fatalf("session = %d after logout", m.session)
	}
	if m.dash != nil {
		t.Fatalf("workspace survived logout")
	}
	if !m.blocked() {
		t.Fatalf("rate-limit deadline discarded on logout")
	}
}
