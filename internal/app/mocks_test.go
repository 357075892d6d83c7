package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"habhook/internal/api"
	"habhook/internal/types"
)

type userAPIMock struct {
	seed    *api.UserSeed
	outcome api.Outcome
	creds   types.Credentials
	calls   int
}

func (m *userAPIMock) SetCredentials(creds types.Credentials) { m.creds = creds }

func (m *userAPIMock) FetchUser(context.Context) (*api.UserSeed, api.Outcome) {
	m.calls++
	return m.seed, m.outcome
}

type webhookAPIMock struct {
	outcome api.Outcome
	saved   []types.Webhook
	deleted []string
}

func (m *webhookAPIMock) SaveWebhook(_ context.Context, webhook types.Webhook) api.Outcome {
	m.saved = append(m.saved, webhook)
	return m.outcome
}

func (m *webhookAPIMock) DeleteWebhook(_ context.Context, id string) api.Outcome {
	m.deleted = append(m.deleted, id)
	return m.outcome
}

type groupAPIMock struct {
	names   map[string]string
	outcome api.Outcome
	calls   []string
}

func (m *groupAPIMock) GroupName(_ context.Context, id string) (string, api.Outcome) {
	m.calls = append(m.calls, id)
	if name, ok := m.names[id]; ok {
		return name, api.OK()
	}
	return "", m.outcome
}

func newTestModel(user *userAPIMock, webhook *webhookAPIMock, group *groupAPIMock) (*Model, *userAPIMock, *webhookAPIMock, *groupAPIMock) {
	if user == nil {
		user = &userAPIMock{seed: &api.UserSeed{}}
	}
	if webhook == nil {
		webhook = &webhookAPIMock{}
	}
	if group == nil {
		group = &groupAPIMock{names: map[string]string{}}
	}
	return newModel(user, webhook, group, nil), user, webhook, group
}

// drainCmd executes a command tree synchronously, flattening batches, so
// tests can count the transport calls a transition provoked.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drainCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
