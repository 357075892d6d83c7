package app

import (
	"context"
	"time"

	"habhook/internal/types"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 15 * time.Second

func loginCmd(userAPI UserAPI, creds types.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		userAPI.SetCredentials(creds)
		seed, outcome := userAPI.FetchUser(ctx)
		return loginMsg{seed: seed, outcome: outcome}
	}
}

func reloadWebhooksCmd(userAPI UserAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		seed, outcome := userAPI.FetchUser(ctx)
		return webhooksReloadedMsg{seed: seed, outcome: outcome}
	}
}

func saveWebhookCmd(webhookAPI WebhookAPI, webhook types.Webhook, kind saveKind) tea.Cmd {
	return func() tea.Msg {
		// The shadow-write save issues two sequential calls; give it
		// room for both.
		ctx, cancel := context.WithTimeout(context.Background(), 2*requestTimeout)
		defer cancel()
		outcome := webhookAPI.SaveWebhook(ctx, webhook)
		return webhookSavedMsg{kind: kind, outcome: outcome}
	}
}

func deleteWebhookCmd(webhookAPI WebhookAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		outcome := webhookAPI.DeleteWebhook(ctx, id)
		return webhookDeletedMsg{id: id, outcome: outcome}
	}
}

func groupNameCmd(groupAPI GroupAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		name, outcome := groupAPI.GroupName(ctx, id)
		return groupNameMsg{id: id, name: name, outcome: outcome}
	}
}

func copyToClipboardCmd(what, value string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{what: what, err: clipboard.WriteAll(value)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
