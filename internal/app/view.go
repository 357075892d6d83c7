package app

import (
	"fmt"
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"

	"habhook/internal/types"
)

func (m *Model) View() string {
	if m.session == sessionAuthenticated && m.dash != nil {
		return m.dashboardView()
	}
	return m.loginView()
}

func (m *Model) loginView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("habhook") + " " + helpStyle.Render("webhook manager"))
	b.WriteString("\n\n")
	b.WriteString(renderLoginField("User ID", m.login.user.View(), m.login.focus == 0))
	b.WriteString("\n")
	b.WriteString(renderLoginField("API Key", m.login.key.View(), m.login.focus == 1))
	b.WriteString("\n\n")

	switch {
	case m.session == sessionAuthenticating:
		b.WriteString(statusStyle.Render(m.loader.View() + " logging in"))
	case m.session == sessionAuthFailed:
		b.WriteString(errorStyle.Render("login failed: " + m.failReason))
	}
	b.WriteString("\n")
	if m.blocked() {
		b.WriteString(rateLimitStyle.Render(m.rateLimitNotice()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter login • tab switch field • esc quit"))
	return b.String()
}

func renderLoginField(label, input string, focused bool) string {
	rendered := fieldLabelStyle.Render(fmt.Sprintf("%-8s", label))
	if focused {
		rendered = focusedFieldStyle.Render(fmt.Sprintf("%-8s", label))
	}
	return rendered + " " + input
}

func (m *Model) dashboardView() string {
	d := m.dash
	if d.editor != nil {
		return m.editorView()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("webhooks"))
	b.WriteString("\n")
	if banner := m.bannerLine(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	if d.confirm != nil {
		b.WriteString(m.confirmView())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new • e edit • d delete • r reload • c copy url • esc logout"))
	return b.String()
}

func (m *Model) listView() string {
	d := m.dash
	if d.state == listFailed {
		return errorStyle.Render("could not load webhooks: "+d.failText) + "\n" +
			helpStyle.Render("press r to retry")
	}
	if len(d.webhooks) == 0 {
		return helpStyle.Render("no webhooks yet, press n to create one")
	}
	width := m.width
	if width < minViewWidth {
		width = minViewWidth
	}
	lines := make([]string, 0, len(d.webhooks))
	for i, webhook := range d.webhooks {
		mark := disabledMarkStyle.Render("○")
		if webhook.Enabled {
			mark = enabledMarkStyle.Render("●")
		}
		label := webhook.Label
		if strings.TrimSpace(label) == "" {
			label = webhook.URL
		}
		line := fmt.Sprintf("%s %s  %s", mark, labelStyle.Render(label), typeStyle.Render(optionSummary(webhook.Options, d.groups)))
		line = xansi.Truncate(line, width-2, "…")
		if i == d.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// optionSummary is the one-line description of what a webhook fires on.
func optionSummary(options types.ActivityOptions, groups map[string]groupEntry) string {
	switch o := options.(type) {
	case types.TaskActivityOptions:
		flags := joinFlags([]flag{
			{"created", o.Created},
			{"updated", o.Updated},
			{"deleted", o.Deleted},
			{"scored", o.Scored},
			{"checklist", o.ChecklistScored},
		})
		if flags == "" {
			flags = "nothing"
		}
		return "tasks: " + flags
	case types.GroupChatOptions:
		entry := groups[strings.TrimSpace(o.GroupID)]
		switch {
		case entry.name != "":
			return "chat: " + groupNameStyle.Render(entry.name)
		case entry.err != "":
			return "chat: " + errorStyle.Render(o.GroupID)
		case entry.pending:
			return "chat: …"
		default:
			return "chat: " + o.GroupID
		}
	case types.UserActivityOptions:
		flags := joinFlags([]flag{
			{"pet hatched", o.PetHatched},
			{"mount raised", o.MountRaised},
			{"leveled up", o.LeveledUp},
		})
		if flags == "" {
			flags = "nothing"
		}
		return "user: " + flags
	case types.QuestActivityOptions:
		flags := joinFlags([]flag{
			{"started", o.QuestStarted},
			{"finished", o.QuestFinished},
			{"invited", o.QuestInvited},
		})
		if flags == "" {
			flags = "nothing"
		}
		return "quests: " + flags
	default:
		return "unknown"
	}
}

type flag struct {
	label string
	on    bool
}

func joinFlags(flags []flag) string {
	var on []string
	for _, f := range flags {
		if f.on {
			on = append(on, f.label)
		}
	}
	return strings.Join(on, ", ")
}

func (m *Model) editorView() string {
	d := m.dash
	e := d.editor
	var b strings.Builder
	title := "edit webhook"
	if e.isNew {
		title = "new webhook"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
	for i, field := range e.fields() {
		label := fieldLabelStyle.Render(fmt.Sprintf("%-18s", field.label))
		if i == e.focus {
			label = focusedFieldStyle.Render(fmt.Sprintf("%-18s", field.label))
		}
		b.WriteString(label)
		switch field.kind {
		case fieldBool:
			if *field.value {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
		case fieldCycle:
			b.WriteString("◂ " + e.kind + " ▸")
		default:
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")
	}
	if len(e.errors) > 0 {
		b.WriteString("\n")
		for _, message := range e.errors {
			b.WriteString(errorStyle.Render("• " + message))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save • tab next field • space toggle • esc cancel"))
	return b.String()
}

func (m *Model) confirmView() string {
	c := m.dash.confirm
	confirm := dialogButtonStyle.Render("[Delete]")
	cancel := dialogButtonStyle.Render("[Cancel]")
	if c.selected == 0 {
		confirm = selectedStyle.Render("[Delete]")
	} else {
		cancel = selectedStyle.Render("[Cancel]")
	}
	body := headerStyle.Render(c.title) + "\n" + c.message + "\n\n" + confirm + "  " + cancel
	return dialogBorderStyle.Render(body)
}

func (m *Model) bannerLine() string {
	banner := m.dash.banner
	if banner == nil {
		return ""
	}
	if banner.seen {
		return bannerSeenStyle.Render(banner.text)
	}
	return bannerUnseenStyle.Render(" " + banner.text + " ")
}

func (m *Model) statusLine() string {
	d := m.dash
	var parts []string
	if d != nil {
		switch d.state {
		case listRefreshing:
			parts = append(parts, m.loader.View()+" refreshing")
		case listSaving:
			switch d.saving {
			case saveDelete:
				parts = append(parts, m.loader.View()+" deleting")
			default:
				parts = append(parts, m.loader.View()+" saving")
			}
		}
	}
	if m.blocked() {
		wait := time.Until(m.deadline).Round(time.Second)
		parts = append(parts, rateLimitStyle.Render(fmt.Sprintf("rate limited, retrying in %s", wait)))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	if len(parts) == 0 {
		return statusStyle.Render("ready")
	}
	return strings.Join(parts, "  ")
}
