package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"habhook/internal/types"
)

// loginController owns the two credential fields. Editing them never moves
// the session state machine; only submitting does.
type loginController struct {
	user  textinput.Model
	key   textinput.Model
	focus int
}

func newLoginController(width int) *loginController {
	user := textinput.New()
	user.Placeholder = "user id"
	user.CharLimit = 64
	user.Width = width - 16
	key := textinput.New()
	key.Placeholder = "api key"
	key.CharLimit = 64
	key.Width = width - 16
	key.EchoMode = textinput.EchoPassword
	user.Focus()
	return &loginController{user: user, key: key}
}

func (c *loginController) credentials() types.Credentials {
	return types.Credentials{
		UserID: c.user.Value(),
		APIKey: c.key.Value(),
	}
}

func (c *loginController) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (c *loginController) focusUser() {
	c.focus = 0
	c.user.Focus()
	c.key.Blur()
}

func (c *loginController) setFocus(focus int) {
	c.focus = focus
	if focus == 0 {
		c.user.Focus()
		c.key.Blur()
	} else {
		c.user.Blur()
		c.key.Focus()
	}
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	c := m.login
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "tab", "down":
		c.setFocus(1 - c.focus)
		return nil
	case "shift+tab", "up":
		c.setFocus(1 - c.focus)
		return nil
	case "enter":
		if c.focus == 0 {
			c.setFocus(1)
			return nil
		}
		return m.submitLogin()
	}
	if m.session == sessionAuthenticating {
		// No edits mid-flight; the outstanding call used a snapshot of
		// the credentials anyway.
		return nil
	}
	var cmd tea.Cmd
	if c.focus == 0 {
		c.user, cmd = c.user.Update(msg)
	} else {
		c.key, cmd = c.key.Update(msg)
	}
	return cmd
}
