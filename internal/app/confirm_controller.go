package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

// confirmController is a two-button prompt guarding a destructive action.
// The action it guards is stored as data and replayed only when the user
// lands on confirm.
type confirmController struct {
	title    string
	message  string
	accept   action
	selected int
}

func newConfirmController(title, message string, accept action) *confirmController {
	return &confirmController{
		title:   strings.TrimSpace(title),
		message: strings.TrimSpace(message),
		accept:  accept,
	}
}

func (c *confirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return false, confirmChoiceNone
}
