package app

import (
	"time"

	"habhook/internal/api"
)

type loginMsg struct {
	seed    *api.UserSeed
	outcome api.Outcome
}

type webhooksReloadedMsg struct {
	seed    *api.UserSeed
	outcome api.Outcome
}

type webhookSavedMsg struct {
	kind    saveKind
	outcome api.Outcome
}

type webhookDeletedMsg struct {
	id      string
	outcome api.Outcome
}

type groupNameMsg struct {
	id      string
	name    string
	outcome api.Outcome
}

type clipboardResultMsg struct {
	what string
	err  error
}

type tickMsg time.Time
