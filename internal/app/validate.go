package app

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"habhook/internal/types"
)

const (
	errInvalidURL     = "Invalid URL."
	errMalformedID    = "Malformed UUID provided for field 'ID'."
	errMalformedGroup = "Malformed UUID provided for field 'Group ID'."
)

// editorForm is the raw editable mirror of a webhook. Everything textual is
// a plain string so the editor can hold transient garbage; validate is the
// single gate between the form and a typed Webhook.
type editorForm struct {
	id      string
	url     string
	label   string
	enabled bool
	kind    string
	task    types.TaskActivityOptions
	groupID string
	user    types.UserActivityOptions
	quest   types.QuestActivityOptions
}

// validate accumulates every applicable field error rather than stopping at
// the first, in declaration order: url, id, then the selected variant's
// fields. On success the returned webhook carries only the selected
// variant's options.
func (f editorForm) validate() (types.Webhook, []string) {
	var errs []string

	rawURL := strings.TrimSpace(f.url)
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		errs = append(errs, errInvalidURL)
	}

	id := strings.TrimSpace(f.id)
	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, errMalformedID)
		}
	}

	var options types.ActivityOptions
	switch f.kind {
	case types.TypeGroupChatReceived:
		groupID := strings.TrimSpace(f.groupID)
		if _, err := uuid.Parse(groupID); err != nil {
			errs = append(errs, errMalformedGroup)
		}
		options = types.GroupChatOptions{GroupID: groupID}
	case types.TypeUserActivity:
		options = f.user
	case types.TypeQuestActivity:
		options = f.quest
	default:
		options = f.task
	}

	if len(errs) > 0 {
		return types.Webhook{}, errs
	}
	return types.Webhook{
		ID:      id,
		URL:     rawURL,
		Label:   f.label,
		Enabled: f.enabled,
		Options: options,
	}, nil
}
