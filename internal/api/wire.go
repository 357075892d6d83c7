package api

import (
	"encoding/json"
	"fmt"

	"habhook/internal/types"
)

type wireWebhook struct {
	ID      string          `json:"id,omitempty"`
	URL     string          `json:"url"`
	Label   string          `json:"label"`
	Enabled bool            `json:"enabled"`
	Type    string          `json:"type"`
	Options json.RawMessage `json:"options"`
}

type wireTaskOptions struct {
	Created         bool `json:"created"`
	Updated         bool `json:"updated"`
	Deleted         bool `json:"deleted"`
	Scored          bool `json:"scored"`
	ChecklistScored bool `json:"checklistScored"`
}

type wireGroupChatOptions struct {
	GroupID string `json:"groupId"`
}

type wireUserOptions struct {
	PetHatched  bool `json:"petHatched"`
	MountRaised bool `json:"mountRaised"`
	LeveledUp   bool `json:"leveledUp"`
}

type wireQuestOptions struct {
	QuestStarted  bool `json:"questStarted"`
	QuestFinished bool `json:"questFinished"`
	QuestInvited  bool `json:"questInvited"`
}

// encodeWebhook builds the request payload for create and update calls.
// An empty label is sent as a single space: the backend treats "" as
// "field absent" and refuses to clear a previously set label.
func encodeWebhook(w types.Webhook) ([]byte, error) {
	if w.Options == nil {
		return nil, fmt.Errorf("webhook has no activity options")
	}
	options, err := encodeOptions(w.Options)
	if err != nil {
		return nil, err
	}
	label := w.Label
	if label == "" {
		label = " "
	}
	return json.Marshal(wireWebhook{
		ID:      w.ID,
		URL:     w.URL,
		Label:   label,
		Enabled: w.Enabled,
		Type:    w.Options.Type(),
		Options: options,
	})
}

func encodeOptions(options types.ActivityOptions) (json.RawMessage, error) {
	switch o := options.(type) {
	case types.TaskActivityOptions:
		return json.Marshal(wireTaskOptions{
			Created:         o.Created,
			Updated:         o.Updated,
			Deleted:         o.Deleted,
			Scored:          o.Scored,
			ChecklistScored: o.ChecklistScored,
		})
	case types.GroupChatOptions:
		return json.Marshal(wireGroupChatOptions{GroupID: o.GroupID})
	case types.UserActivityOptions:
		return json.Marshal(wireUserOptions{
			PetHatched:  o.PetHatched,
			MountRaised: o.MountRaised,
			LeveledUp:   o.LeveledUp,
		})
	case types.QuestActivityOptions:
		return json.Marshal(wireQuestOptions{
			QuestStarted:  o.QuestStarted,
			QuestFinished: o.QuestFinished,
			QuestInvited:  o.QuestInvited,
		})
	default:
		return nil, fmt.Errorf("unknown activity options %T", options)
	}
}

func decodeWebhook(raw json.RawMessage) (types.Webhook, error) {
	var wire wireWebhook
	if err := json.Unmarshal(raw, &wire); err != nil {
		return types.Webhook{}, err
	}
	options, err := decodeOptions(wire.Type, wire.Options)
	if err != nil {
		return types.Webhook{}, err
	}
	return types.Webhook{
		ID:      wire.ID,
		URL:     wire.URL,
		Label:   wire.Label,
		Enabled: wire.Enabled,
		Options: options,
	}, nil
}

func decodeOptions(wireType string, raw json.RawMessage) (types.ActivityOptions, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	switch wireType {
	case types.TypeTaskActivity:
		var o wireTaskOptions
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		return types.TaskActivityOptions{
			Created:         o.Created,
			Updated:         o.Updated,
			Deleted:         o.Deleted,
			Scored:          o.Scored,
			ChecklistScored: o.ChecklistScored,
		}, nil
	case types.TypeGroupChatReceived:
		var o wireGroupChatOptions
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		return types.GroupChatOptions{GroupID: o.GroupID}, nil
	case types.TypeUserActivity:
		var o wireUserOptions
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		return types.UserActivityOptions{
			PetHatched:  o.PetHatched,
			MountRaised: o.MountRaised,
			LeveledUp:   o.LeveledUp,
		}, nil
	case types.TypeQuestActivity:
		var o wireQuestOptions
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		return types.QuestActivityOptions{
			QuestStarted:  o.QuestStarted,
			QuestFinished: o.QuestFinished,
			QuestInvited:  o.QuestInvited,
		}, nil
	default:
		return nil, fmt.Errorf("unknown webhook type %q", wireType)
	}
}

// UserSeed is the slice of the GET /user payload the dashboard needs.
type UserSeed struct {
	Webhooks []types.Webhook
	PartyID  string
}

type wireUser struct {
	Webhooks []json.RawMessage `json:"webhooks"`
	Party    *struct {
		ID string `json:"_id"`
	} `json:"party"`
}

func decodeUserSeed(raw json.RawMessage) (*UserSeed, error) {
	var wire wireUser
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	seed := &UserSeed{}
	for _, entry := range wire.Webhooks {
		webhook, err := decodeWebhook(entry)
		if err != nil {
			return nil, err
		}
		seed.Webhooks = append(seed.Webhooks, webhook)
	}
	if wire.Party != nil {
		seed.PartyID = wire.Party.ID
	}
	return seed, nil
}

type wireGroup struct {
	Name string `json:"name"`
}

func decodeGroupName(raw json.RawMessage) (string, error) {
	var wire wireGroup
	if err := json.Unmarshal(raw, &wire); err != nil {
		return "", err
	}
	return wire.Name, nil
}
