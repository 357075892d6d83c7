package types

// ActivityOptions is the variant-specific option set carried by a webhook.
// Exactly one variant is active at a time; switching variants replaces the
// whole value rather than merging fields.
type ActivityOptions interface {
	// Type returns the wire discriminator for the variant.
	Type() string
	activityOptions()
}

const (
	TypeTaskActivity      = "taskActivity"
	TypeGroupChatReceived = "groupChatReceived"
	TypeUserActivity      = "userActivity"
	TypeQuestActivity     = "questActivity"
)

type TaskActivityOptions struct {
	Created         bool
	Updated         bool
	Deleted         bool
	Scored          bool
	ChecklistScored bool
}

func (TaskActivityOptions) Type() string     { return TypeTaskActivity }
func (TaskActivityOptions) activityOptions() {}

type GroupChatOptions struct {
	// GroupID is kept as the raw string the server sent; it is only
	// guaranteed to be a UUID after passing through form validation.
	GroupID string
}

func (GroupChatOptions) Type() string     { return TypeGroupChatReceived }
func (GroupChatOptions) activityOptions() {}

type UserActivityOptions struct {
	PetHatched  bool
	MountRaised bool
	LeveledUp   bool
}

func (UserActivityOptions) Type() string     { return TypeUserActivity }
func (UserActivityOptions) activityOptions() {}

type QuestActivityOptions struct {
	QuestStarted  bool
	QuestFinished bool
	QuestInvited  bool
}

func (QuestActivityOptions) Type() string     { return TypeQuestActivity }
func (QuestActivityOptions) activityOptions() {}

// Webhook is one subscription as the dashboard sees it. An empty ID marks a
// webhook that has never been saved; everything loaded from the server
// carries a server-assigned id.
type Webhook struct {
	ID      string
	URL     string
	Label   string
	Enabled bool
	Options ActivityOptions
}

func (w Webhook) Persisted() bool { return w.ID != "" }

// DefaultOptions returns the zero option set for a wire type, or nil when
// the type is unknown.
func DefaultOptions(wireType string) ActivityOptions {
	switch wireType {
	case TypeTaskActivity:
		return TaskActivityOptions{}
	case TypeGroupChatReceived:
		return GroupChatOptions{}
	case TypeUserActivity:
		return UserActivityOptions{}
	case TypeQuestActivity:
		return QuestActivityOptions{}
	default:
		return nil
	}
}

// Credentials are entered at login and never persisted.
type Credentials struct {
	UserID string
	APIKey string
}

func (c Credentials) Empty() bool {
	return c.UserID == "" || c.APIKey == ""
}
