package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"habhook/internal/types"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldBool
	fieldCycle
)

type editorField struct {
	label string
	kind  fieldKind
	input *textinput.Model
	value *bool
}

// editorKinds is the cycle order for the activity type field.
var editorKinds = []string{
	types.TypeTaskActivity,
	types.TypeGroupChatReceived,
	types.TypeUserActivity,
	types.TypeQuestActivity,
}

// editorController holds the raw, possibly invalid edit form. Text fields
// stay strings until submission so the user can type through intermediate
// garbage; validation happens once, on submit.
type editorController struct {
	id      textinput.Model
	url     textinput.Model
	label   textinput.Model
	groupID textinput.Model
	enabled bool
	kind    string
	task    types.TaskActivityOptions
	user    types.UserActivityOptions
	quest   types.QuestActivityOptions
	focus   int
	errors  []string
	isNew   bool
}

func newEditorController(webhook *types.Webhook, width int) *editorController {
	e := &editorController{
		id:      newEditorInput("server-assigned", width),
		url:     newEditorInput("https://example.com/hook", width),
		label:   newEditorInput("optional label", width),
		groupID: newEditorInput("group UUID", width),
		enabled: true,
		kind:    types.TypeTaskActivity,
		isNew:   webhook == nil,
	}
	if webhook != nil {
		e.id.SetValue(webhook.ID)
		e.url.SetValue(webhook.URL)
		e.label.SetValue(webhook.Label)
		e.enabled = webhook.Enabled
		if webhook.Options != nil {
			e.kind = webhook.Options.Type()
		}
		switch options := webhook.Options.(type) {
		case types.TaskActivityOptions:
			e.task = options
		case types.GroupChatOptions:
			e.groupID.SetValue(options.GroupID)
		case types.UserActivityOptions:
			e.user = options
		case types.QuestActivityOptions:
			e.quest = options
		}
	}
	e.applyFocus()
	return e
}

func newEditorInput(placeholder string, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	if width > 40 {
		input.Width = width - 24
	}
	return input
}

// fields returns the navigable field list for the current variant. The
// inactive variants' fields simply do not exist in the list.
func (e *editorController) fields() []editorField {
	fields := []editorField{
		{label: "URL", kind: fieldText, input: &e.url},
		{label: "Label", kind: fieldText, input: &e.label},
	}
	if !e.isNew {
		fields = append(fields, editorField{label: "ID", kind: fieldText, input: &e.id})
	}
	fields = append(fields,
		editorField{label: "Enabled", kind: fieldBool, value: &e.enabled},
		editorField{label: "Type", kind: fieldCycle},
	)
	switch e.kind {
	case types.TypeTaskActivity:
		fields = append(fields,
			editorField{label: "Task created", kind: fieldBool, value: &e.task.Created},
			editorField{label: "Task updated", kind: fieldBool, value: &e.task.Updated},
			editorField{label: "Task deleted", kind: fieldBool, value: &e.task.Deleted},
			editorField{label: "Task scored", kind: fieldBool, value: &e.task.Scored},
			editorField{label: "Checklist scored", kind: fieldBool, value: &e.task.ChecklistScored},
		)
	case types.TypeGroupChatReceived:
		fields = append(fields, editorField{label: "Group ID", kind: fieldText, input: &e.groupID})
	case types.TypeUserActivity:
		fields = append(fields,
			editorField{label: "Pet hatched", kind: fieldBool, value: &e.user.PetHatched},
			editorField{label: "Mount raised", kind: fieldBool, value: &e.user.MountRaised},
			editorField{label: "Leveled up", kind: fieldBool, value: &e.user.LeveledUp},
		)
	case types.TypeQuestActivity:
		fields = append(fields,
			editorField{label: "Quest started", kind: fieldBool, value: &e.quest.QuestStarted},
			editorField{label: "Quest finished", kind: fieldBool, value: &e.quest.QuestFinished},
			editorField{label: "Quest invited", kind: fieldBool, value: &e.quest.QuestInvited},
		)
	}
	return fields
}

func (e *editorController) currentField() editorField {
	fields := e.fields()
	if e.focus < 0 || e.focus >= len(fields) {
		return editorField{}
	}
	return fields[e.focus]
}

func (e *editorController) moveFocus(delta int) {
	fields := e.fields()
	e.focus += delta
	if e.focus < 0 {
		e.focus = len(fields) - 1
	}
	if e.focus >= len(fields) {
		e.focus = 0
	}
	e.applyFocus()
}

func (e *editorController) applyFocus() {
	e.id.Blur()
	e.url.Blur()
	e.label.Blur()
	e.groupID.Blur()
	field := e.currentField()
	if field.kind == fieldText && field.input != nil {
		field.input.Focus()
	}
}

// setKind switches the activity variant. The now-inactive variants are reset
// to defaults rather than kept: the shadow-write decoy depends on stale
// option values never leaking across a type switch.
func (e *editorController) setKind(kind string) {
	if e.kind == kind {
		return
	}
	switch e.kind {
	case types.TypeTaskActivity:
		e.task = types.TaskActivityOptions{}
	case types.TypeGroupChatReceived:
		e.groupID.SetValue("")
	case types.TypeUserActivity:
		e.user = types.UserActivityOptions{}
	case types.TypeQuestActivity:
		e.quest = types.QuestActivityOptions{}
	}
	e.kind = kind
	fields := e.fields()
	if e.focus >= len(fields) {
		e.focus = len(fields) - 1
	}
	e.applyFocus()
}

func (e *editorController) cycleKind(delta int) {
	index := 0
	for i, kind := range editorKinds {
		if kind == e.kind {
			index = i
			break
		}
	}
	index = (index + delta + len(editorKinds)) % len(editorKinds)
	e.setKind(editorKinds[index])
}

func (e *editorController) form() editorForm {
	form := editorForm{
		id:      e.id.Value(),
		url:     e.url.Value(),
		label:   e.label.Value(),
		enabled: e.enabled,
		kind:    e.kind,
		task:    e.task,
		groupID: e.groupID.Value(),
		user:    e.user,
		quest:   e.quest,
	}
	return form
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	d := m.dash
	e := d.editor
	switch msg.String() {
	case "esc":
		d.editor = nil
		d.touchBanner()
		return nil
	case "tab", "down":
		e.moveFocus(1)
		return nil
	case "shift+tab", "up":
		e.moveFocus(-1)
		return nil
	case "enter":
		return m.submitEdit()
	}

	field := e.currentField()
	switch field.kind {
	case fieldBool:
		if msg.String() == " " || msg.String() == "space" {
			*field.value = !*field.value
		}
		return nil
	case fieldCycle:
		switch msg.String() {
		case "left", "h":
			e.cycleKind(-1)
		case "right", "l", " ", "space":
			e.cycleKind(1)
		}
		return nil
	default:
		if field.input == nil {
			return nil
		}
		var cmd tea.Cmd
		*field.input, cmd = field.input.Update(msg)
		return cmd
	}
}

// submitEdit validates the form and, when clean, kicks off the save. On
// validation failure the editor stays open with the errors replaced in
// place.
func (m *Model) submitEdit() tea.Cmd {
	if m.blocked() {
		m.status = m.rateLimitNotice()
		return nil
	}
	d := m.dash
	e := d.editor
	webhook, errs := e.form().validate()
	if len(errs) > 0 {
		e.errors = errs
		return nil
	}
	kind := saveCreate
	if webhook.Persisted() {
		kind = saveUpdate
	}
	d.state = listSaving
	d.saving = kind
	d.editor = nil
	d.confirm = nil
	d.banner = nil
	m.status = ""
	return tea.Batch(m.run(saveAction(webhook, kind)), m.loader.Tick)
}
