package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habhook/internal/api"
	"habhook/internal/logging"
)

const minViewWidth = 60

type sessionState int

const (
	sessionLoggedOut sessionState = iota
	sessionAuthenticating
	sessionAuthFailed
	sessionAuthenticated
)

// Model is the whole application state. The session lifecycle lives here;
// the workspace behind a successful login lives in dash and is rebuilt from
// scratch on every login.
type Model struct {
	userAPI    UserAPI
	webhookAPI WebhookAPI
	groupAPI   GroupAPI
	log        logging.Logger

	session    sessionState
	failReason string
	login      *loginController
	dash       *dashboard

	// deadline is the earliest instant new transport calls may be issued
	// again; zero when no rate-limit window is open.
	deadline time.Time

	loader spinner.Model
	status string
	width  int
	height int
}

func NewModel(client *api.Client, log logging.Logger) *Model {
	clientAPI := NewClientAPI(client)
	return newModel(clientAPI, clientAPI, clientAPI, log)
}

func newModel(userAPI UserAPI, webhookAPI WebhookAPI, groupAPI GroupAPI, log logging.Logger) *Model {
	if log == nil {
		log = logging.Nop()
	}
	loader := spinner.New()
	loader.Spinner = spinner.Line
	loader.Style = lipgloss.NewStyle()
	return &Model{
		userAPI:    userAPI,
		webhookAPI: webhookAPI,
		groupAPI:   groupAPI,
		log:        log,
		login:      newLoginController(minViewWidth),
		loader:     loader,
		width:      minViewWidth,
	}
}

func Run(client *api.Client, log logging.Logger) error {
	model := NewModel(client, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.login.focusCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(tickCmd(), m.handleTick(time.Time(msg)))
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case loginMsg:
		return m, m.handleLogin(msg)
	case webhooksReloadedMsg:
		return m, m.handleReloaded(msg)
	case webhookSavedMsg:
		return m, m.handleSaved(msg)
	case webhookDeletedMsg:
		return m, m.handleDeleted(msg)
	case groupNameMsg:
		m.handleGroupName(msg)
		return m, nil
	case clipboardResultMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.what
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.session == sessionAuthenticated && m.dash != nil {
		return m.updateDashboard(msg)
	}
	return m.updateLogin(msg)
}

// handleLogin resolves the one outstanding login call. A stale response
// arriving after the user already gave up (or logged in again) is dropped.
func (m *Model) handleLogin(msg loginMsg) tea.Cmd {
	if m.session != sessionAuthenticating {
		return nil
	}
	switch msg.outcome.Kind {
	case api.OutcomeRateLimited:
		m.session = sessionAuthFailed
		m.failReason = "rate limited"
		m.freeze(msg.outcome.RetryAfter)
		return nil
	case api.OutcomeFailed:
		m.session = sessionAuthFailed
		m.failReason = msg.outcome.Message
		return nil
	default:
		m.session = sessionAuthenticated
		m.failReason = ""
		m.dash = newDashboard(msg.seed)
		m.log.Info("logged in", logging.F("webhooks", len(m.dash.webhooks)))
		return tea.Batch(m.groupLookupCmds()...)
	}
}

func (m *Model) submitLogin() tea.Cmd {
	creds := m.login.credentials()
	if creds.Empty() {
		m.status = "user id and api key are required"
		return nil
	}
	if m.blocked() {
		m.status = m.rateLimitNotice()
		return nil
	}
	m.session = sessionAuthenticating
	m.status = ""
	return tea.Batch(loginCmd(m.userAPI, creds), m.loader.Tick)
}

// logout throws the workspace away wholesale. The rate-limit deadline is
// server-side state and survives: logging out does not reopen the window.
func (m *Model) logout() {
	m.dash = nil
	m.session = sessionLoggedOut
	m.failReason = ""
	m.status = ""
	m.login.focusUser()
}

func (m *Model) freeze(wait time.Duration) {
	m.deadline = time.Now().Add(wait)
	m.log.Warn("rate limited", logging.F("wait", wait))
}

func (m *Model) blocked() bool {
	return !m.deadline.IsZero() && time.Now().Before(m.deadline)
}

func (m *Model) rateLimitNotice() string {
	wait := time.Until(m.deadline).Round(time.Second)
	if wait < 0 {
		wait = 0
	}
	return fmt.Sprintf("rate limited, try again in %s", wait)
}

// handleTick drives the deferred replay. Once a tick lands on or past the
// deadline, the deadline and the pending action are consumed together;
// later ticks see a zero deadline and do nothing, so the replay fires
// exactly once per window.
func (m *Model) handleTick(now time.Time) tea.Cmd {
	if m.deadline.IsZero() || now.Before(m.deadline) {
		return nil
	}
	m.deadline = time.Time{}
	if m.dash == nil || m.dash.pending == nil {
		return nil
	}
	replay := *m.dash.pending
	m.dash.pending = nil
	m.log.Info("replaying deferred action")
	return tea.Batch(m.run(replay), m.loader.Tick)
}

func (m *Model) busy() bool {
	if m.session == sessionAuthenticating {
		return true
	}
	return m.dash != nil && m.dash.busy()
}
