package tui

import (
	"strings"

	"careops-cli/internal/model"
	"careops-cli/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var timezones = []string{"UTC", "EST", "PST", "IST"}

// defaultBookingTypes seed the public wizard's type picker when the
// workspace's own booking types are not loadable (unauthenticated flow).
var defaultBookingTypes = []string{"Consultation", "Meeting", "Service"}

type appModel struct {
	deps Deps

	width  int
	height int

	view     view
	showHelp bool

	// Login page.
	loginEmail    textinput.Model
	loginPassword textinput.Model
	loginFocus    int
	loginBusy     bool
	loginErr      string

	// Registration page (register -> verify).
	regStep   registerStep
	regInputs [4]textinput.Model // full name, email, password, phone
	regFocus  int
	regBusy   bool
	regErr    string
	regNotice string
	// The email/phone under verification live only here; a restart resumes
	// via the session's pending-verification email.
	regEmail  string
	regPhone  string
	codeInput textinput.Model

	// Workspace list page.
	wsList     list.Model
	workspaces []model.Workspace
	wsLoading  bool
	wsShowForm bool
	wsInputs   [3]textinput.Model // name, address, contact email
	wsTZIdx    int
	wsFocus    int
	wsBusy     bool
	wsErr      string

	// Setup wizard (setup/preview tabs).
	setupTab     setupTab
	bookingTypes []model.Booking
	contacts     []model.Contact
	btType       textinput.Model
	btDuration   textinput.Model
	ctInputs     [3]textinput.Model // name, email, phone
	setupFocus   int
	setupBusy    bool
	setupErr     string
	activateBusy bool

	// Dashboard page.
	dashboard   *model.DashboardSnapshot
	dashLoading bool

	// Inbox page.
	conversations  []model.Conversation
	convIdx        int
	msgInput       textinput.Model
	inboxComposing bool
	inboxBusy      bool
	inboxLoading   bool

	// Public booking wizard.
	bookStep     bookStep
	bookInputs   [3]textinput.Model // name, email, phone
	bookFocus    int
	bookTypeIdx  int
	bookDate     textinput.Model
	bookTime     textinput.Model
	bookSelFocus int // 0 type picker, 1 date, 2 time
	bookBusy     bool
	bookErr      string
	confirmation *bookingConfirmation
}

func newInput(placeholder string, charLimit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = width
	return in
}

func newAppModel(deps Deps) appModel {
	m := appModel{deps: deps, view: viewLogin}

	m.loginEmail = newInput("Email", 120, 40)
	m.loginPassword = newInput("Password", 120, 40)
	m.loginPassword.EchoMode = textinput.EchoPassword

	m.regInputs[0] = newInput("Full Name", 120, 40)
	m.regInputs[1] = newInput("Email", 120, 40)
	m.regInputs[2] = newInput("Minimum 6 characters", 120, 40)
	m.regInputs[2].EchoMode = textinput.EchoPassword
	m.regInputs[3] = newInput("+1234567890 (optional)", 32, 40)
	m.codeInput = newInput("000000", 6, 10)

	m.wsList = newList("Workspaces", "Select a workspace", []list.Item{})
	m.wsInputs[0] = newInput("Business Name", 120, 40)
	m.wsInputs[1] = newInput("Address", 200, 40)
	m.wsInputs[2] = newInput("Contact Email", 120, 40)

	m.btType = newInput("e.g. Consultation, Meeting", 120, 32)
	m.btDuration = newInput("60", 4, 6)
	m.ctInputs[0] = newInput("Contact Name", 120, 32)
	m.ctInputs[1] = newInput("Email", 120, 32)
	m.ctInputs[2] = newInput("Phone", 32, 32)

	m.msgInput = newInput("Type a message...", 500, 48)

	m.bookInputs[0] = newInput("Full Name *", 120, 40)
	m.bookInputs[1] = newInput("Email *", 120, 40)
	m.bookInputs[2] = newInput("Phone", 32, 40)
	m.bookDate = newInput("YYYY-MM-DD", 10, 12)
	m.bookTime = newInput("HH:MM", 5, 7)
	m.bookTime.SetValue("09:00")

	return m
}

func (m appModel) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

// navigate applies the route guard and runs the target page's entry fetch.
func (m appModel) navigate(v view) (appModel, tea.Cmd) {
	hasToken := m.deps.Session.Authenticated()
	hasWorkspace := m.deps.Workspace.Selected()
	switch session.Decide(hasToken, hasWorkspace, levelFor(v)) {
	case session.RouteLogin:
		v = viewLogin
	case session.RouteWorkspaces:
		v = viewWorkspaces
	}

	m.view = v
	switch v {
	case viewLogin:
		return m.enterLogin()
	case viewRegister:
		return m.enterRegister()
	case viewWorkspaces:
		return m.enterWorkspaces()
	case viewSetup:
		return m.enterSetup()
	case viewDashboard:
		return m.enterDashboard()
	case viewInbox:
		return m.enterInbox()
	case viewBook:
		return m.enterBook()
	}
	return m, nil
}

func (m appModel) currentWorkspaceID() int {
	if ws := m.deps.Workspace.Current(); ws != nil {
		return ws.ID
	}
	return 0
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case initMsg:
		// Home redirect: token decides login vs workspace list.
		if m.deps.Session.Authenticated() {
			return m.navigate(viewWorkspaces)
		}
		return m.navigate(viewLogin)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			switch msg.String() {
			case "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}

	case loginResultMsg:
		return m.onLoginResult(msg)
	case registerResultMsg:
		return m.onRegisterResult(msg)
	case verifyResultMsg:
		return m.onVerifyResult(msg)
	case resendResultMsg:
		return m.onResendResult(msg)
	case workspacesLoadedMsg:
		return m.onWorkspacesLoaded(msg)
	case workspaceCreatedMsg:
		return m.onWorkspaceCreated(msg)
	case workspaceActivatedMsg:
		return m.onWorkspaceActivated(msg)
	case setupLoadedMsg:
		return m.onSetupLoaded(msg)
	case bookingTypeAddedMsg:
		return m.onBookingTypeAdded(msg)
	case contactAddedMsg:
		return m.onContactAdded(msg)
	case dashboardLoadedMsg:
		return m.onDashboardLoaded(msg)
	case conversationsLoadedMsg:
		return m.onConversationsLoaded(msg)
	case messageSentMsg:
		return m.onMessageSent(msg)
	case bookingPlacedMsg:
		return m.onBookingPlaced(msg)
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewRegister:
		return m.updateRegister(msg)
	case viewWorkspaces:
		return m.updateWorkspaces(msg)
	case viewSetup:
		return m.updateSetup(msg)
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewInbox:
		return m.updateInbox(msg)
	case viewBook:
		return m.updateBook(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var body string
	switch m.view {
	case viewLogin:
		body = m.viewLogin()
	case viewRegister:
		body = m.viewRegister()
	case viewWorkspaces:
		body = m.viewWorkspaces()
	case viewSetup:
		body = m.viewSetup()
	case viewDashboard:
		body = m.viewDashboard()
	case viewInbox:
		body = m.viewInbox()
	case viewBook:
		body = m.viewBook()
	}

	return strings.Join([]string{m.header(), body, m.footer()}, "\n\n")
}

func (m appModel) header() string {
	who := "-"
	if u := m.deps.Session.User(); u != nil {
		who = u.Email
	} else if m.deps.Session.Authenticated() {
		who = "(authenticated)"
	}
	ws := "-"
	if w := m.deps.Workspace.Current(); w != nil {
		ws = w.Name
	}
	return styleTitle().Render("CareOps") + styleMuted().Render("  user="+who+"  workspace="+ws)
}

func (m appModel) footer() string {
	var keys string
	switch m.view {
	case viewLogin:
		keys = "tab: next field  enter: submit  ctrl+r: register  ctrl+b: book"
	case viewRegister:
		keys = "tab: next field  enter: submit  esc: back to login"
	case viewWorkspaces:
		keys = "enter: select  n: new workspace  ctrl+l: logout  q: quit"
	case viewSetup:
		keys = "ctrl+t: switch tab  tab: next field  enter: add  esc: workspaces"
	case viewDashboard:
		keys = "i: inbox  r: reload  esc: workspaces  q: quit"
	case viewInbox:
		keys = "tab: compose/list  up/down: conversation  enter: send  esc: dashboard"
	case viewBook:
		keys = "tab: next field  enter: continue  esc: back"
	}
	return styleMuted().Render(keys + "  f1: help  ctrl+c: quit")
}

func (m *appModel) resize() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.wsList.SetSize(w, h)
}

func (m appModel) logErr(where string, err error) {
	if m.deps.Logger != nil && err != nil {
		m.deps.Logger.Error(where, zap.Error(err))
	}
}
