package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SamiraSamrose/intelligent-board-games/internal/anim"
	"github.com/SamiraSamrose/intelligent-board-games/internal/api"
	"github.com/SamiraSamrose/intelligent-board-games/internal/board"
	"github.com/SamiraSamrose/intelligent-board-games/internal/config"
	"github.com/SamiraSamrose/intelligent-board-games/internal/session"
	"github.com/SamiraSamrose/intelligent-board-games/internal/sound"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
	"github.com/SamiraSamrose/intelligent-board-games/internal/transport"
	"github.com/SamiraSamrose/intelligent-board-games/internal/vr"
)

// UIPhase tracks which screen the client shows.
type UIPhase int

const (
	PhaseSetup UIPhase = iota
	PhaseActive
)

// StateChangedMsg fires when the controller accepted a new snapshot.
type StateChangedMsg struct{}

// FrameTickMsg drives one animation frame.
type FrameTickMsg time.Time

// frameRequestMsg asks the update loop to schedule the next frame tick.
type frameRequestMsg struct{}

// SessionCreatedMsg reports a successful session start.
type SessionCreatedMsg struct{}

// SessionErrorMsg carries a failed session operation.
type SessionErrorMsg struct {
	Err error
}

// ActionsLoadedMsg delivers the human seat's available actions.
type ActionsLoadedMsg struct {
	Actions []state.Action
}

// ActionResultMsg reports the outcome of a submitted action and the
// automated turns that followed it.
type ActionResultMsg struct {
	Err error
}

// ConnectedMsg reports an established push channel.
type ConnectedMsg struct{}

// ConnectionErrorMsg reports a failed push channel dial.
type ConnectionErrorMsg struct {
	Err error
}

const boardWidth, boardHeight = 100, 28

// AppModel is the root bubbletea model. It owns the phase switch between
// the setup form and the live session, bridges controller callbacks into
// tea messages, and drives the animation scheduler.
type AppModel struct {
	cfg        *config.Config
	controller *session.Controller
	channel    *transport.Channel
	renderer   *board.Renderer
	scheduler  *anim.Scheduler
	sounds     *sound.Manager

	phase  UIPhase
	setup  *SetupModel
	active *ActiveModel

	// changeChan bridges controller and scheduler callbacks into the
	// update loop.
	changeChan chan tea.Msg

	// runCtx bounds automated turn runs so quitting cancels them.
	runCtx    context.Context
	runCancel context.CancelFunc

	// busy indicates an in-flight session call (create or automated run).
	busy    bool
	spinner spinner.Model

	width  int
	height int
	err    string
}

// NewAppModel wires the full client stack from configuration.
func NewAppModel(cfg *config.Config) *AppModel {
	client := api.NewClient(cfg.Server.APIBaseURL, cfg.Game.RequestTimeoutDuration())
	channel := transport.NewChannel(cfg.Server.WebSocketURL)
	immersive := vr.NewAdapter(client)

	controller := session.NewController(client, channel, immersive, session.Config{
		AITurnDelay: cfg.Game.AITurnDelayDuration(),
		MaxAITurns:  cfg.Game.MaxAITurns,
		LogCapacity: cfg.Game.LogCapacity,
	})

	changeChan := make(chan tea.Msg, 16)
	controller.SetOnChange(func() {
		select {
		case changeChan <- StateChangedMsg{}:
		default:
		}
	})

	scheduler := anim.NewScheduler()

	runCtx, runCancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = labelStyle

	m := &AppModel{
		spinner:    sp,
		cfg:        cfg,
		controller: controller,
		channel:    channel,
		renderer:   board.NewRenderer(boardWidth, boardHeight),
		scheduler:  scheduler,
		sounds:     sound.NewManager(),
		phase:      PhaseSetup,
		changeChan: changeChan,
		runCtx:     runCtx,
		runCancel:  runCancel,
	}
	m.setup = NewSetupModel()
	m.active = NewActiveModel(m)

	// Another frame wanted: nudge the update loop so it schedules a tick.
	scheduler.RequestFrame = func() {
		select {
		case changeChan <- frameRequestMsg{}:
		default:
		}
	}

	return m
}

func (m *AppModel) Init() tea.Cmd {
	if m.cfg.UI.Sound {
		go func() {
			_ = m.sounds.Init()
		}()
	}
	return tea.Batch(
		m.connectChannel(),
		m.listenForChanges(),
	)
}

// listenForChanges relays the next bridged controller message.
func (m *AppModel) listenForChanges() tea.Cmd {
	return func() tea.Msg {
		return <-m.changeChan
	}
}

func (m *AppModel) connectChannel() tea.Cmd {
	return func() tea.Msg {
		if err := m.channel.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, cmd := m.handleKeyPress(msg)
		if handled {
			return m, cmd
		}

	case ConnectedMsg:
		// Push updates flow once a session joins its room.

	case ConnectionErrorMsg:
		// The client still works over plain request/response; pushed
		// updates are just unavailable.
		m.err = "live updates unavailable: " + msg.Err.Error()

	case StateChangedMsg:
		cmds = append(cmds, m.listenForChanges())

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case frameRequestMsg:
		cmds = append(cmds, m.listenForChanges())
		cmds = append(cmds, tea.Tick(m.cfg.UI.FrameIntervalDuration(), func(t time.Time) tea.Msg {
			return FrameTickMsg(t)
		}))

	case FrameTickMsg:
		m.scheduler.Tick(time.Time(msg))
		if m.scheduler.Active() == 0 {
			m.scheduler.Stop()
		}

	case SessionCreatedMsg:
		m.busy = false
		m.phase = PhaseActive
		m.err = ""
		m.sounds.Play(sound.CueShuffle)
		m.active.onSessionStart()
		cmds = append(cmds, m.active.loadActions(), m.runAutomatedTurns())

	case SessionErrorMsg:
		m.busy = false
		m.err = msg.Err.Error()

	case ActionsLoadedMsg:
		m.active.setActions(msg.Actions)

	case ActionResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			m.sounds.Play(sound.CueError)
		} else {
			m.err = ""
			m.sounds.Play(sound.CueAction)
		}
		m.active.pulseCurrentSeat()
		cmds = append(cmds, m.active.loadActions())
	}

	switch m.phase {
	case PhaseSetup:
		cmds = append(cmds, m.setup.update(msg))
	case PhaseActive:
		cmds = append(cmds, m.active.update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	var body string
	switch m.phase {
	case PhaseActive:
		body = m.active.view()
	default:
		body = m.setup.view(m.err)
	}
	if m.busy {
		body += "\n" + m.spinner.View() + dimStyle.Render(" waiting on the table...")
	}
	return docStyle.Render(body)
}

// createSession provisions the configured session off the update loop.
func (m *AppModel) createSession() tea.Cmd {
	gameType := m.setup.SelectedGameType()
	roster := m.setup.Roster()
	immersive := m.setup.Immersive()

	m.busy = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		if err := m.controller.CreateSession(m.runCtx, gameType, roster, immersive); err != nil {
			return SessionErrorMsg{Err: err}
		}
		return SessionCreatedMsg{}
	})
}

// runAutomatedTurns plays out automated seats that lead the first human
// turn, such as when the human does not hold seat 0.
func (m *AppModel) runAutomatedTurns() tea.Cmd {
	m.busy = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return ActionResultMsg{Err: m.controller.RunAutomatedTurns(m.runCtx)}
	})
}

// leaveSession returns to setup and tears the session down.
func (m *AppModel) leaveSession() {
	m.runCancel()
	m.runCtx, m.runCancel = context.WithCancel(context.Background())
	m.controller.LeaveSession()
	m.active.reset()
	m.phase = PhaseSetup
	m.err = ""
}

// shutdown cancels in-flight work before the program exits.
func (m *AppModel) shutdown() {
	m.runCancel()
	m.channel.Close()
	m.sounds.Close()
}
