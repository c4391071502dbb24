package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/crema/internal/draft"
	"github.com/julianstephens/crema/internal/store"
	"github.com/julianstephens/crema/internal/timer"
	"github.com/julianstephens/crema/internal/tui/components/beanlist"
	"github.com/julianstephens/crema/internal/tui/components/shotlist"
)

type SessionState int

const (
	StateShots SessionState = iota
	StateBeans
	StateNewShot
	StateNewBean
	StateConfirmDelete
)

// tabCount is the number of top-level tabs (Shots, Beans).
const tabCount = 2

// formBuffers holds form-bound scratch fields that are not draft fields. It is
// held by pointer so huh's value bindings survive bubbletea's model copies.
type formBuffers struct {
	BeanChoice string
	RoastDate  string
}

type storeChangedMsg struct{}

type timerTickMsg time.Time

func timerTick() tea.Cmd {
	return tea.Tick(timer.TickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func waitForChange(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

type Model struct {
	beans          *store.BeanStore
	shots          *store.ShotStore
	state          SessionState
	keys           KeyMap
	help           help.Model
	shotList       shotlist.Model
	beanList       beanlist.Model
	form           *huh.Form
	shotDraft      *draft.ShotDraft
	beanDraft      *draft.BeanDraft
	buf            *formBuffers
	beanForShot    bool
	beanToDeleteID string
	formError      string
	changes        chan struct{}
	quitting       bool
	width          int
	height         int
}

func NewModel(beans *store.BeanStore, shots *store.ShotStore) Model {
	// Store mutations signal this channel; the Elm loop picks the signal up
	// as a message and refreshes the lists.
	changes := make(chan struct{}, 8)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}
	beans.Subscribe(notify)
	shots.Subscribe(notify)

	return Model{
		beans:    beans,
		shots:    shots,
		state:    StateShots,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		shotList: shotlist.New(shots.All(), 0, 0),
		beanList: beanlist.New(beans.All(), 0, 0),
		changes:  changes,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateShots, StateBeans:
		keys = append(keys, m.keys.Add)
	case StateNewShot, StateNewBean:
		keys = append(keys, m.keys.Back)
	}
	if m.state == StateBeans {
		keys = append(keys, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back}
	actions := []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Timer}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}
