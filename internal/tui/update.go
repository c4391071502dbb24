package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/draft"
	"github.com/julianstephens/crema/internal/tui/components/beanlist"
	"github.com/julianstephens/crema/internal/tui/components/shotlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.shotList.SetSize(msg.Width-4, msg.Height-6)
		m.beanList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case storeChangedMsg:
		m.shotList.SetShots(m.shots.All())
		m.beanList.SetBeans(m.beans.All())
		return m, waitForChange(m.changes)

	case timerTickMsg:
		// Keep repainting while the timer step is visible
		if m.state == StateNewShot && m.shotDraft != nil && m.shotDraft.Step() == draft.ShotStepTimer {
			return m, timerTick()
		}
		return m, nil

	case shotlist.AddShotMsg:
		return m.startShotFlow()

	case beanlist.AddBeanMsg:
		return m.startBeanFlow(false)

	case beanlist.DeleteBeanMsg:
		m.beanToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateShots, StateBeans:
		return m.updateLists(msg)
	case StateNewShot:
		return m.updateShotFlow(msg)
	case StateNewBean:
		return m.updateBeanFlow(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateShots:
		m.shotList, cmd = m.shotList.Update(msg)
	case StateBeans:
		m.beanList, cmd = m.beanList.Update(msg)
	}
	return m, cmd
}

func (m Model) startShotFlow() (tea.Model, tea.Cmd) {
	m.shotDraft = draft.NewShotDraft(m.shots)
	m.buf = &formBuffers{
		RoastDate: time.Now().Format(constants.DateFormat),
	}
	m.formError = ""
	m.state = StateNewShot
	m.form = m.newShotStepForm()
	return m, m.form.Init()
}

func (m Model) startBeanFlow(forShot bool) (tea.Model, tea.Cmd) {
	m.beanDraft = draft.NewBeanDraft(m.beans)
	if m.buf == nil {
		m.buf = &formBuffers{}
	}
	m.buf.RoastDate = time.Now().Format(constants.DateFormat)
	m.beanForShot = forShot
	m.formError = ""
	m.state = StateNewBean
	m.form = m.newBeanStepForm()
	return m, m.form.Init()
}

func (m Model) updateShotFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := m.shotDraft

	// The timer step has no form; it is driven by keys directly.
	if d.Step() == draft.ShotStepTimer {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Timer):
				if d.TimerRunning() {
					d.StopTimer()
					return m, nil
				}
				d.StartTimer()
				return m, timerTick()
			case key.Matches(msg, m.keys.Enter):
				if !d.CanAdvance(draft.ShotStepTimer) {
					m.formError = "run the timer before moving on"
					return m, nil
				}
				d.Next()
				m.formError = ""
				m.form = m.newShotStepForm()
				return m, m.form.Init()
			case key.Matches(msg, m.keys.Back):
				return m.retreatShotFlow()
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return m.retreatShotFlow()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.advanceShotFlow()
	case huh.StateAborted:
		return m.retreatShotFlow()
	}
	return m, cmd
}

func (m Model) advanceShotFlow() (tea.Model, tea.Cmd) {
	d := m.shotDraft
	m.formError = ""

	switch d.Step() {
	case draft.ShotStepBean:
		if m.buf.BeanChoice == newBeanChoice {
			m.buf.BeanChoice = ""
			return m.startBeanFlow(true)
		}
		if bean, ok := m.beans.Get(m.buf.BeanChoice); ok {
			d.SelectBean(bean)
		}
		d.Next()

	case draft.ShotStepNotes:
		if _, err := d.Finish(); err != nil {
			m.formError = err.Error()
			m.form = m.newShotStepForm()
			return m, m.form.Init()
		}
		m.shotDraft = nil
		m.form = nil
		m.state = StateShots
		return m, nil

	default:
		d.Next()
	}

	if d.Step() == draft.ShotStepTimer {
		m.form = nil
		return m, timerTick()
	}
	m.form = m.newShotStepForm()
	return m, m.form.Init()
}

func (m Model) retreatShotFlow() (tea.Model, tea.Cmd) {
	d := m.shotDraft
	if !d.Back() {
		// Cancelling from the first step tears the draft down, stopwatch
		// included
		d.Reset()
		m.shotDraft = nil
		m.form = nil
		m.formError = ""
		m.state = StateShots
		return m, nil
	}

	m.formError = ""
	if d.Step() == draft.ShotStepTimer {
		m.form = nil
		return m, timerTick()
	}
	m.form = m.newShotStepForm()
	return m, m.form.Init()
}

func (m Model) updateBeanFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return m.retreatBeanFlow()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.advanceBeanFlow()
	case huh.StateAborted:
		return m.retreatBeanFlow()
	}
	return m, cmd
}

func (m Model) advanceBeanFlow() (tea.Model, tea.Cmd) {
	d := m.beanDraft
	m.formError = ""

	switch d.Step() {
	case draft.BeanStepDate:
		// Validated by the form; a parse failure keeps the default
		if t, err := time.Parse(constants.DateFormat, strings.TrimSpace(m.buf.RoastDate)); err == nil {
			d.RoastDate = t
		}
		d.Next()

	case draft.BeanStepName:
		bean, err := d.Finish()
		if err != nil {
			m.formError = err.Error()
			m.form = m.newBeanStepForm()
			return m, m.form.Init()
		}
		m.beanDraft = nil
		if m.beanForShot {
			// The nested flow both adds the bean and selects it
			m.beanForShot = false
			m.shotDraft.SelectBean(bean)
			m.shotDraft.Next()
			m.state = StateNewShot
			m.form = m.newShotStepForm()
			return m, m.form.Init()
		}
		m.form = nil
		m.state = StateBeans
		return m, nil

	default:
		d.Next()
	}

	m.form = m.newBeanStepForm()
	return m, m.form.Init()
}

func (m Model) retreatBeanFlow() (tea.Model, tea.Cmd) {
	d := m.beanDraft
	if !d.Back() {
		d.Reset()
		m.beanDraft = nil
		m.form = nil
		m.formError = ""
		if m.beanForShot {
			// Fall back to the shot flow's bean selection step
			m.beanForShot = false
			m.state = StateNewShot
			m.form = m.newShotStepForm()
			return m, m.form.Init()
		}
		m.state = StateBeans
		return m, nil
	}

	m.formError = ""
	m.form = m.newBeanStepForm()
	return m, m.form.Init()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.beans.Delete(m.beanToDeleteID)
			m.beanToDeleteID = ""
			m.state = StateBeans
		case "n", "N", "esc", "q":
			m.beanToDeleteID = ""
			m.state = StateBeans
		}
	}
	return m, nil
}
