package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/crema/internal/draft"
)

var shotStepTitles = map[draft.ShotStep]string{
	draft.ShotStepBean:  "Pull a shot - 1/6 Bean",
	draft.ShotStepGrind: "Pull a shot - 2/6 Grind",
	draft.ShotStepDose:  "Pull a shot - 3/6 Dose",
	draft.ShotStepTimer: "Pull a shot - 4/6 Timer",
	draft.ShotStepYield: "Pull a shot - 5/6 Yield",
	draft.ShotStepNotes: "Pull a shot - 6/6 Notes",
}

var beanStepTitles = map[draft.BeanStep]string{
	draft.BeanStepOrigin: "New bean - 1/4 Origin",
	draft.BeanStepRoast:  "New bean - 2/4 Roast",
	draft.BeanStepDate:   "New bean - 3/4 Roast Date",
	draft.BeanStepName:   "New bean - 4/4 Name",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateShots:
		content = docStyle.Render(m.shotList.View())
	case StateBeans:
		content = docStyle.Render(m.beanList.View())
	case StateNewShot:
		content = m.viewShotFlow()
	case StateNewBean:
		content = m.viewBeanFlow()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Shots", "Beans"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewShotFlow() string {
	if m.shotDraft == nil {
		return ""
	}

	title := stepTitleStyle.Render(shotStepTitles[m.shotDraft.Step()])

	var body string
	if m.shotDraft.Step() == draft.ShotStepTimer {
		body = m.viewTimer()
	} else if m.form != nil {
		body = m.form.View()
	}

	parts := []string{title, body}
	if m.formError != "" {
		parts = append(parts, errorStyle.Render(m.formError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewTimer() string {
	d := m.shotDraft

	clock := timerStyle.Render(fmt.Sprintf("%05.1f s", d.Elapsed()))

	hint := "space: start"
	if d.TimerRunning() {
		hint = "space: stop"
	} else if d.Elapsed() > 0 {
		hint = "space: restart from 0 | enter: continue"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		clock,
		hintStyle.Render(hint),
	)
}

func (m Model) viewBeanFlow() string {
	if m.beanDraft == nil {
		return ""
	}

	title := stepTitleStyle.Render(beanStepTitles[m.beanDraft.Step()])

	var body string
	if m.form != nil {
		body = m.form.View()
	}

	parts := []string{title, body}
	if m.formError != "" {
		parts = append(parts, errorStyle.Render(m.formError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewConfirmDelete() string {
	name := m.beanToDeleteID
	if bean, ok := m.beans.Get(m.beanToDeleteID); ok {
		name = bean.Name
	}

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete bean %q?", name)),
			hintStyle.Render("Recorded shots keep their own copy of the bean."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
