package beanlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/crema/internal/models"
)

type AddBeanMsg struct{}

type DeleteBeanMsg struct {
	ID string
}

type Item struct {
	Bean models.Bean
}

func (i Item) Title() string {
	return fmt.Sprintf("%s (%s)", i.Bean.Name, i.Bean.Origin)
}

func (i Item) Description() string {
	now := time.Now()
	return fmt.Sprintf("%s roast | %d days since roast | %s",
		i.Bean.RoastLevel, i.Bean.DaysSinceRoast(now), i.Bean.Freshness(now))
}

func (i Item) FilterValue() string { return i.Bean.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(beans []models.Bean, width, height int) Model {
	items := make([]list.Item, len(beans))
	for i, b := range beans {
		items[i] = Item{Bean: b}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Beans"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetBeans(beans []models.Bean) {
	items := make([]list.Item, len(beans))
	for i, b := range beans {
		items[i] = Item{Bean: b}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddBeanMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteBeanMsg{ID: i.Bean.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No beans yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
