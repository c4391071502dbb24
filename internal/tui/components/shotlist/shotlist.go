package shotlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/crema/internal/models"
)

type AddShotMsg struct{}

type Item struct {
	Shot models.Shot
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Shot.Date.Format("Jan 02 15:04"), i.Shot.Bean.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%.1fg in, %.1fg out (1:%.1f) | %.1fs | grind %.1f",
		i.Shot.Dose, i.Shot.Yield, i.Shot.ExtractionRatio(), i.Shot.ShotTime, i.Shot.GrindSetting)
	if i.Shot.TasteNotes != "" {
		desc += " | " + i.Shot.TasteNotes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Shot.Bean.Name }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "pull shot"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(shots []models.Shot, width, height int) Model {
	items := make([]list.Item, len(shots))
	for i, s := range shots {
		items[i] = Item{Shot: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Shots"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetShots(shots []models.Shot) {
	items := make([]list.Item, len(shots))
	for i, s := range shots {
		items[i] = Item{Shot: s}
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
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddShotMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No shots yet.\n  Press 'a' to pull one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
