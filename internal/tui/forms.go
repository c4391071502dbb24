package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/draft"
	"github.com/julianstephens/crema/internal/models"
)

// newBeanChoice is the select value that branches into the nested bean flow.
const newBeanChoice = "__new__"

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// newBeanStepForm builds the form for the bean draft's current step. One huh
// group per step keeps step navigation in our hands, so back navigation and
// the draft's CanAdvance gating stay authoritative.
func (m *Model) newBeanStepForm() *huh.Form {
	d := m.beanDraft

	var field huh.Field
	switch d.Step() {
	case draft.BeanStepOrigin:
		field = huh.NewInput().
			Title("Origin").
			Description("Country or region the beans came from").
			Value(&d.Origin).
			Validate(requireNonEmpty("origin"))
	case draft.BeanStepRoast:
		field = huh.NewSelect[models.RoastLevel]().
			Title("Roast Level").
			Options(
				huh.NewOption("Light", models.RoastLight),
				huh.NewOption("Medium", models.RoastMedium),
				huh.NewOption("Dark", models.RoastDark),
			).
			Value(&d.Roast)
	case draft.BeanStepDate:
		field = huh.NewInput().
			Title("Roast Date (YYYY-MM-DD)").
			Value(&m.buf.RoastDate).
			Validate(func(s string) error {
				_, err := time.Parse(constants.DateFormat, strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("invalid date format, use YYYY-MM-DD")
				}
				return nil
			})
	case draft.BeanStepName:
		field = huh.NewInput().
			Title("Name").
			Description("Label for this batch").
			Value(&d.Name).
			Validate(requireNonEmpty("name"))
	}

	return huh.NewForm(huh.NewGroup(field)).WithTheme(huh.ThemeDracula())
}

// newShotStepForm builds the form for the shot draft's current step. The timer
// step has no form; it is rendered directly.
func (m *Model) newShotStepForm() *huh.Form {
	d := m.shotDraft

	var field huh.Field
	switch d.Step() {
	case draft.ShotStepBean:
		options := []huh.Option[string]{}
		now := time.Now()
		for _, bean := range m.beans.All() {
			label := fmt.Sprintf("%s (%s, %d days)", bean.Name, bean.Origin, bean.DaysSinceRoast(now))
			options = append(options, huh.NewOption(label, bean.ID))
		}
		options = append(options, huh.NewOption("+ Add a new bean", newBeanChoice))
		field = huh.NewSelect[string]().
			Title("Bean").
			Options(options...).
			Value(&m.buf.BeanChoice)
	case draft.ShotStepGrind:
		options := []huh.Option[float64]{}
		for g := constants.GrindMin; g <= constants.GrindMax+1e-9; g += constants.GrindStep {
			options = append(options, huh.NewOption(fmt.Sprintf("%.1f", g), g))
		}
		field = huh.NewSelect[float64]().
			Title("Grind Setting").
			Options(options...).
			Value(&d.Grind)
	case draft.ShotStepDose:
		field = huh.NewInput().
			Title("Dose (g)").
			Description("Weight of dry grounds").
			Value(&d.Dose).
			Validate(requireNonEmpty("dose"))
	case draft.ShotStepYield:
		field = huh.NewInput().
			Title("Yield (g)").
			Description("Weight of espresso in the cup").
			Value(&d.Yield).
			Validate(requireNonEmpty("yield"))
	case draft.ShotStepNotes:
		field = huh.NewText().
			Title("Taste Notes (optional)").
			Value(&d.TasteNotes)
	}

	return huh.NewForm(huh.NewGroup(field)).WithTheme(huh.ThemeDracula())
}
