package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/store"
	"github.com/julianstephens/crema/internal/timer"
)

type ShotStep int

const (
	ShotStepBean ShotStep = iota
	ShotStepGrind
	ShotStepDose
	ShotStepTimer
	ShotStepYield
	ShotStepNotes
)

// ShotDraft walks the six-step shot entry flow: ChooseBean, Grind, Dose,
// Timer, Yield, TasteNotes. Dose and yield stay raw strings until Finish,
// where they must parse. The draft owns its stopwatch exclusively and stops it
// on every exit path.
type ShotDraft struct {
	store *store.ShotStore
	step  ShotStep
	watch *timer.Stopwatch

	Bean       *models.Bean
	Grind      float64
	Dose       string
	Yield      string
	TasteNotes string
}

// NewShotDraft creates a draft at the bean selection step with the default
// grind setting.
func NewShotDraft(s *store.ShotStore) *ShotDraft {
	return &ShotDraft{
		store: s,
		watch: timer.New(),
		Grind: constants.GrindDefault,
	}
}

func (d *ShotDraft) Step() ShotStep {
	return d.step
}

// SelectBean records the chosen bean as a value copy frozen at selection time.
func (d *ShotDraft) SelectBean(bean models.Bean) {
	d.Bean = &bean
}

// StartTimer resets the stopwatch to zero and starts it. Starting while
// already running is the same reset.
func (d *ShotDraft) StartTimer() {
	d.watch.Start()
}

// StopTimer halts the stopwatch, keeping the elapsed value.
func (d *ShotDraft) StopTimer() {
	d.watch.Stop()
}

// Elapsed returns the stopwatch value in seconds.
func (d *ShotDraft) Elapsed() float64 {
	return d.watch.Elapsed()
}

// TimerRunning reports whether the stopwatch is ticking.
func (d *ShotDraft) TimerRunning() bool {
	return d.watch.Running()
}

// CanAdvance reports whether the given step's field is complete enough to move
// forward. Dose and yield only need to be non-empty here; parse validity is
// checked at Finish.
func (d *ShotDraft) CanAdvance(step ShotStep) bool {
	switch step {
	case ShotStepBean:
		return d.Bean != nil
	case ShotStepGrind, ShotStepNotes:
		return true
	case ShotStepDose:
		return strings.TrimSpace(d.Dose) != ""
	case ShotStepTimer:
		return d.watch.Elapsed() > 0
	case ShotStepYield:
		return strings.TrimSpace(d.Yield) != ""
	default:
		return false
	}
}

// Next advances one step when the current step allows it. Leaving the timer
// step stops the stopwatch.
func (d *ShotDraft) Next() bool {
	if d.step >= ShotStepNotes || !d.CanAdvance(d.step) {
		return false
	}
	if d.step == ShotStepTimer {
		d.watch.Stop()
	}
	d.step++
	return true
}

// Back moves one step backward without losing any field. Backing out of the
// timer step stops the stopwatch; re-entering and starting again re-arms it
// from zero.
func (d *ShotDraft) Back() bool {
	if d.step <= ShotStepBean {
		return false
	}
	if d.step == ShotStepTimer {
		d.watch.Stop()
	}
	d.step--
	return true
}

// Finish validates the draft and commits the shot to the store. Only callable
// from the final step; on a validation error the draft stays there.
func (d *ShotDraft) Finish() (models.Shot, error) {
	if d.step != ShotStepNotes {
		return models.Shot{}, fmt.Errorf("shot entry is not at the final step")
	}
	if d.Bean == nil {
		return models.Shot{}, fmt.Errorf("a bean must be selected")
	}

	dose, err := strconv.ParseFloat(strings.TrimSpace(d.Dose), 64)
	if err != nil {
		return models.Shot{}, fmt.Errorf("dose must be a number of grams")
	}
	yield, err := strconv.ParseFloat(strings.TrimSpace(d.Yield), 64)
	if err != nil {
		return models.Shot{}, fmt.Errorf("yield must be a number of grams")
	}

	d.watch.Stop()
	shot, err := models.NewShot(*d.Bean, d.Grind, dose, yield, d.watch.Elapsed(), d.TasteNotes)
	if err != nil {
		return models.Shot{}, err
	}

	d.store.Record(shot)
	return shot, nil
}

// Reset stops the stopwatch, discards all fields, and returns to the first
// step.
func (d *ShotDraft) Reset() {
	d.watch.Stop()
	d.watch = timer.New()
	d.step = ShotStepBean
	d.Bean = nil
	d.Grind = constants.GrindDefault
	d.Dose = ""
	d.Yield = ""
	d.TasteNotes = ""
}
