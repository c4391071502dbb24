// Package draft holds the transient multi-step entry flows. A draft is a
// mutable scratch record walked one step at a time; nothing reaches a store
// until Finish validates the whole thing through the models constructors.
package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/store"
)

type BeanStep int

const (
	BeanStepOrigin BeanStep = iota
	BeanStepRoast
	BeanStepDate
	BeanStepName
)

// BeanDraft walks the four-step bean entry flow: Origin, RoastLevel,
// RoastDate, Name. Fields survive back navigation; only Reset discards them.
type BeanDraft struct {
	store *store.BeanStore
	step  BeanStep

	Origin    string
	Roast     models.RoastLevel
	RoastDate time.Time
	Name      string
}

// NewBeanDraft creates a draft at the first step with the default roast level
// and today's roast date.
func NewBeanDraft(s *store.BeanStore) *BeanDraft {
	return &BeanDraft{
		store:     s,
		Roast:     models.RoastMedium,
		RoastDate: time.Now(),
	}
}

func (d *BeanDraft) Step() BeanStep {
	return d.step
}

// CanAdvance reports whether the given step's field is complete enough to move
// forward.
func (d *BeanDraft) CanAdvance(step BeanStep) bool {
	switch step {
	case BeanStepOrigin:
		return strings.TrimSpace(d.Origin) != ""
	case BeanStepRoast, BeanStepDate:
		return true
	case BeanStepName:
		return strings.TrimSpace(d.Name) != ""
	default:
		return false
	}
}

// Next advances one step when the current step allows it.
func (d *BeanDraft) Next() bool {
	if d.step >= BeanStepName || !d.CanAdvance(d.step) {
		return false
	}
	d.step++
	return true
}

// Back moves one step backward without losing any field.
func (d *BeanDraft) Back() bool {
	if d.step <= BeanStepOrigin {
		return false
	}
	d.step--
	return true
}

// Finish validates the draft and commits the bean to the store. Only callable
// from the final step; on a validation error the draft stays there so the user
// can correct it.
func (d *BeanDraft) Finish() (models.Bean, error) {
	if d.step != BeanStepName {
		return models.Bean{}, fmt.Errorf("bean entry is not at the final step")
	}

	bean, err := models.NewBean(d.Name, d.Roast, d.Origin, d.RoastDate)
	if err != nil {
		return models.Bean{}, err
	}

	d.store.Add(bean)
	return bean, nil
}

// Reset discards all fields and returns to the first step.
func (d *BeanDraft) Reset() {
	d.step = BeanStepOrigin
	d.Origin = ""
	d.Roast = models.RoastMedium
	d.RoastDate = time.Now()
	d.Name = ""
}
