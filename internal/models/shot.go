package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Shot represents one brewing attempt. The bean is an embedded copy frozen at
// recording time, so deleting or re-adding the original bean never changes a
// recorded shot.
type Shot struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	GrindSetting float64   `json:"grindSetting"`
	Bean         Bean      `json:"coffeeBean"`
	Dose         float64   `json:"dose"`
	Yield        float64   `json:"yield"`
	ShotTime     float64   `json:"shotTime"`
	TasteNotes   string    `json:"tasteNotes"`
}

// NewShot validates and creates a shot. Dose must be a positive finite number;
// yield must be finite but may be zero or negative (a failed shot still gets
// recorded). The bean must have been constructed via NewBean.
func NewShot(bean Bean, grind, dose, yield, shotTime float64, notes string) (Shot, error) {
	if bean.ID == "" {
		return Shot{}, fmt.Errorf("a bean must be selected")
	}
	if math.IsNaN(dose) || math.IsInf(dose, 0) || dose <= 0 {
		return Shot{}, fmt.Errorf("dose must be a positive number of grams")
	}
	if math.IsNaN(yield) || math.IsInf(yield, 0) {
		return Shot{}, fmt.Errorf("yield must be a number of grams")
	}
	if shotTime < 0 {
		return Shot{}, fmt.Errorf("shot time cannot be negative")
	}

	return Shot{
		ID:           uuid.New().String(),
		Date:         time.Now(),
		GrindSetting: grind,
		Bean:         bean,
		Dose:         dose,
		Yield:        yield,
		ShotTime:     shotTime,
		TasteNotes:   notes,
	}, nil
}

// ExtractionRatio is yield divided by dose, unrounded. Dose is guaranteed
// positive by NewShot.
func (s Shot) ExtractionRatio() float64 {
	return s.Yield / s.Dose
}
