package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RoastLevel string

const (
	RoastLight  RoastLevel = "Light"
	RoastMedium RoastLevel = "Medium"
	RoastDark   RoastLevel = "Dark"
)

// ParseRoastLevel maps a case-insensitive label to a RoastLevel.
func ParseRoastLevel(s string) (RoastLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return RoastLight, nil
	case "medium":
		return RoastMedium, nil
	case "dark":
		return RoastDark, nil
	default:
		return "", fmt.Errorf("invalid roast level: %s", s)
	}
}

type Freshness string

const (
	FreshnessVeryFresh Freshness = "Very Fresh"
	FreshnessFresh     Freshness = "Fresh"
	FreshnessGood      Freshness = "Good"
	FreshnessFair      Freshness = "Fair"
	FreshnessOld       Freshness = "Old"
)

// Bean represents one physical batch of coffee. Beans are immutable once
// created; construct them with NewBean.
type Bean struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	RoastLevel RoastLevel `json:"roastLevel"`
	Origin     string     `json:"origin"`
	RoastDate  time.Time  `json:"roastDate"`
}

// NewBean validates and creates a bean. Name and origin must be non-empty
// after trimming.
func NewBean(name string, roast RoastLevel, origin string, roastDate time.Time) (Bean, error) {
	name = strings.TrimSpace(name)
	origin = strings.TrimSpace(origin)

	if name == "" {
		return Bean{}, fmt.Errorf("bean name cannot be empty")
	}
	if origin == "" {
		return Bean{}, fmt.Errorf("bean origin cannot be empty")
	}

	return Bean{
		ID:         uuid.New().String(),
		Name:       name,
		RoastLevel: roast,
		Origin:     origin,
		RoastDate:  roastDate,
	}, nil
}

// DaysSinceRoast returns the number of whole calendar days between the roast
// date and asOf. Time of day is irrelevant: a bean roasted at 23:59 is one day
// old at 00:01 the next day.
func (b Bean) DaysSinceRoast(asOf time.Time) int {
	ry, rm, rd := b.RoastDate.Date()
	roastDay := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)

	ay, am, ad := asOf.Date()
	asOfDay := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)

	return int(asOfDay.Sub(roastDay).Hours() / 24)
}

// Freshness buckets DaysSinceRoast into a discrete category.
func (b Bean) Freshness(asOf time.Time) Freshness {
	days := b.DaysSinceRoast(asOf)
	switch {
	case days <= 3:
		return FreshnessVeryFresh
	case days <= 7:
		return FreshnessFresh
	case days <= 14:
		return FreshnessGood
	case days <= 21:
		return FreshnessFair
	default:
		return FreshnessOld
	}
}
