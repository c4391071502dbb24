package constants

// Storage keys for the two persisted collections.
const (
	BeansKey = "coffeeBeans"
	ShotsKey = "espressoShots"
)

// DateFormat is the calendar-date format used for CLI input and display.
const DateFormat = "2006-01-02"

// Grind setting bounds. The step is enforced by the entry forms, not by
// storage.
const (
	GrindMin     = 1.0
	GrindMax     = 10.0
	GrindStep    = 0.5
	GrindDefault = 5.0
)
