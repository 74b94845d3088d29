package entity

import "time"

// Classification groups the fractal sets called out in the announcement.
// It is deployment configuration, not logic.
type Classification struct {
	Featured    []string
	Undesirable []string
	NamedEffect string
}

// DailyFacts is everything the announcement needs to know about one day.
type DailyFacts struct {
	Date  time.Time
	Index int

	// ActiveFractals are today's daily fractal ids in rotation table order.
	ActiveFractals []string
	// Instabilities maps each fractal of interest to its instability names.
	Instabilities map[string][]string

	// Featured, Undesirable and WithNamedEffect hold display names.
	Featured        []string
	Undesirable     []string
	WithNamedEffect []string
}
