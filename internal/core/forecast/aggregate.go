// Package forecast reduces the 3-hourly forecast samples into per-day summaries.
package forecast

import (
	"math"
	"time"
)

// MaxDays caps the number of daily summaries returned by Aggregate
const MaxDays = 5

// Sample is one 3-hourly forecast entry
type Sample struct {
	Time        time.Time
	TempMin     float64
	TempMax     float64
	Description string
}

// DailySummary is the reduced forecast for one calendar day
type DailySummary struct {
	Date      string `json:"date"`
	MaxTemp   int    `json:"maxTemp"`
	MinTemp   int    `json:"minTemp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// dayGroup accumulates the samples of one day label
type dayGroup struct {
	label      string
	minTemp    float64
	maxTemp    float64
	conditions *tally
	icons      *tally
}

func newDayGroup(label string) *dayGroup {
	return &dayGroup{
		label:      label,
		minTemp:    math.Inf(1),
		maxTemp:    math.Inf(-1),
		conditions: newTally(),
		icons:      newTally(),
	}
}

func (g *dayGroup) add(s Sample) {
	if s.TempMin < g.minTemp {
		g.minTemp = s.TempMin
	}
	if s.TempMax > g.maxTemp {
		g.maxTemp = s.TempMax
	}
	g.conditions.add(s.Description)
	// The icon key is the description itself.
	g.icons.add(s.Description)
}

func (g *dayGroup) summary() DailySummary {
	return DailySummary{
		Date:      g.label,
		MaxTemp:   roundHalfUp(g.maxTemp),
		MinTemp:   roundHalfUp(g.minTemp),
		Condition: g.conditions.predominant(),
		Icon:      g.icons.predominant(),
	}
}

// Aggregate groups samples by weekday in the reference's location and reduces
// each group to its extremes and predominant condition. Groups keep the order
// in which their first sample appears; at most MaxDays summaries are returned.
// With excludeToday, samples falling on the reference's calendar day are dropped.
func Aggregate(samples []Sample, reference time.Time, excludeToday bool) []DailySummary {
	loc := reference.Location()
	today := DateLabel(reference)

	groups := make(map[string]*dayGroup)
	var order []*dayGroup

	for _, s := range samples {
		local := s.Time.In(loc)
		if excludeToday && DateLabel(local) == today {
			continue
		}

		label := WeekdayLabel(local)
		group, ok := groups[label]
		if !ok {
			group = newDayGroup(label)
			groups[label] = group
			order = append(order, group)
		}
		group.add(s)
	}

	if len(order) > MaxDays {
		order = order[:MaxDays]
	}

	summaries := make([]DailySummary, 0, len(order))
	for _, group := range order {
		summaries = append(summaries, group.summary())
	}
	return summaries
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
