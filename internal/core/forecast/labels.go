package forecast

import "time"

// weekdays holds the pt-BR weekday names, indexed by time.Weekday
var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// WeekdayLabel returns the pt-BR weekday name of t in its own location
func WeekdayLabel(t time.Time) string {
	return weekdays[t.Weekday()]
}

// DateLabel formats t as a pt-BR short date, dd/mm/yyyy
func DateLabel(t time.Time) string {
	return t.Format("02/01/2006")
}
