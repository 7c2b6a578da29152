package calendar

// The world runs on a fixed 360-day calendar: 12 months of 30 days,
// 24-hour days, minute resolution. time.Time is unusable here because
// Gregorian month lengths would break the rollover arithmetic.

// Date is an in-world calendar/clock value.
type Date struct {
	Year   int `json:"year"`
	Month  int `json:"month"` // 1-12
	Day    int `json:"day"`   // 1-30
	Hour   int `json:"hour"`  // 0-23
	Minute int `json:"minute"`
}

// TimeOfDay is the coarse classification of an hour.
type TimeOfDay string

const (
	Dawn  TimeOfDay = "dawn"
	Day   TimeOfDay = "day"
	Dusk  TimeOfDay = "dusk"
	Night TimeOfDay = "night"
)

// Fixed action time costs, in minutes.
const (
	CostLocalStep    = 1
	CostWorldStep    = 5
	CostRoughTerrain = 10 // mountain or water tiles, any map
	CostSearch       = 30
	CostRest         = 480
)

// Advance returns d moved forward by the given minutes, cascading
// minute -> hour -> day -> month -> year.
func Advance(d Date, minutes int) Date {
	d.Minute += minutes
	d.Hour += d.Minute / 60
	d.Minute %= 60
	d.Day += d.Hour / 24
	d.Hour %= 24
	for d.Day > 30 {
		d.Day -= 30
		d.Month++
	}
	for d.Month > 12 {
		d.Month -= 12
		d.Year++
	}
	return d
}

// TimeOfDayAt classifies an hour: dawn [5,9), day [9,18), dusk [18,21),
// night otherwise.
func TimeOfDayAt(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 9:
		return Dawn
	case hour >= 9 && hour < 18:
		return Day
	case hour >= 18 && hour < 21:
		return Dusk
	default:
		return Night
	}
}

// TotalDays flattens a date to a day count. Only meaningful for
// relative comparisons (restock and autosave cadences).
func TotalDays(d Date) int {
	return d.Year*360 + d.Month*30 + d.Day
}
