package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_MinuteAndHourRollover(t *testing.T) {
	d := Date{Year: 1, Month: 3, Day: 1, Hour: 8, Minute: 45}
	got := Advance(d, 30)
	assert.Equal(t, Date{Year: 1, Month: 3, Day: 1, Hour: 9, Minute: 15}, got)
}

func TestAdvance_DayRollover(t *testing.T) {
	d := Date{Year: 1, Month: 3, Day: 1, Hour: 23, Minute: 30}
	got := Advance(d, 45)
	assert.Equal(t, Date{Year: 1, Month: 3, Day: 2, Hour: 0, Minute: 15}, got)
}

func TestAdvance_MonthAndYearRollover(t *testing.T) {
	d := Date{Year: 1, Month: 12, Day: 30, Hour: 23, Minute: 0}
	got := Advance(d, 60)
	assert.Equal(t, Date{Year: 2, Month: 1, Day: 1, Hour: 0, Minute: 0}, got)
}

func TestAdvance_RestSpansMidnight(t *testing.T) {
	d := Date{Year: 1, Month: 6, Day: 15, Hour: 22, Minute: 0}
	got := Advance(d, CostRest)
	assert.Equal(t, Date{Year: 1, Month: 6, Day: 16, Hour: 6, Minute: 0}, got)
}

func TestAdvance_SplitEqualsWhole(t *testing.T) {
	d := Date{Year: 1, Month: 1, Day: 28, Hour: 20, Minute: 50}
	whole := Advance(d, 500)
	split := Advance(Advance(d, 137), 363)
	assert.Equal(t, whole, split)
}

func TestTimeOfDayAt_PartitionsTheDay(t *testing.T) {
	cases := map[int]TimeOfDay{
		0: Night, 4: Night, 5: Dawn, 8: Dawn,
		9: Day, 17: Day, 18: Dusk, 20: Dusk,
		21: Night, 23: Night,
	}
	for hour, want := range cases {
		assert.Equal(t, want, TimeOfDayAt(hour), "hour %d", hour)
	}
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 360+30+1, TotalDays(Date{Year: 1, Month: 1, Day: 1}))

	d := Date{Year: 1, Month: 12, Day: 30}
	next := Advance(d, 24*60)
	assert.Equal(t, TotalDays(d)+1, TotalDays(next))
}
