package schedule

import (
	"testing"
	"time"

	"bancohoras/internal/holiday"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return d
}

func TestResolve_Weekdays(t *testing.T) {
	empty := holiday.NewCalendar(nil)

	// 2024-06-03 is a Monday
	assert.Equal(t, FullDay, Resolve(date(t, "2024-06-03"), empty))
	assert.Equal(t, FullDay, Resolve(date(t, "2024-06-07"), empty)) // Friday
	assert.Equal(t, HalfDaySaturday, Resolve(date(t, "2024-06-08"), empty))
	assert.Equal(t, OffDay, Resolve(date(t, "2024-06-09"), empty)) // Sunday
}

func TestResolve_HolidayBeatsWeekday(t *testing.T) {
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: date(t, "2024-06-03"), Name: "Feriado", Type: holiday.TypeState},
	})

	assert.Equal(t, OffDay, Resolve(date(t, "2024-06-03"), cal))
	// Saturday that is also a holiday is an off day, not a half day.
	cal2 := holiday.NewCalendar([]holiday.Holiday{
		{Date: date(t, "2024-06-08"), Name: "Feriado", Type: holiday.TypeMunicipal},
	})
	assert.Equal(t, OffDay, Resolve(date(t, "2024-06-08"), cal2))
}

func TestConfig_ExpectedMinutes(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 480, cfg.ExpectedMinutes(FullDay))
	assert.Equal(t, 240, cfg.ExpectedMinutes(HalfDaySaturday))
	assert.Equal(t, 0, cfg.ExpectedMinutes(OffDay))

	custom := Config{FullDayMinutes: 528, SaturdayMinutes: 0, ToleranceMinutes: 10}
	assert.Equal(t, 528, custom.ExpectedMinutes(FullDay))
}

func TestKind_ExpectedPunches(t *testing.T) {
	assert.Equal(t, 4, FullDay.ExpectedPunches())
	assert.Equal(t, 2, HalfDaySaturday.ExpectedPunches())
	assert.Equal(t, 0, OffDay.ExpectedPunches())
}
