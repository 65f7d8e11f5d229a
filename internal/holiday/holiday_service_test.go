package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, h *Holiday) error
	findByYearFn     func(ctx context.Context, year int) ([]Holiday, error)
	findApplicableFn func(ctx context.Context, start, end time.Time) ([]Holiday, error)
}

func (f *fakeRepo) Create(ctx context.Context, h *Holiday) error { return f.createFn(ctx, h) }
func (f *fakeRepo) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	return f.findByYearFn(ctx, year)
}
func (f *fakeRepo) FindApplicable(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	return f.findApplicableFn(ctx, start, end)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return d
}

func TestCalendar_RecurringMatchesEveryYear(t *testing.T) {
	cal := NewCalendar([]Holiday{
		{ID: uuid.New(), Date: mustDate(t, "2020-12-25"), Name: "Natal", Type: TypeNational, Recurring: true},
	})

	for _, year := range []string{"2019", "2023", "2031"} {
		assert.True(t, cal.Contains(mustDate(t, year+"-12-25")), "year %s", year)
	}
	assert.False(t, cal.Contains(mustDate(t, "2023-12-24")))
}

func TestCalendar_NonRecurringMatchesExactDateOnly(t *testing.T) {
	cal := NewCalendar([]Holiday{
		{ID: uuid.New(), Date: mustDate(t, "2024-11-20"), Name: "Feriado municipal", Type: TypeMunicipal},
	})

	assert.True(t, cal.Contains(mustDate(t, "2024-11-20")))
	assert.False(t, cal.Contains(mustDate(t, "2025-11-20")))
}

func TestCalendar_MultipleHolidaysSameDate(t *testing.T) {
	cal := NewCalendar([]Holiday{
		{Date: mustDate(t, "2024-05-01"), Name: "Dia do Trabalho", Type: TypeNational, Recurring: true},
		{Date: mustDate(t, "2024-05-01"), Name: "Aniversário da empresa", Type: TypeCompany},
	})

	assert.True(t, cal.Contains(mustDate(t, "2024-05-01")))
	assert.Equal(t, 2, cal.Len())
}

func TestService_CreateAndGetByYear(t *testing.T) {
	ctx := context.Background()

	var saved Holiday
	repo := &fakeRepo{
		createFn: func(ctx context.Context, h *Holiday) error { saved = *h; return nil },
		findByYearFn: func(ctx context.Context, year int) ([]Holiday, error) {
			return []Holiday{saved}, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Create(ctx, CreateHolidayRequest{
		Date:      "2024-12-25",
		Name:      "Natal",
		Type:      TypeNational,
		Recurring: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-12-25", resp.Date)
	assert.True(t, resp.Recurring)

	list, err := svc.GetByYear(ctx, 2024)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Natal", list[0].Name)
}

func TestService_Create_InvalidDate(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, h *Holiday) error { return nil },
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateHolidayRequest{
		Date: "25/12/2024",
		Name: "Natal",
		Type: TypeNational,
	})
	assert.Error(t, err)
}
