package holiday

import (
	"context"
	"time"

	"bancohoras/internal/shared/apperror"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	CalendarForRange(ctx context.Context, start, end time.Time) (Calendar, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, apperror.InvalidField("date")
	}

	row := &Holiday{
		ID:        uuid.New(),
		Date:      date,
		Name:      req.Name,
		Type:      req.Type,
		Recurring: req.Recurring,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return HolidayResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1900 || year > 2200 {
		return nil, apperror.InvalidField("year")
	}

	rows, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	res := make([]HolidayResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) CalendarForRange(ctx context.Context, start, end time.Time) (Calendar, error) {
	rows, err := s.repo.FindApplicable(ctx, start, end)
	if err != nil {
		return Calendar{}, err
	}
	return NewCalendar(rows), nil
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID.String(),
		Date:      h.Date.Format("2006-01-02"),
		Name:      h.Name,
		Type:      h.Type,
		Recurring: h.Recurring,
	}
}
