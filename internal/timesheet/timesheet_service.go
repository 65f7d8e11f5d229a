package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bancohoras/internal/holiday"
	"bancohoras/internal/schedule"
	"bancohoras/internal/shared/apperror"
	"bancohoras/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const balanceCacheTTL = 5 * time.Minute

type Service interface {
	ClassifyAndPersist(ctx context.Context, employeeID, date string, punches []string) (DailyRecordResponse, error)
	MarkNoRecord(ctx context.Context, employeeID, date string) (DailyRecordResponse, error)
	EditRecord(ctx context.Context, id string, req EditRecordRequest) (DailyRecordResponse, error)
	GetMonthlyBalance(ctx context.Context, employeeID string, year int) ([]MonthlyBalanceResponse, error)
	GetRange(ctx context.Context, q RangeQuery) ([]DailyRecordResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	holidays holiday.Service
	rdb      *redis.Client
	cfg      schedule.Config
	group    singleflight.Group
}

func NewService(
	db *sql.DB,
	repo Repository,
	holidays holiday.Service,
	rdb *redis.Client,
	cfg schedule.Config,
) Service {
	return &service{
		db:       db,
		repo:     repo,
		holidays: holidays,
		rdb:      rdb,
		cfg:      cfg,
	}
}

func (s *service) ClassifyAndPersist(ctx context.Context, employeeID, date string, punches []string) (DailyRecordResponse, error) {
	empUUID, day, err := parseEmployeeDate(employeeID, date)
	if err != nil {
		return DailyRecordResponse{}, err
	}

	cal, err := s.holidays.CalendarForRange(ctx, day, day)
	if err != nil {
		return DailyRecordResponse{}, err
	}
	kind := schedule.Resolve(day, cal)
	result := Classify(punches, kind, s.cfg)

	rec := &DailyRecord{
		ID:                 uuid.New(),
		EmployeeID:         empUUID,
		Date:               day,
		TotalWorkedMinutes: result.TotalWorkedMinutes,
		DifferenceMinutes:  result.DifferenceMinutes,
		Classification:     result.Classification,
	}
	rec.setPunches(punches)

	if err := s.persist(ctx, rec); err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}

	s.invalidateBalance(ctx, employeeID, day.Year())

	stored, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*stored), nil
}

// MarkNoRecord persists a sem_registro day: the punch source affirmed it has
// no record for this employee-day. Nil difference keeps it out of balances.
func (s *service) MarkNoRecord(ctx context.Context, employeeID, date string) (DailyRecordResponse, error) {
	empUUID, day, err := parseEmployeeDate(employeeID, date)
	if err != nil {
		return DailyRecordResponse{}, err
	}

	rec := &DailyRecord{
		ID:             uuid.New(),
		EmployeeID:     empUUID,
		Date:           day,
		Classification: ClassSemRegistro,
	}

	if err := s.persist(ctx, rec); err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}

	s.invalidateBalance(ctx, employeeID, day.Year())

	stored, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*stored), nil
}

func (s *service) EditRecord(ctx context.Context, id string, req EditRecordRequest) (DailyRecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DailyRecordResponse{}, apperror.InvalidField("id")
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}

	cal, err := s.holidays.CalendarForRange(ctx, rec.Date, rec.Date)
	if err != nil {
		return DailyRecordResponse{}, err
	}
	kind := schedule.Resolve(rec.Date, cal)
	result := Classify(req.Punches, kind, s.cfg)

	rec.setPunches(req.Punches)
	rec.TotalWorkedMinutes = result.TotalWorkedMinutes
	rec.DifferenceMinutes = result.DifferenceMinutes
	rec.Classification = result.Classification
	rec.EditReason = &req.Reason

	if err := s.persist(ctx, rec); err != nil {
		return DailyRecordResponse{}, mapRepositoryError(err)
	}

	// Reason is audit trail only; it never influences classification.
	contextutil.GetLogger(ctx, zap.L()).Info("daily record edited",
		zap.String("record_id", id),
		zap.String("employee_id", rec.EmployeeID.String()),
		zap.String("date", rec.Date.Format("2006-01-02")),
		zap.String("classification", rec.Classification),
		zap.String("reason", req.Reason),
	)

	s.invalidateBalance(ctx, rec.EmployeeID.String(), rec.Date.Year())

	return mapToResponse(*rec), nil
}

func (s *service) GetMonthlyBalance(ctx context.Context, employeeID string, year int) ([]MonthlyBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, apperror.InvalidField("employee_id")
	}
	if year < 1900 || year > 2200 {
		return nil, apperror.InvalidField("year")
	}

	cacheKey := balanceCacheKey(employeeID, year)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var out []MonthlyBalanceResponse
		if json.Unmarshal([]byte(cached), &out) == nil {
			return out, nil
		}
	}

	// Collapse concurrent recomputes for the same employee-year.
	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		records, err := s.repo.FindByEmployeeAndYear(ctx, employeeID, year)
		if err != nil {
			return nil, err
		}
		out := mapBalances(rollupYear(records))

		if payload, err := json.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, balanceCacheTTL).Err(); err != nil {
				contextutil.GetLogger(ctx, zap.L()).Warn("balance cache set failed", zap.Error(err))
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return v.([]MonthlyBalanceResponse), nil
}

func (s *service) GetRange(ctx context.Context, q RangeQuery) ([]DailyRecordResponse, error) {
	if q.Start.After(q.End) {
		return nil, apperror.New(apperror.CodeInvalidInput, "start date is after end date", 400)
	}
	if q.EmployeeID != "" && q.LeaderID != "" {
		return nil, apperror.New(apperror.CodeInvalidInput, "employee_id and leader_id are mutually exclusive", 400)
	}

	var (
		rows []DailyRecord
		err  error
	)
	switch {
	case q.EmployeeID != "":
		if _, parseErr := uuid.Parse(q.EmployeeID); parseErr != nil {
			return nil, apperror.InvalidField("employee_id")
		}
		rows, err = s.repo.FindRangeByEmployee(ctx, q.EmployeeID, q.Start, q.End)
	case q.LeaderID != "":
		if _, parseErr := uuid.Parse(q.LeaderID); parseErr != nil {
			return nil, apperror.InvalidField("leader_id")
		}
		rows, err = s.repo.FindRangeByLeader(ctx, q.LeaderID, q.Start, q.End)
	default:
		return nil, apperror.New(apperror.CodeInvalidInput, "employee_id or leader_id is required", 400)
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]DailyRecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) persist(ctx context.Context, rec *DailyRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, rec); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) invalidateBalance(ctx context.Context, employeeID string, year int) {
	if err := s.rdb.Del(ctx, balanceCacheKey(employeeID, year)).Err(); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("balance cache invalidation failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
	}
}

func balanceCacheKey(employeeID string, year int) string {
	return fmt.Sprintf("balance:%s:%d", employeeID, year)
}

func parseEmployeeDate(employeeID, date string) (uuid.UUID, time.Time, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, apperror.InvalidField("employee_id")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return uuid.Nil, time.Time{}, apperror.InvalidField("date")
	}
	return empUUID, day, nil
}
