package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"bancohoras/internal/holiday"
	"bancohoras/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	upsertFn                func(ctx context.Context, rec *DailyRecord) error
	findByIDFn              func(ctx context.Context, id string) (*DailyRecord, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*DailyRecord, error)
	findByEmployeeAndYearFn func(ctx context.Context, employeeID string, year int) ([]DailyRecord, error)
	findRangeByEmployeeFn   func(ctx context.Context, employeeID string, start, end time.Time) ([]DailyRecord, error)
	findRangeByLeaderFn     func(ctx context.Context, leaderID string, start, end time.Time) ([]DailyRecord, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Upsert(ctx context.Context, rec *DailyRecord) error {
	return f.upsertFn(ctx, rec)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*DailyRecord, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyRecord, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]DailyRecord, error) {
	return f.findByEmployeeAndYearFn(ctx, employeeID, year)
}
func (f *fakeRepo) FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]DailyRecord, error) {
	return f.findRangeByEmployeeFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) FindRangeByLeader(ctx context.Context, leaderID string, start, end time.Time) ([]DailyRecord, error) {
	return f.findRangeByLeaderFn(ctx, leaderID, start, end)
}

type fakeHolidayService struct {
	cal holiday.Calendar
}

func (f *fakeHolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	return holiday.HolidayResponse{}, nil
}
func (f *fakeHolidayService) GetByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	return nil, nil
}
func (f *fakeHolidayService) CalendarForRange(ctx context.Context, start, end time.Time) (holiday.Calendar, error) {
	return f.cal, nil
}

func TestService_ClassifyAndPersist(t *testing.T) {
	db, dbMock, _ := sqlmock.New()
	defer db.Close()
	rdb, redisMock := redismock.NewClientMock()

	employeeID := uuid.New()
	ctx := context.Background()

	var saved DailyRecord
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.upsertFn = func(ctx context.Context, rec *DailyRecord) error { saved = *rec; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*DailyRecord, error) {
		return &saved, nil
	}

	svc := NewService(db, repo, &fakeHolidayService{cal: holiday.NewCalendar(nil)}, rdb, schedule.DefaultConfig())

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	redisMock.ExpectDel("balance:" + employeeID.String() + ":2024").SetVal(1)

	// 2024-06-03 is a Monday
	resp, err := svc.ClassifyAndPersist(ctx, employeeID.String(), "2024-06-03", []string{"08:00", "12:00", "13:00", "17:00"})
	assert.NoError(t, err)
	assert.Equal(t, ClassNormal, resp.Classification)
	assert.Equal(t, 480, *resp.TotalWorkedMinutes)
	assert.Equal(t, 0, *resp.DifferenceMinutes)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_ClassifyAndPersist_SundayWithPunchesIsAjuste(t *testing.T) {
	db, dbMock, _ := sqlmock.New()
	defer db.Close()
	rdb, redisMock := redismock.NewClientMock()

	employeeID := uuid.New()

	var saved DailyRecord
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.upsertFn = func(ctx context.Context, rec *DailyRecord) error { saved = *rec; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*DailyRecord, error) {
		return &saved, nil
	}

	svc := NewService(db, repo, &fakeHolidayService{cal: holiday.NewCalendar(nil)}, rdb, schedule.DefaultConfig())

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	redisMock.ExpectDel("balance:" + employeeID.String() + ":2024").SetVal(1)

	// 2024-06-09 is a Sunday
	resp, err := svc.ClassifyAndPersist(context.Background(), employeeID.String(), "2024-06-09", []string{"09:00", "13:00"})
	assert.NoError(t, err)
	assert.Equal(t, ClassAjuste, resp.Classification)
	assert.Equal(t, 240, *resp.DifferenceMinutes)
}

func TestService_ClassifyAndPersist_InvalidInput(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	rdb, _ := redismock.NewClientMock()

	svc := NewService(db, &fakeRepo{}, &fakeHolidayService{}, rdb, schedule.DefaultConfig())

	_, err := svc.ClassifyAndPersist(context.Background(), "not-a-uuid", "2024-06-03", nil)
	assert.Error(t, err)

	_, err = svc.ClassifyAndPersist(context.Background(), uuid.New().String(), "03/06/2024", nil)
	assert.Error(t, err)
}

func TestService_EditRecord_ReclassifiesDeterministically(t *testing.T) {
	db, dbMock, _ := sqlmock.New()
	defer db.Close()
	rdb, redisMock := redismock.NewClientMock()

	recID := uuid.New()
	employeeID := uuid.New()
	day, _ := time.Parse("2006-01-02", "2024-06-03")

	late := "08:20"
	stored := DailyRecord{
		ID:                 recID,
		EmployeeID:         employeeID,
		Date:               day,
		Punch1:             &late,
		Classification:     ClassLate,
		TotalWorkedMinutes: intPtr(460),
		DifferenceMinutes:  intPtr(-20),
	}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*DailyRecord, error) {
		cp := stored
		return &cp, nil
	}
	repo.upsertFn = func(ctx context.Context, rec *DailyRecord) error { stored = *rec; return nil }

	svc := NewService(db, repo, &fakeHolidayService{cal: holiday.NewCalendar(nil)}, rdb, schedule.DefaultConfig())

	req := EditRecordRequest{
		Punches: []string{"08:00", "12:00", "13:00", "17:00"},
		Reason:  "esqueceu de bater o ponto",
	}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	redisMock.ExpectDel("balance:" + employeeID.String() + ":2024").SetVal(1)

	first, err := svc.EditRecord(context.Background(), recID.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, ClassNormal, first.Classification)
	assert.Equal(t, 0, *first.DifferenceMinutes)
	assert.Equal(t, "esqueceu de bater o ponto", *first.EditReason)

	// Editing again with the same punches yields the identical result.
	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	redisMock.ExpectDel("balance:" + employeeID.String() + ":2024").SetVal(1)

	second, err := svc.EditRecord(context.Background(), recID.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, *first.DifferenceMinutes, *second.DifferenceMinutes)
}

func TestService_EditRecord_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	rdb, _ := redismock.NewClientMock()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*DailyRecord, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo, &fakeHolidayService{}, rdb, schedule.DefaultConfig())

	_, err := svc.EditRecord(context.Background(), uuid.New().String(), EditRecordRequest{Reason: "x"})
	assert.Error(t, err)
}

func TestService_GetMonthlyBalance_CachesResult(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	rdb, redisMock := redismock.NewClientMock()

	employeeID := uuid.New().String()
	calls := 0

	repo := &fakeRepo{
		findByEmployeeAndYearFn: func(ctx context.Context, eid string, year int) ([]DailyRecord, error) {
			calls++
			jan, _ := time.Parse("2006-01-02", "2024-01-10")
			mar, _ := time.Parse("2006-01-02", "2024-03-05")
			return []DailyRecord{
				{Date: jan, Classification: ClassOvertime, DifferenceMinutes: intPtr(30)},
				{Date: mar, Classification: ClassLate, DifferenceMinutes: intPtr(-10)},
			}, nil
		},
	}
	svc := NewService(db, repo, &fakeHolidayService{}, rdb, schedule.DefaultConfig())

	key := "balance:" + employeeID + ":2024"

	expected, err := svc0Expected()
	assert.NoError(t, err)

	redisMock.ExpectGet(key).RedisNil()
	redisMock.ExpectSet(key, expected, balanceCacheTTL).SetVal("OK")

	out, err := svc.GetMonthlyBalance(context.Background(), employeeID, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, out, 12)
	assert.Equal(t, 30, *out[0].Difference)
	assert.Equal(t, 30, *out[0].RunningBalance)
	assert.Nil(t, out[1].Difference)
	assert.Equal(t, -10, *out[2].Difference)
	assert.Equal(t, 20, *out[2].RunningBalance)

	// Second call served from cache, repo untouched.
	redisMock.ExpectGet(key).SetVal(string(expected))
	out2, err := svc.GetMonthlyBalance(context.Background(), employeeID, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, out, out2)
}

// svc0Expected builds the exact JSON payload the service caches for the
// records used in TestService_GetMonthlyBalance_CachesResult.
func svc0Expected() ([]byte, error) {
	jan, _ := time.Parse("2006-01-02", "2024-01-10")
	mar, _ := time.Parse("2006-01-02", "2024-03-05")
	out := mapBalances(rollupYear([]DailyRecord{
		{Date: jan, Classification: ClassOvertime, DifferenceMinutes: intPtr(30)},
		{Date: mar, Classification: ClassLate, DifferenceMinutes: intPtr(-10)},
	}))
	return json.Marshal(out)
}

func TestService_GetRange_RequiresExactlyOneSubject(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	rdb, _ := redismock.NewClientMock()

	start, _ := time.Parse("2006-01-02", "2024-06-01")
	end, _ := time.Parse("2006-01-02", "2024-06-30")

	svc := NewService(db, &fakeRepo{}, &fakeHolidayService{}, rdb, schedule.DefaultConfig())

	_, err := svc.GetRange(context.Background(), RangeQuery{Start: start, End: end})
	assert.Error(t, err)

	_, err = svc.GetRange(context.Background(), RangeQuery{EmployeeID: uuid.New().String(), Start: end, End: start})
	assert.Error(t, err, "start after end")
}

func TestService_GetRange_ByLeader(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	rdb, _ := redismock.NewClientMock()

	leaderID := uuid.New().String()
	start, _ := time.Parse("2006-01-02", "2024-06-01")
	end, _ := time.Parse("2006-01-02", "2024-06-30")

	repo := &fakeRepo{
		findRangeByLeaderFn: func(ctx context.Context, lid string, s, e time.Time) ([]DailyRecord, error) {
			assert.Equal(t, leaderID, lid)
			return []DailyRecord{{ID: uuid.New(), EmployeeID: uuid.New(), Date: start, Classification: ClassNormal}}, nil
		},
	}
	svc := NewService(db, repo, &fakeHolidayService{}, rdb, schedule.DefaultConfig())

	out, err := svc.GetRange(context.Background(), RangeQuery{LeaderID: leaderID, Start: start, End: end})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
