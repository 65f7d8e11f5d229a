package syncjob

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bancohoras/internal/employee"
	"bancohoras/internal/events"
	"bancohoras/internal/messaging/kafka"
	"bancohoras/internal/shared/apperror"
	"bancohoras/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	MaxRangeDays int
}

func DefaultConfig() Config {
	return Config{MaxRangeDays: 90}
}

type Service interface {
	Submit(ctx context.Context, req SubmitSyncRequest) (SubmitSyncResponse, error)
	Status(ctx context.Context, jobID string) (Snapshot, error)
}

// Manager owns the sync job lifecycle. Each submitted job runs on its own
// goroutine; all job state is read and written under the manager's lock so a
// poller never observes partially-updated progress.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*SyncJob

	source     PunchSource
	employees  employee.Repository
	timesheets timesheet.Service
	outbox     kafka.OutboxRepository
	cfg        Config
	logger     *zap.Logger
}

func NewManager(
	source PunchSource,
	employees employee.Repository,
	timesheets timesheet.Service,
	cfg Config,
) *Manager {
	return &Manager{
		jobs:       make(map[string]*SyncJob),
		source:     source,
		employees:  employees,
		timesheets: timesheets,
		cfg:        cfg,
		logger:     zap.L().Named("syncjob"),
	}
}

func NewManagerWithOutbox(
	source PunchSource,
	employees employee.Repository,
	timesheets timesheet.Service,
	outbox kafka.OutboxRepository,
	cfg Config,
) *Manager {
	m := NewManager(source, employees, timesheets, cfg)
	m.outbox = outbox
	return m
}

// Submit validates the range and registers the job as running before the
// worker goroutine starts, so a poll for a just-created job always finds it.
func (m *Manager) Submit(ctx context.Context, req SubmitSyncRequest) (SubmitSyncResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return SubmitSyncResponse{}, apperror.InvalidField("start_date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return SubmitSyncResponse{}, apperror.InvalidField("end_date")
	}
	if start.After(end) {
		return SubmitSyncResponse{}, apperror.New(apperror.CodeInvalidInput, "start date is after end date", http.StatusBadRequest)
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays > m.cfg.MaxRangeDays {
		return SubmitSyncResponse{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("range exceeds the maximum of %d days", m.cfg.MaxRangeDays),
			http.StatusBadRequest,
		)
	}

	job := &SyncJob{
		ID:        uuid.New().String(),
		StartDate: start,
		EndDate:   end,
		Status:    StatusRunning,
		TotalDays: totalDays,
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()

	go m.run(job)

	return SubmitSyncResponse{JobID: job.ID}, nil
}

// Status returns a point-in-time copy; it never blocks on worker progress.
func (m *Manager) Status(ctx context.Context, jobID string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return Snapshot{}, apperror.New(apperror.CodeNotFound, "Sync job not found", http.StatusNotFound)
	}
	return job.snapshot(), nil
}

func (m *Manager) run(job *SyncJob) {
	ctx := context.Background()
	log := m.logger.Named("worker").With(zap.String("job_id", job.ID))

	// Systemic failures are the only path to a terminal error status.
	if err := m.source.Health(ctx); err != nil {
		log.Error("punch source unreachable, aborting job", zap.Error(err))
		m.finish(job, StatusError)
		m.publishTerminal(ctx, job, log)
		return
	}

	emps, err := m.employees.FindAllActive(ctx)
	if err != nil {
		log.Error("listing employees failed, aborting job", zap.Error(err))
		m.finish(job, StatusError)
		m.publishTerminal(ctx, job, log)
		return
	}

	for d := job.StartDate; !d.After(job.EndDate); d = d.AddDate(0, 0, 1) {
		m.setCurrentDate(job, d)

		if err := m.processDay(ctx, d, emps); err != nil {
			// Partial failure is the normal path: count it and move on.
			m.recordDayError(job, d, err)
			log.Warn("day sync failed",
				zap.String("date", d.Format("2006-01-02")),
				zap.Error(err),
			)
			continue
		}
		m.incrementSynced(job)
	}

	m.finish(job, StatusCompleted)
	log.Info("sync job finished",
		zap.Int("synced", job.Synced),
		zap.Int("errors", job.Errors),
	)
	m.publishTerminal(ctx, job, log)
}

// processDay syncs one date for every employee. A panic anywhere inside is
// converted to the day's error so it never crosses the job boundary.
func (m *Manager) processDay(ctx context.Context, date time.Time, emps []employee.Employee) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing day: %v", r)
		}
	}()

	dateStr := date.Format("2006-01-02")
	for _, emp := range emps {
		record, ferr := m.source.FetchPunches(ctx, emp.ID.String(), dateStr)
		if ferr != nil {
			return fmt.Errorf("employee %s: %w", emp.ID, ferr)
		}

		if !record.Found {
			if _, perr := m.timesheets.MarkNoRecord(ctx, emp.ID.String(), dateStr); perr != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, perr)
			}
			continue
		}

		if _, perr := m.timesheets.ClassifyAndPersist(ctx, emp.ID.String(), dateStr, record.Punches); perr != nil {
			return fmt.Errorf("employee %s: %w", emp.ID, perr)
		}
	}
	return nil
}

func (m *Manager) setCurrentDate(job *SyncJob, date time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := date
	job.CurrentDate = &d
}

func (m *Manager) incrementSynced(job *SyncJob) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job.Synced++
}

func (m *Manager) recordDayError(job *SyncJob, date time.Time, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job.Errors++
	job.DayErrors = append(job.DayErrors, DayError{
		Date:    date.Format("2006-01-02"),
		Message: err.Error(),
	})
}

func (m *Manager) finish(job *SyncJob, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	job.Status = status
	job.CurrentDate = nil
	job.CompletedAt = &now
}

func (m *Manager) publishTerminal(ctx context.Context, job *SyncJob, log *zap.Logger) {
	if m.outbox == nil {
		return
	}

	m.mu.RLock()
	if !job.terminal() {
		m.mu.RUnlock()
		return
	}
	event := events.SyncFinishedEvent{
		EventType:  events.SyncFinishedType,
		JobID:      job.ID,
		Status:     job.Status,
		Synced:     job.Synced,
		Errors:     job.Errors,
		TotalDays:  job.TotalDays,
		OccurredAt: time.Now().UTC(),
	}
	m.mu.RUnlock()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal sync finished event failed", zap.Error(err))
		return
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "sync_job",
		AggregateID:   job.ID,
		EventType:     events.SyncFinishedType,
		Topic:         events.SyncTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := m.outbox.Create(ctx, outboxEvent); err != nil {
		log.Error("write sync finished outbox event failed", zap.Error(err))
	}
}
