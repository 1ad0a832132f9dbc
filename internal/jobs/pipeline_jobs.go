package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
	applog "github.com/straye-as/pipeline-api/internal/logger"
	"github.com/straye-as/pipeline-api/internal/notify"
	"github.com/straye-as/pipeline-api/internal/storage"
	"go.uber.org/zap"
)

// Job names
const (
	BoardRefreshJobName = "board_refresh"
	FollowupJobName     = "followup_digest"
	SnapshotJobName     = "pipeline_snapshot"
)

// BoardRefresher reloads the board from the lead store
type BoardRefresher interface {
	RefreshBoard(ctx context.Context) (int, error)
}

// FollowupLister lists open leads whose follow-up is due on or before asOf
type FollowupLister interface {
	ListFollowupsDue(ctx context.Context, asOf time.Time) ([]domain.Lead, error)
}

// SnapshotSource captures the current board
type SnapshotSource interface {
	Snapshot(ctx context.Context, now time.Time) domain.PipelineSnapshotDTO
}

// BoardRefreshJob keeps the board in step with writes made outside this process
type BoardRefreshJob struct {
	refresher BoardRefresher
	timeout   time.Duration
	logger    *zap.Logger
}

func NewBoardRefreshJob(refresher BoardRefresher, timeout time.Duration, logger *zap.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{refresher: refresher, timeout: timeout, logger: applog.WithJob(logger, BoardRefreshJobName)}
}

// Run reloads the board. Failures keep the previous snapshot.
func (j *BoardRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	n, err := j.refresher.RefreshBoard(ctx)
	if err != nil {
		j.logger.Error("board refresh failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return
	}
	j.logger.Debug("board refreshed", zap.Int("leads", n), zap.Duration("duration", time.Since(start)))
}

// FollowupDigestJob mails the list of follow-ups due today
type FollowupDigestJob struct {
	leads      FollowupLister
	mailer     notify.Mailer
	recipients []string
	timeout    time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewFollowupDigestJob(leads FollowupLister, mailer notify.Mailer, recipients []string, timeout time.Duration, logger *zap.Logger) *FollowupDigestJob {
	return &FollowupDigestJob{
		leads:      leads,
		mailer:     mailer,
		recipients: recipients,
		timeout:    timeout,
		now:        time.Now,
		logger:     applog.WithJob(logger, FollowupJobName),
	}
}

// Run builds and sends the digest. Nothing is sent when no follow-up is due.
func (j *FollowupDigestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.run(ctx); err != nil {
		j.logger.Error("follow-up digest failed", zap.Error(err))
	}
}

func (j *FollowupDigestJob) run(ctx context.Context) error {
	today := j.now()
	due, err := j.leads.ListFollowupsDue(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list follow-ups: %w", err)
	}

	msg, ok, err := notify.FollowupDigest(due, j.recipients, today)
	if err != nil {
		return err
	}
	if !ok {
		j.logger.Debug("no follow-ups due", zap.Int("recipients", len(j.recipients)))
		return nil
	}

	if err := j.mailer.Send(ctx, msg); err != nil {
		return err
	}
	j.logger.Info("follow-up digest sent", zap.Int("leads", len(due)))
	return nil
}

// SnapshotJob exports the board and company summaries as JSON to storage
type SnapshotJob struct {
	source  SnapshotSource
	store   storage.Storage
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func NewSnapshotJob(source SnapshotSource, store storage.Storage, timeout time.Duration, logger *zap.Logger) *SnapshotJob {
	return &SnapshotJob{
		source:  source,
		store:   store,
		timeout: timeout,
		now:     time.Now,
		logger:  applog.WithJob(logger, SnapshotJobName),
	}
}

// Run writes one snapshot
func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	key, err := j.export(ctx)
	if err != nil {
		j.logger.Error("pipeline snapshot failed", zap.Error(err))
		return
	}
	j.logger.Info("pipeline snapshot exported", zap.String("key", key))
}

func (j *SnapshotJob) export(ctx context.Context) (string, error) {
	now := j.now().UTC()
	snapshot := j.source.Snapshot(ctx, now)

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := SnapshotKey(now)
	if _, err := j.store.Put(ctx, key, "application/json", bytes.NewReader(body)); err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}
	return key, nil
}

// SnapshotKey is the storage key of the snapshot taken at t. One per day; a
// second run the same day overwrites the first.
func SnapshotKey(t time.Time) string {
	return "snapshots/" + t.UTC().Format("2006/01") + "/pipeline-" + t.UTC().Format(domain.DateLayout) + ".json"
}

// PipelineJobs holds the collaborators of the pipeline jobs. A nil Mailer or
// Storage skips the job that needs it.
type PipelineJobs struct {
	Refresher  BoardRefresher
	Followups  FollowupLister
	Mailer     notify.Mailer
	Recipients []string
	Snapshots  SnapshotSource
	Storage    storage.Storage
}

// Schedules holds the cron expressions of the pipeline jobs. Empty disables a job.
type Schedules struct {
	BoardRefresh string
	Followup     string
	Snapshot     string
	Timeout      time.Duration
}

// RegisterPipelineJobs registers every enabled pipeline job with the scheduler
func RegisterPipelineJobs(scheduler *Scheduler, deps PipelineJobs, schedules Schedules, logger *zap.Logger) error {
	if schedules.BoardRefresh != "" && deps.Refresher != nil {
		job := NewBoardRefreshJob(deps.Refresher, schedules.Timeout, logger)
		if err := scheduler.AddJob(BoardRefreshJobName, schedules.BoardRefresh, job.Run); err != nil {
			return err
		}
	}

	if schedules.Followup != "" && deps.Followups != nil && deps.Mailer != nil {
		job := NewFollowupDigestJob(deps.Followups, deps.Mailer, deps.Recipients, schedules.Timeout, logger)
		if err := scheduler.AddJob(FollowupJobName, schedules.Followup, job.Run); err != nil {
			return err
		}
	}

	if schedules.Snapshot != "" && deps.Snapshots != nil && deps.Storage != nil {
		job := NewSnapshotJob(deps.Snapshots, deps.Storage, schedules.Timeout, logger)
		if err := scheduler.AddJob(SnapshotJobName, schedules.Snapshot, job.Run); err != nil {
			return err
		}
	}

	return nil
}
