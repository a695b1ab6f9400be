package scheduler

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
)

// cronSpec fires once a day at 02:01 UTC, a low-traffic hour.
const cronSpec = "1 2 * * *"

// Scheduler materializes due recurring rules into receipts.
type Scheduler struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
	now    func() time.Time
	cron   *cron.Cron
}

// New builds a scheduler using the real clock.
func New(pool *pgxpool.Pool, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		pool:   pool,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the scheduler's clock. Tests use this to pin "now".
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Start registers the daily trigger and launches the cron loop. The
// SkipIfStillRunning wrapper guarantees runs never overlap.
func (s *Scheduler) Start() error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err := c.AddFunc(cronSpec, func() {
		if err := s.ProcessDueRules(context.Background()); err != nil {
			s.logger.WithError(err).Error("recurring transaction run failed")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("recurring transaction service started, runs daily at 02:01 UTC")
	return nil
}

// Stop halts the cron loop, waiting for an in-flight run to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// ProcessDueRules runs one scheduler pass: every rule due at "now" is
// materialized into a receipt dated at its current due date, and its due
// date advances one period. A rule overdue by several periods catches up
// one period per pass. Failures are per-rule; one bad rule never stops
// the batch.
func (s *Scheduler) ProcessDueRules(ctx context.Context) error {
	now := s.now()

	rules, err := database.DueRules(ctx, s.pool, now)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		s.logger.Info("no due recurring transactions found")
		return nil
	}

	s.logger.WithField("count", len(rules)).Info("processing due recurring transactions")

	for _, rule := range rules {
		nextDue := NextDueDate(rule.NextDueDate, rule.Frequency)
		if err := database.MaterializeRule(ctx, s.pool, rule, nextDue); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"user_id": rule.UserID,
			}).Error("failed to process recurring rule")
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"rule_id":  rule.ID,
			"user_id":  rule.UserID,
			"next_due": nextDue.Format("2006-01-02"),
		}).Info("processed recurring rule")
	}
	return nil
}
