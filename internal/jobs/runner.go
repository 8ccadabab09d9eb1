package jobs

import (
	"context"
	"time"

	"concrental-backend/internal/logger"
	"concrental-backend/internal/repository"
	"concrental-backend/internal/service"
)

// Runner coordinates the scheduled jobs. Every job is read-only over the
// rental data; the overdue state itself is derived at read time and never
// written back.
type Runner struct {
	users   repository.UserRepository
	rentals repository.RentalRepository
	email   service.EmailService
	timeout time.Duration
}

func NewRunner(users repository.UserRepository, rentals repository.RentalRepository, email service.EmailService) *Runner {
	return &Runner{
		users:   users,
		rentals: rentals,
		email:   email,
		timeout: 5 * time.Minute,
	}
}

// SendOverdueReminders mails every operator a digest of their rentals past
// the return date. Accounts without an email address are skipped.
func (r *Runner) SendOverdueReminders() {
	r.runWithRecovery("send_overdue_reminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		users, err := r.users.List(ctx)
		if err != nil {
			logger.Error("failed to list operator accounts", "job", "send_overdue_reminders", "error", err)
			return
		}

		now := time.Now()
		for _, u := range users {
			if u.Email == nil || *u.Email == "" {
				continue
			}
			overdue, err := r.rentals.ListOverdueByAccount(ctx, u.ID, now)
			if err != nil {
				logger.Error("failed to list overdue rentals", "account_id", u.ID, "error", err)
				continue
			}
			if len(overdue) == 0 {
				continue
			}
			if err := r.email.SendOverdueRentalsReminder(ctx, *u.Email, u.Username, overdue); err != nil {
				logger.Error("failed to send overdue reminder", "account_id", u.ID, "error", err)
				continue
			}
			logger.Info("overdue reminder sent", "account_id", u.ID, "rentals", len(overdue))
		}
	})
}

func (r *Runner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("job panicked", "job", jobName, "panic", rec)
		}
	}()

	logger.Info("starting job", "job", jobName)
	jobFunc()
	logger.Info("job completed", "job", jobName)
}
