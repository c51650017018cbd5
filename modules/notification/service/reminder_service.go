package service

import (
	"context"
	"fmt"
	"time"

	"go-planner-api/core/cache"
	"go-planner-api/core/logger"
	assignmentRepo "go-planner-api/modules/assignment/repository"
	jobRepo "go-planner-api/modules/job/repository"
	"go-planner-api/modules/notification/entity"
	taskRepo "go-planner-api/modules/task/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	reminderWindow   = 24 * time.Hour
	reminderDedupTTL = 48 * time.Hour
	dedupKeyPrefix   = "reminder:sent:"
)

// ReminderService runs the scheduled deadline scan. It walks every
// deadline-bearing kind, creates one notification per item due within the
// window and dedupes through redis so the daily cron never double-notifies.
type ReminderService struct {
	notifications NotificationService
	tasks         taskRepo.TaskRepository
	assignments   assignmentRepo.AssignmentRepository
	jobs          jobRepo.JobRepository
	cache         cache.Cache
}

func NewReminderService(
	notifications NotificationService,
	tasks taskRepo.TaskRepository,
	assignments assignmentRepo.AssignmentRepository,
	jobs jobRepo.JobRepository,
	cache cache.Cache,
) *ReminderService {
	return &ReminderService{
		notifications: notifications,
		tasks:         tasks,
		assignments:   assignments,
		jobs:          jobs,
		cache:         cache,
	}
}

// HandleDeadlineScan is the asynq handler behind the daily reminder cron.
func (s *ReminderService) HandleDeadlineScan(ctx context.Context, _ *asynq.Task) error {
	now := time.Now()
	from := now
	to := now.Add(reminderWindow)

	logger.Info("ReminderService:HandleDeadlineScan:Start", "from", from, "to", to)

	count := 0
	count += s.scanTasks(ctx, from, to)
	count += s.scanAssignments(ctx, from, to)
	count += s.scanJobs(ctx, from, to)

	logger.Info("ReminderService:HandleDeadlineScan:Done", "notifications_created", count)
	return nil
}

func (s *ReminderService) scanTasks(ctx context.Context, from, to time.Time) int {
	tasks, err := s.tasks.GetTasksDueBetween(ctx, from, to)
	if err != nil {
		logger.Error("ReminderService:scanTasks:Error", "error", err)
		return 0
	}

	count := 0
	for i := range tasks {
		t := &tasks[i]
		if s.notify(ctx, t.UserID, "task", t.ID,
			"Task due soon",
			fmt.Sprintf("%q is due %s.", t.Title, t.DueDate.Format("Jan 2, 15:04"))) {
			count++
		}
	}
	return count
}

func (s *ReminderService) scanAssignments(ctx context.Context, from, to time.Time) int {
	assignments, err := s.assignments.GetAssignmentsDueBetween(ctx, from, to)
	if err != nil {
		logger.Error("ReminderService:scanAssignments:Error", "error", err)
		return 0
	}

	count := 0
	for i := range assignments {
		a := &assignments[i]
		if s.notify(ctx, a.UserID, "assignment", a.ID,
			"Assignment due soon",
			fmt.Sprintf("%q is due %s.", a.Title, a.Deadline.Format("Jan 2, 15:04"))) {
			count++
		}
	}
	return count
}

func (s *ReminderService) scanJobs(ctx context.Context, from, to time.Time) int {
	jobs, err := s.jobs.GetJobsDueBetween(ctx, from, to)
	if err != nil {
		logger.Error("ReminderService:scanJobs:Error", "error", err)
		return 0
	}

	count := 0
	for i := range jobs {
		j := &jobs[i]
		if s.notify(ctx, j.UserID, "job", j.ID,
			"Application deadline soon",
			fmt.Sprintf("%s - %s has a deadline %s.", j.Company, j.Position, j.DueDate.Format("Jan 2, 15:04"))) {
			count++
		}
	}
	return count
}

// notify creates one reminder unless the same item was already notified
// within the dedup window. Reports whether a notification was created.
func (s *ReminderService) notify(ctx context.Context, userID uuid.UUID, kind string, itemID uuid.UUID, title, message string) bool {
	key := dedupKeyPrefix + kind + ":" + itemID.String()
	seen, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Error("ReminderService:notify:CacheGet:Error", "error", err, "key", key)
	}
	if seen != "" {
		return false
	}

	err = s.notifications.Create(ctx, &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    entity.TypeDeadlineReminder,
	})
	if err != nil {
		logger.Error("ReminderService:notify:Create:Error", "error", err, "user_id", userID)
		return false
	}

	if err := s.cache.Set(ctx, key, "1", reminderDedupTTL); err != nil {
		logger.Error("ReminderService:notify:CacheSet:Error", "error", err, "key", key)
	}
	return true
}
