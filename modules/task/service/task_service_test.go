package service

import (
	"context"
	"testing"
	"time"

	assignmentEntity "go-planner-api/modules/assignment/entity"
	calendarDto "go-planner-api/modules/calendar/dto"
	jobEntity "go-planner-api/modules/job/entity"
	"go-planner-api/modules/task/dto"
	"go-planner-api/modules/task/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskRepo struct {
	tasks map[uuid.UUID]*entity.Task

	eventIDWrites map[uuid.UUID]*string
	deleted       []uuid.UUID
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{
		tasks:         make(map[uuid.UUID]*entity.Task),
		eventIDWrites: make(map[uuid.UUID]*string),
	}
}

func (r *stubTaskRepo) CreateTask(_ context.Context, task *entity.Task) (*entity.Task, error) {
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID] = task
	return task, nil
}

func (r *stubTaskRepo) GetTaskByID(_ context.Context, _, taskID uuid.UUID) (*entity.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, assert.AnError
	}
	return task, nil
}

func (r *stubTaskRepo) GetTasksByUserID(_ context.Context, _ uuid.UUID) ([]entity.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) UpdateTask(_ context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) DeleteTask(_ context.Context, _, taskID uuid.UUID) error {
	delete(r.tasks, taskID)
	r.deleted = append(r.deleted, taskID)
	return nil
}

func (r *stubTaskRepo) UpdateGoogleEventID(_ context.Context, taskID uuid.UUID, eventID *string) error {
	r.eventIDWrites[taskID] = eventID
	return nil
}

func (r *stubTaskRepo) UpdateAttachmentURL(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (r *stubTaskRepo) GetTasksDueBetween(_ context.Context, _, _ time.Time) ([]entity.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) CreateProject(_ context.Context, project *entity.Project) (*entity.Project, error) {
	project.ID = uuid.New()
	return project, nil
}

func (r *stubTaskRepo) GetProjectsByUserID(_ context.Context, _ uuid.UUID) ([]entity.Project, error) {
	return nil, nil
}

// stubCalendarService returns a canned event id from the sync adapters and
// records RemoveEvent calls.
type stubCalendarService struct {
	syncResult *string
	syncCalls  int

	removedIDs []*string
}

func (s *stubCalendarService) GetAuthorizationURL(_ context.Context, _ uuid.UUID) (string, error) {
	return "", nil
}
func (s *stubCalendarService) HandleCallback(_ context.Context, _, _ string) error { return nil }
func (s *stubCalendarService) Disconnect(_ context.Context, _ uuid.UUID) error     { return nil }
func (s *stubCalendarService) GetConnectionStatus(_ context.Context, _ uuid.UUID) (*calendarDto.ConnectionStatusResponse, error) {
	return nil, nil
}
func (s *stubCalendarService) UpdateSettings(_ context.Context, _ uuid.UUID, _ *calendarDto.UpdateSettingsRequest) error {
	return nil
}
func (s *stubCalendarService) ListCalendars(_ context.Context, _ uuid.UUID) ([]calendarDto.CalendarOption, error) {
	return nil, nil
}
func (s *stubCalendarService) GetEvents(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]calendarDto.FormattedEvent, error) {
	return nil, nil
}

func (s *stubCalendarService) SyncTask(_ context.Context, _ uuid.UUID, _ *entity.Task) *string {
	s.syncCalls++
	return s.syncResult
}

func (s *stubCalendarService) SyncAssignment(_ context.Context, _ uuid.UUID, _ *assignmentEntity.Assignment) *string {
	s.syncCalls++
	return s.syncResult
}

func (s *stubCalendarService) SyncJob(_ context.Context, _ uuid.UUID, _ *jobEntity.JobApplication) *string {
	s.syncCalls++
	return s.syncResult
}

func (s *stubCalendarService) RemoveEvent(_ context.Context, _ uuid.UUID, eventID *string) {
	s.removedIDs = append(s.removedIDs, eventID)
}

func TestCreateTaskPersistsSyncedEventID(t *testing.T) {
	repo := newStubTaskRepo()
	eventID := "ev-1"
	calendarSvc := &stubCalendarService{syncResult: &eventID}
	svc := NewTaskService(repo, calendarSvc, nil)

	due := time.Now().Add(72 * time.Hour)
	task, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{
		Title:   "Write report",
		DueDate: &due,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calendarSvc.syncCalls)
	require.NotNil(t, task.GoogleEventID)
	assert.Equal(t, "ev-1", *task.GoogleEventID)
	assert.Equal(t, &eventID, repo.eventIDWrites[task.ID])
}

func TestCreateTaskKeepsRecordWhenSyncSkipped(t *testing.T) {
	repo := newStubTaskRepo()
	calendarSvc := &stubCalendarService{syncResult: nil}
	svc := NewTaskService(repo, calendarSvc, nil)

	task, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{Title: "Write report"})
	require.NoError(t, err)

	assert.Equal(t, 1, calendarSvc.syncCalls)
	assert.Nil(t, task.GoogleEventID)
	assert.Empty(t, repo.eventIDWrites)
}

func TestUpdateTaskKeepsStoredEventIDWhenSyncFails(t *testing.T) {
	repo := newStubTaskRepo()
	userID := uuid.New()
	stored := "ev-1"
	due := time.Now().Add(24 * time.Hour)
	task := &entity.Task{UserID: userID, Title: "Write report", DueDate: &due, GoogleEventID: &stored}
	task.ID = uuid.New()
	repo.tasks[task.ID] = task

	calendarSvc := &stubCalendarService{syncResult: nil}
	svc := NewTaskService(repo, calendarSvc, nil)

	newTitle := "Write final report"
	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)

	require.NotNil(t, updated.GoogleEventID)
	assert.Equal(t, "ev-1", *updated.GoogleEventID)
	assert.Empty(t, repo.eventIDWrites)
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	repo := newStubTaskRepo()
	userID := uuid.New()
	due := time.Now().Add(24 * time.Hour)
	task := &entity.Task{UserID: userID, Title: "Write report", DueDate: &due}
	task.ID = uuid.New()
	repo.tasks[task.ID] = task

	calendarSvc := &stubCalendarService{}
	svc := NewTaskService(repo, calendarSvc, nil)

	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{ClearDue: true})
	require.NoError(t, err)

	assert.Nil(t, updated.DueDate)
	assert.Equal(t, 1, calendarSvc.syncCalls)
}

func TestDeleteTaskRemovesMirroredEvent(t *testing.T) {
	repo := newStubTaskRepo()
	userID := uuid.New()
	stored := "ev-1"
	task := &entity.Task{UserID: userID, Title: "Write report", GoogleEventID: &stored}
	task.ID = uuid.New()
	repo.tasks[task.ID] = task

	calendarSvc := &stubCalendarService{}
	svc := NewTaskService(repo, calendarSvc, nil)

	require.NoError(t, svc.DeleteTask(context.Background(), userID, task.ID))

	assert.Equal(t, []uuid.UUID{task.ID}, repo.deleted)
	require.Len(t, calendarSvc.removedIDs, 1)
	assert.Equal(t, &stored, calendarSvc.removedIDs[0])
}

func TestCreateProjectSlugifiesName(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, &stubCalendarService{}, nil)

	project, err := svc.CreateProject(context.Background(), uuid.New(), &dto.CreateProjectRequest{Name: "Spring Cleaning 2026"})
	require.NoError(t, err)
	assert.Equal(t, "spring-cleaning-2026", project.Slug)
}
