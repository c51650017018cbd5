package service

import (
	"context"
	"sync"
	"testing"
	"time"

	assignmentEntity "go-planner-api/modules/assignment/entity"
	jobEntity "go-planner-api/modules/job/entity"
	"go-planner-api/modules/notification/entity"
	taskEntity "go-planner-api/modules/task/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskScanner struct {
	due []taskEntity.Task
}

func (s *stubTaskScanner) CreateTask(_ context.Context, t *taskEntity.Task) (*taskEntity.Task, error) {
	return t, nil
}
func (s *stubTaskScanner) GetTaskByID(_ context.Context, _, _ uuid.UUID) (*taskEntity.Task, error) {
	return nil, nil
}
func (s *stubTaskScanner) GetTasksByUserID(_ context.Context, _ uuid.UUID) ([]taskEntity.Task, error) {
	return nil, nil
}
func (s *stubTaskScanner) UpdateTask(_ context.Context, _ *taskEntity.Task) error  { return nil }
func (s *stubTaskScanner) DeleteTask(_ context.Context, _, _ uuid.UUID) error      { return nil }
func (s *stubTaskScanner) UpdateGoogleEventID(_ context.Context, _ uuid.UUID, _ *string) error {
	return nil
}
func (s *stubTaskScanner) UpdateAttachmentURL(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}
func (s *stubTaskScanner) GetTasksDueBetween(_ context.Context, _, _ time.Time) ([]taskEntity.Task, error) {
	return s.due, nil
}
func (s *stubTaskScanner) CreateProject(_ context.Context, p *taskEntity.Project) (*taskEntity.Project, error) {
	return p, nil
}
func (s *stubTaskScanner) GetProjectsByUserID(_ context.Context, _ uuid.UUID) ([]taskEntity.Project, error) {
	return nil, nil
}

type stubAssignmentScanner struct {
	due []assignmentEntity.Assignment
}

func (s *stubAssignmentScanner) CreateAssignment(_ context.Context, a *assignmentEntity.Assignment) (*assignmentEntity.Assignment, error) {
	return a, nil
}
func (s *stubAssignmentScanner) GetAssignmentByID(_ context.Context, _, _ uuid.UUID) (*assignmentEntity.Assignment, error) {
	return nil, nil
}
func (s *stubAssignmentScanner) GetAssignmentsByUserID(_ context.Context, _ uuid.UUID) ([]assignmentEntity.Assignment, error) {
	return nil, nil
}
func (s *stubAssignmentScanner) UpdateAssignment(_ context.Context, _ *assignmentEntity.Assignment) error {
	return nil
}
func (s *stubAssignmentScanner) DeleteAssignment(_ context.Context, _, _ uuid.UUID) error {
	return nil
}
func (s *stubAssignmentScanner) UpdateGoogleEventID(_ context.Context, _ uuid.UUID, _ *string) error {
	return nil
}
func (s *stubAssignmentScanner) GetAssignmentsDueBetween(_ context.Context, _, _ time.Time) ([]assignmentEntity.Assignment, error) {
	return s.due, nil
}

type stubJobScanner struct {
	due []jobEntity.JobApplication
}

func (s *stubJobScanner) CreateJob(_ context.Context, j *jobEntity.JobApplication) (*jobEntity.JobApplication, error) {
	return j, nil
}
func (s *stubJobScanner) GetJobByID(_ context.Context, _, _ uuid.UUID) (*jobEntity.JobApplication, error) {
	return nil, nil
}
func (s *stubJobScanner) GetJobsByUserID(_ context.Context, _ uuid.UUID) ([]jobEntity.JobApplication, error) {
	return nil, nil
}
func (s *stubJobScanner) UpdateJob(_ context.Context, _ *jobEntity.JobApplication) error { return nil }
func (s *stubJobScanner) DeleteJob(_ context.Context, _, _ uuid.UUID) error              { return nil }
func (s *stubJobScanner) UpdateGoogleEventID(_ context.Context, _ uuid.UUID, _ *string) error {
	return nil
}
func (s *stubJobScanner) GetJobsDueBetween(_ context.Context, _, _ time.Time) ([]jobEntity.JobApplication, error) {
	return s.due, nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) AddToTokenBlacklist(_ context.Context, token string) error {
	return c.Set(context.Background(), "blacklist:"+token, "1", 0)
}

func (c *memoryCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	v, _ := c.Get(context.Background(), "blacklist:"+token)
	return v != "", nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Client() *redis.Client { return nil }

type recordingNotifications struct {
	NotificationService
	created []entity.Notification
}

func (r *recordingNotifications) Create(_ context.Context, n *entity.Notification) error {
	r.created = append(r.created, *n)
	return nil
}

func dueTask(userID uuid.UUID, title string, due time.Time) taskEntity.Task {
	task := taskEntity.Task{UserID: userID, Title: title, DueDate: &due}
	task.ID = uuid.New()
	return task
}

func TestDeadlineScanCreatesOneNotificationPerItem(t *testing.T) {
	userID := uuid.New()
	due := time.Now().Add(6 * time.Hour)

	notes := &assignmentEntity.Assignment{UserID: userID, Title: "Problem set 3", Deadline: &due}
	notes.ID = uuid.New()
	job := jobEntity.JobApplication{UserID: userID, Company: "Acme", Position: "Backend Engineer", DueDate: &due}
	job.ID = uuid.New()

	sink := &recordingNotifications{}
	svc := NewReminderService(
		sink,
		&stubTaskScanner{due: []taskEntity.Task{dueTask(userID, "Write report", due)}},
		&stubAssignmentScanner{due: []assignmentEntity.Assignment{*notes}},
		&stubJobScanner{due: []jobEntity.JobApplication{job}},
		newMemoryCache(),
	)

	require.NoError(t, svc.HandleDeadlineScan(context.Background(), nil))

	require.Len(t, sink.created, 3)
	for _, n := range sink.created {
		assert.Equal(t, entity.TypeDeadlineReminder, n.Type)
		assert.Equal(t, userID, n.UserID)
	}
	assert.Contains(t, sink.created[2].Message, "Acme - Backend Engineer")
}

func TestDeadlineScanDedupesRepeatRuns(t *testing.T) {
	userID := uuid.New()
	due := time.Now().Add(6 * time.Hour)

	sink := &recordingNotifications{}
	svc := NewReminderService(
		sink,
		&stubTaskScanner{due: []taskEntity.Task{dueTask(userID, "Write report", due)}},
		&stubAssignmentScanner{},
		&stubJobScanner{},
		newMemoryCache(),
	)

	require.NoError(t, svc.HandleDeadlineScan(context.Background(), nil))
	require.NoError(t, svc.HandleDeadlineScan(context.Background(), nil))

	assert.Len(t, sink.created, 1)
}
