package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskboard/internal/entities"
	"taskboard/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *repoMock) CreateUser(ctx context.Context, creds entities.Credentials) error {
	return m.Called(ctx, creds).Error(0)
}

func (m *repoMock) FindByUsernameAndPassword(ctx context.Context, creds entities.Credentials) (*entities.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) FindProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProjectByID(ctx context.Context, projectID, userID string, params entities.UpdateProjectParams) error {
	return m.Called(ctx, projectID, userID, params).Error(0)
}

func (m *repoMock) DeleteProjectByID(ctx context.Context, projectID, userID string) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *repoMock) CreateTask(ctx context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error) {
	args := m.Called(ctx, projectID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) FindTasksByProjectID(ctx context.Context, projectID, userID string) ([]entities.Task, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTaskByID(ctx context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error {
	return m.Called(ctx, projectID, userID, taskID, params).Error(0)
}

func (m *repoMock) DeleteTaskByID(ctx context.Context, projectID, userID, taskID string) error {
	return m.Called(ctx, projectID, userID, taskID).Error(0)
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), repo, time.Second)
}

func TestUsecase_CreateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	err := uc.CreateUser(context.Background(), entities.Credentials{Username: "alice"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserPasswordByteLimit(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	// 40 runes, 80 bytes
	err := uc.CreateUser(context.Background(), entities.Credentials{Username: "alice", Password: strings.Repeat("é", 40)})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)

	creds := entities.Credentials{Username: "alice", Password: strings.Repeat("a", 72)}
	repo.On("CreateUser", mock.Anything, creds).Return(nil)
	require.NoError(t, uc.CreateUser(context.Background(), creds))
	repo.AssertExpectations(t)
}

func TestUsecase_CreateUserPropagatesConflict(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	creds := entities.Credentials{Username: "alice", Password: "pw"}
	repo.On("CreateUser", mock.Anything, creds).Return(entities.ErrUsernameTaken)

	err := uc.CreateUser(context.Background(), creds)
	require.ErrorIs(t, err, entities.ErrUsernameTaken)
	repo.AssertExpectations(t)
}

func TestUsecase_FindByUsernameAndPasswordWrongPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	creds := entities.Credentials{Username: "alice", Password: "bad"}
	repo.On("FindByUsernameAndPassword", mock.Anything, creds).Return(nil, nil)

	u, err := uc.FindByUsernameAndPassword(context.Background(), creds)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUsecase_CreateProjectDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	params := entities.CreateProjectParams{Name: "home", UserID: "alice"}
	expected := &entities.Project{ID: "p1", Name: "home", UserID: "alice"}
	repo.On("CreateProject", mock.Anything, params).Return(expected, nil)

	p, err := uc.CreateProject(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, expected, p)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateProjectValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateProject(context.Background(), entities.CreateProjectParams{UserID: "alice"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.FindProjectsByUserID(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.UpdateProjectByID(context.Background(), "p1", "alice", entities.UpdateProjectParams{}), entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.DeleteProjectByID(context.Background(), "", "alice"), entities.ErrInvalidArgument)
	repo.AssertExpectations(t)
}

func TestUsecase_CallsCarryDeadline(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("FindProjectsByUserID", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "alice").Return([]entities.Project{}, nil)

	list, err := uc.FindProjectsByUserID(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, list)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	err := uc.UpdateTaskByID(context.Background(), "p1", "alice", "t1", entities.UpdateTaskParams{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	empty := ""
	err = uc.UpdateTaskByID(context.Background(), "p1", "alice", "t1", entities.UpdateTaskParams{Title: &empty})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpdateTaskByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateTaskDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	done := true
	params := entities.UpdateTaskParams{Done: &done}
	repo.On("UpdateTaskByID", mock.Anything, "p1", "alice", "t1", params).Return(nil)

	require.NoError(t, uc.UpdateTaskByID(context.Background(), "p1", "alice", "t1", params))
	repo.AssertExpectations(t)
}

func TestUsecase_TaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateTask(context.Background(), "p1", "alice", entities.CreateTaskParams{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.FindTasksByProjectID(context.Background(), "", "alice")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.DeleteTaskByID(context.Background(), "p1", "alice", ""), entities.ErrInvalidArgument)
}

func TestUsecase_ReadyPropagatesPingError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	boom := errors.New("db down")
	repo.On("Ping", mock.Anything).Return(boom).Once()
	require.ErrorIs(t, uc.Ready(context.Background()), boom)

	repo.On("Ping", mock.Anything).Return(nil).Once()
	require.NoError(t, uc.Ready(context.Background()))
}
