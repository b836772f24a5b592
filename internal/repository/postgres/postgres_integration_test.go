package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"taskboard/config"
	"taskboard/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryUsersIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	creds := entities.Credentials{Username: "alice", Password: "pw1"}
	require.NoError(t, repo.CreateUser(ctx, creds))
	require.ErrorIs(t, repo.CreateUser(ctx, creds), entities.ErrUsernameTaken)

	u, err := repo.FindByUsernameAndPassword(ctx, creds)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	u, err = repo.FindByUsernameAndPassword(ctx, entities.Credentials{Username: "alice", Password: "nope"})
	require.NoError(t, err)
	require.Nil(t, u)

	_, err = repo.FindByUsernameAndPassword(ctx, entities.Credentials{Username: "bob", Password: "pw1"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestRepositoryProjectsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	first, err := repo.CreateProject(ctx, entities.CreateProjectParams{Name: "home", UserID: "alice"})
	require.NoError(t, err)
	second, err := repo.CreateProject(ctx, entities.CreateProjectParams{Name: "work", UserID: "alice"})
	require.NoError(t, err)

	list, err := repo.FindProjectsByUserID(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []entities.Project{*first, *second}, list)

	list, err = repo.FindProjectsByUserID(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, repo.UpdateProjectByID(ctx, first.ID, "bob", entities.UpdateProjectParams{Name: "stolen"}))
	require.NoError(t, repo.UpdateProjectByID(ctx, first.ID, "alice", entities.UpdateProjectParams{Name: "house"}))
	require.NoError(t, repo.DeleteProjectByID(ctx, second.ID, "bob"))

	list, err = repo.FindProjectsByUserID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "house", list[0].Name)

	require.NoError(t, repo.DeleteProjectByID(ctx, second.ID, "alice"))
	list, err = repo.FindProjectsByUserID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRepositoryTasksIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	task, err := repo.CreateTask(ctx, "p1", "alice", entities.CreateTaskParams{Title: "ship"})
	require.NoError(t, err)
	require.False(t, task.Done)

	done := true
	require.NoError(t, repo.UpdateTaskByID(ctx, "p1", "bob", task.ID, entities.UpdateTaskParams{Done: &done}))
	list, err := repo.FindTasksByProjectID(ctx, "p1", "alice")
	require.NoError(t, err)
	require.False(t, list[0].Done)

	require.NoError(t, repo.UpdateTaskByID(ctx, "p1", "alice", task.ID, entities.UpdateTaskParams{Done: &done}))
	list, err = repo.FindTasksByProjectID(ctx, "p1", "alice")
	require.NoError(t, err)
	require.True(t, list[0].Done)
	require.Equal(t, "ship", list[0].Title)

	require.NoError(t, repo.DeleteTaskByID(ctx, "p1", "alice", task.ID))
	list, err = repo.FindTasksByProjectID(ctx, "p1", "alice")
	require.NoError(t, err)
	require.Empty(t, list)
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	require.NoError(t, repo.Ping(ctx))
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=taskboard_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Repository: config.RepositoryConfig{Backend: config.BackendPostgres},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "taskboard_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=taskboard_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
