//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testPool  *pgxpool.Pool
	testRedis *redis.Client
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, dsn, err := startPostgres(ctx)
	if err != nil {
		fmt.Println("cannot start postgres container:", err)
		os.Exit(1)
	}

	redisContainer, addr, err := startRedis(ctx)
	if err != nil {
		fmt.Println("cannot start redis container:", err)
		_ = pgContainer.Terminate(ctx)
		os.Exit(1)
	}

	terminate := func() {
		_ = pgContainer.Terminate(ctx)
		_ = redisContainer.Terminate(ctx)
	}

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		terminate()
		os.Exit(1)
	}

	if err := applyMigration(ctx, testPool); err != nil {
		fmt.Println("applyMigration:", err)
		testPool.Close()
		terminate()
		os.Exit(1)
	}

	testRedis = redis.NewClient(&redis.Options{Addr: addr})

	code := m.Run()

	_ = testRedis.Close()
	testPool.Close()
	terminate()
	os.Exit(code)
}

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	host, _ := c.Host(ctx)
	mappedPort, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mappedPort.Port())
	return c, dsn, nil
}

func startRedis(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	host, _ := c.Host(ctx)
	mappedPort, _ := c.MappedPort(ctx, "6379/tcp")
	return c, fmt.Sprintf("%s:%s", host, mappedPort.Port()), nil
}

// applyMigration применяет ту же миграцию, что и сервис при старте
func applyMigration(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("../../migrations/000001_create_record_slots.up.sql")
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, string(sql))
	return err
}

func TestPostgresSlot_EmptyLoad(t *testing.T) {
	slot := NewPostgresSlot(testPool, "empty-slot")

	payload, err := slot.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestPostgresSlot_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	slot := NewPostgresSlot(testPool, "crimeData")

	require.NoError(t, slot.Save(ctx, []byte(`[{"id": 1, "title": "A"}]`)))
	require.NoError(t, slot.Save(ctx, []byte(`[{"id": 2, "title": "B"}]`)))

	payload, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 2, "title": "B"}]`, string(payload))
}

func TestPostgresSlot_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := NewPostgresSlot(testPool, "slot-a")
	second := NewPostgresSlot(testPool, "slot-b")

	require.NoError(t, first.Save(ctx, []byte(`[]`)))

	payload, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestRedisSlot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := NewRedisSlot(testRedis, "crimeData")

	payload, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, payload)

	require.NoError(t, slot.Save(ctx, []byte(`[{"id":1}]`)))

	payload, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), payload)

	ttl, err := testRedis.TTL(ctx, "crimeData").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}
