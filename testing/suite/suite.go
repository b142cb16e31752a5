package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerLifetime = 2 * time.Minute
	startupTimeout    = 2 * time.Minute
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// GameStore is a throwaway Redis container holding game snapshots for one test.
type GameStore struct {
	*testing.T

	Client *redis.Client
	Addr   string
}

// NewGameStore - starts an empty Redis container for the test, or skips the test
// when Docker cannot be reached.
func NewGameStore(t *testing.T) (context.Context, *GameStore) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)

	pool := dockerPool(t)
	resource := startRedis(t, pool)

	store := &GameStore{
		T:    t,
		Addr: resource.GetHostPort(redisPort),
	}

	pool.MaxWait = startupTimeout
	if err := pool.Retry(func() error {
		store.Client = redis.NewClient(&redis.Options{Addr: store.Addr})
		return store.Client.Ping(ctx).Err()
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("redis at %s never answered: %v", store.Addr, err)
	}

	t.Cleanup(func() {
		_ = store.Client.Close()

		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not remove redis container: %v", err)
		}
	})

	store.Flush(ctx)

	return ctx, store
}

// Flush - drops every stored game so subtests start from an empty store.
func (that *GameStore) Flush(ctx context.Context) {
	that.Helper()

	if err := that.Client.FlushDB(ctx).Err(); err != nil {
		that.Fatalf("could not flush redis: %v", err)
	}
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	return pool
}

func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		// stopped containers remove themselves
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	// hard kill in case the test binary dies before cleanup
	_ = resource.Expire(uint(containerLifetime.Seconds()))

	return resource
}
