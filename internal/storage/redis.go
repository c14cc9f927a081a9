package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/state"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements the Storage interface using Redis for session
// state and the filesystem for static resources (the mission catalog).
type RedisStorage struct {
	client  *redis.Client
	logger  *slog.Logger
	dataDir string
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, dataDir string, logger *slog.Logger) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if dataDir == "" {
		dataDir = "./data"
	}

	return &RedisStorage{
		client:  redis.NewClient(opts),
		logger:  logger,
		dataDir: dataDir,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// Session operations (Redis-backed)

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func (r *RedisStorage) SaveSession(ctx context.Context, s *state.Session) error {
	s.UpdatedAt = time.Now()

	data, err := json.Marshal(s)
	if err != nil {
		r.logger.Error("Failed to marshal session", "uuid", s.ID, "error", err)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	cmd := r.client.Set(ctx, sessionKey(s.ID), string(data), 24*time.Hour)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save session", "uuid", s.ID, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error) {
	cmd := r.client.Get(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Session not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s state.Session
	if err := json.Unmarshal([]byte(cmd.Val()), &s); err != nil {
		r.logger.Error("Failed to unmarshal session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

func (r *RedisStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	cmd := r.client.Del(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete session", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Mission catalog operations (filesystem-backed)

func (r *RedisStorage) ListMissions(ctx context.Context) ([]*mission.Data, error) {
	missionsDir := filepath.Join(r.dataDir, "missions")
	var catalog []*mission.Data

	err := filepath.WalkDir(missionsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		file, err := os.ReadFile(path)
		if err != nil {
			r.logger.Warn("Failed to read mission file", "path", path, "error", err)
			return nil
		}

		var m mission.Data
		if err := json.Unmarshal(file, &m); err != nil {
			r.logger.Warn("Failed to unmarshal mission file", "path", path, "error", err)
			return nil
		}

		catalog = append(catalog, &m)
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to walk missions directory", "error", err)
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return catalog, nil
}

func (r *RedisStorage) GetMission(ctx context.Context, filename string) (*mission.Data, error) {
	path := filepath.Join(r.dataDir, "missions", filename)

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("mission not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	var m mission.Data
	if err := json.Unmarshal(file, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission: %w", err)
	}

	return &m, nil
}
