package resultstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/infra"
	"golden-key-funnel/internal/infra/redis"
	"golden-key-funnel/internal/pkg/errs"
)

const sessionBackend = "redis"

// SessionStore keeps the activation of one browser session in Redis.
type SessionStore struct {
	client redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewSessionStore(client redis.Client, ttl time.Duration, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(sessionID string) string {
	return activation.StorageKey + ":session:" + sessionID
}

func (s *SessionStore) Save(ctx context.Context, scope activation.Scope, a activation.PersistedActivation) error {
	if scope.SessionID == "" {
		return errs.Mark(errs.New("session store: empty session id"), errs.ErrStorageWrite)
	}

	data, err := json.Marshal(a)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "encode activation"), errs.ErrStorageWrite)
	}
	if err := s.client.Set(ctx, sessionKey(scope.SessionID), data, s.ttl); err != nil {
		return errs.Mark(infra.WrapStoreErr(s.logger, infra.KindCacheFailure, sessionBackend, "save activation", err), errs.ErrStorageWrite)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error) {
	if scope.SessionID == "" {
		return activation.PersistedActivation{}, errs.ErrActivationNotFound
	}

	data, err := s.client.Get(ctx, sessionKey(scope.SessionID))
	if err != nil {
		if errs.Is(err, redis.ErrNil) {
			return activation.PersistedActivation{}, errs.Mark(
				infra.WrapStoreErr(s.logger, infra.KindNotFound, sessionBackend, "activation not found", nil),
				errs.ErrActivationNotFound)
		}
		return activation.PersistedActivation{}, infra.WrapStoreErr(s.logger, infra.KindCacheFailure, sessionBackend, "load activation", err)
	}

	var a activation.PersistedActivation
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return activation.PersistedActivation{}, infra.WrapStoreErr(s.logger, infra.KindCorrupted, sessionBackend, "decode activation", err)
	}
	return a, nil
}
