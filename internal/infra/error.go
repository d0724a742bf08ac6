package infra

import (
	"errors"
	"log/slog"

	"golden-key-funnel/internal/pkg/errs"
)

type StoreErrorKind string

// StoreError classifies failures of the result store backends.
type StoreError struct {
	Kind    StoreErrorKind
	Backend string
	msg     string
	err     error // wrapped low-level error
}

func (e StoreError) Error() string {
	prefix := string(e.Kind) + " [" + e.Backend + "]: " + e.msg
	if e.err != nil {
		return prefix + ": " + e.err.Error()
	}
	return prefix
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(logger *slog.Logger, kind StoreErrorKind, backend, msg string, err error) error {
	if kind != KindNotFound {
		logger.Error("Store error: "+msg,
			slog.String("kind", string(kind)),
			slog.String("backend", backend))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, Backend: backend, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindDBFailure    StoreErrorKind = "DB_FAILURE"
	KindCacheFailure StoreErrorKind = "CACHE_FAILURE"
	KindCorrupted    StoreErrorKind = "CORRUPTED"
)
