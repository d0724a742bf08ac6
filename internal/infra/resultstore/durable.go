package resultstore

import (
	"context"
	"log/slog"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/infra"
	"golden-key-funnel/internal/pkg/errs"
	"golden-key-funnel/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const durableBackend = "postgres"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const upsertActivation = `
INSERT INTO activation_results (visitor_id, register_url, golden_key, first_name, email, validated_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
ON CONFLICT (visitor_id) DO UPDATE SET
    register_url = EXCLUDED.register_url,
    golden_key   = EXCLUDED.golden_key,
    first_name   = EXCLUDED.first_name,
    email        = EXCLUDED.email,
    validated_at = EXCLUDED.validated_at,
    updated_at   = NOW()`

const selectActivation = `
SELECT register_url, golden_key, first_name, email, validated_at
FROM activation_results
WHERE visitor_id = $1`

// DurableStore keeps the newest activation of a visitor in Postgres, shared by every tab.
type DurableStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewDurableStore(db DBTX, logger *slog.Logger) *DurableStore {
	return &DurableStore{db: db, logger: logger}
}

func (d *DurableStore) Save(ctx context.Context, scope activation.Scope, a activation.PersistedActivation) error {
	if scope.VisitorID == "" {
		return errs.Mark(errs.New("durable store: empty visitor id"), errs.ErrStorageWrite)
	}

	_, err := d.db.Exec(ctx, upsertActivation,
		scope.VisitorID,
		a.RegisterURL,
		a.Key,
		pgconv.OptionalTextToPgtype(a.FirstName),
		pgconv.OptionalTextToPgtype(a.Email),
		pgconv.TimeToPgtype(a.Timestamp),
	)
	if err != nil {
		return errs.Mark(infra.WrapStoreErr(d.logger, infra.KindDBFailure, durableBackend, "save activation", err), errs.ErrStorageWrite)
	}
	return nil
}

func (d *DurableStore) Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error) {
	if scope.VisitorID == "" {
		return activation.PersistedActivation{}, errs.ErrActivationNotFound
	}

	var (
		a           activation.PersistedActivation
		firstName   pgtype.Text
		email       pgtype.Text
		validatedAt pgtype.Timestamptz
	)
	err := d.db.QueryRow(ctx, selectActivation, scope.VisitorID).
		Scan(&a.RegisterURL, &a.Key, &firstName, &email, &validatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return activation.PersistedActivation{}, errs.Mark(
				infra.WrapStoreErr(d.logger, infra.KindNotFound, durableBackend, "activation not found", err),
				errs.ErrActivationNotFound)
		}
		return activation.PersistedActivation{}, infra.WrapStoreErr(d.logger, infra.KindDBFailure, durableBackend, "load activation", err)
	}

	a.FirstName = pgconv.StringFromPgtype(firstName)
	a.Email = pgconv.StringFromPgtype(email)
	a.Timestamp = pgconv.TimeFromPgtype(validatedAt)
	return a, nil
}
