//go:build unit

package resultstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/infra/resultstore"
	"golden-key-funnel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLogger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	errBackend   = errors.New("backend unavailable")
	testScope    = activation.Scope{SessionID: "tab-a", VisitorID: "visitor-1"}
	testApproved = activation.PersistedActivation{RegisterURL: "https://app.example.com/r/1", Key: "GOLD-123", FirstName: "Ada"}
)

// brokenStore fails every call.
type brokenStore struct {
	mu    sync.Mutex
	saves int
}

func (b *brokenStore) Save(context.Context, activation.Scope, activation.PersistedActivation) error {
	b.mu.Lock()
	b.saves++
	b.mu.Unlock()
	return errBackend
}

func (b *brokenStore) Load(context.Context, activation.Scope) (activation.PersistedActivation, error) {
	return activation.PersistedActivation{}, errBackend
}

func TestCarrier_SaveWritesBothScopes(t *testing.T) {
	ctx := context.Background()
	session := resultstore.NewMemoryStore(resultstore.BySession)
	durable := resultstore.NewMemoryStore(resultstore.ByVisitor)
	c := resultstore.NewCarrier(session, durable, testLogger)

	require.NoError(t, c.Save(ctx, testScope, testApproved))

	got, err := session.Load(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, testApproved, got)
	got, err = durable.Load(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, testApproved, got)
}

func TestCarrier_SaveNeverFails(t *testing.T) {
	ctx := context.Background()
	broken := &brokenStore{}
	durable := resultstore.NewMemoryStore(resultstore.ByVisitor)
	c := resultstore.NewCarrier(broken, durable, testLogger)

	require.NoError(t, c.Save(ctx, testScope, testApproved))
	assert.Equal(t, 1, broken.saves)

	got, err := c.Load(ctx, activation.Scope{SessionID: "tab-b", VisitorID: "visitor-1"})
	require.NoError(t, err)
	assert.Equal(t, testApproved, got)
}

func TestCarrier_Load(t *testing.T) {
	ctx := context.Background()
	other := activation.PersistedActivation{RegisterURL: "https://app.example.com/r/durable"}

	testCases := []struct {
		name     string
		setup    func(session, durable *resultstore.MemoryStore)
		broken   bool
		scope    activation.Scope
		expected string
		notFound bool
	}{
		{
			name: "session scope comes first",
			setup: func(session, durable *resultstore.MemoryStore) {
				require.NoError(t, session.Save(ctx, testScope, testApproved))
				require.NoError(t, durable.Save(ctx, testScope, other))
			},
			scope:    testScope,
			expected: testApproved.RegisterURL,
		},
		{
			name: "durable scope serves a new tab",
			setup: func(_, durable *resultstore.MemoryStore) {
				require.NoError(t, durable.Save(ctx, testScope, other))
			},
			scope:    activation.Scope{SessionID: "tab-b", VisitorID: "visitor-1"},
			expected: other.RegisterURL,
		},
		{
			name:     "query parameter is the last resort and is decoded",
			setup:    func(_, _ *resultstore.MemoryStore) {},
			scope:    activation.Scope{SessionID: "tab-b", RegisterURLParam: "https%3A%2F%2Fapp.example.com%2Fr%2F9"},
			expected: "https://app.example.com/r/9",
		},
		{
			name:     "undecodable parameter is used as is",
			setup:    func(_, _ *resultstore.MemoryStore) {},
			scope:    activation.Scope{SessionID: "tab-b", RegisterURLParam: "https://app.example.com/r/%zz"},
			expected: "https://app.example.com/r/%zz",
		},
		{
			name:     "backend errors fall through to the parameter",
			setup:    func(_, _ *resultstore.MemoryStore) {},
			broken:   true,
			scope:    activation.Scope{SessionID: "tab-a", RegisterURLParam: "https://app.example.com/r/param"},
			expected: "https://app.example.com/r/param",
		},
		{
			name:     "nothing anywhere",
			setup:    func(_, _ *resultstore.MemoryStore) {},
			scope:    testScope,
			notFound: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := resultstore.NewMemoryStore(resultstore.BySession)
			durable := resultstore.NewMemoryStore(resultstore.ByVisitor)
			tc.setup(session, durable)

			var c *resultstore.Carrier
			if tc.broken {
				c = resultstore.NewCarrier(&brokenStore{}, &brokenStore{}, testLogger)
			} else {
				c = resultstore.NewCarrier(session, durable, testLogger)
			}

			got, err := c.Load(ctx, tc.scope)
			if tc.notFound {
				assert.ErrorIs(t, err, errs.ErrActivationNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.RegisterURL)
		})
	}
}
