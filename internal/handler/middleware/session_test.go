//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golden-key-funnel/internal/handler/middleware"
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/pkg/cookie"
	"golden-key-funnel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(captured *commands.SessionRef) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewSessionMiddleware(config.NewTestConfig()).Ensure())
	r.GET("/", func(c *gin.Context) {
		ref, ok := middleware.GetSessionRef(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = ref
		c.Status(http.StatusOK)
	})
	return r
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionMiddleware_Ensure(t *testing.T) {
	sessionID := uuid.NewString()
	visitorID := uuid.NewString()

	tests := []struct {
		name    string
		header  string
		cookies []*http.Cookie
		check   func(t *testing.T, ref commands.SessionRef, w *httptest.ResponseRecorder)
	}{
		{
			name: "first visit issues both ids",
			check: func(t *testing.T, ref commands.SessionRef, w *httptest.ResponseRecorder) {
				_, err := uuid.Parse(ref.SessionID)
				require.NoError(t, err)
				_, err = uuid.Parse(ref.VisitorID)
				require.NoError(t, err)
				assert.NotEqual(t, ref.SessionID, ref.VisitorID)

				session := findCookie(w, cookie.SessionCookieName)
				require.NotNil(t, session)
				assert.Equal(t, ref.SessionID, session.Value)
				assert.Zero(t, session.MaxAge)
				assert.True(t, session.HttpOnly)

				visitor := findCookie(w, cookie.VisitorCookieName)
				require.NotNil(t, visitor)
				assert.Equal(t, ref.VisitorID, visitor.Value)
				assert.Equal(t, 86400, visitor.MaxAge)

				assert.Equal(t, ref.SessionID, w.Header().Get(middleware.SessionHeader))
			},
		},
		{
			name:    "cookies are reused",
			cookies: []*http.Cookie{{Name: cookie.SessionCookieName, Value: sessionID}, {Name: cookie.VisitorCookieName, Value: visitorID}},
			check: func(t *testing.T, ref commands.SessionRef, w *httptest.ResponseRecorder) {
				assert.Equal(t, commands.SessionRef{SessionID: sessionID, VisitorID: visitorID}, ref)
				assert.Empty(t, w.Result().Cookies())
			},
		},
		{
			name:    "header takes precedence over the session cookie",
			header:  sessionID,
			cookies: []*http.Cookie{{Name: cookie.SessionCookieName, Value: uuid.NewString()}, {Name: cookie.VisitorCookieName, Value: visitorID}},
			check: func(t *testing.T, ref commands.SessionRef, _ *httptest.ResponseRecorder) {
				assert.Equal(t, sessionID, ref.SessionID)
				assert.Equal(t, visitorID, ref.VisitorID)
			},
		},
		{
			name:    "ids that are not UUIDs are replaced",
			header:  "../../etc/passwd",
			cookies: []*http.Cookie{{Name: cookie.VisitorCookieName, Value: "not-a-uuid"}},
			check: func(t *testing.T, ref commands.SessionRef, w *httptest.ResponseRecorder) {
				assert.NotEqual(t, "../../etc/passwd", ref.SessionID)
				assert.NotEqual(t, "not-a-uuid", ref.VisitorID)
				require.NotNil(t, findCookie(w, cookie.SessionCookieName))
				require.NotNil(t, findCookie(w, cookie.VisitorCookieName))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref commands.SessionRef
			router := newSessionRouter(&ref)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.SessionHeader, tt.header)
			}
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			tt.check(t, ref, w)
		})
	}
}

func TestGetSessionRef_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetSessionRef(c)
	assert.False(t, ok)
}
