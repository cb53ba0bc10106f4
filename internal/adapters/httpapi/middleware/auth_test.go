package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sessionPort "socialfeed/internal/ports/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type sessionResolverFake struct {
	userID string
	err    error
}

func (f sessionResolverFake) Resolve(ctx context.Context, token string) (string, error) {
	return f.userID, f.err
}

func serve(t *testing.T, resolver SessionResolver, cookie *http.Cookie) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(SessionAuth(resolver, false, zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		seen, _ = CurrentUserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, seen
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestSessionAuth(t *testing.T) {
	cookie := &http.Cookie{Name: SessionCookie, Value: "token"}

	for _, testCase := range []struct {
		name          string
		resolver      sessionResolverFake
		cookie        *http.Cookie
		wantedUserID  string
		wantedCleared bool
	}{
		{
			name:         "valid session",
			resolver:     sessionResolverFake{userID: "u1"},
			cookie:       cookie,
			wantedUserID: "u1",
		},
		{
			name:     "no cookie",
			resolver: sessionResolverFake{userID: "u1"},
		},
		{
			name:          "invalid session",
			resolver:      sessionResolverFake{err: fmt.Errorf("%w: revoked", sessionPort.ErrInvalidSession)},
			cookie:        cookie,
			wantedCleared: true,
		},
		{
			name:     "store unavailable",
			resolver: sessionResolverFake{err: errors.New("dial tcp: connection refused")},
			cookie:   cookie,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			rec, userID := serve(t, testCase.resolver, testCase.cookie)
			if rec.Code != http.StatusOK {
				t.Fatalf("wanted status %d; found %d", http.StatusOK, rec.Code)
			}
			if userID != testCase.wantedUserID {
				t.Fatalf("wanted user `%s`; found `%s`", testCase.wantedUserID, userID)
			}
			if cleared := clearedCookie(rec); cleared != testCase.wantedCleared {
				t.Fatalf("wanted cookie cleared=%v; found %v", testCase.wantedCleared, cleared)
			}
		})
	}
}

func TestRequireAuthRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuth(sessionResolverFake{err: errors.New("redis down")}, false, zap.NewNop()))
	r.GET("/home/", RequireAuth("/"), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/home/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("wanted redirect to `/`; found %d `%s`", rec.Code, rec.Header().Get("Location"))
	}
	if clearedCookie(rec) {
		t.Fatal("outage cleared the session cookie")
	}
}
