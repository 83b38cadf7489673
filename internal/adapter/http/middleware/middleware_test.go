package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet_maintenance/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(got *entities.Actor) *gin.Engine {
		r := gin.New()
		r.Use(Identity())
		r.GET("/whoami", func(c *gin.Context) {
			*got, _ = ActorFrom(c)
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("missing headers", func(t *testing.T) {
		var got entities.Actor
		w := httptest.NewRecorder()
		newRouter(&got).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if got.ID != "" {
			t.Fatalf("handler should not run, got actor %+v", got)
		}
	})

	t.Run("role is normalized", func(t *testing.T) {
		var got entities.Actor
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderUserID, "u-1")
		req.Header.Set(HeaderUserRole, " Foreman ")
		w := httptest.NewRecorder()
		newRouter(&got).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got.ID != "u-1" || got.Role != entities.RoleForeman {
			t.Fatalf("unexpected actor: %+v", got)
		}
	})
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	t.Run("keeps caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "req-42" {
			t.Fatalf("expected req-42, got %q", got)
		}
		if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
			t.Fatalf("request id not logged: %s", buf.String())
		}
	})

	t.Run("assigns a request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w.Header().Get(HeaderRequestID) == "" {
			t.Fatalf("expected a generated request id")
		}
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(buf.String(), "recovered from panic") {
			t.Fatalf("panic not logged: %s", buf.String())
		}
	})
}
