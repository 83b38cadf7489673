package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet_maintenance/internal/adapter/http/middleware"
	"fleet_maintenance/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	manager = entities.Actor{ID: "mgr-1", Role: entities.RoleManager}
	foreman = entities.Actor{ID: "fm-1", Role: entities.RoleForeman}
)

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	return r
}

func newRequest(method, path, body string, actor entities.Actor) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor.ID != "" {
		req.Header.Set(middleware.HeaderUserID, actor.ID)
		req.Header.Set(middleware.HeaderUserRole, string(actor.Role))
	}
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
