package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/tasklight/task-tracker-api/internal/constants"
	"github.com/tasklight/task-tracker-api/internal/middleware"
	"github.com/tasklight/task-tracker-api/internal/repository"
	"github.com/tasklight/task-tracker-api/internal/services"
)

// newTestRouter wires the full application against fresh in-memory stores,
// mirroring the route layout in cmd/server.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	taskRepo := repository.NewMemoryTaskRepository()
	authHandler := NewAuthHandler(services.NewAuthService(userRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id", taskHandler.SetTaskCompleted)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	return r
}

// doJSON performs a request with an optional JSON body and session cookies.
func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signupAs registers a user and returns the session cookies from the
// response.
func signupAs(t *testing.T, r *gin.Engine, name, email, password string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, "POST", "/api/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
