package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tasklight/task-tracker-api/internal/constants"
)

// newSessionRouter exposes a seed endpoint that writes an arbitrary session
// age, so the TTL check can be exercised without waiting.
func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("test-secret"))))

	r.POST("/seed", func(c *gin.Context) {
		ageSeconds, _ := strconv.ParseInt(c.Query("age"), 10, 64)
		session := sessions.Default(c)
		session.Set(constants.SessionKeyUserID, "user-1")
		session.Set(constants.SessionKeyCreatedAt, time.Now().Unix()-ageSeconds)
		if err := session.Save(); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})

	return r
}

func seedSession(t *testing.T, r *gin.Engine, ageSeconds int64) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/seed?age="+strconv.FormatInt(ageSeconds, 10), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func getProtected(r *gin.Engine, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_NoSession(t *testing.T) {
	r := newSessionRouter()

	w := getProtected(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestRequireAuth_FreshSession(t *testing.T) {
	r := newSessionRouter()

	cookies := seedSession(t, r, 0)
	w := getProtected(r, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuth_AlmostExpiredSession(t *testing.T) {
	r := newSessionRouter()

	age := int64(constants.SessionTTL.Seconds()) - 60
	cookies := seedSession(t, r, age)
	w := getProtected(r, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	r := newSessionRouter()

	// The boundary is strict: a session aged exactly the TTL is rejected.
	age := int64(constants.SessionTTL.Seconds())
	cookies := seedSession(t, r, age)
	w := getProtected(r, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_TamperedCookie(t *testing.T) {
	r := newSessionRouter()

	cookies := seedSession(t, r, 0)
	for _, c := range cookies {
		c.Value = c.Value + "tampered"
	}
	w := getProtected(r, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
