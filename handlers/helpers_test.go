package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"drone-delivery-api/handlers"
	"drone-delivery-api/middleware"
	"drone-delivery-api/models"
	"drone-delivery-api/routes"
	"drone-delivery-api/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the full route tree over a sqlmock-backed store,
// plus a test-only route that establishes an arbitrary session.
func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	r := gin.New()
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/test/session", func(c *gin.Context) {
		var id models.Identity
		require.NoError(t, c.ShouldBindJSON(&id))
		require.NoError(t, middleware.LoginUser(c, id))
		c.Status(http.StatusOK)
	})

	h := handlers.New(store.NewWithDB(sqlx.NewDb(mockDB, "mysql")))
	routes.SetupRoutes(r, h)
	return r, mock
}

// loginAs returns session cookies for the given identity.
func loginAs(t *testing.T, r *gin.Engine, id models.Identity) []*http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/test/session", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func customerSession(t *testing.T, r *gin.Engine, userID int64) []*http.Cookie {
	return loginAs(t, r, models.Identity{ID: userID, Name: "Mario", Email: "mario@example.com", Role: models.RoleCustomer})
}

func adminSession(t *testing.T, r *gin.Engine) []*http.Cookie {
	return loginAs(t, r, models.Identity{ID: 1, Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin})
}

// doJSON performs a request with an optional JSON body and cookies.
func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
