package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/config"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCookieName = "pos_session"

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:         "test-secret",
		CookieName:     testCookieName,
		DefaultExpiry:  12 * time.Hour,
		RememberExpiry: 336 * time.Hour,
	}
}

func setupAuthControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	sessionCfg := testSessionConfig()
	authService := service.NewAuthService(
		repository.NewUserRepository(testDB),
		sessionCfg.Secret,
		sessionCfg.DefaultExpiry,
		sessionCfg.RememberExpiry,
	)
	ctrl := NewAuthController(authService, sessionCfg)
	authMiddleware := middleware.NewAuthMiddleware(sessionCfg.Secret, sessionCfg.CookieName)

	router := gin.New()
	router.POST("/login", ctrl.Login)
	router.POST("/logout", ctrl.Logout)
	router.GET("/me", authMiddleware.Authenticate(), ctrl.Me)

	return router, testDB
}

func createTestUser(t *testing.T, testDB *gorm.DB) *model.User {
	t.Helper()

	hash, err := util.HashPassword("secret123")
	require.NoError(t, err)

	user := &model.User{
		Username:     "asha",
		Email:        "asha@radhira.example",
		PasswordHash: hash,
		FullName:     "Asha K",
		Active:       true,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAuthController_Login(t *testing.T) {
	t.Run("Success sets the session cookie", func(t *testing.T) {
		router, testDB := setupAuthControllerTest(t)
		createTestUser(t, testDB)

		w := postJSON(router, "/login", LoginRequest{Identifier: "asha", Password: "secret123"})
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, int((12 * time.Hour).Seconds()), cookie.MaxAge)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["ok"])
	})

	t.Run("Remember-me extends the cookie", func(t *testing.T) {
		router, testDB := setupAuthControllerTest(t)
		createTestUser(t, testDB)

		w := postJSON(router, "/login", LoginRequest{Identifier: "asha", Password: "secret123", Remember: true})
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w)
		assert.Equal(t, int((336 * time.Hour).Seconds()), cookie.MaxAge)
	})

	t.Run("Wrong password responds 401 without a cookie", func(t *testing.T) {
		router, testDB := setupAuthControllerTest(t)
		createTestUser(t, testDB)

		w := postJSON(router, "/login", LoginRequest{Identifier: "asha", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Unknown user responds identically to wrong password", func(t *testing.T) {
		router, testDB := setupAuthControllerTest(t)
		createTestUser(t, testDB)

		wrongPass := postJSON(router, "/login", LoginRequest{Identifier: "asha", Password: "wrong"})
		unknown := postJSON(router, "/login", LoginRequest{Identifier: "nobody", Password: "secret123"})

		assert.Equal(t, wrongPass.Code, unknown.Code)
		assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
	})

	t.Run("Missing fields respond 400 with field errors", func(t *testing.T) {
		router, _ := setupAuthControllerTest(t)

		w := postJSON(router, "/login", map[string]string{"identifier": "asha"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Errors, "password")
	})
}

func TestAuthController_Me(t *testing.T) {
	t.Run("Returns the session user from the cookie", func(t *testing.T) {
		router, testDB := setupAuthControllerTest(t)
		createTestUser(t, testDB)

		login := postJSON(router, "/login", LoginRequest{Identifier: "asha", Password: "secret123"})
		cookie := sessionCookie(t, login)

		req := httptest.NewRequest("GET", "/me", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "asha@radhira.example")
	})

	t.Run("No session responds 401", func(t *testing.T) {
		router, _ := setupAuthControllerTest(t)

		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthController_Logout(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postJSON(router, "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
