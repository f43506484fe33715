package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateControllerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	adapter, err := dialect.Resolve(testDB)
	require.NoError(t, err)

	repo := repository.NewLookupRepository[model.State, *model.State](testDB, "state")
	svc := service.NewLookupService[model.State, *model.State](repo, adapter, "state")
	ctrl := NewLookupController(svc, "State")

	router := gin.New()
	router.GET("/states", ctrl.List)
	router.GET("/states/:id", ctrl.Get)
	router.POST("/states", ctrl.Create)
	router.PUT("/states/:id", ctrl.Update)
	router.PATCH("/states/:id/active", ctrl.SetActive)
	return router
}

func TestLookupController_CRUD(t *testing.T) {
	router := setupStateControllerTest(t)

	t.Run("Create", func(t *testing.T) {
		w := postJSON(router, "/states", LookupRequest{Name: "Maharashtra"})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Maharashtra")
	})

	t.Run("Duplicate name responds 409 on the name field", func(t *testing.T) {
		w := postJSON(router, "/states", LookupRequest{Name: "Maharashtra"})
		assert.Equal(t, http.StatusConflict, w.Code)

		var response struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Errors, "name")
	})

	t.Run("List", func(t *testing.T) {
		postJSON(router, "/states", LookupRequest{Name: "Goa"})

		req := httptest.NewRequest("GET", "/states", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data struct {
				Count int `json:"count"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Data.Count)
	})

	t.Run("Update renames", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/states/2", jsonBody(LookupRequest{Name: "Goa Coastal"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Goa Coastal")
	})

	t.Run("Toggle off", func(t *testing.T) {
		active := false
		req := httptest.NewRequest("PATCH", "/states/1/active", jsonBody(SetActiveRequest{Active: &active}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown id responds 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/states/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric id responds 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/states/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Blank name responds 400", func(t *testing.T) {
		w := postJSON(router, "/states", map[string]string{"name": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRoleController_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	adapter, err := dialect.Resolve(testDB)
	require.NoError(t, err)

	roleService := service.NewRoleService(repository.NewRoleRepository(testDB), adapter)
	ctrl := NewRoleController(roleService)

	router := gin.New()
	router.POST("/roles", ctrl.Create)
	router.DELETE("/roles/:id", ctrl.Delete)

	created := postJSON(router, "/roles", LookupRequest{Name: "cashier"})
	require.Equal(t, http.StatusCreated, created.Code)

	var response struct {
		Data struct {
			Item struct {
				ID uint `json:"id"`
			} `json:"item"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &response))
	roleID := response.Data.Item.ID

	t.Run("Assigned role responds 409", func(t *testing.T) {
		user := &model.User{
			Username:     "asha",
			Email:        "asha@radhira.example",
			PasswordHash: "x",
			FullName:     "Asha K",
			RoleID:       &roleID,
			Active:       true,
		}
		require.NoError(t, testDB.Create(user).Error)

		w := deleteReq(router, fmt.Sprintf("/roles/%d", roleID))
		assert.Equal(t, http.StatusConflict, w.Code)

		require.NoError(t, testDB.Delete(user).Error)
	})

	t.Run("Unassigned role deletes", func(t *testing.T) {
		w := deleteReq(router, fmt.Sprintf("/roles/%d", roleID))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Gone role responds 404", func(t *testing.T) {
		w := deleteReq(router, fmt.Sprintf("/roles/%d", roleID))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func jsonBody(payload interface{}) *bytes.Buffer {
	body, _ := json.Marshal(payload)
	return bytes.NewBuffer(body)
}

func deleteReq(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("DELETE", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
