package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cat-shelter-server/internal/models"
)

func TestLoginAndProfile(t *testing.T) {
	router, db, _ := newTestEnv(t)

	employee := models.Employee{Name: "Alice", Email: "alice@refuge.fr"}
	require.NoError(t, employee.SetPassword("miaou-secret"))
	require.NoError(t, db.Create(&employee).Error)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "alice@refuge.fr",
		"password": "miaou-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	profileEnv := decodeEnvelope(t, rec)
	var profile struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(profileEnv.Data, &profile))
	assert.Equal(t, "Alice", profile.Name)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router, db, _ := newTestEnv(t)

	employee := models.Employee{Name: "Alice", Email: "alice@refuge.fr"}
	require.NoError(t, employee.SetPassword("miaou-secret"))
	require.NoError(t, db.Create(&employee).Error)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "alice@refuge.fr",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doGet(router, "/api/v1/auth/profile")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsEmployeeWithoutCredentials(t *testing.T) {
	router, db, _ := newTestEnv(t)

	// Seeded-style employee: a name only, no login.
	require.NoError(t, db.Create(&models.Employee{Name: "Bob", Email: "bob@refuge.fr"}).Error)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "bob@refuge.fr",
		"password": "anything",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
