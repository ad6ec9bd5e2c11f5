package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cat-shelter-server/internal/models"
)

func TestVaccineTypeNamesAreUnique(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doForm(router, http.MethodPost, "/api/v1/vaccine-types", url.Values{"name": {"Typhus"}})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same case: rejected by the unique index.
	w = doForm(router, http.MethodPost, "/api/v1/vaccine-types", url.Values{"name": {"Typhus"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Different case passes: catalog uniqueness is case-sensitive even
	// though lookups elsewhere are not.
	w = doForm(router, http.MethodPost, "/api/v1/vaccine-types", url.Values{"name": {"TYPHUS"}})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateVaccineRecord(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	w := doForm(router, http.MethodPost, "/api/v1/cats/"+cat.ID+"/vaccinations", url.Values{
		"vaccine_name": {"Leucose"},
		"date":         {"2026-02-10"},
		"veterinarian": {"Dr Martin"},
		"lot":          {"L-42"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record models.VaccineRecord
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, cat.ID, record.CatID)
	assert.Equal(t, "Leucose", record.VaccineName)
	assert.Equal(t, "Dr Martin", record.Veterinarian)
	assert.Equal(t, 2026, record.Date.Year())
}

func TestCreateVaccineRecordRejectsBadDate(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	w := doForm(router, http.MethodPost, "/api/v1/cats/"+cat.ID+"/vaccinations", url.Values{
		"vaccine_name": {"Leucose"},
		"date":         {"10/02/2026"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVaccineRecordForUnknownCat(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doForm(router, http.MethodPost, "/api/v1/cats/no-such-id/vaccinations", url.Values{
		"vaccine_name": {"Leucose"},
		"date":         {"2026-02-10"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVaccineRecordsMostRecentFirst(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)
	old := models.VaccineRecord{CatID: cat.ID, VaccineName: "Typhus",
		Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)}
	recent := models.VaccineRecord{CatID: cat.ID, VaccineName: "Typhus",
		Date: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	w := doGet(router, "/api/v1/cats/"+cat.ID+"/vaccinations")
	require.Equal(t, http.StatusOK, w.Code)

	var records []struct {
		Date time.Time `json:"date"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, 2026, records[0].Date.Year())
}
