package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lawconnect_backend/internal/models"
	"lawconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLawyer(t *testing.T, email, caseDomain, location string) {
	ts := GetTestServer(t)
	lawyer := &models.Lawyer{
		FirstName:   "Seed",
		LastName:    "Lawyer",
		Email:       email,
		AccountType: "lawyer",
		CaseDomain:  caseDomain,
		Location:    location,
	}
	helpers.CreateLawyer(t, ts.DB, lawyer, "password123")
}

func TestLawyerDirectory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	seedLawyer(t, "family.almaty@test.com", "Family", "Almaty")
	seedLawyer(t, "criminal.astana@test.com", "Criminal", "Astana")
	seedLawyer(t, "family.astana@test.com", "Family", "Astana")

	// The directory is public.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/lawyers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Lawyers []map[string]interface{} `json:"lawyers"`
		Total   int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, 3, listing.Total)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/lawyers/search/domain", "",
		map[string]interface{}{"caseDomain": "Family"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, 2, listing.Total)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/lawyers/search/location", "",
		map[string]interface{}{"location": "Astana"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, 2, listing.Total)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/lawyers/domains", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Family")
	assert.Contains(t, body, "Criminal")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/lawyers/locations", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Almaty")
	assert.Contains(t, body, "Astana")
}
