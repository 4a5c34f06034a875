package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lawconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a client directly, hashing the raw password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash password")
	user.PasswordHash = string(hashedPassword)

	require.NoError(t, db.Create(user).Error, "failed to create test user")
}

// CreateLawyer inserts a lawyer directly, hashing the raw password.
func CreateLawyer(t *testing.T, db *gorm.DB, lawyer *models.Lawyer, rawPassword string) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash password")
	lawyer.PasswordHash = string(hashedPassword)

	require.NoError(t, db.Create(lawyer).Error, "failed to create test lawyer")
}

// CreateAndLoginUser creates a client with a unique email and logs in
// through the API, returning the bearer token and the stored record.
func CreateAndLoginUser(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	password := "password123"

	user := &models.User{
		FirstName: "Test",
		LastName:  "Client",
		Email:     email,
		PhoneNo:   "+77001234567",
		Location:  "Almaty",
	}
	CreateUser(t, ts.DB, user, password)

	loginBody := map[string]interface{}{
		"emailAddress": email,
		"password":     password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginLawyer creates a lawyer with a unique email and logs in
// through the API.
func CreateAndLoginLawyer(t *testing.T, ts *TestServer) (string, *models.Lawyer) {
	email := fmt.Sprintf("lawyer_%d@test.com", time.Now().UnixNano())
	password := "password123"

	lawyer := &models.Lawyer{
		FirstName:     "Test",
		LastName:      "Lawyer",
		Email:         email,
		AccountType:   "lawyer",
		PhoneNo:       "+77007654321",
		CaseDomain:    "Family",
		Location:      "Almaty",
		YearOfJoining: 2018,
	}
	CreateLawyer(t, ts.DB, lawyer, password)

	loginBody := map[string]interface{}{
		"emailAddress": email,
		"password":     password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/lawyers/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "lawyer login should succeed: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, lawyer
}
