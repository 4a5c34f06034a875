package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"lawconnect_backend/internal/app"
	"lawconnect_backend/internal/config"
	"lawconnect_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer spins up the full router against a real Postgres instance.
// Skips the calling test when TEST_DATABASE_URL is not set.
func NewTestServer(t *testing.T) *TestServer {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping integration tests")
	}

	os.Setenv("DATABASE_URL", dsn)
	os.Setenv("SERVER_ENV", "test")
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration_test_secret_key_12345")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		t.Fatalf("failed to create uuid-ossp extension: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Lawyer{},
		&models.Request{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("test server started, database %s ready", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables wipes all rows between tests.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec("TRUNCATE TABLE users, lawyers, requests RESTART IDENTITY CASCADE").Error
	if err != nil {
		log.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs an HTTP request against the test server with an
// optional bearer token and JSON body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
