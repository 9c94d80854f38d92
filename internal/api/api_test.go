package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ahmetberacelik/legalcase/internal/api"
	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
	"github.com/ahmetberacelik/legalcase/internal/service"
	"github.com/ahmetberacelik/legalcase/pkg/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log, err := logger.NewLogger("error", "json")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	users := repository.NewUserRepository(db)
	clients := repository.NewClientRepository(db)
	cases := repository.NewCaseRepository(db)
	hearings := repository.NewHearingRepository(db)
	documents := repository.NewDocumentRepository(db)

	testCache := cache.NewCache(100, time.Minute)

	authService := service.NewAuthService(users)
	caseService := service.NewCaseService(cases, clients, testCache)
	clientService := service.NewClientService(clients)
	hearingService := service.NewHearingService(hearings, cases)
	documentService := service.NewDocumentService(documents, cases)

	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("legalcase_session", store))

	api.SetupRoutes(router, authService, caseService, clientService, hearingService, documentService, testCache, log)

	return router
}

// doJSON issues a JSON request, attaching any session cookies.
func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// loginAsAdmin registers and logs in an admin, returning session cookies.
func loginAsAdmin(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/auth/register", map[string]string{
		"username": "admin",
		"password": "admin",
		"email":    "admin@example.com",
		"role":     "ADMIN",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	return w.Result().Cookies()
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %v", response["status"])
	}
}

func TestLoginRequired(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/cases", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": "nothing",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestMe(t *testing.T) {
	router := setupTestRouter(t)
	cookies := loginAsAdmin(t, router)

	w := doJSON(t, router, "GET", "/api/auth/me", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Data.Username != "admin" {
		t.Errorf("expected username admin, got %q", response.Data.Username)
	}
}

func TestCaseEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	cookies := loginAsAdmin(t, router)

	// Create
	w := doJSON(t, router, "POST", "/api/cases", map[string]string{
		"case_number": "C-1",
		"title":       "Estate of Smith",
		"type":        "CIVIL",
		"description": "probate",
	}, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed with status %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			ID     uint   `json:"ID"`
			Status string `json:"status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.Data.Status != "NEW" {
		t.Errorf("expected NEW status, got %s", created.Data.Status)
	}

	// Duplicate number is a validation failure
	w = doJSON(t, router, "POST", "/api/cases", map[string]string{
		"case_number": "C-1",
		"title":       "Other",
		"type":        "CIVIL",
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for duplicate, got %d", http.StatusBadRequest, w.Code)
	}

	// Lookup by number
	w = doJSON(t, router, "GET", "/api/cases?number=C-1", nil, cookies)
	if w.Code != http.StatusOK {
		t.Errorf("lookup failed with status %d", w.Code)
	}

	// Out-of-range enum values never reach the store
	w = doJSON(t, router, "POST", "/api/cases", map[string]string{
		"case_number": "C-3",
		"title":       "Other",
		"type":        "BOGUS",
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for unknown type, got %d", http.StatusBadRequest, w.Code)
	}

	// A PUT that omits status must not write an empty one
	w = doJSON(t, router, "PUT", "/api/cases/"+itoa(created.Data.ID), map[string]string{
		"case_number": "C-1",
		"title":       "Estate of Smith",
		"type":        "CIVIL",
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for missing status, got %d", http.StatusBadRequest, w.Code)
	}

	// Absent lookups are 404
	w = doJSON(t, router, "GET", "/api/cases?number=C-404", nil, cookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	w = doJSON(t, router, "GET", "/api/cases/999", nil, cookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestHearingEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	cookies := loginAsAdmin(t, router)

	w := doJSON(t, router, "POST", "/api/cases", map[string]string{
		"case_number": "C-2",
		"title":       "State v. Jones",
		"type":        "CRIMINAL",
	}, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("case create failed: %s", w.Body.String())
	}
	var createdCase struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &createdCase)

	future := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
	w = doJSON(t, router, "POST", "/api/hearings", map[string]interface{}{
		"case_id":   createdCase.Data.ID,
		"date_time": future,
		"judge":     "Judge X",
		"location":  "Room 1",
		"notes":     "initial",
	}, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("hearing create failed with status %d: %s", w.Code, w.Body.String())
	}

	var createdHearing struct {
		Data struct {
			ID     uint   `json:"ID"`
			Status string `json:"status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &createdHearing)
	if createdHearing.Data.Status != "SCHEDULED" {
		t.Errorf("expected SCHEDULED, got %s", createdHearing.Data.Status)
	}

	// Reschedule and check the audit line
	newDate := time.Now().Add(96 * time.Hour).UTC().Format(time.RFC3339)
	w = doJSON(t, router, "POST",
		"/api/hearings/"+itoa(createdHearing.Data.ID)+"/reschedule",
		map[string]string{"date_time": newDate}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("reschedule failed with status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "rescheduled from") {
		t.Errorf("audit line missing in response: %s", w.Body.String())
	}

	// Upcoming filter includes it
	w = doJSON(t, router, "GET", "/api/hearings?upcoming=true", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("upcoming query failed: %d", w.Code)
	}
	var upcoming struct {
		Data []json.RawMessage `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &upcoming)
	if len(upcoming.Data) != 1 {
		t.Errorf("expected 1 upcoming hearing, got %d", len(upcoming.Data))
	}
}

func TestLogout(t *testing.T) {
	router := setupTestRouter(t)
	cookies := loginAsAdmin(t, router)

	w := doJSON(t, router, "POST", "/api/auth/logout", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("logout failed with status %d", w.Code)
	}

	// The cleared cookie invalidates the session
	cleared := w.Result().Cookies()
	w = doJSON(t, router, "GET", "/api/cases", nil, cleared)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d after logout, got %d", http.StatusUnauthorized, w.Code)
	}
}

func itoa(n uint) string {
	return strconv.Itoa(int(n))
}
