package routes

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/velandev/website/internal/app/controllers"
	"github.com/velandev/website/internal/app/repositories"
	"github.com/velandev/website/internal/app/services"
	"github.com/velandev/website/internal/db"
	"github.com/velandev/website/internal/middleware"
	"github.com/velandev/website/internal/pkg/auth"
)

const (
	testAdminPassword = "admin-password"
	testSessionToken  = "test-session-token"
)

// recordingMailer satisfies email.Mailer for end-to-end handler tests
type recordingMailer struct {
	subjects []string
}

func (m *recordingMailer) Configured() bool { return true }

func (m *recordingMailer) Send(subject, body, replyTo string) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "careers.db")
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	repos := repositories.NewRepositories(database)
	gate := auth.NewSessionGate(auth.SessionConfig{
		Password:     testAdminPassword,
		SessionToken: testSessionToken,
	})
	mailer := &recordingMailer{}
	logger := zerolog.Nop()

	careerService := services.NewCareerService(repos.JobRepository, repos.ApplicationRepository, mailer, logger)
	contactService := services.NewContactService(mailer, logger)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewCareerController(careerService),
		controllers.NewAdminController(gate, false),
		controllers.NewContactController(contactService),
		controllers.NewChatController(services.NewChatService()),
		controllers.NewContentController(services.NewContentService()),
		middleware.NewAdminMiddleware(gate),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
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

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: auth.SessionCookieName, Value: value}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminJobsRequireSession(t *testing.T) {
	router := newTestRouter(t)
	payload := gin.H{
		"title":       "Backend Engineer",
		"department":  "Engineering",
		"location":    "Remote",
		"type":        "Full-time",
		"description": "Build Go services.",
	}

	// No cookie.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/jobs", payload, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: expected 401, got %d", rec.Code)
	}

	// Wrong token.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/admin/jobs", payload, sessionCookie("not-the-token"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: expected 401, got %d", rec.Code)
	}

	// Nothing must have been stored by the rejected requests.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/jobs", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing jobs, got %d", rec.Code)
	}
	var listing struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(listing.Data) != 0 {
		t.Errorf("expected no jobs after rejected mutations, got %d", len(listing.Data))
	}
}

func TestAdminLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	// Wrong password.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{"password": "nope"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}

	// Correct password issues the cookie.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{"password": testAdminPassword}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var issued *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			issued = c
		}
	}
	if issued == nil {
		t.Fatal("expected admin_session cookie to be set")
	}
	if issued.Value != testSessionToken {
		t.Errorf("expected cookie to carry session token, got %q", issued.Value)
	}
	if !issued.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if issued.Path != "/" {
		t.Errorf("expected cookie path /, got %q", issued.Path)
	}
	if issued.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", issued.SameSite)
	}

	// The cookie now unlocks job mutations.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/admin/jobs", gin.H{
		"title":       "Backend Engineer",
		"department":  "Engineering",
		"location":    "Remote",
		"type":        "Full-time",
		"description": "Build Go services.",
	}, sessionCookie(issued.Value))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// And the session probe reports authenticated.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/session", nil, sessionCookie(issued.Value))
	if rec.Code != http.StatusOK {
		t.Fatalf("session probe: expected 200, got %d", rec.Code)
	}
	var probe struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &probe); err != nil {
		t.Fatalf("failed to decode probe response: %v", err)
	}
	if !probe.Data.Authenticated {
		t.Error("expected authenticated session")
	}
}

func TestAdminSessionProbeWithoutCookie(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/session", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var probe struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &probe); err != nil {
		t.Fatalf("failed to decode probe response: %v", err)
	}
	if probe.Data.Authenticated {
		t.Error("expected unauthenticated probe without cookie")
	}
}

func TestGetJobInvalidIDParam(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/jobs/abc", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/jobs/9999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "RES_001" {
		t.Errorf("expected RES_001, got %q", resp.Error.Code)
	}
}

func TestPagesEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/pages/home", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for home page, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/pages/nope", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %d", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/chat", gin.H{"message": "hello"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode chat response: %v", err)
	}
	if resp.Data.Reply == "" {
		t.Error("expected a non-empty reply")
	}

	// Missing message is a binding failure.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/chat", gin.H{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty payload, got %d", rec.Code)
	}
}

func TestContactEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/contact", gin.H{
		"fullName": "Ada Lovelace",
		"email":    "ada@example.com",
		"message":  "We need a platform.",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/contact", gin.H{"email": "ada@example.com"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "VAL_001" {
		t.Errorf("expected VAL_001, got %q", resp.Error.Code)
	}
	if len(resp.Error.Details) != 2 {
		t.Errorf("expected two missing fields, got %v", resp.Error.Details)
	}
}

func TestSubmitApplicationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/applications", gin.H{
		"fullName":    "Ada Lovelace",
		"email":       "ada@example.com",
		"coverLetter": "I would like to apply.",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			ApplicationID int64 `json:"applicationId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ApplicationID <= 0 {
		t.Errorf("expected positive applicationId, got %d", resp.Data.ApplicationID)
	}
}
