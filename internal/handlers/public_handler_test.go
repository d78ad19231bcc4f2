package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/apexcricket/academy-api/internal/audit"
	"github.com/apexcricket/academy-api/internal/cache"
	dbpkg "github.com/apexcricket/academy-api/internal/db"
	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/infra/repository"
	"github.com/apexcricket/academy-api/internal/middleware"
	"github.com/apexcricket/academy-api/internal/models"
	ucwaitlist "github.com/apexcricket/academy-api/internal/usecase/waitlist"
)

// resolvableDomain keeps tests off the network.
func resolvableDomain(string) bool { return true }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)

	repo := repository.NewWaitlistGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	contentCache := cache.New("", time.Minute) // disabled

	submitUC := ucwaitlist.NewSubmitApplication(repo, dispatcher, 5, 18, resolvableDomain)
	listUC := ucwaitlist.NewListEntries(repo)
	transitionUC := ucwaitlist.NewTransitionStatus(repo)
	exportUC := ucwaitlist.NewExportEntries(repo)

	publicHandler := NewPublicHandler(db, contentCache, submitUC)
	waitlistHandler := NewWaitlistHandler(db, listUC, transitionUC, exportUC)

	r := gin.New()
	r.POST("/api/public/waitlist", publicHandler.SubmitWaitlist)
	r.GET("/api/public/programs", publicHandler.ListPrograms)

	// Admin routes with a stubbed session.
	admin := r.Group("/api/me")
	admin.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextUserRole, "admin")
	})
	admin.GET("/waitlist", waitlistHandler.List)
	admin.GET("/waitlist/:id", waitlistHandler.Get)
	admin.PATCH("/waitlist/:id/approve", waitlistHandler.Approve)
	admin.PATCH("/waitlist/:id/contact", waitlistHandler.Contact)
	admin.GET("/waitlist/export", waitlistHandler.Export)

	return r, db
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"childName":           "Alex Smith",
		"dateOfBirth":         "2015-05-01",
		"gender":              "male",
		"phoneNumber":         "0412345678",
		"email":               "a@b.com",
		"suburbPostcode":      "Melbourne 3000",
		"cricketExperience":   "beginner",
		"parentGuardianName":  "John Smith",
		"parentGuardianPhone": "0423456789",
		"parentGuardianEmail": "j@b.com",
		"consentToContact":    true,
	}
}

func TestSubmitWaitlist_Created(t *testing.T) {
	r, db := newTestRouter(t)

	w := postJSON(r, "/api/public/waitlist", validPayload())
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.WaitlistEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.Reference)

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitWaitlist_StatusInPayloadIgnored(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := validPayload()
	payload["status"] = "approved"

	w := postJSON(r, "/api/public/waitlist", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.WaitlistEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestSubmitWaitlist_ValidationErrorsKeyedByField(t *testing.T) {
	r, db := newTestRouter(t)

	payload := validPayload()
	payload["consentToContact"] = false
	payload["email"] = "broken"

	w := postJSON(r, "/api/public/waitlist", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.NotEmpty(t, resp.Fields["consentToContact"])
	assert.NotEmpty(t, resp.Fields["email"])
	assert.NotContains(t, resp.Fields, "childName")

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestModeration_ApproveThenContact(t *testing.T) {
	r, db := newTestRouter(t)

	entry := models.WaitlistEntry{
		Reference: "ref-h",
		ChildName: "Alex Smith",
		Status:    string(domain.StatusPending),
	}
	assert.NoError(t, db.Create(&entry).Error)

	req := httptest.NewRequest(http.MethodPatch, "/api/me/waitlist/1/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/me/waitlist/1/contact", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.WaitlistEntry
	assert.NoError(t, db.First(&stored, entry.ID).Error)
	assert.Equal(t, string(domain.StatusContacted), stored.Status)

	var auditCount int64
	db.Model(&models.AuditLog{}).Where("entity = ?", "waitlist").Count(&auditCount)
	assert.EqualValues(t, 2, auditCount)
}

func TestModeration_InvalidTransitionRejected(t *testing.T) {
	r, db := newTestRouter(t)

	entry := models.WaitlistEntry{
		Reference: "ref-i",
		ChildName: "Sam Jones",
		Status:    string(domain.StatusPending),
	}
	assert.NoError(t, db.Create(&entry).Error)

	// pending -> contacted is only reachable through approved
	req := httptest.NewRequest(http.MethodPatch, "/api/me/waitlist/1/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_transition")

	var stored models.WaitlistEntry
	assert.NoError(t, db.First(&stored, entry.ID).Error)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestWaitlistExport_Download(t *testing.T) {
	r, db := newTestRouter(t)

	assert.NoError(t, db.Create(&models.WaitlistEntry{
		Reference: "ref-e",
		ChildName: "Alex Smith",
		Status:    string(domain.StatusPending),
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/me/waitlist/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "candidates-")
	assert.Equal(t, 2, bytes.Count(w.Body.Bytes(), []byte("\n")))
}

func TestListPrograms_FallsBackToDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)

	// Drop the table to simulate an unreachable content backend.
	assert.NoError(t, db.Migrator().DropTable(&models.Program{}))

	repo := repository.NewWaitlistGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	submitUC := ucwaitlist.NewSubmitApplication(repo, dispatcher, 5, 18, resolvableDomain)
	handler := NewPublicHandler(db, cache.New("", time.Minute), submitUC)

	r := gin.New()
	r.GET("/api/public/programs", handler.ListPrograms)

	req := httptest.NewRequest(http.MethodGet, "/api/public/programs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Read failures degrade, never break the page.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Junior Blasters")
}
