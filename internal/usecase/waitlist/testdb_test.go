package waitlist

import (
	"testing"
	"time"

	"github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/apexcricket/academy-api/internal/audit"
	dbpkg "github.com/apexcricket/academy-api/internal/db"
	"github.com/apexcricket/academy-api/internal/infra/repository"
	"github.com/apexcricket/academy-api/internal/models"
)

var fixedNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// In-memory SQLite is per-connection; keep the pool at one.
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

func newTestRepo(t *testing.T) (*repository.WaitlistGormRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return repository.NewWaitlistGormRepository(db), db
}

func validSubmitInput() SubmitApplicationInput {
	return SubmitApplicationInput{
		ChildName:           "Alex Smith",
		DateOfBirth:         "2015-05-01",
		Gender:              "male",
		PhoneNumber:         "0412345678",
		Email:               "a@b.com",
		SuburbPostcode:      "Melbourne 3000",
		CricketExperience:   "beginner",
		ParentGuardianName:  "John Smith",
		ParentGuardianPhone: "0423456789",
		ParentGuardianEmail: "j@b.com",
		ConsentToContact:    true,
	}
}

// resolvableDomain keeps tests off the network.
func resolvableDomain(string) bool { return true }

func newSubmitUC(repo *repository.WaitlistGormRepository, db *gorm.DB) *SubmitApplication {
	uc := NewSubmitApplication(repo, audit.NewDispatcher(audit.New(db)), 5, 18, resolvableDomain)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func seedEntry(t *testing.T, db *gorm.DB, entry models.WaitlistEntry) models.WaitlistEntry {
	t.Helper()
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return entry
}
