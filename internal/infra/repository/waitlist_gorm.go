package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/models"
)

type WaitlistGormRepository struct {
	db *gorm.DB
}

func NewWaitlistGormRepository(db *gorm.DB) *WaitlistGormRepository {
	return &WaitlistGormRepository{db: db}
}

// --------------------------------------------------
// Entry (intake)
// --------------------------------------------------

func (r *WaitlistGormRepository) CreateEntry(
	ctx context.Context,
	entry *models.WaitlistEntry,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// --------------------------------------------------
// Entry (moderation)
// --------------------------------------------------

func (r *WaitlistGormRepository) GetEntry(
	ctx context.Context,
	id uint,
) (*models.WaitlistEntry, error) {

	var entry models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Preload("Program").
		First(&entry, id).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *WaitlistGormRepository) ListEntries(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.WaitlistEntry, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.WaitlistEntry{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.Query != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		q = q.Where(
			"LOWER(child_name) LIKE ? OR LOWER(parent_guardian_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(parent_guardian_email) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Preload("Program").Order("created_at DESC")

	if filter.Limit > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		q = q.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var entries []models.WaitlistEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// TransitionWithAudit keeps the status write and the audit row in a single
// transaction so a partial failure cannot desynchronize the trail from the
// record.
func (r *WaitlistGormRepository) TransitionWithAudit(
	ctx context.Context,
	entry *models.WaitlistEntry,
	auditLog *models.AuditLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(entry).Error; err != nil {
			return err
		}
		return tx.Create(auditLog).Error
	})
}

// --------------------------------------------------
// Program
// --------------------------------------------------

func (r *WaitlistGormRepository) GetProgram(
	ctx context.Context,
	id uint,
) (*models.Program, error) {

	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return nil, err
	}

	return &program, nil
}

// Compile-time check
var _ domain.Repository = (*WaitlistGormRepository)(nil)
