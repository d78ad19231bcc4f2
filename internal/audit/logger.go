package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/models"
)

// StatusChange is the metadata payload written for every moderation
// transition: the prior and new status snapshots, in that order.
type StatusChange struct {
	Before map[string]string `json:"before"`
	After  map[string]string `json:"after"`
}

func StatusChangeMetadata(before, after string) string {
	b, _ := json.Marshal(StatusChange{
		Before: map[string]string{"status": before},
		After:  map[string]string{"status": after},
	})
	return string(b)
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
