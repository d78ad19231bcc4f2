package models

import "time"

type WaitlistEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is a server-assigned code quoted back to the family.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ChildName         string    `gorm:"size:100;not null" json:"child_name"`
	DateOfBirth       time.Time `json:"date_of_birth"`
	Gender            string    `gorm:"size:10" json:"gender"`
	PhoneNumber       string    `gorm:"size:20" json:"phone_number"`
	Email             string    `gorm:"size:100" json:"email"`
	SuburbPostcode    string    `gorm:"size:100" json:"suburb_postcode"`
	CricketExperience string    `gorm:"size:20" json:"cricket_experience"`

	ParentGuardianName  string `gorm:"size:100;not null" json:"parent_guardian_name"`
	ParentGuardianPhone string `gorm:"size:20" json:"parent_guardian_phone"`
	ParentGuardianEmail string `gorm:"size:100" json:"parent_guardian_email"`

	ConsentToContact   bool `json:"consent_to_contact"`
	ConsentToMarketing bool `gorm:"default:false" json:"consent_to_marketing"`

	ProgramID *uint    `json:"program_id"`
	Program   *Program `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"program,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ApprovedAt  *time.Time `json:"approved_at"`
	ContactedAt *time.Time `json:"contacted_at"`
	RejectedAt  *time.Time `json:"rejected_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
