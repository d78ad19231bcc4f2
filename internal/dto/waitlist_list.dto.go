package dto

import "time"

type WaitlistListDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`

	ChildName         string    `json:"child_name"`
	DateOfBirth       time.Time `json:"date_of_birth"`
	Gender            string    `json:"gender"`
	PhoneNumber       string    `json:"phone_number"`
	Email             string    `json:"email"`
	SuburbPostcode    string    `json:"suburb_postcode"`
	CricketExperience string    `json:"cricket_experience"`

	ParentGuardianName  string `json:"parent_guardian_name"`
	ParentGuardianPhone string `json:"parent_guardian_phone"`
	ParentGuardianEmail string `json:"parent_guardian_email"`

	ProgramName string `json:"program_name"`
	Status      string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
