package waitlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/apexcricket/academy-api/internal/audit"
	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/models"
	"github.com/apexcricket/academy-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SubmitApplicationInput struct {
	ChildName         string
	DateOfBirth       string // YYYY-MM-DD
	Gender            string
	PhoneNumber       string
	Email             string
	SuburbPostcode    string
	CricketExperience string

	ParentGuardianName  string
	ParentGuardianPhone string
	ParentGuardianEmail string

	ConsentToContact   bool
	ConsentToMarketing bool

	ProgramID *uint

	// Status is accepted from the wire but never honored: every new
	// application starts pending.
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitApplication struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	minAge int
	maxAge int

	// domainValid resolves the guardian's mail domain. A family whose
	// address cannot receive mail is a dead lead.
	domainValid func(email string) bool

	now func() time.Time
}

func NewSubmitApplication(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	minAge int,
	maxAge int,
	domainValid func(email string) bool,
) *SubmitApplication {
	return &SubmitApplication{
		repo:        repo,
		audit:       auditDispatcher,
		minAge:      minAge,
		maxAge:      maxAge,
		domainValid: domainValid,
		now:         time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitApplication) Execute(
	ctx context.Context,
	in SubmitApplicationInput,
) (*models.WaitlistEntry, error) {

	// --------------------------------------------------
	// 1. Validate every field, no short-circuit
	// --------------------------------------------------
	errs := validators.ValidateApplication(
		validators.ApplicationInput{
			ChildName:           in.ChildName,
			DateOfBirth:         in.DateOfBirth,
			Gender:              in.Gender,
			PhoneNumber:         in.PhoneNumber,
			Email:               in.Email,
			SuburbPostcode:      in.SuburbPostcode,
			CricketExperience:   in.CricketExperience,
			ParentGuardianName:  in.ParentGuardianName,
			ParentGuardianPhone: in.ParentGuardianPhone,
			ParentGuardianEmail: in.ParentGuardianEmail,
			ConsentToContact:    in.ConsentToContact,
		},
		uc.now(),
		uc.minAge,
		uc.maxAge,
	)
	// Only resolve the domain once the address is well-formed.
	if _, broken := errs["parentGuardianEmail"]; !broken && !uc.domainValid(in.ParentGuardianEmail) {
		errs["parentGuardianEmail"] = "Email domain cannot receive mail."
	}

	if len(errs) > 0 {
		return nil, &validators.ValidationError{Fields: errs}
	}

	dob, _ := time.Parse(validators.DateLayout, in.DateOfBirth)

	// --------------------------------------------------
	// 2. Program interest is optional, but if given it must exist
	// --------------------------------------------------
	if in.ProgramID != nil {
		if _, err := uc.repo.GetProgram(ctx, *in.ProgramID); err != nil {
			return nil, httperr.ErrBusiness("program_not_found")
		}
	}

	// --------------------------------------------------
	// 3. Create, status forced to pending
	// --------------------------------------------------
	entry := &models.WaitlistEntry{
		Reference: uuid.NewString(),

		ChildName:         in.ChildName,
		DateOfBirth:       dob,
		Gender:            in.Gender,
		PhoneNumber:       in.PhoneNumber,
		Email:             in.Email,
		SuburbPostcode:    in.SuburbPostcode,
		CricketExperience: in.CricketExperience,

		ParentGuardianName:  in.ParentGuardianName,
		ParentGuardianPhone: in.ParentGuardianPhone,
		ParentGuardianEmail: in.ParentGuardianEmail,

		ConsentToContact:   in.ConsentToContact,
		ConsentToMarketing: in.ConsentToMarketing,

		ProgramID: in.ProgramID,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit (non-critical, off the request path)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "waitlist_submitted",
		Entity:   "waitlist",
		EntityID: &entry.ID,
	})

	return entry, nil
}
