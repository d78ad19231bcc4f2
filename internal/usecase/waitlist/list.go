package waitlist

import (
	"context"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/dto"
	"github.com/apexcricket/academy-api/internal/models"
)

// UnknownProgram is returned when an entry references a program that no
// longer resolves.
const UnknownProgram = "Unknown Program"

type ListEntriesInput struct {
	Query  string
	Status string
	Page   int
	Limit  int
}

type ListEntriesOutput struct {
	Entries []dto.WaitlistListDTO
	Total   int64
	Page    int
	Limit   int
}

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

func (uc *ListEntries) Execute(
	ctx context.Context,
	in ListEntriesInput,
) (*ListEntriesOutput, error) {

	page := in.Page
	if page <= 0 {
		page = 1
	}

	limit := in.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries, total, err := uc.repo.ListEntries(ctx, domain.ListFilter{
		Query:  in.Query,
		Status: in.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.WaitlistListDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toListDTO(e))
	}

	return &ListEntriesOutput{
		Entries: out,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func toListDTO(e models.WaitlistEntry) dto.WaitlistListDTO {
	return dto.WaitlistListDTO{
		ID:        e.ID,
		Reference: e.Reference,

		ChildName:         e.ChildName,
		DateOfBirth:       e.DateOfBirth,
		Gender:            e.Gender,
		PhoneNumber:       e.PhoneNumber,
		Email:             e.Email,
		SuburbPostcode:    e.SuburbPostcode,
		CricketExperience: e.CricketExperience,

		ParentGuardianName:  e.ParentGuardianName,
		ParentGuardianPhone: e.ParentGuardianPhone,
		ParentGuardianEmail: e.ParentGuardianEmail,

		ProgramName: resolveProgramName(e),
		Status:      e.Status,

		CreatedAt: e.CreatedAt,
	}
}

func resolveProgramName(e models.WaitlistEntry) string {
	if e.ProgramID == nil {
		return ""
	}
	if e.Program == nil {
		return UnknownProgram
	}
	return e.Program.Name
}
