package waitlist

import (
	"bytes"
	"context"
	"strings"
	"time"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
)

// CSV export of the currently filtered set: header row first, every value
// double-quoted, fixed column order. encoding/csv only quotes on demand,
// and the admin spreadsheet import expects quotes on every field, so the
// rows are assembled by hand.

var exportHeader = []string{
	"Child Name",
	"Date of Birth",
	"Gender",
	"Phone",
	"Email",
	"Location",
	"Experience",
	"Guardian Name",
	"Guardian Phone",
	"Guardian Email",
	"Program",
	"Status",
	"Created",
}

type ExportEntriesInput struct {
	Query  string
	Status string
}

type ExportEntries struct {
	repo domain.Repository

	now func() time.Time
}

func NewExportEntries(repo domain.Repository) *ExportEntries {
	return &ExportEntries{
		repo: repo,
		now:  time.Now,
	}
}

// Execute returns the filename and the file body. Pagination is ignored
// on purpose: the export always covers the whole filtered set.
func (uc *ExportEntries) Execute(
	ctx context.Context,
	in ExportEntriesInput,
) (string, []byte, error) {

	entries, _, err := uc.repo.ListEntries(ctx, domain.ListFilter{
		Query:  in.Query,
		Status: in.Status,
	})
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	writeRow(&buf, exportHeader)

	for _, e := range entries {
		writeRow(&buf, []string{
			e.ChildName,
			e.DateOfBirth.Format("2006-01-02"),
			e.Gender,
			e.PhoneNumber,
			e.Email,
			e.SuburbPostcode,
			e.CricketExperience,
			e.ParentGuardianName,
			e.ParentGuardianPhone,
			e.ParentGuardianEmail,
			resolveProgramName(e),
			e.Status,
			e.CreatedAt.Format("2006-01-02"),
		})
	}

	filename := "candidates-" + uc.now().Format("2006-01-02") + ".csv"
	return filename, buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
