package waitlist

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/models"
	"gorm.io/gorm"
)

func seedThree(t *testing.T, db *gorm.DB) (models.Program, []models.WaitlistEntry) {
	t.Helper()

	program := models.Program{Name: "Development Squad", Active: true}
	assert.NoError(t, db.Create(&program).Error)

	entries := []models.WaitlistEntry{
		{
			Reference:           "ref-a",
			ChildName:           "Alex Smith",
			ParentGuardianName:  "John Smith",
			Email:               "alex@example.com",
			ParentGuardianEmail: "john@example.com",
			Status:              string(domain.StatusPending),
			ProgramID:           &program.ID,
		},
		{
			Reference:           "ref-b",
			ChildName:           "Priya Patel",
			ParentGuardianName:  "Anita Patel",
			Email:               "priya@example.com",
			ParentGuardianEmail: "anita@example.com",
			Status:              string(domain.StatusApproved),
		},
		{
			Reference:           "ref-c",
			ChildName:           "Liam Nguyen",
			ParentGuardianName:  "Thanh Nguyen",
			Email:               "liam@example.com",
			ParentGuardianEmail: "thanh@example.com",
			Status:              string(domain.StatusPending),
		},
	}

	for i := range entries {
		entries[i] = seedEntry(t, db, entries[i])
	}

	return program, entries
}

func TestListEntries_Idempotent(t *testing.T) {
	repo, db := newTestRepo(t)
	seedThree(t, db)

	uc := NewListEntries(repo)

	first, err := uc.Execute(context.Background(), ListEntriesInput{})
	assert.NoError(t, err)
	second, err := uc.Execute(context.Background(), ListEntriesInput{})
	assert.NoError(t, err)

	ids := func(out *ListEntriesOutput) []uint {
		var got []uint
		for _, e := range out.Entries {
			got = append(got, e.ID)
		}
		return got
	}

	assert.EqualValues(t, 3, first.Total)
	assert.Equal(t, ids(first), ids(second))
}

func TestListEntries_SearchAndStatusFilter(t *testing.T) {
	repo, db := newTestRepo(t)
	seedThree(t, db)

	uc := NewListEntries(repo)

	// Substring search is case-insensitive and spans child name, guardian
	// name and emails.
	out, err := uc.Execute(context.Background(), ListEntriesInput{Query: "SMITH"})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, out.Total)
	assert.Equal(t, "Alex Smith", out.Entries[0].ChildName)

	out, err = uc.Execute(context.Background(), ListEntriesInput{Query: "anita@"})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, out.Total)
	assert.Equal(t, "Priya Patel", out.Entries[0].ChildName)

	out, err = uc.Execute(context.Background(), ListEntriesInput{Status: "pending"})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, out.Total)

	out, err = uc.Execute(context.Background(), ListEntriesInput{Status: "all"})
	assert.NoError(t, err)
	assert.EqualValues(t, 3, out.Total)
}

func TestListEntries_ResolvesProgramName(t *testing.T) {
	repo, db := newTestRepo(t)
	program, _ := seedThree(t, db)

	uc := NewListEntries(repo)

	out, err := uc.Execute(context.Background(), ListEntriesInput{Query: "alex"})
	assert.NoError(t, err)
	assert.Equal(t, program.Name, out.Entries[0].ProgramName)

	// No interest recorded.
	out, err = uc.Execute(context.Background(), ListEntriesInput{Query: "priya"})
	assert.NoError(t, err)
	assert.Equal(t, "", out.Entries[0].ProgramName)
}

func TestResolveProgramName_UnknownSentinel(t *testing.T) {
	missing := uint(42)
	entry := models.WaitlistEntry{ProgramID: &missing}
	assert.Equal(t, UnknownProgram, resolveProgramName(entry))
}

func TestListEntries_Pagination(t *testing.T) {
	repo, db := newTestRepo(t)
	seedThree(t, db)

	uc := NewListEntries(repo)

	out, err := uc.Execute(context.Background(), ListEntriesInput{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.EqualValues(t, 3, out.Total)
	assert.Len(t, out.Entries, 2)

	out, err = uc.Execute(context.Background(), ListEntriesInput{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, out.Entries, 1)
}

func TestExportEntries_HeaderPlusOneRowPerRecord(t *testing.T) {
	repo, db := newTestRepo(t)
	seedThree(t, db)

	uc := NewExportEntries(repo)
	uc.now = func() time.Time { return fixedNow }

	filename, body, err := uc.Execute(context.Background(), ExportEntriesInput{})
	assert.NoError(t, err)
	assert.Equal(t, "candidates-2024-01-01.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 4) // header + 3 rows
	assert.Equal(t, exportHeader, records[0])

	// Status column mirrors the stored status of every exported row.
	statusByChild := map[string]string{
		"Alex Smith":  "pending",
		"Priya Patel": "approved",
		"Liam Nguyen": "pending",
	}
	for _, row := range records[1:] {
		assert.Equal(t, statusByChild[row[0]], row[11], "child %s", row[0])
	}
}

func TestExportEntries_RespectsFilters(t *testing.T) {
	repo, db := newTestRepo(t)
	seedThree(t, db)

	uc := NewExportEntries(repo)
	uc.now = func() time.Time { return fixedNow }

	_, body, err := uc.Execute(context.Background(), ExportEntriesInput{Status: "approved"})
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Priya Patel", records[1][0])
}

func TestExportEntries_QuotesEveryField(t *testing.T) {
	repo, db := newTestRepo(t)
	seedEntry(t, db, models.WaitlistEntry{
		Reference: "ref-q",
		ChildName: `Alex "Ace" Smith`,
		Status:    string(domain.StatusPending),
	})

	uc := NewExportEntries(repo)
	uc.now = func() time.Time { return fixedNow }

	_, body, err := uc.Execute(context.Background(), ExportEntriesInput{})
	assert.NoError(t, err)

	lines := bytes.Split(bytes.TrimRight(body, "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, bytes.HasPrefix(line, []byte(`"`)))
		assert.True(t, bytes.HasSuffix(line, []byte(`"`)))
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, `Alex "Ace" Smith`, records[1][0])
}
