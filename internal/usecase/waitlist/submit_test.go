package waitlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/models"
	"github.com/apexcricket/academy-api/internal/validators"
)

func TestSubmitApplication_CreatesPendingEntry(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	entry, err := uc.Execute(context.Background(), validSubmitInput())
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.NotEmpty(t, entry.Reference)
	assert.Equal(t, string(domain.StatusPending), entry.Status)
	assert.Equal(t, "Alex Smith", entry.ChildName)
	assert.Equal(t, 8, validators.AgeAt(entry.DateOfBirth, fixedNow))

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitApplication_ForcesPendingStatus(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	in := validSubmitInput()
	in.Status = "approved" // caller-supplied status is never honored

	entry, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), entry.Status)

	var stored models.WaitlistEntry
	assert.NoError(t, db.First(&stored, entry.ID).Error)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestSubmitApplication_WithoutConsentCreatesNothing(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	in := validSubmitInput()
	in.ConsentToContact = false

	_, err := uc.Execute(context.Background(), in)

	var ve *validators.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Fields["consentToContact"])

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitApplication_UnresolvableGuardianDomainCreatesNothing(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)
	uc.domainValid = func(email string) bool { return false }

	_, err := uc.Execute(context.Background(), validSubmitInput())

	var ve *validators.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Fields["parentGuardianEmail"])

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitApplication_DomainNotResolvedForMalformedGuardianEmail(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	resolved := false
	uc.domainValid = func(email string) bool {
		resolved = true
		return true
	}

	in := validSubmitInput()
	in.ParentGuardianEmail = "not-an-address"

	_, err := uc.Execute(context.Background(), in)

	var ve *validators.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Fields["parentGuardianEmail"])
	assert.False(t, resolved)
}

func TestSubmitApplication_ValidationCoversAllBrokenFields(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	in := validSubmitInput()
	in.ChildName = "A"
	in.Email = "nope"
	in.DateOfBirth = "2023-01-01" // age 1

	_, err := uc.Execute(context.Background(), in)

	var ve *validators.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "childName")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "dateOfBirth")
	assert.NotContains(t, ve.Fields, "gender")
}

func TestSubmitApplication_ProgramInterest(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	program := models.Program{Name: "Junior Blasters", Active: true}
	assert.NoError(t, db.Create(&program).Error)

	in := validSubmitInput()
	in.ProgramID = &program.ID

	entry, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, program.ID, *entry.ProgramID)

	// An interest in a program that does not exist is rejected.
	missing := program.ID + 100
	in = validSubmitInput()
	in.ProgramID = &missing

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "program_not_found"))
}

func TestSubmitApplication_DuplicatesAllowed(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := newSubmitUC(repo, db)

	_, err := uc.Execute(context.Background(), validSubmitInput())
	assert.NoError(t, err)
	_, err = uc.Execute(context.Background(), validSubmitInput())
	assert.NoError(t, err)

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.EqualValues(t, 2, count)
}
