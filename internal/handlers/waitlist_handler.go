package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/middleware"
	"github.com/apexcricket/academy-api/internal/models"
	ucwaitlist "github.com/apexcricket/academy-api/internal/usecase/waitlist"
)

// ======================================================
// HANDLER
// ======================================================

type WaitlistHandler struct {
	db         *gorm.DB
	list       *ucwaitlist.ListEntries
	transition *ucwaitlist.TransitionStatus
	export     *ucwaitlist.ExportEntries
}

func NewWaitlistHandler(
	db *gorm.DB,
	list *ucwaitlist.ListEntries,
	transition *ucwaitlist.TransitionStatus,
	export *ucwaitlist.ExportEntries,
) *WaitlistHandler {
	return &WaitlistHandler{
		db:         db,
		list:       list,
		transition: transition,
		export:     export,
	}
}

// ======================================================
// LIST / DETAIL
// ======================================================

func (h *WaitlistHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := h.list.Execute(
		c.Request.Context(),
		ucwaitlist.ListEntriesInput{
			Query:  c.Query("query"),
			Status: c.Query("status"),
			Page:   page,
			Limit:  limit,
		},
	)
	if err != nil {
		httperr.Internal(c, "waitlist_list_failed", "Could not load waitlist entries.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    out.Page,
		"limit":   out.Limit,
		"total":   out.Total,
		"entries": out.Entries,
	})
}

func (h *WaitlistHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid waitlist entry id.")
		return
	}

	var entry models.WaitlistEntry
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Program").
		First(&entry, uint(id)).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "entry_not_found", "Waitlist entry not found.")
			return
		}
		httperr.Internal(c, "waitlist_get_failed", "Could not load the waitlist entry.")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *WaitlistHandler) Approve(c *gin.Context) {
	h.doTransition(c, domain.StatusApproved)
}

func (h *WaitlistHandler) Reject(c *gin.Context) {
	h.doTransition(c, domain.StatusRejected)
}

func (h *WaitlistHandler) Contact(c *gin.Context) {
	h.doTransition(c, domain.StatusContacted)
}

func (h *WaitlistHandler) doTransition(c *gin.Context, to domain.Status) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid waitlist entry id.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	entry, err := h.transition.Execute(
		c.Request.Context(),
		uint(id),
		&userID,
		to,
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "entry_not_found"):
			httperr.NotFound(c, "entry_not_found", "Waitlist entry not found.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition", "That status change is not allowed from the entry's current status.")
		default:
			httperr.Internal(c, "transition_failed", "Could not update the entry status.")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ======================================================
// EXPORT
// ======================================================

func (h *WaitlistHandler) Export(c *gin.Context) {
	filename, body, err := h.export.Execute(
		c.Request.Context(),
		ucwaitlist.ExportEntriesInput{
			Query:  c.Query("query"),
			Status: c.Query("status"),
		},
	)
	if err != nil {
		httperr.Internal(c, "export_failed", "Could not export waitlist entries.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
