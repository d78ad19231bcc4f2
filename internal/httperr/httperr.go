// Package httperr shapes every non-2xx JSON response the academy API
// returns: a stable machine code plus display copy. Clients branch on the
// code ("entry_not_found", "invalid_transition", "export_failed");
// the message is for humans and may be reworded freely.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
