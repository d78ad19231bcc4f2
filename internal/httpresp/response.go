// Package httpresp holds the success envelopes shared by the admin content
// endpoints.
package httpresp

import "github.com/gin-gonic/gin"

// ListResponse wraps unpaginated collections (programs, coaches, locations,
// testimonials). The moderation queue paginates and carries its own shape.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
