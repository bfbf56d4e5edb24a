package handlers

import "github.com/gin-gonic/gin"

// pageLimit returns the bound limit, or pageSize when the client sent none.
func pageLimit(c *gin.Context, bound, pageSize int) int {
	if _, ok := c.GetQuery("limit"); ok || pageSize <= 0 {
		return bound
	}
	return pageSize
}
