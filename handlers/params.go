package handlers

import (
	"MediRecords/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pagingParams reads the zero-based page and the page size from the query.
func pagingParams(c *gin.Context) (page, size int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		badRequest(c, "Invalid page parameter", err)
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(utils.DefaultPageSize)))
	if err != nil {
		badRequest(c, "Invalid size parameter", err)
		return 0, 0, false
	}
	return page, size, true
}

// searchParams flattens the query string, keeping the first value of each key.
func searchParams(c *gin.Context) map[string]string {
	query := c.Request.URL.Query()
	params := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
