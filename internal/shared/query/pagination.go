package query

import (
	"strconv"

	"safety-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const DefaultLimit = 100

// Pagination is the validated skip/limit window for list endpoints.
type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination reads skip and limit from the query string and rejects
// out-of-range values before any service code runs. maxLimit is the
// per-resource cap.
func ParsePagination(c *gin.Context, maxLimit int) (Pagination, error) {
	p := Pagination{Skip: 0, Limit: DefaultLimit}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return Pagination{}, apperror.InvalidField("Skip")
		}
		p.Skip = skip
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return Pagination{}, apperror.OutOfRangeField("Limit")
		}
		p.Limit = limit
	}

	return p, nil
}
