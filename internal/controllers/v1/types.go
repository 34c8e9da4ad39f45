package v1

import (
	"github.com/budget-rule/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIYear struct {
	Year int `uri:"year" binding:"required,min=1900,max=9999" example:"2025"` // The year
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// pathID parses the id path parameter.
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, err
	}

	if id == uuid.Nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return id, nil
}
