package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/utils/apperrors"
)

// GetPaginationFromQuery parses limit/offset/order query parameters.
func GetPaginationFromQuery(reqCtx *gin.Context) (*query.Pagination, error) {
	limitStr := reqCtx.DefaultQuery("limit", "20")
	offsetStr := reqCtx.Query("offset")
	order := reqCtx.DefaultQuery("order", "desc")

	var limit *int
	if limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil || limitInt < 1 {
			return nil, apperrors.NewError(reqCtx.Request.Context(), apperrors.LayerHandler, apperrors.ErrorTypeValidation, "invalid limit number", nil, "04aecd25-bd32-428b-864d-aeb7ecb06e53")
		}
		limit = &limitInt
	}

	var offset *int
	if offsetStr != "" {
		offsetInt, err := strconv.Atoi(offsetStr)
		if err != nil || offsetInt < 0 {
			return nil, apperrors.NewError(reqCtx.Request.Context(), apperrors.LayerHandler, apperrors.ErrorTypeValidation, "invalid offset number", nil, "a3e0ea22-afc6-45df-b686-a194868af415")
		}
		offset = &offsetInt
	}

	if order != "asc" && order != "desc" {
		return nil, apperrors.NewError(reqCtx.Request.Context(), apperrors.LayerHandler, apperrors.ErrorTypeValidation, "invalid order", nil, "c3598493-7770-4e94-b44f-f571aabf2bdd")
	}

	return &query.Pagination{
		Limit:  limit,
		Offset: offset,
		Order:  order,
	}, nil
}
