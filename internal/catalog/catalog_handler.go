package catalog

import (
	"net/http"

	"nupo-consult/internal/middleware"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/request"
	"nupo-consult/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewHandler(catalog Catalog, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{catalog: catalog, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("catalog request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListCategories(c *gin.Context) {
	page, pageSize := request.Pagination(c)
	filter := CategoryFilter{
		IsActive: request.QueryBool(c, "is_active"),
		Search:   c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	}

	res, total, err := h.catalog.ListCategories(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) GetCategory(c *gin.Context) {
	res, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListServices(c *gin.Context) {
	page, pageSize := request.Pagination(c)
	filter := ServiceFilter{
		CategoryID: c.Query("category_id"),
		IsActive:   request.QueryBool(c, "is_active"),
		IsFeatured: request.QueryBool(c, "is_featured"),
		Search:     c.Query("q"),
		Page:       page,
		PageSize:   pageSize,
	}

	res, total, err := h.catalog.ListServices(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) GetService(c *gin.Context) {
	res, err := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.catalog.CreateService(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.catalog.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) BulkAction(c *gin.Context) {
	var req bulk.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.ContextUserIDValidated)
	res, err := h.catalog.BulkAction(c.Request.Context(), c.Param("action"), actorID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
