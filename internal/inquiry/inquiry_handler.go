package inquiry

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

const (
	MessageSent    = "Your message has been sent successfully! We will get back to you soon."
	MessageFailure = "An error occurred!"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("inquiry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inquiry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("inquiry request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit handles the public contact form.
func (h *Handler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Status(c, http.StatusBadRequest, response.FormStatus{
			Message: appErr.Message,
			Errors:  appErr.Details,
		})
		return
	}

	receipt, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			h.logger.Error("contact submission failed", zap.Error(err))
			response.Status(c, http.StatusInternalServerError, response.FormStatus{Message: MessageFailure})
			return
		}
		response.Status(c, httpErr.Status, response.FormStatus{
			Message: httpErr.Message,
			Errors:  httpErr.Details,
		})
		return
	}

	response.Status(c, http.StatusCreated, response.FormStatus{
		Success: true,
		Message: MessageSent,
		Data:    receipt,
	})
}

func (h *Handler) List(c *gin.Context) {
	page, pageSize := request.Pagination(c)
	filter := ListFilter{
		InquiryType: c.Query("inquiry_type"),
		Priority:    c.Query("priority"),
		IsResponded: request.QueryBool(c, "is_responded"),
		Search:      c.Query("q"),
		Page:        page,
		PageSize:    pageSize,
	}

	res, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.ContextUserIDValidated)
	res, err := h.service.Update(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
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
	res, err := h.service.BulkAction(c.Request.Context(), c.Param("action"), actorID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
