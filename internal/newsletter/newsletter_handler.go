package newsletter

import (
	"errors"
	"net/http"

	"nupo-consult/internal/middleware"
	newslettererrors "nupo-consult/internal/newsletter/errors"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/request"
	"nupo-consult/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const messageFailure = "An error occurred!"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("newsletter.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("newsletter.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("newsletter request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Status(c, http.StatusBadRequest, response.FormStatus{Message: newslettererrors.ErrEmailRequired.Message})
		return
	}

	res, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusBadRequest {
			response.Status(c, http.StatusBadRequest, response.FormStatus{Message: appErr.Message})
			return
		}
		h.logger.Error("newsletter subscribe failed", zap.Error(err))
		response.Status(c, http.StatusInternalServerError, response.FormStatus{Message: messageFailure})
		return
	}

	response.Status(c, http.StatusOK, response.FormStatus{
		Success: res.Outcome.Success(),
		Message: res.Outcome.Message(),
		Outcome: string(res.Outcome),
	})
}

// MethodNotAllowed answers every non-POST request on the subscribe path.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	response.Status(c, http.StatusMethodNotAllowed, response.FormStatus{
		Message: newslettererrors.ErrMethodNotAllowed.Message,
	})
}

func (h *Handler) List(c *gin.Context) {
	page, pageSize := request.Pagination(c)
	filter := ListFilter{
		IsActive: request.QueryBool(c, "is_active"),
		Search:   c.Query("q"),
		Page:     page,
		PageSize: pageSize,
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

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
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
