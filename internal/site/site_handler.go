package site

import (
	"net/http"

	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/request"
	"nupo-consult/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("site.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("site.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("site request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func render[T any](h *Handler, c *gin.Context, page T, err error) {
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page, nil)
}

func (h *Handler) Home(c *gin.Context) {
	page, err := h.service.Home(c.Request.Context())
	render(h, c, page, err)
}

func (h *Handler) Services(c *gin.Context) {
	page, err := h.service.Services(c.Request.Context(), c.Query("search"))
	render(h, c, page, err)
}

func (h *Handler) ServiceDetail(c *gin.Context) {
	page, err := h.service.ServiceDetail(c.Request.Context(), c.Param("slug"))
	render(h, c, page, err)
}

func (h *Handler) Projects(c *gin.Context) {
	page, err := h.service.Projects(c.Request.Context(), c.Query("type"), c.Query("status"), request.PageParam(c))
	render(h, c, page, err)
}

func (h *Handler) ProjectDetail(c *gin.Context) {
	page, err := h.service.ProjectDetail(c.Request.Context(), c.Param("slug"))
	render(h, c, page, err)
}

func (h *Handler) News(c *gin.Context) {
	page, err := h.service.News(c.Request.Context(), c.Query("type"), request.PageParam(c))
	render(h, c, page, err)
}

func (h *Handler) NewsDetail(c *gin.Context) {
	page, err := h.service.NewsDetail(c.Request.Context(), c.Param("slug"))
	render(h, c, page, err)
}

func (h *Handler) Team(c *gin.Context) {
	page, err := h.service.Team(c.Request.Context(), request.QueryInt(c, "limit", 0))
	render(h, c, page, err)
}

func (h *Handler) About(c *gin.Context) {
	page, err := h.service.About(c.Request.Context())
	render(h, c, page, err)
}

func (h *Handler) Partners(c *gin.Context) {
	page, err := h.service.Partners(c.Request.Context())
	render(h, c, page, err)
}

func (h *Handler) Contact(c *gin.Context) {
	page, err := h.service.Contact(c.Request.Context())
	render(h, c, page, err)
}
