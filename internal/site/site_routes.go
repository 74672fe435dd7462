package site

import "github.com/gin-gonic/gin"

func RegisterRoutes(public *gin.RouterGroup, handler *Handler) {
	public.GET("/", handler.Home)
	public.GET("/services", handler.Services)
	public.GET("/services/:slug", handler.ServiceDetail)
	public.GET("/projects", handler.Projects)
	public.GET("/projects/:slug", handler.ProjectDetail)
	public.GET("/news", handler.News)
	public.GET("/news/:slug", handler.NewsDetail)
	public.GET("/team", handler.Team)
	public.GET("/about", handler.About)
	public.GET("/partners", handler.Partners)
	public.GET("/contact", handler.Contact)
}
