package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	// Public routes
	blog := e.Group("/v1/blog")
	blog.GET("", blogHandler.GetPosts)
	blog.GET("/:id", blogHandler.GetPost)
	blog.GET("/slug/:slug", blogHandler.GetPostBySlug)

	// Admin routes
	admin := e.Group("/v1/admin/blog")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", blogHandler.CreatePost)
	admin.PUT("/:id", blogHandler.UpdatePost)
	admin.DELETE("/:id", blogHandler.DeletePost)
}
