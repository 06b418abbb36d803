package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"microblog/internal/config"
	"microblog/internal/handlers"
	"microblog/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, log *zap.Logger) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	userSvc := service.NewUserService(db, log)
	postSvc := service.NewPostService(db, log)

	userHandler := handlers.NewUserHandler(userSvc)
	postHandler := handlers.NewPostHandler(postSvc)
	viewHandler := handlers.NewViewHandler(userSvc, postSvc)

	registerUserRoutes(r, userHandler)
	registerPostRoutes(r, postHandler)
	registerViewRoutes(r, viewHandler)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerUserRoutes(r *gin.Engine, h *handlers.UserHandler) {
	// The legacy client issues user creation over GET as well as POST.
	r.GET("/create/user", h.Create)
	r.POST("/create/user", h.Create)
	r.POST("/delete/user", h.Delete)
}

func registerPostRoutes(r *gin.Engine, h *handlers.PostHandler) {
	r.POST("/create/post", h.Create)
	r.POST("/update/post/:id", h.Update)
	r.POST("/delete/post/:id", h.Delete)
}

func registerViewRoutes(r *gin.Engine, h *handlers.ViewHandler) {
	r.GET("/", h.Home)
	r.GET("/view/users", h.Users)
	r.GET("/view/user/:username", h.User)
	r.GET("/view/post/:id", h.Post)
}
