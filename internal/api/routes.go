package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"adResume/internal/api/middleware"
	"adResume/internal/auth"
	"adResume/internal/document"
	"adResume/internal/remotestore"
	"adResume/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
// 文档读写对访客开放（可选鉴权），全量同步与资产接口要求登录。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	store *remotestore.Store,
	sessions *document.Registry,
	authService *auth.AuthService,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	clamdAddr string,
	allowedOrigins []string,
) {
	authHandler := NewAuthHandler(db, authService, store, sessions, redisClient, logger)
	documentHandler := NewDocumentHandler(sessions, redisClient, logger)
	assetHandler := NewAssetHandler(storageClient, store, logger, clamdAddr)
	wsHandler := NewWsHandler(redisClient, authService, logger, allowedOrigins)

	authMiddleware := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}

		documentGroup := v1.Group("/document")
		documentGroup.Use(optionalAuth)
		{
			documentGroup.GET("", documentHandler.GetDocument)
			documentGroup.POST("/reload", documentHandler.ReloadDocument)
			documentGroup.PUT("/profile", documentHandler.UpdateProfile)
			documentGroup.PUT("/stats", documentHandler.UpdateStats)
			documentGroup.PUT("/experience", documentHandler.UpdateExperience)
			documentGroup.PUT("/education", documentHandler.UpdateEducation)
			documentGroup.PUT("/skills", documentHandler.UpdateSkills)
			documentGroup.PUT("/languages", documentHandler.UpdateLanguages)
			documentGroup.POST("/reset", documentHandler.ResetDocument)
			documentGroup.POST("/sync", authMiddleware, documentHandler.SyncAll)
		}

		assetGroup := v1.Group("/assets")
		assetGroup.Use(authMiddleware)
		{
			assetGroup.POST("/avatar", assetHandler.UploadAvatar)
			assetGroup.GET("/avatar", assetHandler.GetAvatarURL)
		}
	}
}
