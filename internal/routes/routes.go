package routes

import (
	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/controllers"
	"github.com/DevConnect/devconnect_backend/internal/middlewares"
	"github.com/DevConnect/devconnect_backend/internal/repository"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(profileRepo)
	postService := services.NewPostService(postRepo, userRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService)
	postController := controllers.NewPostController(postService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// ユーザー登録（認証不要）
		api.POST("/users", authController.Register)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("", authController.Login)
			auth.GET("", authMiddleware, authController.GetMe)
		}

		// プロフィールルート（すべて認証が必要）
		profile := api.Group("/profile", authMiddleware)
		{
			profile.GET("/me", profileController.GetMe)
			profile.GET("", profileController.List)
			profile.GET("/users/:user_id", profileController.GetByUserID)
			profile.POST("", profileController.Upsert)
			profile.DELETE("", profileController.DeleteAccount)
			profile.PUT("/experience", profileController.AddExperience)
			profile.DELETE("/experience/:experience_id", profileController.DeleteExperience)
			profile.PUT("/education", profileController.AddEducation)
			profile.DELETE("/education/:education_id", profileController.DeleteEducation)
		}

		// 投稿ルート（すべて認証が必要）
		posts := api.Group("/posts", authMiddleware)
		{
			posts.POST("", postController.Create)
			posts.GET("", postController.List)
			posts.GET("/:post_id", postController.GetByID)
			posts.DELETE("/:post_id", postController.Delete)
		}
	}

	return r
}
