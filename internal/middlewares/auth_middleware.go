package middlewares

import (
	"net/http"

	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 認証ミドルウェア
// x-auth-tokenヘッダーのトークンを検証し、認証済みユーザーをコンテキストに保存する
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// x-auth-tokenヘッダーを取得
		tokenString := ctx.GetHeader("x-auth-token")

		// ヘッダーがない場合は認証エラー
		if tokenString == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
			ctx.Abort()
			return
		}

		// ユーザーを取得
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token."})
			ctx.Abort()
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set("user", user)
		ctx.Next()
	}
}
