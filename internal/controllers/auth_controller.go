package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/DevConnect/devconnect_backend/internal/services"
	"github.com/DevConnect/devconnect_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse トークンレスポンス
type TokenResponse struct {
	Token string `json:"token"`
}

// Register ユーザー登録
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	_, token, err := c.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "User already exists"}}})
			return
		}
		log.Printf("ユーザー登録に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	_, token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "Invalid credentials") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		}
		log.Printf("ログインに失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetMe 現在のユーザー情報を取得（パスワードは含まれない）
func (c *AuthController) GetMe(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
