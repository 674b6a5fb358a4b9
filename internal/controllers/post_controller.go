package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/services"
	"github.com/DevConnect/devconnect_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// PostRequest 投稿作成リクエスト
type PostRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create 新しい投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	post, err := c.postService.Create(u.ID, req.Text)
	if err != nil {
		log.Printf("投稿の作成に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// List すべての投稿を取得
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.postService.ListAll()
	if err != nil {
		log.Printf("投稿一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetByID IDで投稿を取得
func (c *PostController) GetByID(ctx *gin.Context) {
	// IDを解析（不正なIDも「見つからない」扱い）
	postID, err := strconv.ParseUint(ctx.Param("post_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Post not found"})
		return
	}

	post, err := c.postService.GetByID(uint(postID))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Post not found"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete 投稿を削除（投稿者本人のみ）
func (c *PostController) Delete(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	// IDを解析（不正なIDも「見つからない」扱い）
	postID, err := strconv.ParseUint(ctx.Param("post_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Post not found"})
		return
	}

	if err := c.postService.Delete(uint(postID), u.ID); err != nil {
		if strings.Contains(err.Error(), "Not authorized") {
			ctx.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("投稿の削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "Post deleted successfully."})
}
