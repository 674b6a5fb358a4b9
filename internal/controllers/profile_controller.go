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

// ProfileController プロフィールに関するコントローラー
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController ProfileControllerを作成
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// ProfileRequest プロフィール作成・更新リクエスト
// skillsはカンマ区切りの文字列で受け取る
type ProfileRequest struct {
	Company        string `json:"company"`
	Status         string `json:"status" binding:"required"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Skills         string `json:"skills" binding:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
	Facebook       string `json:"facebook"`
}

// ExperienceRequest 職歴追加リクエスト
type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest 学歴追加リクエスト
type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// GetMe 自分のプロフィールを取得
func (c *ProfileController) GetMe(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	profile, err := c.profileService.GetByUserID(u.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found."})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// List すべてのプロフィールを取得
func (c *ProfileController) List(ctx *gin.Context) {
	profiles, err := c.profileService.ListAll()
	if err != nil {
		log.Printf("プロフィール一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// GetByUserID 指定したユーザーのプロフィールを取得
func (c *ProfileController) GetByUserID(ctx *gin.Context) {
	// IDを解析（不正なIDも「見つからない」扱い）
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found."})
		return
	}

	profile, err := c.profileService.GetByUserID(uint(userID))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found."})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Upsert 自分のプロフィールを作成または更新
func (c *ProfileController) Upsert(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	profile, err := c.profileService.Upsert(u.ID, services.ProfileInput{
		Company:        req.Company,
		Status:         req.Status,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
		Facebook:       req.Facebook,
	})
	if err != nil {
		log.Printf("プロフィールの保存に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteAccount 自分のプロフィールとアカウントを削除
func (c *ProfileController) DeleteAccount(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	if err := c.profileService.DeleteAccount(u.ID); err != nil {
		log.Printf("アカウントの削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "User and profile deleted successfully."})
}

// AddExperience 職歴を追加
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	var req ExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	profile, err := c.profileService.AddExperience(u.ID, services.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("職歴の追加に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteExperience 職歴を削除
func (c *ProfileController) DeleteExperience(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	// IDを解析（不正なIDも「見つからない」扱い）
	experienceID, err := strconv.ParseUint(ctx.Param("experience_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Experience not found."})
		return
	}

	profile, err := c.profileService.DeleteExperience(u.ID, uint(experienceID))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("職歴の削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// AddEducation 学歴を追加
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	var req EducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors(err)})
		return
	}

	profile, err := c.profileService.AddEducation(u.ID, services.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("学歴の追加に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteEducation 学歴を削除
func (c *ProfileController) DeleteEducation(ctx *gin.Context) {
	// コンテキストからユーザーを取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token must be present to access this resource."})
		return
	}
	u := user.(*models.User)

	// IDを解析（不正なIDも「見つからない」扱い）
	educationID, err := strconv.ParseUint(ctx.Param("education_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Education not found."})
		return
	}

	profile, err := c.profileService.DeleteEducation(u.ID, uint(educationID))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("学歴の削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
