package services

import (
	"errors"
	"strings"

	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
)

// ProfileService プロフィールに関するサービスインターフェース
type ProfileService interface {
	GetByUserID(userID uint) (*models.Profile, error)
	ListAll() ([]models.Profile, error)
	Upsert(userID uint, input ProfileInput) (*models.Profile, error)
	DeleteAccount(userID uint) error
	AddExperience(userID uint, input ExperienceInput) (*models.Profile, error)
	DeleteExperience(userID, experienceID uint) (*models.Profile, error)
	AddEducation(userID uint, input EducationInput) (*models.Profile, error)
	DeleteEducation(userID, educationID uint) (*models.Profile, error)
}

// ProfileInput プロフィール作成・更新の入力
type ProfileInput struct {
	Company        string
	Status         string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Linkedin       string
	Instagram      string
	Facebook       string
}

// ExperienceInput 職歴追加の入力
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput 学歴追加の入力
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// profileService ProfileServiceの実装
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService ProfileServiceを作成
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
	}
}

// ParseSkills カンマ区切りのスキル文字列を順序を保ったリストに変換
func ParseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetByUserID ユーザーIDでプロフィールを取得
func (s *profileService) GetByUserID(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("Profile not found.")
	}
	return profile, nil
}

// ListAll すべてのプロフィールを取得
func (s *profileService) ListAll() ([]models.Profile, error) {
	return s.profileRepo.ListAll()
}

// Upsert プロフィールを作成または部分更新
// 省略された任意フィールドは既存の値を保持する（nullで上書きしない）
func (s *profileService) Upsert(userID uint, input ProfileInput) (*models.Profile, error) {
	social := models.SocialLinks{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Linkedin:  input.Linkedin,
		Instagram: input.Instagram,
		Facebook:  input.Facebook,
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		// プロフィールがまだ無い場合は新規作成
		profile = &models.Profile{
			UserID:         userID,
			Company:        input.Company,
			Status:         input.Status,
			Website:        input.Website,
			Location:       input.Location,
			Bio:            input.Bio,
			GithubUsername: input.GithubUsername,
			Skills:         ParseSkills(input.Skills),
			Social:         social,
		}
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, err
		}
		return s.profileRepo.FindByUserID(userID)
	}

	// 必須フィールドは常に更新
	profile.Status = input.Status
	profile.Skills = ParseSkills(input.Skills)

	// 任意フィールドは指定された場合のみ上書き
	if input.Company != "" {
		profile.Company = input.Company
	}
	if input.Website != "" {
		profile.Website = input.Website
	}
	if input.Location != "" {
		profile.Location = input.Location
	}
	if input.Bio != "" {
		profile.Bio = input.Bio
	}
	if input.GithubUsername != "" {
		profile.GithubUsername = input.GithubUsername
	}

	// SNSリンクはまとめて置き換える
	profile.Social = social

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteAccount プロフィールと所有ユーザーを削除
func (s *profileService) DeleteAccount(userID uint) error {
	return s.profileRepo.DeleteWithUser(userID)
}

// AddExperience 職歴を追加（リストの先頭に並ぶ）
func (s *profileService) AddExperience(userID uint, input ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("Profile not found for this user.")
	}

	experience := &models.Experience{
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}

	if err := s.profileRepo.AddExperience(experience); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteExperience 職歴を削除
func (s *profileService) DeleteExperience(userID, experienceID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("Profile not found for this user.")
	}

	rows, err := s.profileRepo.DeleteExperience(profile.ID, experienceID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.New("Experience not found.")
	}

	return s.profileRepo.FindByUserID(userID)
}

// AddEducation 学歴を追加（リストの先頭に並ぶ）
func (s *profileService) AddEducation(userID uint, input EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("Profile not found for this user.")
	}

	education := &models.Education{
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	if err := s.profileRepo.AddEducation(education); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteEducation 学歴を削除
func (s *profileService) DeleteEducation(userID, educationID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("Profile not found for this user.")
	}

	rows, err := s.profileRepo.DeleteEducation(profile.ID, educationID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.New("Education not found.")
	}

	return s.profileRepo.FindByUserID(userID)
}
