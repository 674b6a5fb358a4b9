package repository

import (
	"errors"

	"github.com/DevConnect/devconnect_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository プロフィールに関するデータベース操作を行うインターフェース
type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID uint) (*models.Profile, error)
	ListAll() ([]models.Profile, error)
	Update(profile *models.Profile) error
	DeleteWithUser(userID uint) error
	AddExperience(experience *models.Experience) error
	DeleteExperience(profileID, experienceID uint) (int64, error)
	AddEducation(education *models.Education) error
	DeleteEducation(profileID, educationID uint) (int64, error)
}

// profileRepository ProfileRepositoryの実装
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository ProfileRepositoryを作成
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create 新しいプロフィールを作成
func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// FindByUserID ユーザーIDでプロフィールを検索
// 参照先ユーザーと、新しい順に並べた職歴・学歴を一緒に読み込む
func (r *profileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListAll すべてのプロフィールを取得
func (r *profileRepository) ListAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		}).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update プロフィールを更新
// 読み込み済みの職歴・学歴を二重保存しないよう関連は除外する
func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Omit(clause.Associations).Save(profile).Error
}

// DeleteWithUser プロフィールと所有ユーザーをまとめて削除
// 片方だけ消えて孤児レコードが残らないようトランザクションで行う
// 論理削除だとemailのユニークインデックスに行が残り、同じアドレスで
// 再登録できなくなるため物理削除する
func (r *profileRepository) DeleteWithUser(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&models.Profile{}, profile.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// プロフィール未作成のユーザーもアカウント削除はできる
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}

// AddExperience 職歴を追加
func (r *profileRepository) AddExperience(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// DeleteExperience 職歴を削除し、削除した件数を返す
func (r *profileRepository) DeleteExperience(profileID, experienceID uint) (int64, error) {
	result := r.db.Where("profile_id = ?", profileID).Delete(&models.Experience{}, experienceID)
	return result.RowsAffected, result.Error
}

// AddEducation 学歴を追加
func (r *profileRepository) AddEducation(education *models.Education) error {
	return r.db.Create(education).Error
}

// DeleteEducation 学歴を削除し、削除した件数を返す
func (r *profileRepository) DeleteEducation(profileID, educationID uint) (int64, error) {
	result := r.db.Where("profile_id = ?", profileID).Delete(&models.Education{}, educationID)
	return result.RowsAffected, result.Error
}
