package models

import (
	"time"

	"gorm.io/gorm"
)

// User ユーザーモデル
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// リレーション
	Posts []Post `json:"-"`
}

// SocialLinks プロフィールに紐づくSNSリンク
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// Profile プロフィールモデル（ユーザーごとに最大1件）
type Profile struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Company        string         `json:"company"`
	Status         string         `json:"status" gorm:"not null"`
	Website        string         `json:"website"`
	Location       string         `json:"location"`
	Bio            string         `json:"bio"`
	GithubUsername string         `json:"githubusername"`
	Skills         []string       `json:"skills" gorm:"serializer:json"`
	Social         SocialLinks    `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// リレーション
	User       *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Experience 職歴モデル（新しいものが先頭に並ぶ）
type Experience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProfileID   uint      `json:"-" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Company     string    `json:"company" gorm:"not null"`
	Location    string    `json:"location"`
	From        string    `json:"from" gorm:"not null"`
	To          string    `json:"to"`
	Current     bool      `json:"current" gorm:"default:false"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education 学歴モデル（新しいものが先頭に並ぶ）
type Education struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProfileID    uint      `json:"-" gorm:"not null;index"`
	School       string    `json:"school" gorm:"not null"`
	Degree       string    `json:"degree" gorm:"not null"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         string    `json:"from" gorm:"not null"`
	To           string    `json:"to"`
	Current      bool      `json:"current" gorm:"default:false"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post 投稿モデル
// 作成時点のユーザー名とアバターを非正規化して保持する（後からユーザーが
// 名前を変更しても既存の投稿には反映されない）
type Post struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"not null"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// リレーション
	User *User `json:"-" gorm:"foreignKey:UserID"`
}
