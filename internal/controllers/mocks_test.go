package controllers

import (
	"errors"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memUserRepo テスト用のインメモリユーザーリポジトリ
type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *memUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *memUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("record not found")
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

// memProfileRepo テスト用のインメモリプロフィールリポジトリ
// アカウント削除でユーザーも消すため、ユーザーリポジトリへの参照を持つ
type memProfileRepo struct {
	users       *memUserRepo
	profiles    map[uint]*models.Profile // プロフィールIDがキー
	nextID      uint
	nextChildID uint
}

func newMemProfileRepo(users *memUserRepo) *memProfileRepo {
	return &memProfileRepo{
		users:       users,
		profiles:    make(map[uint]*models.Profile),
		nextID:      1,
		nextChildID: 1,
	}
}

func copyStoredProfile(profile *models.Profile) *models.Profile {
	copied := *profile
	copied.Skills = append([]string(nil), profile.Skills...)
	copied.Experience = append([]models.Experience(nil), profile.Experience...)
	copied.Education = append([]models.Education(nil), profile.Education...)
	return &copied
}

func (r *memProfileRepo) Create(profile *models.Profile) error {
	profile.ID = r.nextID
	r.nextID++
	r.profiles[profile.ID] = copyStoredProfile(profile)
	return nil
}

func (r *memProfileRepo) FindByUserID(userID uint) (*models.Profile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := copyStoredProfile(profile)
			// 実リポジトリのPreloadと同様に参照先ユーザーも載せる
			if user, err := r.users.FindByID(userID); err == nil {
				copied.User = user
			}
			return copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *memProfileRepo) ListAll() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		profiles = append(profiles, *copyStoredProfile(profile))
	}
	return profiles, nil
}

func (r *memProfileRepo) Update(profile *models.Profile) error {
	stored, ok := r.profiles[profile.ID]
	if !ok {
		return errors.New("record not found")
	}
	stored.Company = profile.Company
	stored.Status = profile.Status
	stored.Website = profile.Website
	stored.Location = profile.Location
	stored.Bio = profile.Bio
	stored.GithubUsername = profile.GithubUsername
	stored.Skills = append([]string(nil), profile.Skills...)
	stored.Social = profile.Social
	return nil
}

func (r *memProfileRepo) DeleteWithUser(userID uint) error {
	for id, profile := range r.profiles {
		if profile.UserID == userID {
			delete(r.profiles, id)
		}
	}
	return r.users.Delete(userID)
}

func (r *memProfileRepo) AddExperience(experience *models.Experience) error {
	profile, ok := r.profiles[experience.ProfileID]
	if !ok {
		return errors.New("record not found")
	}
	experience.ID = r.nextChildID
	r.nextChildID++
	// 新しいものが先頭に並ぶ
	profile.Experience = append([]models.Experience{*experience}, profile.Experience...)
	return nil
}

func (r *memProfileRepo) DeleteExperience(profileID, experienceID uint) (int64, error) {
	profile, ok := r.profiles[profileID]
	if !ok {
		return 0, errors.New("record not found")
	}
	for i, experience := range profile.Experience {
		if experience.ID == experienceID {
			profile.Experience = append(profile.Experience[:i], profile.Experience[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memProfileRepo) AddEducation(education *models.Education) error {
	profile, ok := r.profiles[education.ProfileID]
	if !ok {
		return errors.New("record not found")
	}
	education.ID = r.nextChildID
	r.nextChildID++
	profile.Education = append([]models.Education{*education}, profile.Education...)
	return nil
}

func (r *memProfileRepo) DeleteEducation(profileID, educationID uint) (int64, error) {
	profile, ok := r.profiles[profileID]
	if !ok {
		return 0, errors.New("record not found")
	}
	for i, education := range profile.Education {
		if education.ID == educationID {
			profile.Education = append(profile.Education[:i], profile.Education[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// memPostRepo テスト用のインメモリ投稿リポジトリ
type memPostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uint]*models.Post), nextID: 1}
}

func (r *memPostRepo) Create(post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	post.CreatedAt = time.Now()
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memPostRepo) FindByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *post
	return &copied, nil
}

func (r *memPostRepo) ListAll() ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, *post)
	}
	return posts, nil
}

func (r *memPostRepo) Delete(id uint) error {
	delete(r.posts, id)
	return nil
}
