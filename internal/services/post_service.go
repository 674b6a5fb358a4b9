package services

import (
	"errors"

	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
)

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	Create(userID uint, text string) (*models.Post, error)
	GetByID(id uint) (*models.Post, error)
	ListAll() ([]models.Post, error)
	Delete(id, userID uint) error
}

// postService PostServiceの実装
type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create 新しい投稿を作成
// 投稿者の名前とアバターは作成時点のスナップショットとして保持する
func (s *postService) Create(userID uint, text string) (*models.Post, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.New("User not found.")
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetByID IDで投稿を取得
func (s *postService) GetByID(id uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("Post not found")
	}
	return post, nil
}

// ListAll すべての投稿を取得
func (s *postService) ListAll() ([]models.Post, error) {
	return s.postRepo.ListAll()
}

// Delete 投稿を削除
// 投稿者本人以外は削除できない
func (s *postService) Delete(id, userID uint) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return errors.New("Post not found")
	}

	if post.UserID != userID {
		return errors.New("Not authorized to delete this post.")
	}

	return s.postRepo.Delete(id)
}
