package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/middlewares"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter() (*gin.Engine, *memUserRepo) {
	repo := newMemUserRepo()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
	authService := services.NewAuthService(repo, cfg)
	authController := NewAuthController(authService)
	authMiddleware := middlewares.AuthMiddleware(authService)

	r := gin.New()
	r.POST("/api/users", authController.Register)
	r.POST("/api/auth", authController.Login)
	r.GET("/api/auth", authMiddleware, authController.GetMe)
	return r, repo
}

// 登録からトークンでの自己情報取得までの一連の流れを確認する
func TestRegisterAndGetMe(t *testing.T) {
	router, _ := setupAuthRouter()

	// ユーザー登録
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{"name":"A","email":"a@x.com","password":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("登録のステータスコードが200ではありません: %d %s", w.Code, w.Body.String())
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tokenResp); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if tokenResp.Token == "" {
		t.Fatal("トークンが返されていません")
	}

	// トークンで自己情報を取得
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/auth", nil)
	req.Header.Set("x-auth-token", tokenResp.Token)
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("自己情報取得のステータスコードが200ではありません: %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"name":"A"`) {
		t.Errorf("ユーザー名が含まれていません: %s", body)
	}
	// パスワード（ハッシュ含む）がレスポンスに漏れていないこと
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Errorf("パスワードがレスポンスに含まれています: %s", body)
	}
}

func TestRegisterValidation(t *testing.T) {
	router, repo := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{"name":"","email":"bad","password":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("ステータスコードが400ではありません: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "errors") {
		t.Errorf("構造化されたエラーリストが返されていません: %s", w.Body.String())
	}
	if len(repo.users) != 0 {
		t.Errorf("バリデーション失敗でもユーザーが作成されています: %d人", len(repo.users))
	}
}

// 重複登録は拒否され、ストアには1人しか残らない
func TestRegisterDuplicateEmail(t *testing.T) {
	router, repo := setupAuthRouter()

	body := `{"name":"A","email":"a@x.com","password":"12345"}`
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if i == 0 && w.Code != 200 {
			t.Fatalf("1回目の登録に失敗しました: %d", w.Code)
		}
		if i == 1 {
			if w.Code != 400 {
				t.Errorf("重複登録のステータスコードが400ではありません: %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "User already exists") {
				t.Errorf("予期しないレスポンスです: %s", w.Body.String())
			}
		}
	}

	if len(repo.users) != 1 {
		t.Errorf("ユーザーは1人だけのはずです: %d人", len(repo.users))
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _ := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{"name":"A","email":"a@x.com","password":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("登録に失敗しました: %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/auth", strings.NewReader(`{"email":"a@x.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("ステータスコードが400ではありません: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Errorf("予期しないレスポンスです: %s", w.Body.String())
	}
}

func TestGetMeWithoutToken(t *testing.T) {
	router, _ := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/auth", nil)
	router.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Errorf("ステータスコードが401ではありません: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Token must be present to access this resource.") {
		t.Errorf("予期しないレスポンスです: %s", w.Body.String())
	}
}
