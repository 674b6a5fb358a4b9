package mock

import (
	"time"

	"github.com/DevConnect/devconnect_backend/internal/models"
)

// モックユーザー
var Users = []models.User{
	{
		ID:        1,
		Name:      "John Doe",
		Email:     "john@example.com",
		Password:  "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
		Avatar:    "https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm",
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-10 * 24 * time.Hour),
	},
	{
		ID:        2,
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Password:  "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
		Avatar:    "https://www.gravatar.com/avatar/9e26471d35a78862c17e467d87cddedf?s=200&r=pg&d=mm",
		CreatedAt: time.Now().Add(-25 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-5 * 24 * time.Hour),
	},
}

// モックプロフィール
var Profiles = []models.Profile{
	{
		ID:             1,
		UserID:         1,
		Company:        "Acme Inc.",
		Status:         "Senior Developer",
		Website:        "https://johndoe.dev",
		Location:       "Tokyo, Japan",
		Bio:            "Backend developer with a focus on distributed systems",
		GithubUsername: "johndoe",
		Skills:         []string{"Go", "MySQL", "Docker"},
		Social: models.SocialLinks{
			Twitter: "https://twitter.com/johndoe",
		},
		CreatedAt: time.Now().Add(-28 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-10 * 24 * time.Hour),
	},
	{
		ID:        2,
		UserID:    2,
		Status:    "Frontend Engineer",
		Location:  "Osaka, Japan",
		Skills:    []string{"TypeScript", "React"},
		CreatedAt: time.Now().Add(-20 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-5 * 24 * time.Hour),
	},
}

// モック職歴
var Experiences = []models.Experience{
	{
		ID:        1,
		ProfileID: 1,
		Title:     "Senior Developer",
		Company:   "Acme Inc.",
		Location:  "Tokyo",
		From:      "2022-04-01",
		Current:   true,
		CreatedAt: time.Now().Add(-28 * 24 * time.Hour),
	},
	{
		ID:          2,
		ProfileID:   1,
		Title:       "Developer",
		Company:     "Example Corp.",
		From:        "2019-04-01",
		To:          "2022-03-31",
		Description: "Built and operated internal APIs",
		CreatedAt:   time.Now().Add(-28 * 24 * time.Hour),
	},
}

// モック学歴
var Educations = []models.Education{
	{
		ID:           1,
		ProfileID:    1,
		School:       "Tokyo Institute of Technology",
		Degree:       "Bachelor",
		FieldOfStudy: "Computer Science",
		From:         "2015-04-01",
		To:           "2019-03-31",
		CreatedAt:    time.Now().Add(-28 * 24 * time.Hour),
	},
}

// モック投稿
var Posts = []models.Post{
	{
		ID:        1,
		UserID:    1,
		Text:      "Just shipped a new release of our API server!",
		Name:      "John Doe",
		Avatar:    Users[0].Avatar,
		CreatedAt: time.Now().Add(-3 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-3 * 24 * time.Hour),
	},
	{
		ID:        2,
		UserID:    2,
		Text:      "Looking for recommendations on Go ORMs.",
		Name:      "Jane Smith",
		Avatar:    Users[1].Avatar,
		CreatedAt: time.Now().Add(-1 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-1 * 24 * time.Hour),
	},
}
