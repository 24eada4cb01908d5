package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/config"
	articleModel "blog-backend/internal/domains/article/model"
	"blog-backend/pkg/container"
)

func TestSeedMemory(t *testing.T) {
	cfg := &config.Config{
		App:      config.AppConfig{Environment: "test"},
		JWT:      config.JWTConfig{Secret: "s", Issuer: "blog-backend", AccessTokenExpiry: time.Hour},
		Session:  config.SessionConfig{CookieName: "blog_session", Lifetime: time.Hour},
		Storage:  config.StorageConfig{Driver: config.StorageMemory},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
	c, err := container.New(cfg)
	require.NoError(t, err)
	defer c.Cleanup()

	ctx := context.Background()
	require.NoError(t, seed(ctx, c, 3, 12, 2))

	page, err := c.ArticleService.ListArticles(ctx, articleModel.ListArticlesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	for _, a := range page.Articles {
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Owner.Username)
	}

	assert.Error(t, seed(ctx, c, 0, 1, 0))
}

func TestSeedTitleFitsBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		title := seedTitle()
		assert.GreaterOrEqual(t, len(title), articleModel.MinTitleLength)
		assert.LessOrEqual(t, len(title), articleModel.MaxTitleLength)
	}
}
