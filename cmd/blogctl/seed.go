package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	lorem "github.com/HandmadeNetwork/golorem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	articleModel "blog-backend/internal/domains/article/model"
	commentModel "blog-backend/internal/domains/comment/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared/auth"
	"blog-backend/pkg/container"
)

const seedPassword = "password"

func init() {
	var (
		numUsers    int
		numArticles int
		numComments int
	)

	seedCommand := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with lorem ipsum users, articles and comments",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustLoadConfig()
			if cfg.Storage.Driver == config.StorageMemory {
				log.Warn().Msg("Seeding in-memory storage; the data disappears when this command exits")
			}

			c, err := container.New(cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize container")
			}
			defer c.Cleanup()

			if err := seed(context.Background(), c, numUsers, numArticles, numComments); err != nil {
				log.Fatal().Err(err).Msg("Seed failed")
			}
		},
	}
	seedCommand.Flags().IntVar(&numUsers, "users", 5, "Number of users to create")
	seedCommand.Flags().IntVar(&numArticles, "articles", 20, "Number of articles to create")
	seedCommand.Flags().IntVar(&numComments, "comments", 3, "Maximum comments per article")

	rootCommand.AddCommand(seedCommand)
}

func seed(ctx context.Context, c *container.Container, numUsers, numArticles, numComments int) error {
	if numUsers < 1 {
		return fmt.Errorf("--users must be at least 1")
	}

	// Step 1: Users
	authors := make([]*auth.Principal, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		username := fmt.Sprintf("%s%d_%d", lorem.Word(4, 8), rand.IntN(1000), i)
		u, err := c.UserService.CreateUser(ctx, userModel.CreateUserRequest{
			Email:    username + "@example.com",
			Username: username,
			Password: seedPassword,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", username, err)
		}
		authors = append(authors, &auth.Principal{UserID: u.ID, Role: u.Role})
		fmt.Printf("user     %s (%s / %s)\n", u.Username, u.Email, seedPassword)
	}

	// Step 2: Articles, phần lớn được publish
	for i := 0; i < numArticles; i++ {
		owner := authors[rand.IntN(len(authors))]
		short := lorem.Sentence(6, 16)
		body := strings.Join([]string{lorem.Paragraph(2, 5), lorem.Paragraph(2, 5)}, "\n\n")

		a, err := c.ArticleService.CreateArticle(ctx, owner, articleModel.CreateArticleRequest{
			Title:           seedTitle(),
			ShortContent:    &short,
			TextLongContent: &body,
		})
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}

		if rand.IntN(4) > 0 {
			published := true
			if _, err := c.ArticleService.UpdateArticle(ctx, owner, a.ID, articleModel.UpdateArticleRequest{IsPublished: &published}); err != nil {
				return fmt.Errorf("publish article: %w", err)
			}
		}
		fmt.Printf("article  %s\n", a.Slug)

		// Step 3: Comments từ user ngẫu nhiên
		for j := rand.IntN(numComments + 1); j > 0; j-- {
			author := authors[rand.IntN(len(authors))]
			if _, err := c.CommentService.CreateComment(ctx, author, a.ID, commentModel.CreateCommentRequest{
				Body: lorem.Sentence(4, 20),
			}); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	log.Info().Int("users", numUsers).Int("articles", numArticles).Msg("Seed completed")
	return nil
}

// seedTitle returns a lorem sentence that fits the title bounds
func seedTitle() string {
	title := strings.TrimSuffix(lorem.Sentence(2, 7), ".")
	if len(title) > articleModel.MaxTitleLength {
		title = strings.TrimSpace(title[:articleModel.MaxTitleLength])
	}
	return title
}
