package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/article/model"
	commentModel "blog-backend/internal/domains/comment/model"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

// postgresArticleRepository caches GetByID results (cache-aside) and
// invalidates on every write touching the article or its comments
type postgresArticleRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresArticleRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) ArticleRepository {
	return &postgresArticleRepository{pool: pool, cache: c, cacheTTL: cacheTTL}
}

const selectArticle = `
	SELECT
		a.id, a.owner_id, u.username,
		a.title, a.slug, a.short_content, a.long_content, a.is_published,
		COALESCE(
			(SELECT array_agg(c.id::text ORDER BY c.created_at, c.id) FROM comments c WHERE c.article_id = a.id),
			'{}'
		) AS comment_ids,
		a.created_at, a.updated_at
	FROM articles a
	JOIN users u ON u.id = a.owner_id
`

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("article:%s", id.String())
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	a := &model.Article{}
	var commentIDs []string

	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.OwnerUsername,
		&a.Title,
		&a.Slug,
		&a.ShortContent,
		&a.LongContent,
		&a.IsPublished,
		&commentIDs,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CommentIDs = make([]uuid.UUID, 0, len(commentIDs))
	for _, raw := range commentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse comment id %q: %w", raw, err)
		}
		a.CommentIDs = append(a.CommentIDs, id)
	}
	return a, nil
}

func (r *postgresArticleRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("article_id", id.String()).Msg("Failed to invalidate article cache")
	}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresArticleRepository) Create(ctx context.Context, a *model.Article) error {
	query := `
		INSERT INTO articles (
			id, owner_id, title, slug, short_content, long_content,
			is_published, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.OwnerID,
		a.Title,
		a.Slug,
		a.ShortContent,
		a.LongContent,
		a.IsPublished,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if database.ForeignKeyViolation(err) {
			return model.ErrOwnerNotFound
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID (cache-aside)
// =====================================================

func (r *postgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	// Step 1: Check cache
	var cached model.Article
	found, err := r.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		log.Warn().Err(err).Str("article_id", id.String()).Msg("Article cache read failed")
	}
	if err == nil && found {
		return &cached, nil
	}

	// Step 2: Cache miss → query database
	a, err := scanArticle(r.pool.QueryRow(ctx, selectArticle+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	// Step 3: Populate cache, lỗi cache không fail request
	if err := r.cache.Set(ctx, cacheKey(id), a, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("article_id", id.String()).Msg("Article cache write failed")
	}

	return a, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresArticleRepository) Update(ctx context.Context, a *model.Article) error {
	query := `
		UPDATE articles
		SET
			title = $2,
			short_content = $3,
			long_content = $4,
			is_published = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Title,
		a.ShortContent,
		a.LongContent,
		a.IsPublished,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	r.invalidate(ctx, a.ID)
	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrArticleNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, id)
	return nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresArticleRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.Article, int, error) {
	var where utils.WhereBuilder
	if filter.IsPublished != nil {
		where.Add("a.is_published = ?", *filter.IsPublished)
	}
	if filter.Title != "" {
		where.Add("a.title ILIKE ?", utils.ContainsPattern(filter.Title))
	}
	if filter.LongContent != "" {
		where.Add("a.long_content ILIKE ?", utils.ContainsPattern(filter.LongContent))
	}
	if filter.OwnerID != nil {
		where.Add("a.owner_id = ?", *filter.OwnerID)
	}

	// Step 1: Count total
	var total int
	countQuery := `SELECT COUNT(*) FROM articles a ` + where.SQL()
	if err := r.pool.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	// Step 2: Fetch page
	query := selectArticle + where.SQL() + ` ORDER BY a.created_at DESC, a.id`
	if filter.Limit > 0 {
		query += ` LIMIT ` + where.NextArg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ` + where.NextArg(filter.Offset)
	}

	articles, err := r.queryArticles(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *postgresArticleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Article, error) {
	return r.queryArticles(ctx, selectArticle+` WHERE a.owner_id = $1 ORDER BY a.created_at DESC, a.id`, ownerID)
}

func (r *postgresArticleRepository) queryArticles(ctx context.Context, query string, args ...any) ([]*model.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*model.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

// =====================================================
// COMMENT COLLECTION
// =====================================================

// lockArticle khoá row article trong tx để add/remove comment không race với delete
func lockArticle(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrArticleNotFound
	}
	return err
}

func (r *postgresArticleRepository) AddComment(ctx context.Context, articleID uuid.UUID, c *commentModel.Comment) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockArticle(ctx, tx, articleID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO comments (id, article_id, author_id, body, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, articleID, c.AuthorID, c.Body, c.CreatedAt)
		if err != nil {
			if database.ForeignKeyViolation(err) {
				return commentModel.ErrAuthorNotFound
			}
			return fmt.Errorf("failed to insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, articleID)
	return nil
}

func (r *postgresArticleRepository) RemoveComment(ctx context.Context, articleID, commentID uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockArticle(ctx, tx, articleID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1 AND article_id = $2`, commentID, articleID)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		if result.RowsAffected() == 0 {
			return commentModel.ErrCommentNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, articleID)
	return nil
}
