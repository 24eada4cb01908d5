package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

const selectComment = `
	SELECT c.id, c.article_id, c.author_id, u.username, c.body, c.created_at
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func scanComment(row pgx.Row) (*model.Comment, error) {
	c := &model.Comment{}
	err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.AuthorID,
		&c.AuthorUsername,
		&c.Body,
		&c.CreatedAt,
	)
	return c, err
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, selectComment+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

func (r *postgresCommentRepository) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	rows, err := r.pool.Query(ctx, selectComment+` WHERE c.article_id = $1 ORDER BY c.created_at, c.id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
