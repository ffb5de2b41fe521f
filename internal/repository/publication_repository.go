package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-generator/internal/domain"
)

// ErrDuplicatePublication is returned when a CMS post is already recorded.
var ErrDuplicatePublication = errors.New("publication already recorded")

// PostgresPublicationRepository implements PublicationRepository using PostgreSQL.
type PostgresPublicationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPublicationRepository creates a new PostgresPublicationRepository.
func NewPostgresPublicationRepository(pool *pgxpool.Pool) *PostgresPublicationRepository {
	return &PostgresPublicationRepository{pool: pool}
}

// Create records a published draft. An empty ID is assigned a new UUID.
func (r *PostgresPublicationRepository) Create(ctx context.Context, p *domain.Publication) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	var articleType *string
	if p.ArticleType != "" {
		articleType = &p.ArticleType
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO publications (id, user_id, user_email, post_id, edit_url, headline, article_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.UserID, p.UserEmail, p.PostID, p.EditURL, p.Headline, articleType, p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("insert publication for post %d: %w", p.PostID, ErrDuplicatePublication)
		}
		return fmt.Errorf("insert publication: %w", err)
	}

	return nil
}

// ListByUser returns the user's publications, newest first.
func (r *PostgresPublicationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Publication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, user_email, post_id, edit_url, headline, article_type, created_at
		FROM publications
		WHERE user_id = $1
		ORDER BY created_at DESC, post_id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query publications: %w", err)
	}

	pubs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Publication, error) {
		var p domain.Publication
		var articleType *string
		err := row.Scan(&p.ID, &p.UserID, &p.UserEmail, &p.PostID, &p.EditURL, &p.Headline, &articleType, &p.CreatedAt)
		if articleType != nil {
			p.ArticleType = *articleType
		}
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan publications: %w", err)
	}

	return pubs, nil
}
