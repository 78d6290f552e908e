package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anovainvest/allocations/internal/domain"
)

type annotationRepository struct {
	db *sql.DB
}

// NewAnnotationRepository создаёт PostgreSQL-реализацию AnnotationRepository.
func NewAnnotationRepository(store *Store) domain.AnnotationRepository {
	return &annotationRepository{db: store.DB()}
}

func (r *annotationRepository) Save(account, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO client_annotations (account, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (account) DO UPDATE
		SET body = EXCLUDED.body, updated_at = NOW()
	`, account, text); err != nil {
		return fmt.Errorf("save annotation: %w", err)
	}

	return nil
}

func (r *annotationRepository) Get(account string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var body string
	err := r.db.QueryRowContext(ctx, `
		SELECT body
		FROM client_annotations
		WHERE account = $1
	`, account).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrAnnotationNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get annotation: %w", err)
	}

	return body, nil
}

func (r *annotationRepository) Delete(account string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM client_annotations
		WHERE account = $1
	`, account); err != nil {
		return fmt.Errorf("delete annotation: %w", err)
	}

	return nil
}

var _ domain.AnnotationRepository = (*annotationRepository)(nil)
