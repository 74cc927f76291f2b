package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo implementación de ListingRepository sobre PostgreSQL.
type ListingRepo struct {
	q Querier
}

// NewListingRepository construye el adaptador de anuncios. Pasar pool o tx (Querier).
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{q: q}
}

const listingColumns = `id, user_id, title, description, price, category, status, image_url, created_at, updated_at`

// Create persiste un nuevo anuncio.
func (r *ListingRepo) Create(listing *entity.Listing) error {
	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		listing.ID, listing.UserID, listing.Title, listing.Description, listing.Price,
		listing.Category, listing.Status, listing.ImageURL, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// GetByID obtiene un anuncio por ID.
func (r *ListingRepo) GetByID(id string) (*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	var l entity.Listing
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price,
		&l.Category, &l.Status, &l.ImageURL, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &l, nil
}

// List lista anuncios activos, opcionalmente filtrados por categoría.
func (r *ListingRepo) List(category string, limit, offset int) ([]*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE status = $1`
	args := []any{entity.ListingActiva}
	pos := 2
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price,
			&l.Category, &l.Status, &l.ImageURL, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un anuncio.
func (r *ListingRepo) Update(listing *entity.Listing) error {
	query := `
		UPDATE listings
		SET title = $2, description = $3, price = $4, category = $5, image_url = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		listing.ID, listing.Title, listing.Description, listing.Price,
		listing.Category, listing.ImageURL, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de un anuncio (activa, vendida, expirada).
func (r *ListingRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE listings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}
	return nil
}

// Delete elimina un anuncio por ID.
func (r *ListingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}
