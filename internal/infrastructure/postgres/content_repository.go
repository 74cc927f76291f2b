package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

var _ repository.ContentRepository = (*ContentRepo)(nil)

// ContentRepo implementación de ContentRepository (blog + eventos) sobre PostgreSQL.
type ContentRepo struct {
	q Querier
}

// NewContentRepository construye el adaptador de contenido. Pasar pool o tx (Querier).
func NewContentRepository(q Querier) *ContentRepo {
	return &ContentRepo{q: q}
}

const postColumns = `id, title, slug, body, author, published_at, created_at, updated_at`

// CreatePost persiste una entrada de blog. Slug es único.
func (r *ContentRepo) CreatePost(post *entity.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		post.ID, post.Title, post.Slug, post.Body, post.Author,
		post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetPostBySlug obtiene una entrada por slug.
func (r *ContentRepo) GetPostBySlug(slug string) (*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`
	var p entity.Post
	err := r.q.QueryRow(context.Background(), query, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.Author, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

// ListPosts lista entradas publicadas, la más reciente primero.
func (r *ContentRepo) ListPosts(limit, offset int) ([]*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY published_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Author,
			&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdatePost actualiza una entrada de blog.
func (r *ContentRepo) UpdatePost(post *entity.Post) error {
	query := `
		UPDATE posts SET title = $2, body = $3, published_at = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		post.ID, post.Title, post.Body, post.PublishedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// DeletePost elimina una entrada de blog por ID.
func (r *ContentRepo) DeletePost(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

const eventColumns = `id, title, description, location, starts_at, ends_at, created_at`

// CreateEvent persiste un evento.
func (r *ContentRepo) CreateEvent(event *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetEventByID obtiene un evento por ID.
func (r *ContentRepo) GetEventByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var e entity.Event
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// ListEvents lista eventos próximos primero (starts_at ascendente desde hoy, luego pasados).
func (r *ContentRepo) ListEvents(limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		ORDER BY (starts_at >= now()) DESC, starts_at ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location,
			&e.StartsAt, &e.EndsAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteEvent elimina un evento por ID.
func (r *ContentRepo) DeleteEvent(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
