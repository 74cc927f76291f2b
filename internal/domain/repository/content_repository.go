package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// ContentRepository define el puerto de persistencia para el contenido editorial (blog y eventos).
type ContentRepository interface {
	CreatePost(post *entity.Post) error
	GetPostBySlug(slug string) (*entity.Post, error)
	ListPosts(limit, offset int) ([]*entity.Post, error)
	UpdatePost(post *entity.Post) error
	DeletePost(id string) error

	CreateEvent(event *entity.Event) error
	GetEventByID(id string) (*entity.Event, error)
	ListEvents(limit, offset int) ([]*entity.Event, error)
	DeleteEvent(id string) error
}
