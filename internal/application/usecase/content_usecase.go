package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/cache"
	"github.com/mercadito-app/mercadito-api/pkg/logger"
)

// TTL del cache de contenido público. El contenido editorial cambia poco;
// cinco minutos de desfase son aceptables.
const contentCacheTTL = 5 * time.Minute

const (
	postsCacheKey  = "content:posts"
	eventsCacheKey = "content:events"
)

// ContentUseCase implementa el contenido editorial público (blog y eventos)
// con cache en Redis para las lecturas.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	cache       cache.Client
	log         *logger.Logger
}

// NewContentUseCase construye el caso de uso de contenido.
func NewContentUseCase(contentRepo repository.ContentRepository, cacheClient cache.Client, log *logger.Logger) *ContentUseCase {
	return &ContentUseCase{contentRepo: contentRepo, cache: cacheClient, log: log}
}

// CreatePost publica una entrada de blog e invalida el cache de listado.
func (uc *ContentUseCase) CreatePost(ctx context.Context, authorID string, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	if in.Title == "" || in.Slug == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	post := &entity.Post{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Slug:        in.Slug,
		Body:        in.Body,
		Author:      authorID,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.contentRepo.CreatePost(post); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, postsCacheKey)
	return toPostResponse(post), nil
}

// GetPostBySlug obtiene una entrada de blog por su slug, con cache.
func (uc *ContentUseCase) GetPostBySlug(ctx context.Context, slug string) (*dto.PostResponse, error) {
	key := fmt.Sprintf("content:post:%s", slug)
	if cached, err := uc.cache.Get(ctx, key); err == nil {
		var resp dto.PostResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}
	post, err := uc.contentRepo.GetPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	resp := toPostResponse(post)
	uc.store(ctx, key, resp)
	return resp, nil
}

// ListPosts lista las entradas del blog, la más reciente primero.
// Solo la primera página (offset 0) pasa por cache.
func (uc *ContentUseCase) ListPosts(ctx context.Context, limit, offset int) (*dto.PostListResponse, error) {
	useCache := offset == 0
	if useCache {
		if cached, err := uc.cache.Get(ctx, postsCacheKey); err == nil {
			var resp dto.PostListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil && resp.Page.Limit == limit {
				return &resp, nil
			}
		}
	}
	list, err := uc.contentRepo.ListPosts(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PostResponse, 0, len(list))
	for _, p := range list {
		item := *toPostResponse(p)
		item.Body = "" // el listado no incluye el cuerpo completo
		items = append(items, item)
	}
	resp := &dto.PostListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	if useCache {
		uc.store(ctx, postsCacheKey, resp)
	}
	return resp, nil
}

// UpdatePost edita una entrada de blog e invalida sus entradas de cache.
func (uc *ContentUseCase) UpdatePost(ctx context.Context, slug string, in dto.UpdatePostRequest) (*dto.PostResponse, error) {
	if in.Title == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	post, err := uc.contentRepo.GetPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}
	post.Title = in.Title
	post.Body = in.Body
	post.UpdatedAt = time.Now()
	if err := uc.contentRepo.UpdatePost(post); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, postsCacheKey, fmt.Sprintf("content:post:%s", slug))
	return toPostResponse(post), nil
}

// DeletePost borra una entrada de blog e invalida el cache.
func (uc *ContentUseCase) DeletePost(ctx context.Context, slug string) error {
	post, err := uc.contentRepo.GetPostBySlug(slug)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrNotFound
	}
	if err := uc.contentRepo.DeletePost(post.ID); err != nil {
		return err
	}
	uc.invalidate(ctx, postsCacheKey, fmt.Sprintf("content:post:%s", slug))
	return nil
}

// CreateEvent publica un evento e invalida el cache de listado.
func (uc *ContentUseCase) CreateEvent(ctx context.Context, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if in.Title == "" || in.StartsAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.EndsAt.IsZero() && in.EndsAt.Before(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	event := &entity.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.contentRepo.CreateEvent(event); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, eventsCacheKey)
	return toEventResponse(event), nil
}

// ListEvents lista eventos, próximos primero. Solo la primera página pasa por cache.
func (uc *ContentUseCase) ListEvents(ctx context.Context, limit, offset int) (*dto.EventListResponse, error) {
	useCache := offset == 0
	if useCache {
		if cached, err := uc.cache.Get(ctx, eventsCacheKey); err == nil {
			var resp dto.EventListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil && resp.Page.Limit == limit {
				return &resp, nil
			}
		}
	}
	list, err := uc.contentRepo.ListEvents(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	resp := &dto.EventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	if useCache {
		uc.store(ctx, eventsCacheKey, resp)
	}
	return resp, nil
}

// DeleteEvent borra un evento e invalida el cache de listado.
func (uc *ContentUseCase) DeleteEvent(ctx context.Context, id string) error {
	event, err := uc.contentRepo.GetEventByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	if err := uc.contentRepo.DeleteEvent(id); err != nil {
		return err
	}
	uc.invalidate(ctx, eventsCacheKey)
	return nil
}

// store serializa y guarda en cache; un fallo de cache no es fatal.
func (uc *ContentUseCase) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, data, contentCacheTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en cache")
	}
}

func (uc *ContentUseCase) invalidate(ctx context.Context, keys ...string) {
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		uc.log.Warn().Err(err).Strs("keys", keys).Msg("no se pudo invalidar el cache")
	}
}

func toPostResponse(p *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CreatedAt:   e.CreatedAt,
	}
}
