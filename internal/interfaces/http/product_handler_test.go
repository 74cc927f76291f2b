package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/inventory"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
	apphttp "github.com/mercadito-app/mercadito-api/internal/interfaces/http"
)

// Stubs mínimos de los puertos de persistencia. Un :id malformado debe
// rechazarse antes de llegar al caso de uso; si llegara, estos stubs devuelven
// "no encontrado" y el test fallaría con 404 en lugar de 400.
type stubProductRepo struct{}

func (stubProductRepo) Create(*entity.Product) error                            { return nil }
func (stubProductRepo) GetByID(string) (*entity.Product, error)                 { return nil, nil }
func (stubProductRepo) GetForUpdate(string) (*entity.Product, error)            { return nil, nil }
func (stubProductRepo) Update(*entity.Product) error                            { return nil }
func (stubProductRepo) UpdateQuantity(string, int64) error                      { return nil }
func (stubProductRepo) ListByStore(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (stubProductRepo) ListLowStock(string) ([]*entity.Product, error)          { return nil, nil }
func (stubProductRepo) Delete(string) error                                     { return nil }

type stubMovementRepo struct{}

func (stubMovementRepo) Create(*entity.Movement) error { return nil }
func (stubMovementRepo) ListByProduct(string, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

type stubTxRunner struct{}

func (stubTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	return fn(stubProductRepo{}, stubMovementRepo{})
}

type stubNotifier struct{}

func (stubNotifier) NotifyLowStock(*entity.Product) {}

type stubListingRepo struct{}

func (stubListingRepo) Create(*entity.Listing) error                       { return nil }
func (stubListingRepo) GetByID(string) (*entity.Listing, error)            { return nil, nil }
func (stubListingRepo) List(string, int, int) ([]*entity.Listing, error)   { return nil, nil }
func (stubListingRepo) Update(*entity.Listing) error                       { return nil }
func (stubListingRepo) UpdateStatus(string, string) error                  { return nil }
func (stubListingRepo) Delete(string) error                                { return nil }

type stubTicketRepo struct{}

func (stubTicketRepo) Create(*entity.Ticket) error                           { return nil }
func (stubTicketRepo) GetByID(string) (*entity.Ticket, error)                { return nil, nil }
func (stubTicketRepo) ListByUser(string, int, int) ([]*entity.Ticket, error) { return nil, nil }
func (stubTicketRepo) ListAll(int, int) ([]*entity.Ticket, error)            { return nil, nil }
func (stubTicketRepo) UpdateStatus(string, string) error                     { return nil }
func (stubTicketRepo) AddReply(*entity.TicketReply) error                    { return nil }
func (stubTicketRepo) ListReplies(string) ([]*entity.TicketReply, error)     { return nil, nil }

func newHandlerTestApp() *fiber.App {
	app := fiber.New()

	productHandler := apphttp.NewProductHandler(
		inventory.NewStockUseCase(stubTxRunner{}, stubProductRepo{}, stubMovementRepo{}, stubNotifier{}),
	)
	app.Get("/products/:id", productHandler.GetByID)
	app.Put("/products/:id", productHandler.Update)
	app.Delete("/products/:id", productHandler.Delete)
	app.Post("/products/:id/sale", productHandler.Sale)
	app.Post("/products/:id/restock", productHandler.Restock)
	app.Get("/products/:id/history", productHandler.History)

	listingHandler := apphttp.NewListingHandler(usecase.NewListingUseCase(stubListingRepo{}))
	app.Get("/listings/:id", listingHandler.GetByID)

	ticketHandler := apphttp.NewTicketHandler(usecase.NewTicketUseCase(stubTicketRepo{}))
	app.Get("/tickets/:id", ticketHandler.GetByID)

	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandlers_IDMalformado_Responde400(t *testing.T) {
	app := newHandlerTestApp()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/products/no-es-un-uuid"},
		{http.MethodPut, "/products/no-es-un-uuid"},
		{http.MethodDelete, "/products/no-es-un-uuid"},
		{http.MethodPost, "/products/no-es-un-uuid/sale"},
		{http.MethodPost, "/products/no-es-un-uuid/restock"},
		{http.MethodGet, "/products/no-es-un-uuid/history"},
		{http.MethodGet, "/listings/123"},
		{http.MethodGet, "/tickets/123"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Equal(t, "INVALID_ID", body.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProductHandler_IDValidoInexistente_Responde404(t *testing.T) {
	app := newHandlerTestApp()

	req := httptest.NewRequest(http.MethodGet, "/products/44444444-4444-4444-4444-444444444444", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
