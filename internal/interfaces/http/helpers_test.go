package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	apihttp "github.com/jhoicas/Energia-api/internal/interfaces/http"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// Stubs de los servicios con campos función: cada test programa solo las
// operaciones que ejercita y el resto entra en pánico si se llama.

type stubCompanySvc struct {
	list    func(ctx context.Context) ([]*dto.CompanyResponse, error)
	getByID func(ctx context.Context, id int64) (*dto.CompanyResponse, error)
	create  func(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	update  func(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	delete  func(ctx context.Context, id int64) (bool, error)
	stats   func(ctx context.Context, id int64) (*dto.CompanyStatisticsResponse, error)
}

var _ apihttp.CompanyService = (*stubCompanySvc)(nil)

func (s *stubCompanySvc) List(ctx context.Context) ([]*dto.CompanyResponse, error) {
	return s.list(ctx)
}

func (s *stubCompanySvc) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubCompanySvc) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	return s.create(ctx, in)
}

func (s *stubCompanySvc) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	return s.update(ctx, id, in)
}

func (s *stubCompanySvc) Delete(ctx context.Context, id int64) (bool, error) {
	return s.delete(ctx, id)
}

func (s *stubCompanySvc) GetStatistics(ctx context.Context, id int64) (*dto.CompanyStatisticsResponse, error) {
	return s.stats(ctx, id)
}

type stubPointSvc struct {
	list    func(ctx context.Context) ([]*dto.SupplyPointResponse, error)
	getByID func(ctx context.Context, id int64) (*dto.SupplyPointResponse, error)
	create  func(ctx context.Context, in dto.CreateSupplyPointRequest) (*dto.SupplyPointResponse, error)
	update  func(ctx context.Context, id int64, in dto.UpdateSupplyPointRequest) (*dto.SupplyPointResponse, error)
	delete  func(ctx context.Context, id int64) (bool, error)
	search  func(ctx context.Context, dateFrom, dateTo string) ([]*dto.SupplyPointResponse, error)
}

var _ apihttp.SupplyPointService = (*stubPointSvc)(nil)

func (s *stubPointSvc) List(ctx context.Context) ([]*dto.SupplyPointResponse, error) {
	return s.list(ctx)
}

func (s *stubPointSvc) GetByID(ctx context.Context, id int64) (*dto.SupplyPointResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubPointSvc) Create(ctx context.Context, in dto.CreateSupplyPointRequest) (*dto.SupplyPointResponse, error) {
	return s.create(ctx, in)
}

func (s *stubPointSvc) Update(ctx context.Context, id int64, in dto.UpdateSupplyPointRequest) (*dto.SupplyPointResponse, error) {
	return s.update(ctx, id, in)
}

func (s *stubPointSvc) Delete(ctx context.Context, id int64) (bool, error) {
	return s.delete(ctx, id)
}

func (s *stubPointSvc) Search(ctx context.Context, dateFrom, dateTo string) ([]*dto.SupplyPointResponse, error) {
	return s.search(ctx, dateFrom, dateTo)
}

type stubRentalSvc struct {
	rent func(ctx context.Context, pointID int64, in dto.RentEnergyRequest) (*dto.RentResultResponse, error)
}

var _ apihttp.RentalService = (*stubRentalSvc)(nil)

func (s *stubRentalSvc) Rent(ctx context.Context, pointID int64, in dto.RentEnergyRequest) (*dto.RentResultResponse, error) {
	return s.rent(ctx, pointID, in)
}

type stubClientSvc struct {
	list    func(ctx context.Context) ([]*dto.CompanyClientResponse, error)
	getByID func(ctx context.Context, id int64) (*dto.CompanyClientResponse, error)
	delete  func(ctx context.Context, id int64) (bool, error)
}

var _ apihttp.CompanyClientService = (*stubClientSvc)(nil)

func (s *stubClientSvc) List(ctx context.Context) ([]*dto.CompanyClientResponse, error) {
	return s.list(ctx)
}

func (s *stubClientSvc) GetByID(ctx context.Context, id int64) (*dto.CompanyClientResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubClientSvc) Delete(ctx context.Context, id int64) (bool, error) {
	return s.delete(ctx, id)
}

func buildTestApp(deps apihttp.RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.New(logger.Config{Env: "production", Level: "error"})
	}
	app := fiber.New()
	apihttp.Router(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// errorBody espejo del cuerpo de error para aserciones.
type errorBody struct {
	Error   string         `json:"error"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}
