package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/application/usecase"
	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

func newPointFixture(t *testing.T) (*usecase.SupplyPointUseCase, *fakePointRepo, int64) {
	t.Helper()
	companyRepo := newFakeCompanyRepo()
	pointRepo := newFakePointRepo()
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	created, err := companyUC.Create(context.Background(), dto.CreateCompanyRequest{
		Name:             "Electra",
		RegistrationDate: "2020-05-10",
		Status:           entity.StatusActive,
	})
	require.NoError(t, err)

	return usecase.NewSupplyPointUseCase(pointRepo, companyRepo), pointRepo, created.ID
}

func TestPointCreate_RoundTrip(t *testing.T) {
	uc, _, companyID := newPointFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplyPointRequest{
		Name:           "Subestación Norte",
		CompanyID:      companyID,
		ConnectionDate: "2024-03-15",
		MaxPowerKW:     ptr(decimal.RequireFromString("100.00")),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Subestación Norte", got.Name)
	assert.Equal(t, companyID, got.CompanyID)
	assert.Equal(t, "2024-03-15", got.ConnectionDate)
	assert.True(t, got.MaxPowerKW.Equal(decimal.RequireFromString("100.00")))
}

// Con company_id inexistente no se persiste fila alguna.
func TestPointCreate_CompaniaInexistente(t *testing.T) {
	uc, pointRepo, _ := newPointFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateSupplyPointRequest{
		Name:           "Subestación Norte",
		CompanyID:      999,
		ConnectionDate: "2024-03-15",
		MaxPowerKW:     ptr(decimal.RequireFromString("100.00")),
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	list, err := pointRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "no debe haberse persistido ningún punto")
}

func TestPointCreate_PotenciaNoPositiva(t *testing.T) {
	uc, _, companyID := newPointFixture(t)

	for _, power := range []string{"0", "-5.50"} {
		_, err := uc.Create(context.Background(), dto.CreateSupplyPointRequest{
			Name:           "Subestación",
			CompanyID:      companyID,
			ConnectionDate: "2024-03-15",
			MaxPowerKW:     ptr(decimal.RequireFromString(power)),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPower, "potencia: %s", power)
	}
}

// Potencia ausente (nil) es campo faltante, no potencia inválida.
func TestPointCreate_PotenciaAusente(t *testing.T) {
	uc, _, companyID := newPointFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateSupplyPointRequest{
		Name:           "Subestación",
		CompanyID:      companyID,
		ConnectionDate: "2024-03-15",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

// Re-apuntar a una compañía inexistente rechaza la actualización entera:
// el company_id almacenado no cambia ni se aplica ningún otro campo.
func TestPointUpdate_CompaniaInexistenteSinMutacionParcial(t *testing.T) {
	uc, _, companyID := newPointFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplyPointRequest{
		Name:           "Subestación Norte",
		CompanyID:      companyID,
		ConnectionDate: "2024-03-15",
		MaxPowerKW:     ptr(decimal.RequireFromString("100.00")),
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, dto.UpdateSupplyPointRequest{
		Name:      ptr("Subestación Sur"),
		CompanyID: ptr(int64(999)),
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, companyID, got.CompanyID, "company_id no debe cambiar")
	assert.Equal(t, "Subestación Norte", got.Name, "ningún campo debe aplicarse")
}

func TestPointUpdate_Parcial(t *testing.T) {
	uc, _, companyID := newPointFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplyPointRequest{
		Name:           "Subestación Norte",
		CompanyID:      companyID,
		ConnectionDate: "2024-03-15",
		MaxPowerKW:     ptr(decimal.RequireFromString("100.00")),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateSupplyPointRequest{
		MaxPowerKW: ptr(decimal.RequireFromString("250.25")),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.MaxPowerKW.Equal(decimal.RequireFromString("250.25")))
	assert.Equal(t, "Subestación Norte", updated.Name)
	assert.Equal(t, "2024-03-15", updated.ConnectionDate)
}

func TestPointUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newPointFixture(t)

	got, err := uc.Update(context.Background(), 42, dto.UpdateSupplyPointRequest{Name: ptr("X")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Ambos límites son opcionales e independientes; nil viaja como "sin cota".
func TestPointSearch_Limites(t *testing.T) {
	uc, pointRepo, companyID := newPointFixture(t)
	ctx := context.Background()

	for _, date := range []string{"2023-12-01", "2024-02-10", "2024-08-01"} {
		_, err := uc.Create(ctx, dto.CreateSupplyPointRequest{
			Name:           "P-" + date,
			CompanyID:      companyID,
			ConnectionDate: date,
			MaxPowerKW:     ptr(decimal.RequireFromString("10.00")),
		})
		require.NoError(t, err)
	}

	// Rango cerrado inclusivo
	got, err := uc.Search(ctx, "2024-01-01", "2024-06-30")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-10", got[0].ConnectionDate)
	require.NotNil(t, pointRepo.searchFrom)
	require.NotNil(t, pointRepo.searchTo)

	// Solo límite inferior
	got, err = uc.Search(ctx, "2024-01-01", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Nil(t, pointRepo.searchTo)

	// Sin límites
	got, err = uc.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Nil(t, pointRepo.searchFrom)
	assert.Nil(t, pointRepo.searchTo)
}

func TestPointSearch_FechaMalformada(t *testing.T) {
	uc, _, _ := newPointFixture(t)

	_, err := uc.Search(context.Background(), "01-01-2024", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
