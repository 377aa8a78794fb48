package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Respetan el contrato
// (nil, nil) para "no encontrado" y asignan ids secuenciales como la BD.
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

type fakeCompanyRepo struct {
	seq       int64
	companies map[int64]*entity.Company
	stats     map[int64]*entity.CompanyStatistics
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[int64]*entity.Company),
		stats:     make(map[int64]*entity.CompanyStatistics),
	}
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	list := make([]*entity.Company, 0, len(r.companies))
	for id := int64(1); id <= r.seq; id++ {
		if c, ok := r.companies[id]; ok {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.seq++
	company.ID = r.seq
	company.CreatedAt = time.Now()
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

func (r *fakeCompanyRepo) GetStatistics(_ context.Context, companyID int64) (*entity.CompanyStatistics, error) {
	if s, ok := r.stats[companyID]; ok {
		return s, nil
	}
	// Compañía sin puntos: la rutina devuelve ceros, no "sin filas".
	return &entity.CompanyStatistics{CompanyID: companyID, MaxTotalPower: decimal.Zero}, nil
}

var _ repository.SupplyPointRepository = (*fakePointRepo)(nil)

type fakePointRepo struct {
	seq    int64
	points map[int64]*entity.SupplyPoint

	searchFrom *time.Time
	searchTo   *time.Time
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{points: make(map[int64]*entity.SupplyPoint)}
}

func (r *fakePointRepo) List(_ context.Context) ([]*entity.SupplyPoint, error) {
	list := make([]*entity.SupplyPoint, 0, len(r.points))
	for id := int64(1); id <= r.seq; id++ {
		if p, ok := r.points[id]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakePointRepo) GetByID(_ context.Context, id int64) (*entity.SupplyPoint, error) {
	p, ok := r.points[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePointRepo) Create(_ context.Context, point *entity.SupplyPoint) error {
	r.seq++
	point.ID = r.seq
	point.CreatedAt = time.Now()
	copied := *point
	r.points[point.ID] = &copied
	return nil
}

func (r *fakePointRepo) Update(_ context.Context, point *entity.SupplyPoint) error {
	copied := *point
	r.points[point.ID] = &copied
	return nil
}

func (r *fakePointRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.points[id]; !ok {
		return false, nil
	}
	delete(r.points, id)
	return true, nil
}

func (r *fakePointRepo) SearchByDateRange(_ context.Context, dateFrom, dateTo *time.Time) ([]*entity.SupplyPoint, error) {
	r.searchFrom = dateFrom
	r.searchTo = dateTo
	var list []*entity.SupplyPoint
	for id := int64(1); id <= r.seq; id++ {
		p, ok := r.points[id]
		if !ok {
			continue
		}
		if dateFrom != nil && p.ConnectionDate.Before(*dateFrom) {
			continue
		}
		if dateTo != nil && p.ConnectionDate.After(*dateTo) {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *fakePointRepo) RentEnergy(_ context.Context, pointID int64, companyName string, quantityPower decimal.Decimal) (*entity.RentResult, error) {
	return &entity.RentResult{Success: true, Message: "Energy rented successfully"}, nil
}
