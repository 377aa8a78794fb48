package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// Asegura que SupplyPointRepo implementa repository.SupplyPointRepository.
var _ repository.SupplyPointRepository = (*SupplyPointRepo)(nil)

// SupplyPointRepo implementación del puerto SupplyPointRepository sobre
// PostgreSQL (usable con pool o tx).
type SupplyPointRepo struct {
	q Querier
}

// NewSupplyPointRepository construye el adaptador de persistencia para puntos
// de suministro. Pasar pool o tx (Querier).
func NewSupplyPointRepository(q Querier) *SupplyPointRepo {
	return &SupplyPointRepo{q: q}
}

// List devuelve todos los puntos en orden de inserción.
func (r *SupplyPointRepo) List(ctx context.Context) ([]*entity.SupplyPoint, error) {
	query := `
		SELECT id, name, company_id, connection_date, max_power_kw, created_at
		FROM energy_supply_points ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list supply points: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplyPoint
	for rows.Next() {
		var p entity.SupplyPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.CompanyID, &p.ConnectionDate, &p.MaxPowerKW, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supply point: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un punto por ID; (nil, nil) si no existe.
func (r *SupplyPointRepo) GetByID(ctx context.Context, id int64) (*entity.SupplyPoint, error) {
	query := `
		SELECT id, name, company_id, connection_date, max_power_kw, created_at
		FROM energy_supply_points WHERE id = $1`
	var p entity.SupplyPoint
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CompanyID, &p.ConnectionDate, &p.MaxPowerKW, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply point: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo punto; la BD asigna id y created_at.
func (r *SupplyPointRepo) Create(ctx context.Context, point *entity.SupplyPoint) error {
	query := `
		INSERT INTO energy_supply_points (name, company_id, connection_date, max_power_kw)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, point.Name, point.CompanyID, point.ConnectionDate, point.MaxPowerKW).
		Scan(&point.ID, &point.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert supply point: %w", translateConstraint(err))
	}
	return nil
}

// Update confirma todos los campos en un único UPDATE atómico.
func (r *SupplyPointRepo) Update(ctx context.Context, point *entity.SupplyPoint) error {
	query := `
		UPDATE energy_supply_points
		SET name = $2, company_id = $3, connection_date = $4, max_power_kw = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, point.ID, point.Name, point.CompanyID, point.ConnectionDate, point.MaxPowerKW)
	if err != nil {
		return fmt.Errorf("update supply point: %w", translateConstraint(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el punto; ON DELETE CASCADE arrastra sus arriendos.
// Devuelve false si no existía fila.
func (r *SupplyPointRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM energy_supply_points WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supply point: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SearchByDateRange invoca la rutina search_energy_supply_points. Un puntero
// nil se envía como NULL, que la rutina interpreta como "sin cota".
func (r *SupplyPointRepo) SearchByDateRange(ctx context.Context, dateFrom, dateTo *time.Time) ([]*entity.SupplyPoint, error) {
	query := `
		SELECT id, name, company_id, connection_date, max_power_kw, created_at
		FROM search_energy_supply_points($1, $2)`
	rows, err := r.q.Query(ctx, query, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("search supply points: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplyPoint
	for rows.Next() {
		var p entity.SupplyPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.CompanyID, &p.ConnectionDate, &p.MaxPowerKW, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supply point: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// RentEnergy invoca la rutina rent_energy. La rutina bloquea la fila del
// punto (FOR UPDATE) y solo inserta si hay margen; ejecutarla dentro de la
// transacción del TxRunner, que confirma o revierte según Success.
func (r *SupplyPointRepo) RentEnergy(ctx context.Context, pointID int64, companyName string, quantityPower decimal.Decimal) (*entity.RentResult, error) {
	query := `SELECT success, message FROM rent_energy($1, $2, $3)`
	var res entity.RentResult
	err := r.q.QueryRow(ctx, query, pointID, companyName, quantityPower).Scan(&res.Success, &res.Message)
	if err != nil {
		return nil, fmt.Errorf("rent energy: %w", err)
	}
	return &res, nil
}
