package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// Asegura que CompanyClientRepo implementa repository.CompanyClientRepository.
var _ repository.CompanyClientRepository = (*CompanyClientRepo)(nil)

// CompanyClientRepo implementación del puerto CompanyClientRepository sobre
// PostgreSQL (usable con pool o tx). Sin Create: los arriendos los inserta la
// rutina rent_energy.
type CompanyClientRepo struct {
	q Querier
}

// NewCompanyClientRepository construye el adaptador de persistencia para
// arriendos. Pasar pool o tx (Querier).
func NewCompanyClientRepository(q Querier) *CompanyClientRepo {
	return &CompanyClientRepo{q: q}
}

// List devuelve todos los arriendos en orden de inserción.
func (r *CompanyClientRepo) List(ctx context.Context) ([]*entity.CompanyClient, error) {
	query := `
		SELECT id, energy_supply_point_id, company_name, quantity_power, created_at
		FROM company_clients ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list company clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyClient
	for rows.Next() {
		var c entity.CompanyClient
		if err := rows.Scan(&c.ID, &c.EnergySupplyPointID, &c.CompanyName, &c.QuantityPower, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un arriendo por ID; (nil, nil) si no existe.
func (r *CompanyClientRepo) GetByID(ctx context.Context, id int64) (*entity.CompanyClient, error) {
	query := `
		SELECT id, energy_supply_point_id, company_name, quantity_power, created_at
		FROM company_clients WHERE id = $1`
	var c entity.CompanyClient
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.EnergySupplyPointID, &c.CompanyName, &c.QuantityPower, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company client: %w", err)
	}
	return &c, nil
}

// DeleteByID elimina un arriendo y devuelve si existía fila; un id
// inexistente produce (false, nil), nunca error.
func (r *CompanyClientRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM company_clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete company client: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
