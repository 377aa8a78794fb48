package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para compañías.
// Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las compañías en orden de inserción.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT id, name, registration_date, status, created_at
		FROM companies ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.RegistrationDate, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene una compañía por ID; (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `
		SELECT id, name, registration_date, status, created_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.RegistrationDate, &c.Status, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva compañía; la BD asigna id y created_at.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, registration_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, company.Name, company.RegistrationDate, company.Status).
		Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert company: %w", translateConstraint(err))
	}
	return nil
}

// Update confirma todos los campos en un único UPDATE atómico.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, registration_date = $3, status = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, company.ID, company.Name, company.RegistrationDate, company.Status)
	if err != nil {
		return fmt.Errorf("update company: %w", translateConstraint(err))
	}
	if cmd.RowsAffected() == 0 {
		// La fila desapareció entre la lectura del caso de uso y este UPDATE.
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la compañía; ON DELETE CASCADE arrastra puntos y arriendos.
// Devuelve false si no existía fila.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetStatistics invoca la rutina get_company_statistics; (nil, nil) si la
// rutina no reporta fila.
func (r *CompanyRepo) GetStatistics(ctx context.Context, companyID int64) (*entity.CompanyStatistics, error) {
	query := `SELECT total_supply_points, max_total_power FROM get_company_statistics($1)`
	stats := entity.CompanyStatistics{CompanyID: companyID}
	err := r.q.QueryRow(ctx, query, companyID).Scan(&stats.TotalSupplyPoints, &stats.MaxTotalPower)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company statistics: %w", err)
	}
	return &stats, nil
}
