package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxDirectoryRepository struct {
	BaseRepository
}

func newPgxDirectoryRepository(db DBTX) portsrepo.DirectoryRepositoryFacade {
	return &PgxDirectoryRepository{BaseRepository{DB: db}}
}

var _ portsrepo.DirectoryRepositoryFacade = (*PgxDirectoryRepository)(nil)

func (r *PgxDirectoryRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	var c domain.Company
	err := r.DB.QueryRow(ctx, `
		SELECT company_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM companies WHERE company_id = $1;`, companyID).Scan(
		&c.CompanyID, &c.Name, &c.CurrencyCode, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "company", companyID)
	}
	return &c, nil
}

func (r *PgxDirectoryRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT company_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM companies ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Company, error) {
		var c domain.Company
		err := row.Scan(&c.CompanyID, &c.Name, &c.CurrencyCode, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan company rows: %w", err)
	}
	return companies, nil
}

func (r *PgxDirectoryRepository) FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	var p domain.Partner
	err := r.DB.QueryRow(ctx, `
		SELECT partner_id, name, email, created_at, created_by, last_updated_at, last_updated_by
		FROM partners WHERE partner_id = $1;`, partnerID).Scan(
		&p.PartnerID, &p.Name, &p.Email, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "partner", partnerID)
	}
	return &p, nil
}

func (r *PgxDirectoryRepository) ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.Query(ctx, `
		SELECT partner_id, name, email, created_at, created_by, last_updated_at, last_updated_by
		FROM partners ORDER BY name, partner_id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	partners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Partner, error) {
		var p domain.Partner
		err := row.Scan(&p.PartnerID, &p.Name, &p.Email, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partner rows: %w", err)
	}
	return partners, nil
}

func (r *PgxDirectoryRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(ctx, `
		SELECT user_id, name, login, created_at, created_by, last_updated_at, last_updated_by
		FROM users WHERE user_id = $1;`, userID).Scan(
		&u.UserID, &u.Name, &u.Login, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "user", userID)
	}
	return &u, nil
}

func (r *PgxDirectoryRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.Query(ctx, `
		SELECT user_id, name, login, created_at, created_by, last_updated_at, last_updated_by
		FROM users ORDER BY name, user_id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.UserID, &u.Name, &u.Login, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan user rows: %w", err)
	}
	return users, nil
}

func (r *PgxDirectoryRepository) SaveCompany(ctx context.Context, company *domain.Company) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO companies (name, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING company_id;`,
		company.Name, company.CurrencyCode, company.CreatedAt, company.CreatedBy, company.LastUpdatedAt, company.LastUpdatedBy,
	).Scan(&company.CompanyID)
	if err != nil {
		return writeError(err, "save company")
	}
	return nil
}

func (r *PgxDirectoryRepository) SavePartner(ctx context.Context, partner *domain.Partner) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO partners (name, email, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING partner_id;`,
		partner.Name, partner.Email, partner.CreatedAt, partner.CreatedBy, partner.LastUpdatedAt, partner.LastUpdatedBy,
	).Scan(&partner.PartnerID)
	if err != nil {
		return writeError(err, "save partner")
	}
	return nil
}

func (r *PgxDirectoryRepository) SaveUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO users (name, login, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING user_id;`,
		user.Name, user.Login, user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	).Scan(&user.UserID)
	if err != nil {
		return writeError(err, "save user")
	}
	return nil
}
