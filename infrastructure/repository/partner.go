package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/partner-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

const (
	partnersTable = "partners"

	partnerColumns = "id, admin_id, name, mobile, email, address, webmoney, multi_account_no, " +
		"adsterra_link, adsterra_email_link, adsterra_api_key, account_creation, account_start, " +
		"account_status, monthly_revenue, revenue_source, api_total_impressions, " +
		"api_country_breakdown, last_api_check, api_error_message, created_at, updated_at"

	uniqueViolation = "23505"
)

var (
	// ErrNotFound indica que nenhuma linha do admin corresponde ao id
	ErrNotFound = errors.New("registro não encontrado")
	// ErrDuplicated indica violação de unicidade (email por admin)
	ErrDuplicated = errors.New("registro duplicado")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=partner.go -destination=mocks/partner.go -package=mocks
type PartnerRepository interface {
	GetPartner(ctx context.Context, adminID, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, adminID string) ([]*domain.Partner, error)
	ListPartnersWithAPIKey(ctx context.Context, adminID string) ([]domain.PartnerRef, error)
	ListAllPartnersWithAPIKey(ctx context.Context) ([]domain.PartnerRef, error)
	EmailExists(ctx context.Context, adminID, email, excludeID string) (bool, error)
	CreatePartner(ctx context.Context, partner *domain.Partner) error
	UpdatePartner(ctx context.Context, partner *domain.Partner) error
	DeletePartner(ctx context.Context, adminID, partnerID string) error
	UpdateAccountStatus(ctx context.Context, adminID, partnerID string, status domain.AccountStatus) error
	UpdateMonthlyRevenue(ctx context.Context, adminID, partnerID string, monthly domain.MonthlyRevenue, source domain.RevenueSource) error
	UpdateRevenueState(ctx context.Context, adminID, partnerID string, update domain.RevenueStateUpdate) error
}

type partnerRepository struct {
	db postgres.Queryer
}

// NewPartnerRepository aceita a conexão ou uma transação
func NewPartnerRepository(db postgres.Queryer) PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

func (r *partnerRepository) GetPartner(ctx context.Context, adminID, partnerID string) (*domain.Partner, error) {
	query, args, err := squirrel.
		Select(partnerColumns).
		From(partnersTable).
		Where(squirrel.Eq{"id": partnerID}).
		Where(squirrel.Eq{"admin_id": adminID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	partner, err := scanPartner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
	}

	return partner, nil
}

func (r *partnerRepository) ListPartners(ctx context.Context, adminID string) ([]*domain.Partner, error) {
	query, args, err := squirrel.
		Select(partnerColumns).
		From(partnersTable).
		Where(squirrel.Eq{"admin_id": adminID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	partners := make([]*domain.Partner, 0)
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
		}
		partners = append(partners, partner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return partners, nil
}

func (r *partnerRepository) ListPartnersWithAPIKey(ctx context.Context, adminID string) ([]domain.PartnerRef, error) {
	return r.listRefs(ctx, squirrel.Eq{"admin_id": adminID})
}

func (r *partnerRepository) ListAllPartnersWithAPIKey(ctx context.Context) ([]domain.PartnerRef, error) {
	return r.listRefs(ctx, nil)
}

func (r *partnerRepository) listRefs(ctx context.Context, filter squirrel.Sqlizer) ([]domain.PartnerRef, error) {
	builder := squirrel.
		Select("id, admin_id, name").
		From(partnersTable).
		Where(squirrel.NotEq{"adsterra_api_key": ""}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.PartnerRef, 0)
	for rows.Next() {
		var ref domain.PartnerRef
		if err := rows.Scan(&ref.ID, &ref.AdminID, &ref.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return refs, nil
}

func (r *partnerRepository) EmailExists(ctx context.Context, adminID, email, excludeID string) (bool, error) {
	builder := squirrel.
		Select("1").
		From(partnersTable).
		Where(squirrel.Eq{"admin_id": adminID}).
		Where(squirrel.Expr("lower(email) = ?", strings.ToLower(email))).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}

	return true, nil
}

func (r *partnerRepository) CreatePartner(ctx context.Context, p *domain.Partner) error {
	monthlyJSON, err := marshalMonthly(p.MonthlyRevenue)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(partnersTable).
		Columns(
			"id", "admin_id", "name", "mobile", "email", "address", "webmoney", "multi_account_no",
			"adsterra_link", "adsterra_email_link", "adsterra_api_key", "account_creation", "account_start",
			"account_status", "monthly_revenue", "revenue_source",
		).
		Values(
			p.ID, p.AdminID, p.Name, p.Mobile, p.Email, p.Address, p.Webmoney, p.MultiAccountNo,
			p.AdsterraLink, p.AdsterraEmailLink, p.AdsterraAPIKey, p.AccountCreation, p.AccountStart,
			p.AccountStatus, monthlyJSON, nullableSource(p.RevenueSource),
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return wrapPQError(err)
	}

	return nil
}

func (r *partnerRepository) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	monthlyJSON, err := marshalMonthly(p.MonthlyRevenue)
	if err != nil {
		return err
	}

	builder := squirrel.
		Update(partnersTable).
		Set("name", p.Name).
		Set("mobile", p.Mobile).
		Set("email", p.Email).
		Set("address", p.Address).
		Set("webmoney", p.Webmoney).
		Set("multi_account_no", p.MultiAccountNo).
		Set("adsterra_link", p.AdsterraLink).
		Set("adsterra_email_link", p.AdsterraEmailLink).
		Set("adsterra_api_key", p.AdsterraAPIKey).
		Set("account_creation", p.AccountCreation).
		Set("account_start", p.AccountStart).
		Set("monthly_revenue", monthlyJSON).
		Set("revenue_source", nullableSource(p.RevenueSource)).
		Set("last_api_check", p.LastAPICheck).
		Set("api_error_message", p.APIErrorMessage).
		Set("updated_at", squirrel.Expr("NOW()"))

	return r.execUpdate(ctx, builder, p.AdminID, p.ID)
}

func (r *partnerRepository) DeletePartner(ctx context.Context, adminID, partnerID string) error {
	query, args, err := squirrel.
		Delete(partnersTable).
		Where(squirrel.Eq{"id": partnerID}).
		Where(squirrel.Eq{"admin_id": adminID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *partnerRepository) UpdateAccountStatus(ctx context.Context, adminID, partnerID string, status domain.AccountStatus) error {
	builder := squirrel.
		Update(partnersTable).
		Set("account_status", status).
		Set("updated_at", squirrel.Expr("NOW()"))

	return r.execUpdate(ctx, builder, adminID, partnerID)
}

func (r *partnerRepository) UpdateMonthlyRevenue(ctx context.Context, adminID, partnerID string, monthly domain.MonthlyRevenue, source domain.RevenueSource) error {
	monthlyJSON, err := marshalMonthly(monthly)
	if err != nil {
		return err
	}

	builder := squirrel.
		Update(partnersTable).
		Set("monthly_revenue", monthlyJSON).
		Set("revenue_source", nullableSource(source)).
		Set("updated_at", squirrel.Expr("NOW()"))

	return r.execUpdate(ctx, builder, adminID, partnerID)
}

// UpdateRevenueState grava o resultado de uma reconciliação em um único UPDATE
func (r *partnerRepository) UpdateRevenueState(ctx context.Context, adminID, partnerID string, u domain.RevenueStateUpdate) error {
	builder := squirrel.
		Update(partnersTable).
		Set("revenue_source", nullableSource(u.RevenueSource)).
		Set("api_error_message", u.APIErrorMessage).
		Set("last_api_check", u.LastAPICheck)

	if u.MonthlyRevenue != nil {
		monthlyJSON, err := marshalMonthly(u.MonthlyRevenue)
		if err != nil {
			return err
		}
		builder = builder.Set("monthly_revenue", monthlyJSON)
	}

	if u.APITotalImpressions != nil {
		builder = builder.Set("api_total_impressions", *u.APITotalImpressions)
	}

	if u.SetCountryBreakdown {
		countries := u.APICountryBreakdown
		if countries == nil {
			countries = []domain.CountryStat{}
		}
		breakdownJSON, err := json.Marshal(countries)
		if err != nil {
			return fmt.Errorf("erro ao serializar ranking de países: %w", err)
		}
		builder = builder.Set("api_country_breakdown", breakdownJSON)
	}

	builder = builder.Set("updated_at", squirrel.Expr("NOW()"))

	return r.execUpdate(ctx, builder, adminID, partnerID)
}

func (r *partnerRepository) execUpdate(ctx context.Context, builder squirrel.UpdateBuilder, adminID, partnerID string) error {
	query, args, err := builder.
		Where(squirrel.Eq{"id": partnerID}).
		Where(squirrel.Eq{"admin_id": adminID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *partnerRepository) execAffectingOne(ctx context.Context, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPQError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPartner(row rowScanner) (*domain.Partner, error) {
	var (
		p                domain.Partner
		accountCreation  sql.NullTime
		accountStart     sql.NullTime
		monthlyJSON      []byte
		revenueSource    sql.NullString
		totalImpressions sql.NullInt64
		breakdownJSON    []byte
		lastAPICheck     sql.NullTime
		apiErrorMessage  sql.NullString
	)

	if err := row.Scan(
		&p.ID,
		&p.AdminID,
		&p.Name,
		&p.Mobile,
		&p.Email,
		&p.Address,
		&p.Webmoney,
		&p.MultiAccountNo,
		&p.AdsterraLink,
		&p.AdsterraEmailLink,
		&p.AdsterraAPIKey,
		&accountCreation,
		&accountStart,
		&p.AccountStatus,
		&monthlyJSON,
		&revenueSource,
		&totalImpressions,
		&breakdownJSON,
		&lastAPICheck,
		&apiErrorMessage,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.MonthlyRevenue = domain.MonthlyRevenue{}
	if len(monthlyJSON) > 0 {
		if err := json.Unmarshal(monthlyJSON, &p.MonthlyRevenue); err != nil {
			return nil, fmt.Errorf("erro ao deserializar monthly_revenue: %w", err)
		}
		if p.MonthlyRevenue == nil {
			p.MonthlyRevenue = domain.MonthlyRevenue{}
		}
	}

	if len(breakdownJSON) > 0 {
		if err := json.Unmarshal(breakdownJSON, &p.APICountryBreakdown); err != nil {
			return nil, fmt.Errorf("erro ao deserializar api_country_breakdown: %w", err)
		}
	}

	p.AccountCreation = timePtr(accountCreation)
	p.AccountStart = timePtr(accountStart)
	p.LastAPICheck = timePtr(lastAPICheck)
	p.RevenueSource = domain.RevenueSource(revenueSource.String)
	if totalImpressions.Valid {
		v := totalImpressions.Int64
		p.APITotalImpressions = &v
	}
	if apiErrorMessage.Valid {
		v := apiErrorMessage.String
		p.APIErrorMessage = &v
	}

	return &p, nil
}

func marshalMonthly(monthly domain.MonthlyRevenue) ([]byte, error) {
	if monthly == nil {
		monthly = domain.MonthlyRevenue{}
	}
	data, err := json.Marshal(monthly)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar monthly_revenue: %w", err)
	}
	return data, nil
}

func nullableSource(source domain.RevenueSource) sql.NullString {
	return sql.NullString{String: string(source), Valid: source != domain.RevenueSourceNone}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func wrapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicated, pqErr.Constraint)
		}
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
