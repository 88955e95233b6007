package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

func partnerRow(now time.Time, monthly, breakdown []byte, source, errMsg driver.Value) []driver.Value {
	return []driver.Value{
		"P1", "admin-1", "Ali", "+92300", "ali@example.com", "", "", "",
		"", "", "key-1", nil, nil,
		"active", monthly, source, int64(1200),
		breakdown, now, errMsg, now, now,
	}
}

func TestPartnerRepository_GetPartner(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("encontrado", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		monthly := []byte(`{"2024-05":{"usd":12.5,"pkr":2750,"status":"received","source":"manual"},"2024-04":{"usd":"3","pkr":660,"status":"pending","source":"api","impressions":10}}`)
		breakdown := []byte(`[{"countryCode":"US","impressions":500,"revenue":1.25}]`)

		mock.ExpectQuery(`SELECT (.+) FROM partners WHERE id = \$1 AND admin_id = \$2`).
			WithArgs("P1", "admin-1").
			WillReturnRows(sqlmock.NewRows(partnerColumnNames).
				AddRow(partnerRow(now, monthly, breakdown, "api_synced", nil)...))

		partner, err := repo.GetPartner(ctx, "admin-1", "P1")
		require.NoError(t, err)
		require.NotNil(t, partner)

		assert.Equal(t, "Ali", partner.Name)
		assert.Equal(t, domain.AccountActive, partner.AccountStatus)
		assert.Equal(t, domain.RevenueSourceAPISynced, partner.RevenueSource)
		assert.Nil(t, partner.APIErrorMessage)
		assert.Nil(t, partner.AccountCreation)
		assert.Equal(t, int64(1200), *partner.APITotalImpressions)
		assert.Equal(t, now, *partner.LastAPICheck)

		require.Len(t, partner.MonthlyRevenue, 2)
		may := partner.MonthlyRevenue["2024-05"]
		assert.True(t, may.USD.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, domain.PaymentReceived, may.Status)
		assert.Nil(t, may.Impressions)
		assert.Equal(t, int64(10), *partner.MonthlyRevenue["2024-04"].Impressions)

		require.Len(t, partner.APICountryBreakdown, 1)
		assert.Equal(t, "US", partner.APICountryBreakdown[0].CountryCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("colunas nulas", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM partners`).
			WillReturnRows(sqlmock.NewRows(partnerColumnNames).
				AddRow(partnerRow(now, []byte(`{}`), nil, nil, "falhou")...))

		partner, err := repo.GetPartner(ctx, "admin-1", "P1")
		require.NoError(t, err)

		assert.Equal(t, domain.RevenueSourceNone, partner.RevenueSource)
		assert.NotNil(t, partner.MonthlyRevenue)
		assert.Empty(t, partner.MonthlyRevenue)
		assert.Nil(t, partner.APICountryBreakdown)
		assert.Equal(t, "falhou", *partner.APIErrorMessage)
	})

	t.Run("não encontrado", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM partners`).WillReturnError(sql.ErrNoRows)

		partner, err := repo.GetPartner(ctx, "admin-1", "P404")
		assert.NoError(t, err)
		assert.Nil(t, partner)
	})
}

func TestPartnerRepository_ListPartners(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewPartnerRepository(conn)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM partners WHERE admin_id = \$1 ORDER BY created_at DESC`).
		WithArgs("admin-1").
		WillReturnRows(sqlmock.NewRows(partnerColumnNames).
			AddRow(partnerRow(now, []byte(`{}`), nil, "manual", nil)...).
			AddRow(partnerRow(now, []byte(`{}`), nil, nil, nil)...))

	partners, err := repo.ListPartners(context.Background(), "admin-1")

	require.NoError(t, err)
	assert.Len(t, partners, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerRepository_ListPartnersWithAPIKey(t *testing.T) {
	ctx := context.Background()

	t.Run("por admin", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT id, admin_id, name FROM partners WHERE adsterra_api_key <> \$1 AND admin_id = \$2`).
			WithArgs("", "admin-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "name"}).
				AddRow("P1", "admin-1", "Ali").
				AddRow("P2", "admin-1", "Sara"))

		refs, err := repo.ListPartnersWithAPIKey(ctx, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, []domain.PartnerRef{
			{ID: "P1", AdminID: "admin-1", Name: "Ali"},
			{ID: "P2", AdminID: "admin-1", Name: "Sara"},
		}, refs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("todos os admins", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT id, admin_id, name FROM partners WHERE adsterra_api_key <> \$1 ORDER BY`).
			WithArgs("").
			WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "name"}).AddRow("P9", "admin-2", "Omar"))

		refs, err := repo.ListAllPartnersWithAPIKey(ctx)

		require.NoError(t, err)
		assert.Len(t, refs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPartnerRepository_EmailExists(t *testing.T) {
	ctx := context.Background()

	t.Run("existe em outro parceiro", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT 1 FROM partners WHERE admin_id = \$1 AND lower\(email\) = \$2 AND id <> \$3 LIMIT 1`).
			WithArgs("admin-1", "ali@example.com", "P1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		exists, err := repo.EmailExists(ctx, "admin-1", "Ali@Example.com", "P1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("não existe", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`SELECT 1 FROM partners`).
			WithArgs("admin-1", "novo@example.com").
			WillReturnError(sql.ErrNoRows)

		exists, err := repo.EmailExists(ctx, "admin-1", "novo@example.com", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestPartnerRepository_CreatePartner(t *testing.T) {
	ctx := context.Background()
	partner := &domain.Partner{
		ID:            "P1",
		AdminID:       "admin-1",
		Name:          "Ali",
		Mobile:        "+92300",
		Email:         "ali@example.com",
		AccountStatus: domain.AccountActive,
		PartnerRevenueState: domain.PartnerRevenueState{
			RevenueSource: domain.RevenueSourceAPILoading,
		},
	}

	t.Run("sucesso", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)
		now := time.Now().UTC()

		mock.ExpectQuery(`INSERT INTO partners (.+) RETURNING created_at, updated_at`).
			WithArgs("P1", "admin-1", "Ali", "+92300", "ali@example.com", "", "", "",
				"", "", "", nil, nil, "active", jsonArg(`{}`), "api_loading").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreatePartner(ctx, partner))
		assert.Equal(t, now, partner.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email duplicado", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectQuery(`INSERT INTO partners`).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "partners_admin_email_unique"})

		err := repo.CreatePartner(ctx, partner)
		assert.True(t, errors.Is(err, ErrDuplicated))
	})
}

func TestPartnerRepository_UpdateRevenueState(t *testing.T) {
	ctx := context.Background()
	checkedAt := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("escreve todos os campos em um único UPDATE", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		impressions := int64(350)
		msg := "Países: HTTP 500: erro"
		update := domain.RevenueStateUpdate{
			MonthlyRevenue: domain.MonthlyRevenue{
				"2024-05": {USD: decimal.RequireFromString("3.33"), PKR: decimal.RequireFromString("732.6"), Status: domain.PaymentPending, Source: domain.SourceAPI, Impressions: &impressions},
			},
			APITotalImpressions: &impressions,
			SetCountryBreakdown: true,
			RevenueSource:       domain.RevenueSourceAPISynced,
			APIErrorMessage:     &msg,
			LastAPICheck:        checkedAt,
		}

		mock.ExpectExec(`UPDATE partners SET revenue_source = \$1, api_error_message = \$2, last_api_check = \$3, monthly_revenue = \$4, api_total_impressions = \$5, api_country_breakdown = \$6, updated_at = NOW\(\) WHERE id = \$7 AND admin_id = \$8`).
			WithArgs(
				"api_synced",
				msg,
				checkedAt,
				jsonArg(`{"2024-05":{"usd":3.33,"pkr":732.6,"status":"pending","source":"api","impressions":350}}`),
				int64(350),
				jsonArg(`[]`),
				"P1",
				"admin-1",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRevenueState(ctx, "admin-1", "P1", update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha de série mantém mapa e impressões", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		msg := "Série mensal: HTTP 401: Invalid API key"
		update := domain.RevenueStateUpdate{
			RevenueSource:   domain.RevenueSourceAPIError,
			APIErrorMessage: &msg,
			LastAPICheck:    checkedAt,
		}

		mock.ExpectExec(`UPDATE partners SET revenue_source = \$1, api_error_message = \$2, last_api_check = \$3, updated_at = NOW\(\) WHERE id = \$4 AND admin_id = \$5`).
			WithArgs("api_error", msg, checkedAt, "P1", "admin-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRevenueState(ctx, "admin-1", "P1", update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("origem vazia grava NULL", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectExec(`UPDATE partners SET revenue_source`).
			WithArgs(nil, nil, checkedAt, "P1", "admin-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRevenueState(ctx, "admin-1", "P1", domain.RevenueStateUpdate{LastAPICheck: checkedAt})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("parceiro inexistente", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewPartnerRepository(conn)

		mock.ExpectExec(`UPDATE partners`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRevenueState(ctx, "admin-1", "P404", domain.RevenueStateUpdate{LastAPICheck: checkedAt})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPartnerRepository_DeleteAndStatus(t *testing.T) {
	ctx := context.Background()
	conn, mock := newMockDB(t)
	repo := NewPartnerRepository(conn)

	mock.ExpectExec(`DELETE FROM partners WHERE id = \$1 AND admin_id = \$2`).
		WithArgs("P1", "admin-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE partners SET account_status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND admin_id = \$3`).
		WithArgs("suspended", "P2", "admin-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE partners SET monthly_revenue = \$1, revenue_source = \$2`).
		WithArgs(jsonArg(`{}`), nil, "P3", "admin-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeletePartner(ctx, "admin-1", "P1"))
	require.NoError(t, repo.UpdateAccountStatus(ctx, "admin-1", "P2", domain.AccountSuspended))
	require.NoError(t, repo.UpdateMonthlyRevenue(ctx, "admin-1", "P3", nil, domain.RevenueSourceNone))
	assert.NoError(t, mock.ExpectationsWereMet())
}
