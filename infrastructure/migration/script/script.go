package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/revenue"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	"github.com/vfg2006/partner-revenue-api/pkg/log"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

var requiredColumns = []string{"name", "mobile", "email"}

type importRow struct {
	Line    int
	Request *domain.PartnerRequest
}

func main() {
	filePath := flag.String("file", "", "CSV com os parceiros a importar")
	adminID := flag.String("admin", "", "admin dono dos parceiros importados")
	schemaOnly := flag.Bool("schema-only", false, "apenas aplica o schema, sem importar")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	utils.UseNumericMoneyJSON()

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}
	logrus.Info("Schema aplicado com sucesso")

	if *schemaOnly {
		return
	}

	if *filePath == "" || *adminID == "" {
		logrus.Fatal("Informe -file e -admin para importar parceiros")
	}

	file, err := os.Open(*filePath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir CSV")
	}
	defer file.Close()

	rows, err := parsePartnersCSV(file)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler CSV")
	}

	converter := revenue.NewConverter(decimal.NewFromFloat(cfg.Currency.PKRRate))
	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		service := partnering.NewService(repository.NewPartnerRepository(tx), converter, nil)
		return importPartners(ctx, service, *adminID, rows)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Importação cancelada, nenhuma linha foi gravada")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": *adminID,
		"partners": len(rows),
		"elapsed":  time.Since(startTime).String(),
	}).Info("Importação concluída")
}

// importPartners cria os parceiros em ordem e para na primeira falha
func importPartners(ctx context.Context, service partnering.PartnerService, adminID string, rows []importRow) error {
	for i, row := range rows {
		partner, err := service.CreatePartner(ctx, adminID, row.Request)
		if err != nil {
			return fmt.Errorf("linha %d (%s): %w", row.Line, row.Request.Email, err)
		}

		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d parceiros importados", i+1, len(rows))
		}
		logrus.WithFields(logrus.Fields{
			"partner_id":   partner.ID,
			"partner_name": partner.Name,
		}).Debug("Parceiro importado")
	}
	return nil
}

// parsePartnersCSV lê o CSV pelo cabeçalho; a ordem das colunas é livre
func parsePartnersCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV vazio")
		}
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", name)
		}
	}

	var rows []importRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		req := &domain.PartnerRequest{
			Name:              field("name"),
			Mobile:            field("mobile"),
			Email:             field("email"),
			Address:           field("address"),
			Webmoney:          field("webmoney"),
			MultiAccountNo:    field("multi_account_no"),
			AdsterraLink:      field("adsterra_link"),
			AdsterraEmailLink: field("adsterra_email_link"),
			AdsterraAPIKey:    field("adsterra_api_key"),
			RevenuePeriod:     field("revenue_period"),
			PaymentStatus:     domain.PaymentStatus(field("payment_status")),
		}

		if raw := field("revenue_usd"); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("linha %d: revenue_usd inválido %q", line, raw)
			}
			req.RevenueUSD = &amount
		}

		rows = append(rows, importRow{Line: line, Request: req})
	}

	return rows, nil
}
