package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"backoffice/core/config"
	"backoffice/core/database"
	"backoffice/core/logger"
	"backoffice/core/reconcile"
	"backoffice/feature/commission"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for report commission command
	jsonReport    bool
	onlyOwing     bool
	maxShowAgency int
)

// reportCmd is the parent command for all offline report operations.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate offline dashboard reports",
	Long:  `Generate the dashboard's derived reports directly from the database, without starting the HTTP server.`,
}

// commissionReportCmd runs the commission reconciliation and prints the result.
var commissionReportCmd = &cobra.Command{
	Use:   "commission",
	Short: "Reconcile commission owed vs paid per agency",
	Long: `Runs the commission reconciliation: nets the commission each agency earned
from its customers' orders against the amounts already settled, and reports
the per-agency outstanding balances plus the dashboard summary.

Examples:
  # Human-readable report via the logger
  report commission

  # Machine-readable JSON on stdout
  report commission --json

  # Only agencies with an outstanding balance
  report commission --owing`,
	RunE: runCommissionReport,
}

func init() {
	reportCmd.AddCommand(commissionReportCmd)

	commissionReportCmd.Flags().BoolVar(&jsonReport, "json", false, "Print the report as JSON on stdout")
	commissionReportCmd.Flags().BoolVar(&onlyOwing, "owing", false, "Only include agencies with outstanding balance > 0")
	commissionReportCmd.Flags().IntVar(&maxShowAgency, "max-show", 10, "Max agency lines in logger output (JSON always prints all)")

	RootCmd.AddCommand(reportCmd)
}

// commissionReport is the JSON shape of the offline report.
type commissionReport struct {
	Currency string               `json:"currency"`
	Stats    reconcile.Statistics `json:"stats"`
	Balances []reconcile.Balance  `json:"balances"`
}

func runCommissionReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := commission.NewRepository(db)
	agencies, customers, orders, movements, err := repo.LoadCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}

	report := commissionReport{
		Currency: cfg.Server.Currency,
		Stats:    reconcile.ComputeStatistics(agencies, customers, orders, movements),
		Balances: reconcile.AgencyBalances(agencies, customers, orders, movements),
	}

	if onlyOwing {
		owing := report.Balances[:0]
		for _, b := range report.Balances {
			if b.Outstanding.IsPositive() {
				owing = append(owing, b)
			}
		}
		report.Balances = owing
	}

	if jsonReport {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printCommissionReport(l, report)
	return nil
}

// printCommissionReport prints a formatted reconciliation report using logger.
func printCommissionReport(l *zap.Logger, report commissionReport) {
	l.Info("Commission report",
		zap.String("currency", report.Currency),
		zap.Int("total_agencies", report.Stats.TotalAgencies),
		zap.String("total_outstanding", report.Stats.TotalOutstanding.String()),
	)

	for _, top := range report.Stats.TopAgencies {
		l.Info("Top agency",
			zap.Int64("agency_id", top.ID),
			zap.String("name", top.Name),
			zap.Int("customers", top.Customers),
		)
	}

	maxShow := maxShowAgency
	if len(report.Balances) < maxShow {
		maxShow = len(report.Balances)
	}
	for i := 0; i < maxShow; i++ {
		b := report.Balances[i]
		l.Info("Agency balance",
			zap.Int64("agency_id", b.AgencyID),
			zap.String("name", b.Name),
			zap.Int("customers", b.Customers),
			zap.String("owed", b.Owed.String()),
			zap.String("paid", b.Paid.String()),
			zap.String("outstanding", b.Outstanding.String()),
		)
	}
	if len(report.Balances) > maxShow {
		l.Info("Additional agencies not shown", zap.Int("count", len(report.Balances)-maxShow))
	}
}
