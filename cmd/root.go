package cmd

import (
	"fmt"
	"os"

	"backoffice/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Back Office Dashboard Service",
	Long: `Back Office serves the operations dashboard of the agency business:
searchable and sortable list pages over the operational data, plus the
commission reconciliation that nets what each agency is owed against what
was already paid out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level so CLI errors come out readable
		// with ISO8601 timestamps instead of the JSON/epoch production shape.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
