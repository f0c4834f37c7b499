package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/report"
	"github.com/tidepool-org/roster/roster"
)

var exportParams = struct {
	Out string
}{}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the patients matching a filter to a spreadsheet",
	Long:  "The export command writes the roster and band summary of the matching patients to an XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := useFixture(); err != nil {
			return err
		}
		return Run(exportPatients)
	},
}

func exportPatients(repo patients.Repository, c *catalog.Catalog, logger *zap.SugaredLogger) error {
	f, err := filterState()
	if err != nil {
		return err
	}

	list, err := repo.List(context.TODO())
	if err != nil {
		return err
	}

	result := roster.Query(list, c, f)
	file, err := report.New(c).Generate(result)
	if err != nil {
		return err
	}
	if err := file.Save(exportParams.Out); err != nil {
		return fmt.Errorf("unable to save report: %w", err)
	}

	logger.Infow("exported roster", "path", exportParams.Out, "patients", len(result))
	fmt.Printf("Exported %v patients to %s\n", len(result), exportParams.Out)
	return nil
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportParams.Out, "out", "o", "roster.xlsx", "Path of the exported file")
	rootCmd.AddCommand(exportCmd)
}
