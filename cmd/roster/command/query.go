package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/roster"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "List the patients matching a filter",
	Long:  "The query command applies a scope, search text and band to the roster and prints the matching patients",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := useFixture(); err != nil {
			return err
		}
		return Run(queryPatients)
	},
}

func queryPatients(repo patients.Repository, c *catalog.Catalog) error {
	f, err := filterState()
	if err != nil {
		return err
	}

	list, err := repo.List(context.TODO())
	if err != nil {
		return err
	}

	result := roster.Query(list, c, f)
	for _, p := range result {
		indicators := make([]string, 0)
		for _, indicator := range roster.Indicators(p, c) {
			indicators = append(indicators, fmt.Sprintf("%s=%d(%s)", indicator.Category, indicator.Total, indicator.Band))
		}
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n", p.Id, p.Name, p.Status, p.Coach, strings.Join(indicators, " "))
	}
	fmt.Printf("Found %v of %v patients\n", len(result), len(list))

	return nil
}

func init() {
	addFilterFlags(queryCmd)
	rootCmd.AddCommand(queryCmd)
}
