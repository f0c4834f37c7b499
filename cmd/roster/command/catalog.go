package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/roster/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the metric catalog",
	Long:  "The catalog command prints every category and its bands in display order",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printCatalog) },
}

func printCatalog(c *catalog.Catalog) error {
	for _, category := range c.Categories() {
		fmt.Printf("%s\n", category.Name)
		for _, band := range category.Bands {
			fmt.Printf("  %s\t%s\tgoal %d\n", band.Label, describe(band), band.Goal)
		}
		if category.IntakeSlotsNeeded > 0 {
			fmt.Printf("  intake slots needed: %d\n", category.IntakeSlotsNeeded)
		}
	}
	return nil
}

func describe(band catalog.Band) string {
	switch band.Condition {
	case catalog.ConditionLessThan:
		if band.Threshold != nil {
			return fmt.Sprintf("< %d", *band.Threshold)
		}
	case catalog.ConditionGreaterThan:
		if band.Threshold != nil {
			return fmt.Sprintf("> %d", *band.Threshold)
		}
	case catalog.ConditionBetween:
		if band.Min != nil && band.Max != nil {
			return fmt.Sprintf("%d..%d", *band.Min, *band.Max)
		}
	}
	return string(band.Condition)
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
