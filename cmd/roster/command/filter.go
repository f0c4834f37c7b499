package command

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/roster/config"
	"github.com/tidepool-org/roster/roster"
)

var filterParams = struct {
	Fixture  string
	Scope    string
	Search   string
	Category string
	Band     string
}{}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterParams.Fixture, "fixture", "", "Load patients from a YAML or JSON file instead of the configured source")
	cmd.Flags().StringVar(&filterParams.Scope, "scope", string(roster.ScopeActive), "Scope of the roster (ActiveList, AllList or ArchivedList)")
	cmd.Flags().StringVar(&filterParams.Search, "search", "", "Search text matched against name, coach, therapist and group")
	cmd.Flags().StringVar(&filterParams.Category, "category", "", "Category of the selected band")
	cmd.Flags().StringVar(&filterParams.Band, "band", "", "Label of the selected band")
}

// useFixture points the patients source at the fixture file before the
// dependency graph reads the configuration.
func useFixture() error {
	if filterParams.Fixture == "" {
		return nil
	}
	if err := os.Setenv("ROSTER_PATIENTS_SOURCE", config.PatientsSourceFixture); err != nil {
		return err
	}
	return os.Setenv("ROSTER_FIXTURE_PATH", filterParams.Fixture)
}

func filterState() (roster.FilterState, error) {
	scope, err := roster.ParseScope(filterParams.Scope)
	if err != nil {
		return roster.FilterState{}, err
	}

	f := roster.NewFilterState().
		WithScope(scope).
		WithSearchText(filterParams.Search)
	if filterParams.Category != "" || filterParams.Band != "" {
		f = f.SelectBand(filterParams.Category, filterParams.Band)
	}
	return f, nil
}
