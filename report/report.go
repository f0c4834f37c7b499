package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/roster"
)

const (
	ReportSheetNameRoster  = "Roster"
	ReportSheetNameSummary = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	columnTag = "column"
)

// patientRow holds the fixed columns of the roster sheet. Columns are emitted in
// field order and titled by the column tag.
type patientRow struct {
	Id        string `column:"Id"`
	Name      string `column:"Name"`
	Group     string `column:"Group"`
	Coach     string `column:"Coach"`
	Therapist string `column:"Therapist"`
	Status    string `column:"Status"`
	Tags      string `column:"Tags"`
}

func newPatientRow(p patients.Patient) patientRow {
	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, fmt.Sprintf("%s (%s)", tag.Name, tag.Priority))
	}
	return patientRow{
		Id:        p.Id,
		Name:      p.Name,
		Group:     p.Group,
		Coach:     p.Coach,
		Therapist: p.Therapist,
		Status:    string(p.Status),
		Tags:      strings.Join(tags, ", "),
	}
}

type Report struct {
	catalog     *catalog.Catalog
	createdTime time.Time
}

func New(c *catalog.Catalog) Report {
	return Report{
		catalog:     c,
		createdTime: time.Now().UTC(),
	}
}

func (r Report) CreatedTime() time.Time {
	return r.createdTime
}

// Generate builds a workbook with one row per patient and the band summary of
// the same patients.
func (r Report) Generate(list []patients.Patient) (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File, list []patients.Patient) error{
		r.addRosterSheet,
		r.addSummarySheet,
	}
	for _, fn := range components {
		if err := fn(report, list); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addRosterSheet(report *xlsx.File, list []patients.Patient) error {
	sh, err := report.AddSheet(ReportSheetNameRoster)
	if err != nil {
		return err
	}

	categories := r.catalog.Categories()
	header := sh.AddRow()
	for _, field := range structs.New(patientRow{}).Fields() {
		header.AddCell().SetValue(field.Tag(columnTag))
	}
	for _, category := range categories {
		header.AddCell().SetValue(fmt.Sprintf("%s Total", category.Name))
		header.AddCell().SetValue(fmt.Sprintf("%s Band", category.Name))
		header.AddCell().SetValue(fmt.Sprintf("%s Relation", category.Name))
	}

	for _, p := range list {
		currentRow := sh.AddRow()
		for _, field := range structs.New(newPatientRow(p)).Fields() {
			currentRow.AddCell().SetValue(field.Value())
		}

		indicators := roster.Indicators(p, r.catalog)
		for _, category := range categories {
			indicator, ok := findIndicator(indicators, category.Name)
			if !ok {
				currentRow.AddCell()
				currentRow.AddCell()
				currentRow.AddCell()
				continue
			}
			currentRow.AddCell().SetValue(indicator.Total)
			currentRow.AddCell().SetValue(indicator.Band)
			currentRow.AddCell().SetValue(string(indicator.Relation))
		}
	}

	return nil
}

func findIndicator(indicators []roster.Indicator, category string) (roster.Indicator, bool) {
	for _, indicator := range indicators {
		if indicator.Category == category {
			return indicator, true
		}
	}
	return roster.Indicator{}, false
}

func (r Report) addSummarySheet(report *xlsx.File, list []patients.Patient) error {
	sh, err := report.AddSheet(ReportSheetNameSummary)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue("Summary")
	sh.AddRow()

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Report Generated")
	currentRow.AddCell().SetValue(r.createdTime.Format(time.RFC3339))
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Patients")
	currentRow.AddCell().SetValue(len(list))

	for _, summary := range roster.Summarize(list, r.catalog) {
		sh.AddRow()

		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(fmt.Sprintf("%s ---", summary.Name))
		currentRow.AddCell().SetValue("Goal ---")
		currentRow.AddCell().SetValue("Patients ---")
		currentRow.AddCell().SetValue("Met ---")
		currentRow.AddCell().SetValue("Above ---")
		currentRow.AddCell().SetValue("Below ---")

		for _, band := range summary.Bands {
			currentRow = sh.AddRow()
			currentRow.AddCell().SetValue(band.Band.Label)
			currentRow.AddCell().SetValue(band.Band.Goal)
			currentRow.AddCell().SetValue(band.Count)
			currentRow.AddCell().SetValue(band.Met)
			currentRow.AddCell().SetValue(band.Above)
			currentRow.AddCell().SetValue(band.Below)
		}

		if summary.IntakeSlotsNeeded > 0 {
			currentRow = sh.AddRow()
			currentRow.AddCell().SetValue("Intake Slots Needed")
			currentRow.AddCell().SetValue(summary.IntakeSlotsNeeded)
		}
	}

	return nil
}
