package api

import (
	"time"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/roster"
)

type Session struct {
	Id          string             `json:"id"`
	CreatedTime time.Time          `json:"createdTime"`
	Filter      roster.FilterState `json:"filter"`
	Patients    int                `json:"patients"`
	Visible     int                `json:"visible"`
}

func NewSessionDto(s *roster.Session) Session {
	return Session{
		Id:          s.Id(),
		CreatedTime: s.CreatedTime(),
		Filter:      s.Filter(),
		Patients:    len(s.Patients()),
		Visible:     len(s.Visible()),
	}
}

type Patient struct {
	patients.Patient
	Indicators []roster.Indicator `json:"indicators"`
}

func NewPatientDto(p patients.Patient, c *catalog.Catalog) Patient {
	indicators := roster.Indicators(p, c)
	if indicators == nil {
		indicators = []roster.Indicator{}
	}
	if p.Tags == nil {
		p.Tags = []patients.Tag{}
	}
	return Patient{
		Patient:    p,
		Indicators: indicators,
	}
}

func NewPatientsDto(list []patients.Patient, c *catalog.Catalog) []Patient {
	dtos := make([]Patient, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, NewPatientDto(p, c))
	}
	return dtos
}

type Summary struct {
	Filter     roster.FilterState       `json:"filter"`
	Patients   int                      `json:"patients"`
	Categories []roster.CategorySummary `json:"categories"`
}

type Catalog struct {
	Categories []catalog.Category `json:"categories"`
}

type ScopeUpdate struct {
	Scope string `json:"scope"`
}

type SearchUpdate struct {
	SearchText string `json:"searchText"`
}

type BandSelection struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

type NewTag struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
}
