package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/roster/errors"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/report"
	"github.com/tidepool-org/roster/roster"
)

func (h *Handler) GetCatalog(ec echo.Context) error {
	return ec.JSON(http.StatusOK, Catalog{Categories: h.catalog.Categories()})
}

func (h *Handler) CreateSession(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.sessions.Create(ctx)
	if err != nil {
		return err
	}
	ActiveSessions.Set(float64(h.sessions.Len()))

	return ec.JSON(http.StatusCreated, NewSessionDto(session))
}

func (h *Handler) GetSession(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewSessionDto(session))
}

func (h *Handler) DeleteSession(ec echo.Context) error {
	if !h.sessions.Remove(ec.Param("sessionId")) {
		return roster.ErrSessionNotFound
	}
	ActiveSessions.Set(float64(h.sessions.Len()))

	return ec.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPatients(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientsDto(session.Visible(), session.Catalog()))
}

func (h *Handler) GetSummary(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	visible := session.Visible()
	return ec.JSON(http.StatusOK, Summary{
		Filter:     session.Filter(),
		Patients:   len(visible),
		Categories: roster.Summarize(visible, session.Catalog()),
	})
}

func (h *Handler) GetReport(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	file, err := report.New(session.Catalog()).Generate(session.Visible())
	if err != nil {
		return fmt.Errorf("%w: unable to generate report: %w", errors.InternalServerError, err)
	}

	buf := &bytes.Buffer{}
	if err := file.Write(buf); err != nil {
		return fmt.Errorf("%w: unable to write report: %w", errors.InternalServerError, err)
	}

	ec.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "roster.xlsx"))
	return ec.Blob(http.StatusOK, report.ContentType, buf.Bytes())
}

func (h *Handler) ListTagNames(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, patients.DistinctTagNames(session.Patients()))
}

func (h *Handler) SetScope(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := ScopeUpdate{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	scope, err := roster.ParseScope(dto.Scope)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, session.SetScope(scope))
}

func (h *Handler) SetSearchText(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := SearchUpdate{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, session.SetSearchText(dto.SearchText))
}

// SelectBand toggles the band. References to unknown categories or bands are
// stored and select every patient.
func (h *Handler) SelectBand(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := BandSelection{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, session.SelectBand(dto.Category, dto.Label))
}

func (h *Handler) ClearBand(ec echo.Context) error {
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, session.ClearBand())
}
