package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
)

func (h *Handler) AdmitPatient(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := patients.Patient{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	patient, err := session.Admit(ctx, dto)
	if err != nil {
		return err
	}
	TrackPatientMutation("admit")

	return ec.JSON(http.StatusCreated, NewPatientDto(*patient, session.Catalog()))
}

func (h *Handler) ToggleStatus(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	patient, err := session.ToggleStatus(ctx, ec.Param("patientId"))
	return h.mutated(ec, session.Catalog(), "toggleStatus", patient, err)
}

func (h *Handler) AddTag(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := NewTag{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	priority, err := patients.ParsePriority(dto.Priority)
	if err != nil {
		return err
	}
	tag := patients.Tag{Name: dto.Name, Priority: priority}
	if err := patients.ValidateTag(tag); err != nil {
		return err
	}

	patient, err := session.AddTag(ctx, ec.Param("patientId"), tag)
	return h.mutated(ec, session.Catalog(), "addTag", patient, err)
}

func (h *Handler) RemoveTag(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	patient, err := session.RemoveTag(ctx, ec.Param("patientId"), ec.Param("name"))
	return h.mutated(ec, session.Catalog(), "removeTag", patient, err)
}

func (h *Handler) Assign(ec echo.Context) error {
	ctx := ec.Request().Context()
	session, err := h.session(ec)
	if err != nil {
		return err
	}

	dto := patients.Assignment{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	patient, err := session.Assign(ctx, ec.Param("patientId"), dto)
	return h.mutated(ec, session.Catalog(), "assign", patient, err)
}

// mutated writes the updated patient. Mutations of unknown patients are no-ops
// and respond without content.
func (h *Handler) mutated(ec echo.Context, c *catalog.Catalog, operation string, patient *patients.Patient, err error) error {
	if err != nil {
		return err
	}
	if patient == nil {
		h.logger.Debugw("ignored mutation of unknown patient", "operation", operation, "patientId", ec.Param("patientId"))
		return ec.NoContent(http.StatusNoContent)
	}
	TrackPatientMutation(operation)

	return ec.JSON(http.StatusOK, NewPatientDto(*patient, c))
}
