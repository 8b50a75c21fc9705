package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/david8219501/leader-app-server-08-09-25/internal/api/dto"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
	"github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// ShiftsHandler exposes weekly schedule endpoints, all scoped to the
// authenticated manager.
type ShiftsHandler struct {
	schedule *service.ScheduleService
}

// NewShiftsHandler constructs handler.
func NewShiftsHandler(schedule *service.ScheduleService) *ShiftsHandler {
	return &ShiftsHandler{schedule: schedule}
}

// Create handles POST /shifts. The employee reference is accepted without a
// roster lookup and duplicate slots are allowed.
func (h *ShiftsHandler) Create(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID.IsZero() || util.IsEmpty(req.Day) || util.IsEmpty(req.ShiftType) || util.IsEmpty(req.WeekStartDate) {
		return fiber.NewError(http.StatusBadRequest, "missing details")
	}

	shift, err := h.schedule.CreateShift(c.Context(), principal.ManagerID, req.EmployeeID.String(), req.Day, req.ShiftType, req.WeekStartDate)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      shift.ID,
		"message": "shift saved",
	})
}

// ListWeek handles GET /shifts/:weekStart.
func (h *ShiftsHandler) ListWeek(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	shifts, err := h.schedule.ListWeek(c.Context(), principal.ManagerID, c.Params("weekStart"))
	if err != nil {
		return err
	}
	return c.JSON(shifts)
}

// ClearSlot handles DELETE /shifts/:weekStart/:day/:shiftType. Deleting an
// empty slot succeeds.
func (h *ShiftsHandler) ClearSlot(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.schedule.ClearSlot(c.Context(), principal.ManagerID, c.Params("weekStart"), c.Params("day"), c.Params("shiftType")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "shifts deleted"})
}

// ResetWeek handles DELETE /shifts/:weekStart.
func (h *ShiftsHandler) ResetWeek(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.schedule.ResetWeek(c.Context(), principal.ManagerID, c.Params("weekStart")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "week reset successfully"})
}
