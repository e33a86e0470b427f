package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/application/usecase"
	"github.com/jhoicas/northwind-api/internal/domain"
)

// EmployeeHandler maneja el listado paginado y ordenable de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        order   query  string  false  "Orden: first_name, last_name o city"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)
	order := c.Query("order")

	out, err := h.uc.List(limit, offset, order)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORDER", Message: "order debe ser first_name, last_name o city"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
