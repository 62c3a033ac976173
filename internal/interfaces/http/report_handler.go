package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/application/report"
)

// ReportHandler reportes de solo lectura (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopCustomers godoc
// @Summary      Top 10 clientes por total facturado en pedidos completados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopCustomerDTO
// @Router       /api/reports/top-customers [get]
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	out, err := h.uc.TopCustomers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopSellers godoc
// @Summary      Top 5 vendedores por total facturado en pedidos completados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopSellerDTO
// @Router       /api/reports/top-sellers [get]
func (h *ReportHandler) TopSellers(c *fiber.Ctx) error {
	out, err := h.uc.TopSellers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
