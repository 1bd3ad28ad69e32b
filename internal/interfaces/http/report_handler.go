package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"almacen/internal/application/dto"
	"almacen/internal/application/usecase"
)

// ReportHandler maneja el informe general de inventario (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// General godoc
// @Summary      Informe general agregado (JSON)
// @Description  Reconstrucción de stock inicial/final por artículo, agrupada por
//
//	categoría con subtotales y total general. from/to opcionales (YYYY-MM-DD).
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inicio de ventana (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin de ventana (YYYY-MM-DD)"
// @Success      200   {object}  dto.GeneralReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/report/general [get]
func (h *ReportHandler) General(c *fiber.Ctx) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser YYYY-MM-DD"})
	}
	out, err := h.uc.General(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GeneralPDF godoc
// @Summary      Informe general en PDF (descarga)
// @Description  Si la consulta o el render fallan se responde un error JSON:
//
//	nunca se entrega un documento parcial o corrupto.
//
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Inicio de ventana (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin de ventana (YYYY-MM-DD)"
// @Success      200   {file}    binary
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/report/general/pdf [get]
func (h *ReportHandler) GeneralPDF(c *fiber.Ctx) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser YYYY-MM-DD"})
	}
	pdfBytes, err := h.uc.GeneralPDF(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "informe-general-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func parseWindow(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, perr
		}
		// fin de ventana inclusivo: hasta el último instante del día
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to, nil
}
