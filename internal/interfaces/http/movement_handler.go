package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"almacen/internal/application/dto"
	"almacen/internal/application/inventory"
	"almacen/internal/domain"
	"almacen/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento (ENTRADA o SALIDA)
// @Description  ENTRADA requiere costo_unidad > 0; SALIDA lo omite y no puede
//
//	exceder el stock vigente del artículo.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "id_articulo, accion, cantidad, costo_unidad (entradas), doc, detalle"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movement [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.Register(c.Context(), inventory.MovementInput{
		ArticleID: in.ArticuloID,
		Action:    in.Accion,
		Quantity:  in.Cantidad,
		UnitCost:  in.CostoUnidad,
		Doc:       in.Doc,
		Detail:    in.Detalle,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListByArticle godoc
// @Summary      Historial de movimientos de un artículo
// @Description  Snapshot fresco en cada consulta, más recientes primero.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movement/articulo/{id} [get]
func (h *MovementHandler) ListByArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movs, err := h.uc.ListByArticle(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ArticuloID:  m.ArticleID,
		Accion:      m.Action,
		Cantidad:    m.Quantity,
		CostoUnidad: m.UnitCost,
		Doc:         m.Doc,
		Detalle:     m.Detail,
		CreatedAt:   m.CreatedAt,
	}
}
