package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/application/inventory"
)

// StockHandler maneja el libro de movimientos y los saldos derivados.
type StockHandler struct {
	register *inventory.RegisterMovementUseCase
	stock    *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(register *inventory.RegisterMovementUseCase, stock *inventory.StockUseCase) *StockHandler {
	return &StockHandler{register: register, stock: stock}
}

// CreateMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  in: target_warehouse_id; out: source_warehouse_id; transfer: ambos y distintos.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/movements [post]
func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.register.RegisterMovement(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/movements/{id} [get]
func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.GetMovement(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (orden de inserción)
// @Tags         stock
// @Produce      json
// @Param        product_id    query  int  false  "Filtrar por producto"
// @Param        warehouse_id  query  int  false  "Filtrar por bodega (origen o destino)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	q, err := stockQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.ListMovements(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balances godoc
// @Summary      Saldos por producto y bodega
// @Description  Se recalculan desde el libro; pueden ser negativos.
// @Tags         stock
// @Produce      json
// @Param        product_id    query  int  false  "Filtrar por producto"
// @Param        warehouse_id  query  int  false  "Filtrar por bodega (origen o destino)"
// @Success      200  {array}   dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/balances [get]
func (h *StockHandler) Balances(c *fiber.Ctx) error {
	q, err := stockQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.Balances(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BalanceReport godoc
// @Summary      Reporte PDF de saldos
// @Tags         stock
// @Produce      application/pdf
// @Param        product_id    query  int  false  "Filtrar por producto"
// @Param        warehouse_id  query  int  false  "Filtrar por bodega"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/balances/report [get]
func (h *StockHandler) BalanceReport(c *fiber.Ctx) error {
	q, err := stockQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.stock.BalanceReport(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-balances.pdf"`)
	return c.Send(doc)
}
