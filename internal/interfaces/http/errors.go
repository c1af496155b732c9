package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal se valida como número (gt, gte, etc.)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindAndValidate parsea el body y aplica las etiquetas validate.
// Si falla ya escribió la respuesta 400 y devuelve false.
func bindAndValidate(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(validationResponse(err))
	}
	return true, nil
}

func validationResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			resp.Fields[fe.Field()] = rule
		}
	}
	return resp
}

// writeError traduce errores de dominio a status HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var nf *domain.NotFoundError
	var inv *domain.InvalidRequestError
	switch {
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: nf.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.As(err, &inv):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: inv.Reason})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	default:
		c.Locals(localError, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// paramID lee un id entero positivo de la ruta.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidRequest("id inválido")
	}
	return id, nil
}

// queryID lee un filtro opcional de query; vacío es nil.
func queryID(c *fiber.Ctx, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.NewInvalidRequest(key + " inválido")
	}
	return &id, nil
}

func stockQuery(c *fiber.Ctx) (dto.StockQuery, error) {
	productID, err := queryID(c, "product_id")
	if err != nil {
		return dto.StockQuery{}, err
	}
	warehouseID, err := queryID(c, "warehouse_id")
	if err != nil {
		return dto.StockQuery{}, err
	}
	return dto.StockQuery{ProductID: productID, WarehouseID: warehouseID}, nil
}

// pageQuery lee limit/offset y los acota (100 por defecto, máximo 500).
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 100), Offset: c.QueryInt("offset", 0)}
	if p.Limit > 500 {
		p.Limit = 500
	}
	p.DefaultPage()
	return p
}
