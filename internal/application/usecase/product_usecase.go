package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
	"github.com/jhoicas/mtn-stock-api/pkg/money"
)

// ProductUseCase casos de uso para productos. El stock no vive aquí: se deriva de los movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto aplicando los valores por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewInvalidRequest("name es requerido")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewInvalidRequest("price no puede ser negativo")
	}
	if !entity.FitsNumeric(in.Price) {
		return nil, domain.NewInvalidRequest("price admite 4 decimales y menos de 10^14")
	}
	currency, err := money.NormalizeCurrency(in.Currency, entity.DefaultCurrency)
	if err != nil {
		return nil, domain.NewInvalidRequest(err.Error())
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.DefaultUnit
	}
	track := true
	if in.TrackInventory != nil {
		track = *in.TrackInventory
	}
	product := &entity.Product{
		Name:           name,
		SKU:            strings.TrimSpace(in.SKU),
		Category:       in.Category,
		Unit:           unit,
		Currency:       currency,
		Price:          in.Price,
		TrackInventory: track,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(domain.EntityProduct, id)
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Category:       p.Category,
		Unit:           p.Unit,
		Currency:       p.Currency,
		Price:          p.Price,
		TrackInventory: p.TrackInventory,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
