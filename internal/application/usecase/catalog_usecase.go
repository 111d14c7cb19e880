package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo (productos, bodegas, ubicaciones) y el
// parche administrativo de productos. Las cantidades de stock solo se mutan
// desde el motor de operaciones; este parche existe para correcciones manuales.
type CatalogUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
	}
}

// ListProducts lista productos con paginación.
func (uc *CatalogUseCase) ListProducts(limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// UpdateProduct aplica un parche parcial a un producto por SKU; nil si no existe.
func (uc *CatalogUseCase) UpdateProduct(sku string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.OnHand != nil {
		p.OnHand = *in.OnHand
	}
	if in.FreeToUse != nil {
		p.FreeToUse = *in.FreeToUse
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListWarehouses lista bodegas con paginación.
func (uc *CatalogUseCase) ListWarehouses(limit, offset int) ([]*dto.WarehouseResponse, error) {
	warehouses, err := uc.warehouseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, &dto.WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name, Address: w.Address})
	}
	return out, nil
}

// ListLocations lista ubicaciones con paginación.
func (uc *CatalogUseCase) ListLocations(limit, offset int) ([]*dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, &dto.LocationResponse{ID: l.ID, Code: l.Code, Name: l.Name, WarehouseCode: l.WarehouseCode})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Cost:      p.Cost,
		OnHand:    p.OnHand,
		FreeToUse: p.FreeToUse,
		UpdatedAt: p.UpdatedAt,
	}
}
