package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales del usuario de demostración.
const (
	seedLoginID  = "admin"
	seedPassword = "admin123"
)

// SeedUseCase pobla datos de demostración de forma idempotente: bodega WH,
// ubicaciones STOCK/CUSTOMER, productos DESK001/TABLE001, un usuario admin y
// una operación de ejemplo por tipo cuando no existe ninguna.
type SeedUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	userRepo      repository.UserRepository
	opRepo        repository.OperationRepository
	opUC          *operations.OperationUseCase
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	opRepo repository.OperationRepository,
	opUC *operations.OperationUseCase,
) *SeedUseCase {
	return &SeedUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		userRepo:      userRepo,
		opRepo:        opRepo,
		opUC:          opUC,
	}
}

// Run ejecuta el seed. Los upserts no pisan datos existentes, de modo que
// repetir el seed sobre una base ya poblada no altera cantidades de stock.
func (uc *SeedUseCase) Run(ctx context.Context) error {
	now := time.Now()

	if err := uc.warehouseRepo.Upsert(&entity.Warehouse{
		ID: uuid.New().String(), Code: "WH", Name: "Main Warehouse", Address: "HQ",
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		return err
	}
	seedLocations := []entity.Location{
		{ID: uuid.New().String(), Code: operations.LocationStock, Name: "Stock", WarehouseCode: "WH", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Code: operations.LocationCustomer, Name: "Customer", WarehouseCode: "WH", CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedLocations {
		if err := uc.locationRepo.Upsert(&seedLocations[i]); err != nil {
			return err
		}
	}

	seedProducts := []entity.Product{
		{ID: uuid.New().String(), SKU: "DESK001", Name: "Desk", Cost: decimal.NewFromInt(3000), OnHand: 50, FreeToUse: 45, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), SKU: "TABLE001", Name: "Table", Cost: decimal.NewFromInt(3000), OnHand: 50, FreeToUse: 50, CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedProducts {
		if err := uc.productRepo.Upsert(&seedProducts[i]); err != nil {
			return err
		}
	}

	if err := uc.seedUser(now); err != nil {
		return err
	}

	// Operaciones de ejemplo solo si la colección del tipo está vacía: así la
	// numeración de referencias arranca en WH/IN/0001 y WH/OUT/0001.
	if err := uc.seedOperation(ctx, entity.KindReceipt, dto.CreateOperationRequest{
		FromLocation: "SUPPLIER",
		Contact:      "Acme",
		Lines:        []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	}); err != nil {
		return err
	}
	// Cantidad mayor al FreeToUse sembrado: el todo la deja en Waiting.
	return uc.seedOperation(ctx, entity.KindDelivery, dto.CreateOperationRequest{
		Contact: "John",
		Lines:   []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 60}},
	})
}

func (uc *SeedUseCase) seedUser(now time.Time) error {
	existing, err := uc.userRepo.GetByLoginID(seedLoginID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		LoginID:      seedLoginID,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Demo User",
		AvatarURL:    "https://i.pravatar.cc/100",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (uc *SeedUseCase) seedOperation(ctx context.Context, kind string, in dto.CreateOperationRequest) error {
	count, err := uc.opRepo.Count(kind)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	op, err := uc.opUC.Create(ctx, kind, seedLoginID, in)
	if err != nil {
		return err
	}
	_, err = uc.opUC.Apply(ctx, kind, op.Reference, entity.ActionTodo)
	return err
}
