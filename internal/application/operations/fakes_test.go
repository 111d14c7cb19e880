package operations_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	// referencias de los AdjustStock aplicados, en orden
	adjusted []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Upsert(p *entity.Product) error {
	if _, ok := r.products[p.SKU]; !ok {
		r.products[p.SKU] = p
	}
	return nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.SKU] = p
	return nil
}

func (r *fakeProductRepo) AdjustStock(sku string, deltaOnHand, deltaFreeToUse int64) error {
	p, ok := r.products[sku]
	if !ok {
		return domain.ErrNotFound
	}
	p.OnHand += deltaOnHand
	p.FreeToUse += deltaFreeToUse
	r.adjusted = append(r.adjusted, sku)
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOperationRepo struct {
	ops      map[string]*entity.Operation // clave kind|reference
	counters map[string]int64
	// fuerza que UpdateStatusIf devuelva false, simulando que otro escritor
	// ya movió el estado entre la lectura y el commit
	loseCAS bool
}

func newFakeOperationRepo() *fakeOperationRepo {
	return &fakeOperationRepo{ops: map[string]*entity.Operation{}, counters: map[string]int64{}}
}

func opKey(kind, reference string) string { return kind + "|" + reference }

func (r *fakeOperationRepo) Create(op *entity.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	key := opKey(op.Kind, op.Reference)
	if _, ok := r.ops[key]; ok {
		return fmt.Errorf("referencia duplicada: %s", op.Reference)
	}
	cp := *op
	r.ops[key] = &cp
	return nil
}

func (r *fakeOperationRepo) GetByReference(kind, reference string) (*entity.Operation, error) {
	op, ok := r.ops[opKey(kind, reference)]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *fakeOperationRepo) List(kind string, limit, offset int) ([]*entity.Operation, error) {
	out := make([]*entity.Operation, 0)
	for _, op := range r.ops {
		if op.Kind == kind {
			cp := *op
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOperationRepo) UpdateStatusIf(kind, reference, expected, next string) (bool, error) {
	if r.loseCAS {
		return false, nil
	}
	op, ok := r.ops[opKey(kind, reference)]
	if !ok || op.Status != expected {
		return false, nil
	}
	op.Status = next
	return true, nil
}

func (r *fakeOperationRepo) NextReference(kind string) (int64, error) {
	r.counters[kind]++
	return r.counters[kind], nil
}

func (r *fakeOperationRepo) Count(kind string) (int64, error) {
	var n int64
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n, nil
}

type fakeMoveRepo struct {
	moves []*entity.Move
}

func (r *fakeMoveRepo) Create(mv *entity.Move) error {
	if mv.ID == "" {
		mv.ID = uuid.New().String()
	}
	cp := *mv
	r.moves = append(r.moves, &cp)
	return nil
}

func (r *fakeMoveRepo) List(limit, offset int) ([]*entity.Move, error) {
	out := make([]*entity.Move, 0, len(r.moves))
	for _, mv := range r.moves {
		cp := *mv
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes compartidos. No hay
// rollback: los tests que esperan rollback verifican contra los efectos que sí
// dejan rastro observable (guard de estado, ausencia de movimientos).
type fakeTxRunner struct {
	opRepo      *fakeOperationRepo
	productRepo *fakeProductRepo
	moveRepo    *fakeMoveRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	productRepo repository.ProductRepository,
	moveRepo repository.MoveRepository,
) error) error {
	return fn(tr.opRepo, tr.productRepo, tr.moveRepo)
}

var _ operations.TxRunner = (*fakeTxRunner)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con fakes
// ──────────────────────────────────────────────────────────────────────────────

type engineFixture struct {
	uc       *operations.OperationUseCase
	opRepo   *fakeOperationRepo
	products *fakeProductRepo
	moves    *fakeMoveRepo
}

func newEngineFixture() *engineFixture {
	opRepo := newFakeOperationRepo()
	products := newFakeProductRepo()
	moves := &fakeMoveRepo{}
	tr := &fakeTxRunner{opRepo: opRepo, productRepo: products, moveRepo: moves}
	return &engineFixture{
		uc:       operations.NewOperationUseCase(tr, opRepo),
		opRepo:   opRepo,
		products: products,
		moves:    moves,
	}
}

func (f *engineFixture) addProduct(sku string, onHand, freeToUse int64) {
	f.products.products[sku] = &entity.Product{
		ID: uuid.New().String(), SKU: sku, Name: sku,
		OnHand: onHand, FreeToUse: freeToUse,
	}
}
