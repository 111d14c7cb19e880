package operations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create: referencias consecutivas y ubicaciones por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RecepcionConReferenciaYDefaults(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	out, err := f.uc.Create(ctx, entity.KindReceipt, "maria", dto.CreateOperationRequest{
		FromLocation: "SUPPLIER",
		Contact:      "Acme Corp",
		Lines:        []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WH/IN/0001", out.Reference, "la primera recepción debe ser WH/IN/0001")
	assert.Equal(t, entity.StatusDraft, out.Status)
	assert.Equal(t, operations.LocationStock, out.ToLocation, "el destino omitido debe completarse con STOCK")
	assert.Equal(t, "SUPPLIER", out.FromLocation)
	assert.Equal(t, "maria", out.Responsible)

	out2, err := f.uc.Create(ctx, entity.KindReceipt, "", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WH/IN/0002", out2.Reference, "el consecutivo debe avanzar de a uno")
	assert.Equal(t, "admin", out2.Responsible, "sin responsable debe asignarse admin")
}

func TestCreate_EntregaConDefaults(t *testing.T) {
	f := newEngineFixture()

	out, err := f.uc.Create(context.Background(), entity.KindDelivery, "admin", dto.CreateOperationRequest{
		Contact: "John Doe",
		Lines:   []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WH/OUT/0001", out.Reference)
	assert.Equal(t, operations.LocationStock, out.FromLocation, "las entregas siempre salen de STOCK")
	assert.Equal(t, operations.LocationCustomer, out.ToLocation)
}

func TestCreate_ConsecutivosIndependientesPorTipo(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{})
	require.NoError(t, err)
	del, err := f.uc.Create(ctx, entity.KindDelivery, "admin", dto.CreateOperationRequest{})
	require.NoError(t, err)

	assert.Equal(t, "WH/IN/0001", rec.Reference)
	assert.Equal(t, "WH/OUT/0001", del.Reference, "cada tipo lleva su propio contador")
}

func TestCreate_LineaInvalida(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "", Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "línea sin SKU debe rechazarse")

	_, err = f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")
}

func TestCreate_TipoDesconocido(t *testing.T) {
	f := newEngineFixture()
	_, err := f.uc.Create(context.Background(), "transfer", "admin", dto.CreateOperationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Acción todo: chequeo de disponibilidad solo en entregas
// ──────────────────────────────────────────────────────────────────────────────

func TestTodo_RecepcionPasaAReadySinMirarStock(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	// Sin producto registrado: una recepción no depende de disponibilidad.
	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "NOEXISTE", Quantity: 99}},
	})
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, out.Status)
}

func TestTodo_EntregaConStockSuficientePasaAReady(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	del, err := f.uc.Create(ctx, entity.KindDelivery, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 45}},
	})
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindDelivery, del.Reference, entity.ActionTodo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, out.Status, "FreeToUse == cantidad alcanza")
}

func TestTodo_EntregaSinStockQuedaEnWaiting(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	del, err := f.uc.Create(ctx, entity.KindDelivery, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 60}},
	})
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindDelivery, del.Reference, entity.ActionTodo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, out.Status, "60 > 45 disponibles deja la entrega en espera")
}

func TestTodo_EntregaConSKUInexistenteQuedaEnWaiting(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	del, err := f.uc.Create(ctx, entity.KindDelivery, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "NOEXISTE", Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindDelivery, del.Reference, entity.ActionTodo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, out.Status, "SKU desconocido cuenta como insuficiente")
}

func TestTodo_FueraDeDraftDevuelveConflicto(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)

	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	assert.ErrorIs(t, err, domain.ErrConflict, "todo sobre una operación Ready no aplica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Acción validate: deltas de stock y movimientos del libro
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_RecepcionSumaStockYEscribeMovimientos(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		FromLocation: "SUPPLIER",
		Contact:      "Acme Corp",
		Lines:        []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, out.Status)

	p, err := f.products.GetBySKU("DESK001")
	require.NoError(t, err)
	assert.Equal(t, int64(55), p.OnHand, "50 + 5 recibidos")
	assert.Equal(t, int64(50), p.FreeToUse, "45 + 5 recibidos")

	require.Len(t, f.moves.moves, 1)
	mv := f.moves.moves[0]
	assert.Equal(t, rec.Reference, mv.Reference)
	assert.Equal(t, entity.DirectionIn, mv.Direction)
	assert.Equal(t, entity.StatusDone, mv.Status)
	assert.Equal(t, "SUPPLIER", mv.FromLocation)
	assert.Equal(t, operations.LocationStock, mv.ToLocation)
	assert.Equal(t, int64(5), mv.Quantity)
	assert.Equal(t, "Acme Corp", mv.Contact)
}

func TestValidate_EntregaRestaStock(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	del, err := f.uc.Create(ctx, entity.KindDelivery, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 10}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindDelivery, del.Reference, entity.ActionTodo)
	require.NoError(t, err)

	out, err := f.uc.Apply(ctx, entity.KindDelivery, del.Reference, entity.ActionValidate)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, out.Status)

	p, err := f.products.GetBySKU("DESK001")
	require.NoError(t, err)
	assert.Equal(t, int64(40), p.OnHand)
	assert.Equal(t, int64(35), p.FreeToUse)

	require.Len(t, f.moves.moves, 1)
	assert.Equal(t, entity.DirectionOut, f.moves.moves[0].Direction)
}

func TestValidate_VariasLineasAplicaTodasAntesDelLibro(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	f.addProduct("TABLE001", 50, 50)
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{
			{ProductSKU: "DESK001", Quantity: 3},
			{ProductSKU: "TABLE001", Quantity: 7},
		},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	require.NoError(t, err)

	assert.Equal(t, []string{"DESK001", "TABLE001"}, f.products.adjusted,
		"todos los deltas se aplican antes de escribir el libro")
	assert.Len(t, f.moves.moves, 2, "un movimiento por línea")
}

func TestValidate_FueraDeReadyDevuelveConflicto(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{})
	require.NoError(t, err)

	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	assert.ErrorIs(t, err, domain.ErrConflict, "validate directo desde Draft no aplica")
}

func TestValidate_SegundaVezNoDuplicaEfectos(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	require.NoError(t, err)

	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	assert.ErrorIs(t, err, domain.ErrConflict)

	p, err := f.products.GetBySKU("DESK001")
	require.NoError(t, err)
	assert.Equal(t, int64(55), p.OnHand, "el stock queda como tras el primer validate")
	assert.Len(t, f.moves.moves, 1, "sin movimientos duplicados")
}

func TestValidate_GuardPerdidoNoTocaStockNiLibro(t *testing.T) {
	// Simula el caso concurrente: la lectura ve Ready pero el compare-and-swap
	// encuentra otro estado al momento de escribir.
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)

	f.opRepo.loseCAS = true
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	assert.ErrorIs(t, err, domain.ErrConflict)

	p, err := f.products.GetBySKU("DESK001")
	require.NoError(t, err)
	assert.Equal(t, int64(50), p.OnHand, "el guard corre antes que los deltas")
	assert.Empty(t, f.moves.moves)
}

func TestValidate_ProductoInexistenteFallaLaAccion(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "NOEXISTE", Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)

	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.moves.moves, "sin movimientos si alguna línea falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Acción cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_DesdeEstadosNoTerminales(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	for _, prep := range []struct {
		name    string
		actions []string
	}{
		{"desde Draft", nil},
		{"desde Ready", []string{entity.ActionTodo}},
	} {
		t.Run(prep.name, func(t *testing.T) {
			rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
				Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 1}},
			})
			require.NoError(t, err)
			for _, a := range prep.actions {
				_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, a)
				require.NoError(t, err)
			}

			out, err := f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionCancel)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusCanceled, out.Status)

			p, err := f.products.GetBySKU("DESK001")
			require.NoError(t, err)
			assert.Equal(t, int64(50), p.OnHand, "cancelar nunca toca stock")
		})
	}
}

func TestCancel_EstadoTerminalDevuelveConflicto(t *testing.T) {
	f := newEngineFixture()
	f.addProduct("DESK001", 50, 45)
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Lines: []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionTodo)
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionValidate)
	require.NoError(t, err)

	_, err = f.uc.Apply(ctx, entity.KindReceipt, rec.Reference, entity.ActionCancel)
	assert.ErrorIs(t, err, domain.ErrConflict, "Done y Canceled son estados finales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas inválidas y lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_AccionDesconocida(t *testing.T) {
	f := newEngineFixture()
	_, err := f.uc.Apply(context.Background(), entity.KindReceipt, "WH/IN/0001", "approve")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_ReferenciaInexistente(t *testing.T) {
	f := newEngineFixture()
	_, err := f.uc.Apply(context.Background(), entity.KindReceipt, "WH/IN/9999", entity.ActionTodo)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApply_ReferenciaDeOtroTipoNoSeEncuentra(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{})
	require.NoError(t, err)

	// La referencia existe como recepción, no como entrega.
	_, err = f.uc.Apply(ctx, entity.KindDelivery, rec.Reference, entity.ActionTodo)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByReference(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	rec, err := f.uc.Create(ctx, entity.KindReceipt, "admin", dto.CreateOperationRequest{
		Contact: "Acme Corp",
		Lines:   []dto.OperationLineDTO{{ProductSKU: "DESK001", Quantity: 5}},
	})
	require.NoError(t, err)

	got, err := f.uc.GetByReference(entity.KindReceipt, rec.Reference)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Corp", got.Contact)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(5), got.Lines[0].Quantity)

	missing, err := f.uc.GetByReference(entity.KindReceipt, "WH/IN/9999")
	require.NoError(t, err)
	assert.Nil(t, missing, "referencia inexistente devuelve nil sin error")
}

func TestScheduleDate_SeRespetaSiViene(t *testing.T) {
	f := newEngineFixture()
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	out, err := f.uc.Create(context.Background(), entity.KindReceipt, "admin", dto.CreateOperationRequest{
		ScheduleDate: &want,
	})
	require.NoError(t, err)
	assert.True(t, out.ScheduleDate.Equal(want))
}
