package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "WH/IN/0001", entity.FormatReference(entity.KindReceipt, 1))
	assert.Equal(t, "WH/IN/0042", entity.FormatReference(entity.KindReceipt, 42))
	assert.Equal(t, "WH/OUT/0007", entity.FormatReference(entity.KindDelivery, 7))
	// Más de cuatro dígitos: el consecutivo no se trunca.
	assert.Equal(t, "WH/IN/12345", entity.FormatReference(entity.KindReceipt, 12345))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, entity.IsTerminal(entity.StatusDone))
	assert.True(t, entity.IsTerminal(entity.StatusCanceled))
	assert.False(t, entity.IsTerminal(entity.StatusDraft))
	assert.False(t, entity.IsTerminal(entity.StatusWaiting))
	assert.False(t, entity.IsTerminal(entity.StatusReady))
}

func TestValidKind(t *testing.T) {
	assert.True(t, entity.ValidKind(entity.KindReceipt))
	assert.True(t, entity.ValidKind(entity.KindDelivery))
	assert.False(t, entity.ValidKind("transfer"))
	assert.False(t, entity.ValidKind(""))
}
