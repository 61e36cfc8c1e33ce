package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
)

func TestDirection_Valid(t *testing.T) {
	assert.True(t, entity.DirectionIN.Valid())
	assert.True(t, entity.DirectionOUT.Valid())
	assert.False(t, entity.Direction("").Valid())
	assert.False(t, entity.Direction("in").Valid(), "la dirección distingue mayúsculas")
	assert.False(t, entity.Direction("TRANSFER").Valid())
}

func TestDirection_Apply(t *testing.T) {
	assert.Equal(t, int64(15), entity.DirectionIN.Apply(10, 5))
	assert.Equal(t, int64(5), entity.DirectionOUT.Apply(10, 5))
	assert.Equal(t, int64(0), entity.DirectionOUT.Apply(10, 10))
}
