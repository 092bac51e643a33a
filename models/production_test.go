package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProductType(t *testing.T) {
	assert.True(t, ValidProductType(ProductHoney))
	assert.True(t, ValidProductType(ProductWax))
	assert.True(t, ValidProductType(ProductPollen))
	assert.True(t, ValidProductType(ProductPropoli))

	assert.False(t, ValidProductType(""))
	assert.False(t, ValidProductType("Miel"))
	assert.False(t, ValidProductType("jalea"))
}
