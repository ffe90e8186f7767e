package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidQuantity(t *testing.T) {
	assert.NoError(t, validQuantity("3"))
	assert.Error(t, validQuantity("0"))
	assert.Error(t, validQuantity("-1"))
	assert.Error(t, validQuantity("abc"))
}

func TestValidStock(t *testing.T) {
	assert.NoError(t, validStock("0"))
	assert.NoError(t, validStock("10"))
	assert.Error(t, validStock("-1"))
}

func TestValidPrice(t *testing.T) {
	assert.NoError(t, validPrice("15000"))
	assert.NoError(t, validPrice("0"))
	assert.Error(t, validPrice("-1"))
	assert.Error(t, validPrice("abc"))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, notBlank("Collar"))
	assert.Error(t, notBlank("   "))
}
