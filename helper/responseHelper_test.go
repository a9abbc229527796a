package helper

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCreationResponse(t *testing.T) {
	status, message := OrderCreationResponse(false)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Order created successfully", message)

	status, message = OrderCreationResponse(true)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order already created", message)
}
