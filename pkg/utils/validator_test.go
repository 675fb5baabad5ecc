package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chargeRequest struct {
	Amount   *int64 `validate:"required,gt=0"`
	Currency string `validate:"omitempty,len=3,alpha"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()
	amount := func(n int64) *int64 { return &n }

	assert.NoError(t, v.Struct(chargeRequest{Amount: amount(1999), Currency: "usd"}))
	assert.NoError(t, v.Struct(chargeRequest{Amount: amount(1)}))

	err := v.Struct(chargeRequest{})
	require.Error(t, err)
	assert.Equal(t, "amount is required", err.Error())

	err = v.Struct(chargeRequest{Amount: amount(0)})
	require.Error(t, err)
	assert.Equal(t, "amount must be greater than 0", err.Error())

	err = v.Struct(chargeRequest{Amount: amount(10), Currency: "us1"})
	require.Error(t, err)
	assert.Equal(t, "currency must contain only letters", err.Error())

	err = v.Struct(chargeRequest{Amount: amount(10), Currency: "usdx"})
	require.Error(t, err)
	assert.Equal(t, "currency must be 3 characters long", err.Error())
}
