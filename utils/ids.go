package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewTenantID generates a tenant identifier in the TEN-NNNN form
func NewTenantID() string {
	return fmt.Sprintf("TEN-%04d", randomCode())
}

// NewWaiterID generates a waiter identifier in the WTR-NNNN form
func NewWaiterID() string {
	return fmt.Sprintf("WTR-%04d", randomCode())
}

// randomCode returns a value in [1000, 9999]
func randomCode() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		return 1000
	}
	return n.Int64() + 1000
}
