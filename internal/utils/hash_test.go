// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NeverEqualsRaw(t *testing.T) {
	for _, raw := range []string{"p@ss", "correct horse battery staple", "x"} {
		hash, err := HashPassword(raw, bcrypt.MinCost)

		require.NoError(t, err)
		assert.NotEqual(t, raw, hash)
		assert.True(t, CheckPassword(hash, raw))
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("p@ss", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("p@ss", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("p@ss", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultPasswordHashCost, cost)
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, err := HashPassword("p@ss", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "P@ss"))
	assert.False(t, CheckPassword("not-a-hash", "p@ss"))
}
