package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	assert.True(t, policy.Allows(OpTransactions, "USER"))
	assert.True(t, policy.Allows(OpTransactions, "ADMIN"))
	assert.True(t, policy.Allows(OpCategoryRead, "USER"))

	assert.False(t, policy.Allows(OpEntityAdmin, "USER"))
	assert.True(t, policy.Allows(OpEntityAdmin, "ADMIN"))

	// A token with no role claim gets nowhere.
	assert.False(t, policy.Allows(OpTransactions, ""))
}

func TestPolicyAllows_UnknownCategory(t *testing.T) {
	policy := DefaultPolicy()
	assert.False(t, policy.Allows(OperationCategory("reports"), "ADMIN"))
}
