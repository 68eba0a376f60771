package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every helper must be a safe no-op without a connected client, since
// service write paths call InvalidateDashboard unconditionally.
func TestHelpersDegradeWithoutClient(t *testing.T) {
	client = nil
	ctx := context.Background()

	data, ok := GetCachedDashboard(ctx)
	assert.False(t, ok)
	assert.Nil(t, data)

	assert.NotPanics(t, func() {
		CacheDashboard(ctx, []byte(`{"total_customers":0}`))
		InvalidateDashboard(ctx)
	})
}
