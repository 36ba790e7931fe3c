package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSettlesImmediatelyWithZeroDelay(t *testing.T) {
	g := New(0)

	receipt, err := g.Charge(context.Background(), 194.38, "card")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.Ref, "pay_"))
	assert.Equal(t, 194.38, receipt.Amount)
	assert.Equal(t, "card", receipt.Method)
	assert.False(t, receipt.ChargedAt.IsZero())
}

func TestChargeHonorsContextCancellation(t *testing.T) {
	g := New(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, 10, "card")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChargeWaitsForDelay(t *testing.T) {
	g := New(30 * time.Millisecond)

	start := time.Now()
	_, err := g.Charge(context.Background(), 10, "card")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
