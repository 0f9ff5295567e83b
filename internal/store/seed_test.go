package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapFirstRun(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	require.NoError(t, st.Bootstrap(ctx))

	settings := st.GetSettings(ctx)
	require.NotNil(t, settings)
	assert.True(t, settings.FirstRun)
	assert.NotEmpty(t, settings.WhatsAppMessages.AppointmentConfirmation)
	assert.Equal(t, 1.2, settings.PriceRules.SizeMultipliers["M"])

	assert.NotEmpty(t, st.GetBreeds(ctx))
	assert.NotEmpty(t, st.GetSizes(ctx))
}

func TestBootstrapIsIdempotent(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	require.NoError(t, st.Bootstrap(ctx))

	settings := st.GetSettings(ctx)
	settings.BusinessName = "Banho & Tosa da Ana"
	_, err := st.SaveSettings(ctx, settings)
	require.NoError(t, err)

	breeds := len(st.GetBreeds(ctx))

	// segunda chamada não reseta nada nem duplica o catálogo
	require.NoError(t, st.Bootstrap(ctx))

	assert.Equal(t, "Banho & Tosa da Ana", st.GetSettings(ctx).BusinessName)
	assert.Len(t, st.GetBreeds(ctx), breeds)
}

func TestCompleteOnboarding(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	require.NoError(t, st.Bootstrap(ctx))
	require.NoError(t, st.CompleteOnboarding(ctx))

	assert.False(t, st.GetSettings(ctx).FirstRun)

	// chamada repetida é inofensiva
	require.NoError(t, st.CompleteOnboarding(ctx))
	assert.False(t, st.GetSettings(ctx).FirstRun)
}
