package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

func TestParseDateKey(t *testing.T) {
	t.Run("Valid key", func(t *testing.T) {
		key, err := domain.ParseDateKey("2025-01-04")
		require.NoError(t, err)
		assert.Equal(t, domain.DateKey("2025-01-04"), key)
	})

	t.Run("Malformed keys are rejected", func(t *testing.T) {
		for _, raw := range []string{"", "04-01-2025", "2025-13-01", "2025-01-32", "not-a-date", "2025-1-4"} {
			_, err := domain.ParseDateKey(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidDateKey, "input %q", raw)
		}
	})
}

func TestDateKey_AddDays(t *testing.T) {
	key := domain.DateKey("2025-01-31")

	assert.Equal(t, domain.DateKey("2025-02-01"), key.AddDays(1))
	assert.Equal(t, domain.DateKey("2025-01-30"), key.AddDays(-1))

	// Corrupt keys pass through unchanged instead of panicking.
	bad := domain.DateKey("garbage")
	assert.Equal(t, bad, bad.AddDays(1))
}

func TestNewDateKey_UsesUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+12", 12*3600)
	local := time.Date(2025, 3, 1, 2, 0, 0, 0, loc) // still Feb 28 in UTC

	assert.Equal(t, domain.DateKey("2025-02-28"), domain.NewDateKey(local))
}
