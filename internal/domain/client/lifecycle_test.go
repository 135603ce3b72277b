package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to LifecycleStatus
	}{
		{LifecycleStatusProspect, LifecycleStatusOnboarding},
		{LifecycleStatusOnboarding, LifecycleStatusActive},
		{LifecycleStatusActive, LifecycleStatusDormant},
		{LifecycleStatusDormant, LifecycleStatusActive},
		{LifecycleStatusDormant, LifecycleStatusOffboarding},
		{LifecycleStatusOffboarding, LifecycleStatusActive},
		{LifecycleStatusOffboarding, LifecycleStatusOffboarded},
	}

	t.Run("allows every edge in the table", func(t *testing.T) {
		for _, edge := range allowed {
			assert.True(t, CanTransition(edge.from, edge.to), "%s -> %s", edge.from, edge.to)
		}
	})

	t.Run("rejects every other pair", func(t *testing.T) {
		isAllowed := func(from, to LifecycleStatus) bool {
			for _, edge := range allowed {
				if edge.from == from && edge.to == to {
					return true
				}
			}
			return false
		}
		for _, from := range AllLifecycleStatuses() {
			for _, to := range AllLifecycleStatuses() {
				if isAllowed(from, to) {
					continue
				}
				assert.False(t, CanTransition(from, to), "%s -> %s should be illegal", from, to)
			}
		}
	})

	t.Run("rejects skipping onboarding", func(t *testing.T) {
		assert.False(t, CanTransition(LifecycleStatusProspect, LifecycleStatusActive))
	})

	t.Run("offboarding is only reachable through dormant", func(t *testing.T) {
		assert.False(t, CanTransition(LifecycleStatusActive, LifecycleStatusOffboarding))
		assert.True(t, CanTransition(LifecycleStatusDormant, LifecycleStatusOffboarding))
	})

	t.Run("rejects self transitions", func(t *testing.T) {
		for _, status := range AllLifecycleStatuses() {
			assert.False(t, CanTransition(status, status), "%s -> %s", status, status)
		}
	})

	t.Run("offboarded is a dead end", func(t *testing.T) {
		for _, to := range AllLifecycleStatuses() {
			assert.False(t, CanTransition(LifecycleStatusOffboarded, to))
		}
	})
}

func TestAllowedTargets(t *testing.T) {
	t.Run("returns the edge list for a status", func(t *testing.T) {
		targets := AllowedTargets(LifecycleStatusDormant)
		assert.ElementsMatch(t, []LifecycleStatus{LifecycleStatusActive, LifecycleStatusOffboarding}, targets)
	})

	t.Run("returns an empty slice for terminal status", func(t *testing.T) {
		assert.Empty(t, AllowedTargets(LifecycleStatusOffboarded))
	})

	t.Run("returns a copy the caller cannot mutate", func(t *testing.T) {
		targets := AllowedTargets(LifecycleStatusProspect)
		require.Len(t, targets, 1)
		targets[0] = LifecycleStatusOffboarded
		assert.Equal(t, []LifecycleStatus{LifecycleStatusOnboarding}, AllowedTargets(LifecycleStatusProspect))
	})
}

func TestParseLifecycleStatus(t *testing.T) {
	t.Run("accepts every known status", func(t *testing.T) {
		for _, known := range AllLifecycleStatuses() {
			parsed, ok := ParseLifecycleStatus(string(known))
			require.True(t, ok)
			assert.Equal(t, known, parsed)
		}
	})

	t.Run("rejects unknown and differently-cased values", func(t *testing.T) {
		for _, s := range []string{"", "ACTIVE", "archived", "Prospect"} {
			_, ok := ParseLifecycleStatus(s)
			assert.False(t, ok, "value %q", s)
		}
	})
}

func TestLifecycleStatusIsTerminal(t *testing.T) {
	assert.True(t, LifecycleStatusOffboarded.IsTerminal())
	for _, status := range []LifecycleStatus{
		LifecycleStatusProspect, LifecycleStatusOnboarding, LifecycleStatusActive,
		LifecycleStatusDormant, LifecycleStatusOffboarding,
	} {
		assert.False(t, status.IsTerminal(), "status %s", status)
	}
}

func TestLifecycleStatusIsActivation(t *testing.T) {
	assert.True(t, LifecycleStatusActive.IsActivation())
	for _, status := range []LifecycleStatus{
		LifecycleStatusProspect, LifecycleStatusOnboarding,
		LifecycleStatusDormant, LifecycleStatusOffboarding, LifecycleStatusOffboarded,
	} {
		assert.False(t, status.IsActivation(), "status %s", status)
	}
}
