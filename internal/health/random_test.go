package health

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jvr-guru/actuatord/internal/domain"
)

// sequenceSource replays a fixed sequence of booleans.
type sequenceSource struct {
	mu   sync.Mutex
	seq  []bool
	next int
}

func (s *sequenceSource) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.seq[s.next%len(s.seq)]
	s.next++
	return v
}

func TestNewRandomIndicator_NilSource(t *testing.T) {
	t.Parallel()

	ind, err := NewRandomIndicator(nil)
	require.Nil(t, ind)
	require.EqualError(t, err, "bool source cannot be nil")
}

func TestRandomIndicator_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		draw     bool
		expected domain.Health
	}{
		{
			name:     "false draw reports up without details",
			draw:     false,
			expected: domain.Health{Status: domain.HealthStatusUp},
		},
		{
			name: "true draw reports down with failure detail",
			draw: true,
			expected: domain.Health{
				Status:  domain.HealthStatusDown,
				Details: map[string]string{"ERR-001": "Random Failure"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ind, err := NewRandomIndicator(BoolSourceFunc(func() bool { return tc.draw }))
			require.NoError(t, err)
			require.Equal(t, tc.expected, ind.Health(context.Background()))
		})
	}
}

func TestRandomIndicator_OnlyTwoOutcomes(t *testing.T) {
	t.Parallel()

	ind, err := NewRandomIndicator(NewRandSource())
	require.NoError(t, err)

	for range 500 {
		h := ind.Health(context.Background())
		switch h.Status {
		case domain.HealthStatusUp:
			require.Empty(t, h.Details)
		case domain.HealthStatusDown:
			require.Equal(t, map[string]string{RandomFailureCode: RandomFailureMessage}, h.Details)
		default:
			t.Fatalf("unexpected status: %s", h.Status)
		}
	}
}

func TestRandomIndicator_SeededSequence(t *testing.T) {
	t.Parallel()

	const (
		seed  = 42
		calls = 1000
	)

	expected := NewSeededSource(seed)
	ind, err := NewRandomIndicator(NewSeededSource(seed))
	require.NoError(t, err)

	for i := range calls {
		want := domain.HealthStatusUp
		if expected.Bool() {
			want = domain.HealthStatusDown
		}
		require.Equal(t, want, ind.Health(context.Background()).Status, "call %d", i)
	}
}

func TestRandomIndicator_ReplaysInjectedSequence(t *testing.T) {
	t.Parallel()

	src := &sequenceSource{seq: []bool{true, false, false, true}}
	ind, err := NewRandomIndicator(src)
	require.NoError(t, err)

	var got []domain.HealthStatus
	for range 4 {
		got = append(got, ind.Health(context.Background()).Status)
	}

	require.Equal(t, []domain.HealthStatus{
		domain.HealthStatusDown,
		domain.HealthStatusUp,
		domain.HealthStatusUp,
		domain.HealthStatusDown,
	}, got)
}

func TestRandomIndicator_UpRatioApproachesHalf(t *testing.T) {
	t.Parallel()

	const calls = 20000

	ind, err := NewRandomIndicator(NewSeededSource(7))
	require.NoError(t, err)

	up := 0
	for range calls {
		if ind.Health(context.Background()).IsUp() {
			up++
		}
	}

	ratio := float64(up) / calls
	require.Less(t, math.Abs(ratio-0.5), 0.02, "ratio %.4f", ratio)
}

func TestRandomIndicator_ResultsAreIndependent(t *testing.T) {
	t.Parallel()

	ind, err := NewRandomIndicator(BoolSourceFunc(func() bool { return true }))
	require.NoError(t, err)

	first := ind.Health(context.Background())
	first.Details["ERR-001"] = "mutated"
	first.Details["extra"] = "value"

	second := ind.Health(context.Background())
	require.Equal(t, map[string]string{RandomFailureCode: RandomFailureMessage}, second.Details)
}

func TestSeededSource_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSeededSource(99)
	b := NewSeededSource(99)
	for range 100 {
		require.Equal(t, a.Bool(), b.Bool())
	}
}
