package draft

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lox/teammaker/internal/randutil"
	"github.com/lox/teammaker/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleScriptedDraft(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		rng := newScriptedRand(balancedScript...)
		draw, err := NewAssembler(2, nil, rng).Assemble(players(5, 5, 1, 1))
		require.NoError(t, err)

		require.Len(t, draw.Teams, 2)
		assert.Empty(t, draw.Unassigned)
		assert.Equal(t, 2, rng.shuffles, "pool and team order are both shuffled")

		a, b := draw.Teams[0], draw.Teams[1]
		assert.Equal(t, "Team A", a.Name())
		assert.Equal(t, "Team B", b.Name())
		assert.InDelta(t, 6.0, a.Strength(), 1e-9)
		assert.InDelta(t, 6.0, b.Strength(), 1e-9)
		assert.Equal(t, []string{"P1", "P4", "P3", "P2"}, memberNames(draw.Teams))
	})

	t.Run("unbalanced", func(t *testing.T) {
		rng := newScriptedRand(unbalancedScript...)
		draw, err := NewAssembler(2, nil, rng).Assemble(players(5, 5, 1, 1))
		require.NoError(t, err)

		require.Len(t, draw.Teams, 2)
		assert.InDelta(t, 10.0, draw.Teams[0].Strength(), 1e-9)
		assert.InDelta(t, 2.0, draw.Teams[1].Strength(), 1e-9)
	})
}

func TestAssembleWalksShuffledTeamOrder(t *testing.T) {
	// reverseRand walks Team B first and reverses the pool to P4..P1. With
	// weight 0.5+0.5 the lagging Team B asks for tier 5 and gets P2, the
	// first 5 in reversed order.
	draw, err := NewAssembler(2, nil, reverseRand{}).Assemble(players(5, 5, 1, 1))
	require.NoError(t, err)
	require.Len(t, draw.Teams, 2)

	b := draw.Teams[1]
	assert.Equal(t, "Team B", b.Name())
	require.NotEmpty(t, b.Players())
	assert.Equal(t, "P2", b.Players()[0].Name)
}

func TestAssembleNearestMatchTiesGoToPoolOrder(t *testing.T) {
	// Tier 3 is equally far from 2 and 4; the first in pool order wins
	rng := newScriptedRand(0.2, 0.2)
	draw, err := NewAssembler(1, nil, rng).Assemble([]team.Player{
		{Name: "low", Rating: 2},
		{Name: "high", Rating: 4},
	})
	require.NoError(t, err)
	require.Len(t, draw.Teams, 2)
	assert.Equal(t, "low", draw.Teams[0].Players()[0].Name)
	assert.Equal(t, "high", draw.Teams[1].Players()[0].Name)
}

func TestAssembleEqualRatings(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		draw, err := NewAssembler(2, nil, randutil.New(seed)).Assemble(players(3, 3, 3, 3))
		require.NoError(t, err)
		require.Len(t, draw.Teams, 2)
		for _, tm := range draw.Teams {
			assert.InDelta(t, 6.0, tm.Strength(), 1e-9)
		}
		assert.True(t, Evaluate(draw.Teams).Balanced)
	}
}

func TestAssembleUnevenPool(t *testing.T) {
	draw, err := NewAssembler(2, nil, randutil.New(1)).Assemble(players(3, 3, 3))
	require.NoError(t, err)

	require.Len(t, draw.Teams, 1)
	assert.True(t, draw.Teams[0].IsComplete())
	assert.InDelta(t, 6.0, draw.Teams[0].Strength(), 1e-9)
	require.Len(t, draw.Unassigned, 1)

	placed := memberNames(draw.Teams)
	assert.NotContains(t, placed, draw.Unassigned[0].Name)

	balance := Evaluate(draw.Teams)
	assert.InDelta(t, 6.0, balance.Min, 1e-9)
	assert.InDelta(t, 6.0, balance.Max, 1e-9)
}

func TestAssembleDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		teamSize   int
		players    []team.Player
		unassigned int
	}{
		{"empty pool", 2, nil, 0},
		{"zero team size", 0, players(1, 2, 3), 3},
		{"negative team size", -2, players(1, 2), 2},
		{"team larger than pool", 5, players(1, 2, 3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw, err := NewAssembler(tt.teamSize, nil, randutil.New(1)).Assemble(tt.players)
			require.NoError(t, err)
			assert.Empty(t, draw.Teams)
			assert.Len(t, draw.Unassigned, tt.unassigned)
		})
	}
}

func TestAssembleDoesNotModifyInput(t *testing.T) {
	in := players(1, 2, 3, 4, 5, 6)
	before := append([]team.Player(nil), in...)

	_, err := NewAssembler(3, nil, randutil.New(9)).Assemble(in)
	require.NoError(t, err)
	assert.Equal(t, before, in)
}

func TestAssembleUsesNameSource(t *testing.T) {
	names := ExplicitNames("Red", "Blue")
	draw, err := NewAssembler(1, names, randutil.New(3)).Assemble(players(1, 2, 3))
	require.NoError(t, err)

	require.Len(t, draw.Teams, 3)
	assert.Equal(t, "Red", draw.Teams[0].Name())
	assert.Equal(t, "Blue", draw.Teams[1].Name())
	assert.Equal(t, "Team C", draw.Teams[2].Name())
}

func TestAssembleConservesPlayers(t *testing.T) {
	ratings := []float64{1, 2, 2.5, 3, 3, 3, 4, 4.5, 5, 1.5, 2, 3.5, 4, 4, 5, 1, 0.5, 7, -1, 3}

	for _, size := range []int{1, 2, 3, 4, 5, 7, 20, 21} {
		for seed := int64(0); seed < 10; seed++ {
			t.Run(fmt.Sprintf("size=%d/seed=%d", size, seed), func(t *testing.T) {
				in := players(ratings...)
				draw, err := NewAssembler(size, nil, randutil.New(seed)).Assemble(in)
				require.NoError(t, err)

				assert.Len(t, draw.Teams, len(in)/size)
				for _, tm := range draw.Teams {
					assert.True(t, tm.IsComplete())
					assert.InDelta(t, team.TotalRating(tm.Players()), tm.Strength(), 1e-9)
				}

				seen := memberNames(draw.Teams)
				for _, p := range draw.Unassigned {
					seen = append(seen, p.Name)
				}
				var want []string
				for _, p := range in {
					want = append(want, p.Name)
				}
				sort.Strings(seen)
				sort.Strings(want)
				assert.Equal(t, want, seen, "every player placed exactly once")

				total := team.TotalRating(draw.Unassigned)
				for _, tm := range draw.Teams {
					total += tm.Strength()
				}
				assert.InDelta(t, team.TotalRating(in), total, 1e-9)
			})
		}
	}
}

func TestTeamCount(t *testing.T) {
	asm := NewAssembler(4, nil, randutil.New(1))
	assert.Equal(t, 0, asm.TeamCount(0))
	assert.Equal(t, 0, asm.TeamCount(3))
	assert.Equal(t, 1, asm.TeamCount(4))
	assert.Equal(t, 2, asm.TeamCount(11))
	assert.Equal(t, 0, NewAssembler(0, nil, randutil.New(1)).TeamCount(10))
}
