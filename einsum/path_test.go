// SPDX-License-Identifier: MIT

package einsum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/einsum"
)

func TestSequential_Path(t *testing.T) {
	inputs := [][]string{{"a"}, {"a"}, {"a"}, {"a"}}
	path, err := einsum.Sequential{}.Path(inputs, nil, map[string]int{"a": 2})
	require.NoError(t, err)
	assert.Equal(t, []einsum.Step{{0, 1}, {0, 2}, {0, 1}}, path)

	path, err = einsum.Sequential{}.Path(inputs[:1], nil, nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

// TestGreedy_BeatsSequentialOnChain uses a chain whose two ends are huge:
// folding left-to-right drags the wide label through every step, greedy
// contracts the narrow middle first.
func TestGreedy_BeatsSequentialOnChain(t *testing.T) {
	inputs := [][]string{{"a", "b"}, {"c", "d"}, {"b", "c"}}
	output := []string{"a", "d"}
	sizes := map[string]int{"a": 2, "b": 50, "c": 50, "d": 2}

	gp, err := einsum.Greedy{}.Path(inputs, output, sizes)
	require.NoError(t, err)
	sp, err := einsum.Sequential{}.Path(inputs, output, sizes)
	require.NoError(t, err)

	gc, err := einsum.Cost(inputs, output, sizes, gp)
	require.NoError(t, err)
	sc, err := einsum.Cost(inputs, output, sizes, sp)
	require.NoError(t, err)
	assert.Less(t, gc, sc)
}

func TestGreedy_DisconnectedJoinsSmallest(t *testing.T) {
	inputs := [][]string{{"big"}, {"s1"}, {"s2"}}
	sizes := map[string]int{"big": 100, "s1": 2, "s2": 3}

	path, err := einsum.Greedy{}.Path(inputs, []string{"big", "s1", "s2"}, sizes)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, einsum.Step{1, 2}, path[0])
}

func TestCost_RejectsBadPath(t *testing.T) {
	inputs := [][]string{{"a"}, {"a"}}
	sizes := map[string]int{"a": 2}

	_, err := einsum.Cost(inputs, nil, sizes, []einsum.Step{{0, 0}})
	require.ErrorIs(t, err, einsum.ErrBadPath)
	_, err = einsum.Cost(inputs, nil, sizes, []einsum.Step{{0, 2}})
	require.ErrorIs(t, err, einsum.ErrBadPath)
	_, err = einsum.Cost(inputs, nil, sizes, []einsum.Step{{0, 1}, {0, 1}})
	require.ErrorIs(t, err, einsum.ErrBadPath)
}
