package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractRuns(t *testing.T) {
	// 差分序列 [0,0,0,1,0,0]: 一个长度 3 的游程和一个长度 2 的游程
	samples := []float64{5, 5, 5, 5, 6, 6, 6}
	rs := ExtractRuns(samples)

	require.Equal(t, 7, rs.Samples)
	require.Equal(t, 2, rs.RunCount)
	require.Equal(t, map[int]int{3: 1, 2: 1}, rs.Hist)
	require.Equal(t, 5, rs.ZeroDiffs)
	require.Equal(t, 1, rs.NonZeroDiffs)
}

func TestExtractRunsNoRuns(t *testing.T) {
	rs := ExtractRuns([]float64{1, 2, 3, 4})
	require.Equal(t, 0, rs.RunCount)
	require.Empty(t, rs.Hist)
	require.Equal(t, 3, rs.NonZeroDiffs)
}

func TestExtractRunsAllEqual(t *testing.T) {
	rs := ExtractRuns([]float64{4, 4, 4})
	require.Equal(t, 1, rs.RunCount)
	require.Equal(t, map[int]int{2: 1}, rs.Hist)
	require.Equal(t, 0, rs.NonZeroDiffs)
}

func TestExtractRunsShort(t *testing.T) {
	require.Equal(t, 0, ExtractRuns(nil).RunCount)
	require.Equal(t, 0, ExtractRuns([]float64{1}).RunCount)
}

func TestLengthsSorted(t *testing.T) {
	rs := &RunStats{Hist: map[int]int{7: 1, 1: 3, 4: 2}}
	require.Equal(t, []int{1, 4, 7}, rs.Lengths())
}

func TestRunLengthsExpansion(t *testing.T) {
	rs := &RunStats{RunCount: 4, Hist: map[int]int{2: 3, 5: 1}}
	require.Equal(t, []uint64{2, 2, 2, 5}, rs.RunLengths())
}
