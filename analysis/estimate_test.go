package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateDegenerate(t *testing.T) {
	// 单一游程长度: 分布退化，熵为 0
	rs := &RunStats{
		Samples:      100,
		RunCount:     10,
		ZeroDiffs:    50,
		NonZeroDiffs: 20,
		Hist:         map[int]int{5: 10},
	}
	est, err := Estimate(rs)
	require.NoError(t, err)

	require.InDelta(t, 0.0, est.Entropy, 1e-12)
	require.InDelta(t, 5.0, est.NoRLCBits, 1e-12)
	require.InDelta(t, 6.0, est.RLCBits, 1e-12) // 长度 5 -> 表中 6 位
}

func TestEstimateEmpty(t *testing.T) {
	_, err := Estimate(&RunStats{Samples: 10, Hist: map[int]int{}})
	require.Error(t, err)
	_, err = Estimate(nil)
	require.Error(t, err)
}

func TestEstimateSchedule(t *testing.T) {
	cases := []struct {
		length int
		bits   float64
	}{
		{1, 4}, {2, 4}, {3, 5}, {8, 7}, {9, 8}, {13, 10}, {16, 10},
		{17, 11}, {200, 11}, // 表外的长度一律 3+8 位
	}
	for _, c := range cases {
		rs := &RunStats{Samples: 1000, RunCount: 1, ZeroDiffs: c.length, Hist: map[int]int{c.length: 1}}
		est, err := Estimate(rs)
		require.NoError(t, err)
		require.InDelta(t, c.bits, est.RLCBits, 1e-12, "length %d", c.length)
	}
}

func TestEstimateRatio(t *testing.T) {
	rs := &RunStats{
		Samples:      100,
		RunCount:     10,
		ZeroDiffs:    20,
		NonZeroDiffs: 20,
		Hist:         map[int]int{2: 10},
	}
	est, err := Estimate(rs)
	require.NoError(t, err)

	// 10 个长度 2 的游程 ×4 位 + 20 个非零差分 ×2 位 + 15 位初始绝对值
	require.Equal(t, 10*4+20*2+15, est.CompressedBits)
	require.Equal(t, 100*12, est.RawBits)
	require.InDelta(t, 95.0/1200.0, est.Ratio, 1e-12)
	require.InDelta(t, 2.0, est.NoRLCBits, 1e-12)
}

func TestEstimateEntropyMixed(t *testing.T) {
	// 两种等概率长度: 熵恰好 1 bit
	rs := &RunStats{Samples: 50, RunCount: 2, ZeroDiffs: 3, NonZeroDiffs: 5, Hist: map[int]int{1: 1, 2: 1}}
	est, err := Estimate(rs)
	require.NoError(t, err)
	require.InDelta(t, 1.0, est.Entropy, 1e-12)
	require.InDelta(t, 1.5, est.NoRLCBits, 1e-12)
	require.InDelta(t, 4.0, est.RLCBits, 1e-12)
}

func TestWriteReport(t *testing.T) {
	rs := ExtractRuns([]float64{5, 5, 5, 6})
	est, err := Estimate(rs)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, rs, est)
	out := buf.String()
	require.Contains(t, out, "samples: 4")
	require.Contains(t, out, "len    2: 1")
	require.Contains(t, out, "ratio")
}
