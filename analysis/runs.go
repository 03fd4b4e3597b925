package analysis

import "sort"

// RunStats 标定序列一阶差分的零值游程统计。
// 游程 = 差分序列里连续为 0 的最长区间，长度按区间内差分个数计。
type RunStats struct {
	Samples      int         `json:"samples"`        // 采样总数
	RunCount     int         `json:"run_count"`      // 游程数量
	ZeroDiffs    int         `json:"zero_diffs"`     // 零差分总数 = Σ 长度×次数
	NonZeroDiffs int         `json:"non_zero_diffs"` // 非零差分数量
	Hist         map[int]int `json:"hist"`           // 游程长度 -> 出现次数
}

// ExtractRuns 对标定序列做一阶差分并统计零值游程。
// 判零用精确的浮点相等：原始信号本身是 1/16 °C 量化的，相邻相等采样
// 标定后差分就是精确的 0.0，不需要容差。
func ExtractRuns(samples []float64) *RunStats {
	rs := &RunStats{
		Samples: len(samples),
		Hist:    make(map[int]int),
	}

	run := 0
	for i := 1; i < len(samples); i++ {
		if samples[i]-samples[i-1] == 0.0 {
			run++
			rs.ZeroDiffs++
			continue
		}
		rs.NonZeroDiffs++
		if run > 0 {
			rs.Hist[run]++
			rs.RunCount++
			run = 0
		}
	}
	if run > 0 {
		rs.Hist[run]++
		rs.RunCount++
	}

	return rs
}

// Lengths 直方图里出现过的游程长度，升序（报表和柱状图用固定顺序）
func (rs *RunStats) Lengths() []int {
	lengths := make([]int, 0, len(rs.Hist))
	for l := range rs.Hist {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// RunLengths 把直方图展开成逐游程的长度列表，升序分组
func (rs *RunStats) RunLengths() []uint64 {
	out := make([]uint64, 0, rs.RunCount)
	for _, l := range rs.Lengths() {
		for i := 0; i < rs.Hist[l]; i++ {
			out = append(out, uint64(l))
		}
	}
	return out
}
