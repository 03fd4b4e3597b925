package analysis

import (
	"errors"
	"math"
)

// 候选游程编码的位宽表：长度 1-16 的游程按表计费，
// 更长的游程用 3 位头 + 8 位长度的逃逸编码
var rlcBits = [16]int{4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 10, 10}

const (
	overflowBits = 11 // 3 header + 8 payload
	nonZeroBits  = 2  // 每个非零差分的计费
	initialBits  = 15 // 首个绝对测量值: 3 opcode + 12 数据
	rawBits      = 12 // 未压缩基线: 每个原始测量 12 位
)

// CodeEstimate 游程分布导出的压缩率估计
type CodeEstimate struct {
	Entropy        float64 `json:"entropy_bits"`        // 游程长度分布的香农熵 (bits/run)
	NoRLCBits      float64 `json:"no_rlc_bits_per_run"` // 不做游程编码: 每个零差分 1 位
	RLCBits        float64 `json:"rlc_bits_per_run"`    // 候选编码的期望位数
	CompressedBits int     `json:"compressed_bits"`     // 估计的整体压缩大小
	RawBits        int     `json:"raw_bits"`            // 12 位/测量的朴素基线
	Ratio          float64 `json:"compression_ratio"`   // CompressedBits / RawBits
}

func runBits(length int) int {
	if length >= 1 && length <= len(rlcBits) {
		return rlcBits[length-1]
	}
	return overflowBits
}

// Estimate 把游程直方图换算成熵和压缩率估计。
// 没有任何游程时直接报错，避免 0/0 概率归一化悄悄产出 NaN。
func Estimate(rs *RunStats) (*CodeEstimate, error) {
	if rs == nil || rs.RunCount == 0 {
		return nil, errors.New("no zero runs to estimate")
	}

	est := &CodeEstimate{}
	total := float64(rs.RunCount)
	runTotalBits := 0

	for length, count := range rs.Hist {
		p := float64(count) / total
		est.Entropy -= p * math.Log2(p)
		est.NoRLCBits += float64(length) * p
		runTotalBits += count * runBits(length)
	}
	est.RLCBits = float64(runTotalBits) / total

	est.CompressedBits = runTotalBits + rs.NonZeroDiffs*nonZeroBits + initialBits
	est.RawBits = rs.Samples * rawBits
	est.Ratio = float64(est.CompressedBits) / float64(est.RawBits)

	return est, nil
}
