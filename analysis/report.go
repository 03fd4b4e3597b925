package analysis

import (
	"fmt"
	"io"
)

// WriteReport 打印游程统计和压缩率估计。
// 计算都在 ExtractRuns/Estimate 里完成，这里只负责排版。
func WriteReport(w io.Writer, rs *RunStats, est *CodeEstimate) {
	fmt.Fprintf(w, "samples: %d\n", rs.Samples)
	fmt.Fprintf(w, "zero-diff runs: %d | zero diffs: %d | non-zero diffs: %d\n",
		rs.RunCount, rs.ZeroDiffs, rs.NonZeroDiffs)

	fmt.Fprintln(w, "run-length histogram:")
	for _, l := range rs.Lengths() {
		fmt.Fprintf(w, "  len %4d: %d\n", l, rs.Hist[l])
	}

	fmt.Fprintf(w, "run-length entropy: %.4f bits/run\n", est.Entropy)
	fmt.Fprintf(w, "bits/run without RLC: %.4f\n", est.NoRLCBits)
	fmt.Fprintf(w, "bits/run with RLC:    %.4f\n", est.RLCBits)
	fmt.Fprintf(w, "estimated size: %d bits | raw: %d bits | ratio: %.4f\n",
		est.CompressedBits, est.RawBits, est.Ratio)
}
