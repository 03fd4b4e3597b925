package common

// Smoothed 一条滑动平均曲线及其窗口宽度（绘图图例用）
type Smoothed struct {
	Width int       `json:"width"`
	Data  []float64 `json:"data"`
}

// MovingAvgArr 无权滑动平均，valid 卷积：窗口完全落在输入内才产生输出。
// 输出长度为 max(n-w+1, 0)；w 大于输入长度时返回空序列而不报错。
func MovingAvgArr(src []float64, w int) []float64 {
	if w < 1 {
		return nil
	}
	if w == 1 {
		return append([]float64(nil), src...)
	}
	n := len(src) - w + 1
	if n < 1 {
		return []float64{}
	}

	dst := make([]float64, n)
	var sum float64
	for i := 0; i < w; i++ {
		sum += src[i]
	}
	dst[0] = sum / float64(w)
	for i := 1; i < n; i++ {
		sum += src[i+w-1] - src[i-1]
		dst[i] = sum / float64(w)
	}
	return dst
}

// SmoothAll 按给定窗口宽度逐个计算滑动平均。
// 空列表或单独的 [0] 表示完全跳过平滑。
func SmoothAll(src []float64, windows []int) []Smoothed {
	if len(windows) == 0 || (len(windows) == 1 && windows[0] == 0) {
		return nil
	}

	out := make([]Smoothed, 0, len(windows))
	for _, w := range windows {
		out = append(out, Smoothed{Width: w, Data: MovingAvgArr(src, w)})
	}
	return out
}

// DiffArr 一阶差分，不修改输入
func DiffArr(src []float64) []float64 {
	if len(src) < 2 {
		return nil
	}

	dst := make([]float64, len(src)-1)
	for i := 1; i < len(src); i++ {
		dst[i-1] = src[i] - src[i-1]
	}
	return dst
}
