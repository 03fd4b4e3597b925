package baseline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 模拟量化温度信号: 长平台 + 少量跳变，含负值
func testSignal() []int16 {
	src := make([]int16, 0, 1200)
	levels := []int16{320, 320, 321, 321, 321, -16, -16, 0, 512, 512}
	for _, lv := range levels {
		for i := 0; i < 120; i++ {
			src = append(src, lv)
		}
	}
	return src
}

func TestCodecsRoundTrip(t *testing.T) {
	src := testSignal()
	for _, c := range Codecs {
		t.Run(c.Name, func(t *testing.T) {
			compressed := c.Compress(nil, src)
			require.NotEmpty(t, compressed)

			decompressed, err := c.Decompress(nil, compressed)
			require.NoError(t, err)
			require.Equal(t, src, decompressed)
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, c := range Codecs {
		t.Run(c.Name, func(t *testing.T) {
			compressed := c.Compress(nil, nil)
			decompressed, err := c.Decompress(nil, compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestRatios(t *testing.T) {
	src := testSignal()
	results := Ratios(src)
	require.Len(t, results, len(Codecs))
	for _, r := range results {
		require.Equal(t, len(src)*2, r.Original)
		require.Greater(t, r.Compressed, 0, r.Name)
		// 高度重复的平台信号至少要压得动
		require.Greater(t, r.Ratio, 1.0, r.Name)
	}
}

func TestPackRunLengths(t *testing.T) {
	lengths := []uint64{3, 2, 2, 17, 1, 240, 9}

	packed, err := PackRunLengths(lengths)
	require.NoError(t, err)
	require.NotEmpty(t, packed)

	// EncodeAll 不能动调用方的切片
	require.Equal(t, []uint64{3, 2, 2, 17, 1, 240, 9}, lengths)

	got, err := UnpackRunLengths(packed, len(lengths))
	require.NoError(t, err)
	require.Equal(t, lengths, got)
}

func TestUnpackRunLengthsBadInput(t *testing.T) {
	_, err := UnpackRunLengths([]byte{1, 2, 3}, 4)
	require.Error(t, err)
}
