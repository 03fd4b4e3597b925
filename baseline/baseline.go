// Package baseline 用现成的通用压缩器压一遍原始采样缓冲区，
// 给提议的游程编码的估计值一组真实的参照点。
package baseline

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jwilder/encoding/simple8b"
	"github.com/pkg/errors"

	"tempviz/baseline/brotli"
	"tempviz/baseline/fse"
	"tempviz/baseline/huffman"
	"tempviz/baseline/lz4"
	"tempviz/baseline/snappy"
	"tempviz/baseline/xz"
	"tempviz/baseline/zstd"
)

type Codec struct {
	Name       string
	Compress   func(dst []byte, src []int16) []byte
	Decompress func(dst []int16, src []byte) ([]int16, error)
}

var Codecs = []Codec{
	{"snappy", snappy.Compress, snappy.Decompress},
	{"zstd", zstd.Compress, zstd.Decompress},
	{"lz4", lz4.Compress, lz4.Decompress},
	{"xz", xz.Compress, xz.Decompress},
	{"brotli", brotli.Compress, brotli.Decompress},
	{"huffman", huffman.Compress, huffman.Decompress},
	{"fse", fse.Compress, fse.Decompress},
}

type Result struct {
	Name       string  `json:"name"`
	Original   int     `json:"original_bytes"`
	Compressed int     `json:"compressed_bytes"`
	Ratio      float64 `json:"ratio"` // original / compressed
}

// Ratios 逐个编码器压缩原始 int16 缓冲区并记录压缩比
func Ratios(src []int16) []Result {
	original := len(src) * 2
	results := make([]Result, 0, len(Codecs))
	for _, c := range Codecs {
		out := c.Compress(nil, src)
		r := Result{Name: c.Name, Original: original, Compressed: len(out)}
		if len(out) > 0 {
			r.Ratio = float64(original) / float64(len(out))
		}
		results = append(results, r)
	}
	return results
}

func WriteReport(w io.Writer, results []Result) {
	fmt.Fprintln(w, "general-purpose compressor baselines:")
	for _, r := range results {
		fmt.Fprintf(w, "  %-8s original: %6d B | compressed: %6d B | ratio: %.3f\n",
			r.Name, r.Original, r.Compressed, r.Ratio)
	}
}

// PackRunLengths 用 simple8b 打包游程长度列表，
// 粗略看看单独的长度序列能装多紧。simple8b.EncodeAll 会复用输入切片，先拷贝。
func PackRunLengths(lengths []uint64) ([]byte, error) {
	tmp := append([]uint64(nil), lengths...)
	packed, err := simple8b.EncodeAll(tmp)
	if err != nil {
		return nil, errors.Wrap(err, "simple8b encode run lengths")
	}

	out := make([]byte, len(packed)*8)
	for i, v := range packed {
		binary.BigEndian.PutUint64(out[i*8:(i+1)*8], v)
	}
	return out, nil
}

// UnpackRunLengths 还原 PackRunLengths 的输出，n 是期望的游程个数上限
func UnpackRunLengths(data []byte, n int) ([]uint64, error) {
	if len(data)%8 != 0 {
		return nil, errors.Errorf("packed run lengths not word aligned: %d bytes", len(data))
	}

	words := make([]uint64, len(data)/8)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(data[i*8 : (i+1)*8])
	}

	dst := make([]uint64, n)
	count, err := simple8b.DecodeAll(dst, words)
	if err != nil {
		return nil, errors.Wrap(err, "simple8b decode run lengths")
	}
	return dst[:count], nil
}
