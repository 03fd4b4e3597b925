package fse

import (
	"encoding/binary"
	"errors"

	"github.com/klauspost/compress/fse"
)

// Compress 有限状态熵编码（order-0）。首字节标记位同 huffman 包：
// 1 = fse 块，0 = 原样存储（不可压缩或退化成 RLE 的输入）
func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}

	compressed, err := fse.Compress(raw, nil)
	if err != nil || len(compressed) == 0 || len(compressed) >= len(raw) {
		return append(append(dst, 0), raw...)
	}
	return append(append(dst, 1), compressed...)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	if len(src) == 0 {
		return dst, errors.New("empty input")
	}

	var raw []byte
	if src[0] == 1 {
		uncb, err := fse.Decompress(src[1:], nil)
		if err != nil {
			return dst, err
		}
		raw = uncb
	} else {
		raw = src[1:]
	}

	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}
