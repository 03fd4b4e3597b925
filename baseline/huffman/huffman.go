package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/icza/huffman/hufio"
)

// Compress 首字节是标记位：1 = huffman 流，0 = 原样存储（压缩无收益时）
func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}

	var buf bytes.Buffer
	w := hufio.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return append(append(dst, 0), raw...)
	}
	if err := w.Close(); err != nil {
		return append(append(dst, 0), raw...)
	}
	compressed := buf.Bytes()
	if len(compressed) == 0 || len(compressed) >= len(raw) {
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
		r := hufio.NewReader(bytes.NewReader(src[1:]))
		uncb, err := io.ReadAll(r)
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
