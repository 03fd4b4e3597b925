package zstd

import (
	"encoding/binary"

	"github.com/valyala/gozstd"
)

func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}
	return gozstd.Compress(dst, raw)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	raw, err := gozstd.Decompress(nil, src)
	if err != nil {
		return dst, err
	}
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}
