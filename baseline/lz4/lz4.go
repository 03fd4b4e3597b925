package lz4

import (
	"encoding/binary"

	lz4 "github.com/bkaradzic/go-lz4"
)

func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}

	out, err := lz4.Encode(nil, raw)
	if err != nil {
		return dst
	}
	return append(dst, out...)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	raw, err := lz4.Decode(nil, src)
	if err != nil {
		return dst, err
	}
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}
