package xz

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"
)

func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}
	data, err := compressBytes(raw)
	if err != nil {
		return dst
	}
	return append(dst, data...)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	raw, err := decompressBytes(src)
	if err != nil {
		return dst, err
	}
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}

func compressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(src); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressBytes(src []byte) ([]byte, error) {
	zr, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(zr)
}
