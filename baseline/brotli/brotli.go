package brotli

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/andybalholm/brotli"
)

func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}

	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return dst
	}
	if err := w.Close(); err != nil {
		return dst
	}
	return append(dst, buf.Bytes()...)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	raw, err := io.ReadAll(r)
	if err != nil {
		return dst, err
	}
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}
