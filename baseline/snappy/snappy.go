package snappy

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/snappy"
)

func Compress(dst []byte, src []int16) []byte {
	raw := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(raw[i*2:(i+1)*2], uint16(v))
	}

	bw := &bytes.Buffer{}
	enc := snappy.NewBufferedWriter(bw)
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return dst
	}
	if err := enc.Close(); err != nil {
		return dst
	}
	return append(dst, bw.Bytes()...)
}

func Decompress(dst []int16, src []byte) ([]int16, error) {
	dec := snappy.NewReader(bytes.NewReader(src))
	raw, err := io.ReadAll(dec)
	if err != nil {
		return dst, err
	}
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(binary.LittleEndian.Uint16(raw[i:i+2])))
	}
	return dst, nil
}
