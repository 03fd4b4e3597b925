package sensor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeRaw(raws []int16) []byte {
	buf := make([]byte, len(raws)*2)
	for i, r := range raws {
		binary.LittleEndian.PutUint16(buf[i*2:(i+1)*2], uint16(r))
	}
	return buf
}

func TestDecodeLength(t *testing.T) {
	buf := encodeRaw([]int16{1, 2, 3, 4})
	require.Len(t, Decode(buf), 4)

	// 末尾多出的半个采样直接丢弃
	require.Len(t, Decode(append(buf, 0x7f)), 4)
	require.Len(t, Decode([]byte{0x01}), 0)
	require.Len(t, Decode(nil), 0)
}

func TestDecodeCalibration(t *testing.T) {
	raws := []int16{0, 16, -16, 1600, -2048, 32767, -32768}
	temps := Decode(encodeRaw(raws))

	require.Len(t, temps, len(raws))
	for i, r := range raws {
		want := (float64(r)/16.0)*1.8 + 32
		require.InDelta(t, want, temps[i], 1e-9)
	}

	// raw 16 = 1.0 °C = 33.8 °F
	require.InDelta(t, 33.8, temps[1], 1e-9)
}

func TestDecodeRawRoundTrip(t *testing.T) {
	raws := []int16{0, 0, 0, 16, -5, 300}
	require.Equal(t, raws, DecodeRaw(encodeRaw(raws)))
}

func TestToCelsius(t *testing.T) {
	require.InDelta(t, 0.0, ToCelsius(32.0), 1e-9)
	require.InDelta(t, 1.0, ToCelsius(33.8), 1e-9)
	require.InDelta(t, 100.0, ToCelsius(212.0), 1e-9)

	for _, r := range []int16{-100, 0, 7, 123} {
		f := Fahrenheit(r)
		require.InDelta(t, float64(r)/16.0, ToCelsius(f), 1e-9)
	}
}
