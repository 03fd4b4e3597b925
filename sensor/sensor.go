package sensor

import "encoding/binary"

// 传感器定点分辨率: 1/16 °C per LSB (TCN75A, 12-bit 模式)
const Resolution = 16.0

// SampleBytes 每个采样占用的字节数 (little-endian int16)
const SampleBytes = 2

// DecodeRaw 把采样缓冲区解析为 int16 序列，末尾不足一个采样的字节直接丢弃
func DecodeRaw(buf []byte) []int16 {
	n := len(buf) / SampleBytes
	dst := make([]int16, 0, n)
	for i := 0; i < n; i++ {
		dst = append(dst, int16(binary.LittleEndian.Uint16(buf[i*SampleBytes:(i+1)*SampleBytes])))
	}
	return dst
}

// Decode 解析缓冲区并标定为华氏温度序列
func Decode(buf []byte) []float64 {
	raw := DecodeRaw(buf)
	dst := make([]float64, 0, len(raw))
	for _, r := range raw {
		dst = append(dst, Fahrenheit(r))
	}
	return dst
}

// Fahrenheit 定点原始值 -> 华氏度
func Fahrenheit(raw int16) float64 {
	return (float64(raw)/Resolution)*1.8 + 32
}

// ToCelsius 华氏度 -> 摄氏度，绘图右轴用
func ToCelsius(f float64) float64 {
	return (f - 32) / 1.8
}
