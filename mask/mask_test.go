package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, Last(0b0000_1111, I1), uint16(0b0000_0001))
	assert.Equal(t, Last(0b0000_1111, I2), uint16(0b0000_0011))
	assert.Equal(t, Last(0b0000_1111, I3), uint16(0b0000_0111))
	assert.Equal(t, Last(0b0000_1111, I4), uint16(0b0000_1111))

	assert.Equal(t, Last(0b1000_0000_0000_1111, I4), uint16(0b0000_1111))
	assert.Equal(t, Last(0b1000_0000_0000_1111, I15), uint16(0b0000_0000_0000_1111))

	assert.Equal(t, First(0b1111_1111_1111_1111, 1), uint16(0b0000_0001))
	assert.Equal(t, First(0b1010_1111_0000_0000, 4), uint16(0b0000_1010))
	assert.Equal(t, First(0b1110_0000_0000_0000, 3), uint16(0b0000_0111))

	assert.Equal(t, Range(0b1101_1000_0000_0000, I1, I2), uint16(0b0000_0011))
	assert.Equal(t, Range(0b1101_1000_0000_0000, I2, I4), uint16(0b0000_0101))
	assert.Equal(t, Range(0b1101_1000_0000_0000, I4, I5), uint16(0b0000_0011))
	assert.Equal(t, Range(0b1110_1010_1010_1000, I4, I10), uint16(0b010_1010))
	assert.Equal(t, Range(0b0000_0000_0000_0111, I14, I16), uint16(0b0000_0111))

	assert.True(t, IsSet(0b1101_1000_0000_0000, 1))
	assert.True(t, IsSet(0b1101_1000_0000_0000, 2))
	assert.False(t, IsSet(0b1101_1000_0000_0000, 3))
	assert.True(t, IsSet(0b1101_1000_0000_0000, 4))
	assert.False(t, IsSet(0b1101_1000_0000_0000, 16))
	assert.True(t, IsSet(0b0000_0000_0000_0001, 16))

	assert.Equal(t, Set(0, 1, 0b0000_0010), uint16(0b1000_0000_0000_0000))
	assert.Equal(t, Set(0, 1, 0b0000_0101), uint16(0b1010_0000_0000_0000))
	assert.Equal(t, Set(0, 1, 0b0000_0111), uint16(0b1110_0000_0000_0000))
	assert.Equal(t, Set(0, 2, 0b0000_0011), uint16(0b0110_0000_0000_0000))
	assert.Equal(t, Set(0, 13, 0b0000_1111), uint16(0b0000_0000_0000_1111))
	assert.Equal(t, Set(0, 15, 0b0000_1000), uint16(0b0000_0000_0000_0010))
	assert.Equal(t, Set(0xffff, 1, 0), uint16(0xffff))

	assert.Equal(t, Unset(0b1111_0000_0000_0000, 5, 16), uint16(0b1111_0000_0000_0000))
	assert.Equal(t, Unset(0xffff, 5, 16), uint16(0b1111_0000_0000_0000))

	assert.Equal(t, Flip(0b1111_0000_0000_0000, 5, 5), uint16(0b1111_1000_0000_0000))
	assert.Equal(t, Flip(0b1111_0000_0000_0000, 13, 16), uint16(0b1111_0000_0000_1111))
	assert.Equal(t, Flip(0xffff, 5, 16), uint16(0b1111_0000_0000_0000))
}

func BenchmarkLast(b *testing.B) {
	Last(0b1000_1111, 4)
}

func BenchmarkFirst(b *testing.B) {
	First(0b1000_1111_0000_0000, 4)
}

func BenchmarkRange(b *testing.B) {
	Range(0b1000_1111_0000_0000, 4, 10)
}
