package computer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hack/asm"
	"hack/mem"
	"hack/signal"
)

func romFromSource(t *testing.T, src string) *Rom {
	t.Helper()
	binary, err := asm.Assemble(src)
	assert.NoError(t, err)
	rom, err := ReadRom(strings.NewReader(binary))
	assert.NoError(t, err)
	return rom
}

func addr15(n uint16) [15]bool {
	var a [15]bool
	for i := range a {
		a[i] = n&(1<<(14-i)) != 0
	}
	return a
}

// preload writes words into RAM before the program starts.
func (c *Computer) preload(values map[uint16]uint16) {
	for address, value := range values {
		c.memory.Tick(addr15(address), true, signal.Word(value))
	}
}

func TestTwoPlusThreeEqualsFive(t *testing.T) {
	c := New(nil, nil)
	c.SetRom(romFromSource(t, "@2\nD=A\n@3\nD=D+A\n"))

	c.Tick(true)
	for i := 0; i < 4; i++ {
		c.Tick(false)
	}
	assert.Equal(t, signal.Word(5), c.D())
}

func TestMaxOneTwoEqualsTwo(t *testing.T) {
	c := New(nil, nil)
	c.SetRom(romFromSource(t, strings.Join([]string{
		"@0",
		"D=M",
		"@1",
		"D=D-M",
		"@10",
		"D;JGT",
		"@1",
		"D=M",
		"@12",
		"0;JMP",
	}, "\n")))
	c.preload(map[uint16]uint16{0: 1, 1: 2})

	c.Tick(true)
	for i := 0; i < 10; i++ {
		c.Tick(false)
	}
	assert.Equal(t, signal.Word(2), c.D())
	assert.Equal(t, c.A(), c.PC())
	assert.Equal(t, signal.Word(12), c.PC())
}

func TestMemoryWriteIsVisibleOnTheNextTick(t *testing.T) {
	// M[3] = -1, then read it back into D
	c := New(nil, nil)
	c.SetRom(romFromSource(t, "@3\nM=-1\n@3\nD=M\n"))

	c.Tick(true)
	for i := 0; i < 4; i++ {
		c.Tick(false)
	}
	assert.Equal(t, signal.Word(0xffff), c.D())
}

func TestProgramPaintsTheScreen(t *testing.T) {
	screen := &mem.FrameScreen{}
	c := New(screen, nil)
	c.SetRom(romFromSource(t, "@SCREEN\nM=-1\n"))

	c.Tick(true)
	for i := 0; i < 3; i++ {
		c.Tick(false)
	}
	for x := 0; x < 16; x++ {
		assert.True(t, screen.At(x, 0), "pixel %d", x)
	}
	assert.False(t, screen.At(16, 0))
}

func TestProgramReadsTheKeyboard(t *testing.T) {
	c := New(nil, mem.NewStateKeyboard(nil))
	c.SetRom(romFromSource(t, "@KBD\nD=M\n"))
	c.SetKeyState(mem.KeyEvent{Key: "x", Pressed: true})

	c.Tick(true)
	for i := 0; i < 3; i++ {
		c.Tick(false)
	}
	assert.Equal(t, signal.Word(120), c.D())
}

func TestResetRestartsTheProgram(t *testing.T) {
	c := New(nil, nil)
	c.SetRom(romFromSource(t, "@5\nD=A\n"))

	c.Tick(true)
	c.Tick(false)
	c.Tick(false)
	assert.Equal(t, signal.Word(5), c.D())
	assert.NotEqual(t, signal.Zero, c.PC())

	c.Tick(true)
	assert.Equal(t, signal.Zero, c.PC())
}

func TestReadRomRejectsMalformedLines(t *testing.T) {
	for _, text := range []string{
		"101\n",
		"0000000000000002\n",
		"0000000000000000\nxxxxxxxxxxxxxxxx\n",
		"00000000000000000\n",
	} {
		_, err := ReadRom(strings.NewReader(text))
		var format *RomFormatError
		assert.ErrorAs(t, err, &format, "%q", text)
	}
}

func TestReadRomLoadsInOrder(t *testing.T) {
	rom, err := ReadRom(strings.NewReader("0000000000000001\n1110110000010000\n"))
	assert.NoError(t, err)

	rom.SetAddress(addr15(0))
	assert.Equal(t, signal.Word(1), rom.Out())
	rom.SetAddress(addr15(1))
	assert.Equal(t, signal.Word(0b1110_1100_0001_0000), rom.Out())
	rom.SetAddress(addr15(2))
	assert.Equal(t, signal.Zero, rom.Out())
}
