package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hack/signal"
)

// Instruction words used below, bit 0 leftmost:
//
//	111 a cccccc ddd jjj
const (
	iDeqA   = 0b1110_1100_0001_0000 // D=A
	iDeqDpA = 0b1110_0000_1001_0000 // D=D+A
	iDeqM   = 0b1111_1100_0001_0000 // D=M
	iDeqDmM = 0b1111_0100_1101_0000 // D=D-M
	iDJGT   = 0b1110_0011_0000_0001 // D;JGT
	iJMP    = 0b1110_1010_1000_0111 // 0;JMP
)

func TestTickIncrementsPcIfNotResetAndNotJump(t *testing.T) {
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)
	assert.Equal(t, signal.Zero, cpu.PC())
	cpu.Tick(false, signal.Zero, signal.Zero)
	assert.Equal(t, signal.Word(1), cpu.PC())
	cpu.Tick(false, signal.Zero, signal.Zero)
	assert.Equal(t, signal.Word(2), cpu.PC())
}

func TestResetDominatesJump(t *testing.T) {
	var cpu Cpu
	cpu.Tick(false, signal.Zero, signal.Word(30)) // A = 30
	cpu.Tick(true, signal.Zero, signal.Word(iJMP))
	assert.Equal(t, signal.Zero, cpu.PC())
}

func TestAInstructionLoadsA(t *testing.T) {
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)
	cpu.Tick(false, signal.Zero, signal.Word(1234))
	assert.Equal(t, signal.Word(1234), cpu.A())

	// no memory write, ALU result discarded
	_, writeM, _, _ := cpu.Out()
	assert.False(t, writeM)
	assert.Equal(t, signal.Zero, cpu.D())
}

func TestTwoPlusThreeEqualsFive(t *testing.T) {
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)             // reset
	cpu.Tick(false, signal.Zero, signal.Word(2))         // @2
	cpu.Tick(false, signal.Zero, signal.Word(iDeqA))     // D=A
	cpu.Tick(false, signal.Zero, signal.Word(3))         // @3
	cpu.Tick(false, signal.Zero, signal.Word(iDeqDpA))   // D=D+A

	assert.Equal(t, signal.Word(5), cpu.D())
	_, _, outM, _ := cpu.Out()
	assert.Equal(t, signal.Word(5), outM)
}

func TestMaxOneTwoEqualsTwo(t *testing.T) {
	// M[0]=1, M[1]=2; the program takes the D;JGT branch only if
	// M[0]-M[1] > 0, so it falls through and reloads M[1]
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)               // reset
	cpu.Tick(false, signal.Zero, signal.Zero)              // @0
	cpu.Tick(false, signal.Word(1), signal.Word(iDeqM))    // D=M[0]=1
	cpu.Tick(false, signal.Zero, signal.Word(1))           // @1
	cpu.Tick(false, signal.Word(2), signal.Word(iDeqDmM))  // D=D-M[1]=-1
	cpu.Tick(false, signal.Zero, signal.Word(10))          // @10
	cpu.Tick(false, signal.Zero, signal.Word(iDJGT))       // D;JGT — not taken
	assert.NotEqual(t, cpu.A(), cpu.PC())

	cpu.Tick(false, signal.Zero, signal.Word(1))           // @1
	cpu.Tick(false, signal.Word(2), signal.Word(iDeqM))    // D=M[1]=2
	cpu.Tick(false, signal.Zero, signal.Word(12))          // @12
	cpu.Tick(false, signal.Zero, signal.Word(iJMP))        // 0;JMP
	assert.Equal(t, cpu.A(), cpu.PC())
	assert.Equal(t, signal.Word(2), cpu.D())
}

func TestWriteMAndAddressM(t *testing.T) {
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)
	cpu.Tick(false, signal.Zero, signal.Word(7))                         // @7
	cpu.Tick(false, signal.Zero, signal.Word(0b1110_1110_1000_1000))     // M=-1

	address, writeM, outM, _ := cpu.Out()
	assert.True(t, writeM)
	assert.Equal(t, signal.Word(0xffff), outM)

	n := 0
	for _, bit := range address {
		n <<= 1
		if bit {
			n |= 1
		}
	}
	assert.Equal(t, 7, n)
}

func TestJumpUsesAFromBeforeWriteBack(t *testing.T) {
	// D=5 / A=9 / A=D+A;JMP: the jump must land on 9 (the old A), while
	// the write-back loads A with D+A = 14
	var cpu Cpu
	cpu.Tick(true, signal.Zero, signal.Zero)
	cpu.Tick(false, signal.Zero, signal.Word(5))                         // @5
	cpu.Tick(false, signal.Zero, signal.Word(iDeqA))                     // D=A
	cpu.Tick(false, signal.Zero, signal.Word(9))                         // @9
	cpu.Tick(false, signal.Zero, signal.Word(0b1110_0000_1010_0111))     // A=D+A;JMP

	assert.Equal(t, signal.Word(9), cpu.PC())
	assert.Equal(t, signal.Word(14), cpu.A())
}
