package bytecodec

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
// On the wire it is 16 bytes, Lo first, each half little-endian.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is a two's-complement signed 128-bit integer. It shares the wire
// layout of Uint128; the sign lives in the top bit of Hi.
type Int128 struct {
	Lo uint64
	Hi int64
}

// U128 widens v to a Uint128.
func U128(v uint64) Uint128 { return Uint128{Lo: v} }

// I128 sign-extends v to an Int128.
func I128(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Lo: uint64(v), Hi: hi}
}

func uint128LE(b []byte) Uint128 {
	return Uint128{Lo: LE.Uint64(b[:8]), Hi: LE.Uint64(b[8:16])}
}

// Big returns u as a new big.Int.
func (u Uint128) Big() *big.Int {
	return u.Uint256().ToBig()
}

// Uint256 returns u widened to a uint256.Int.
func (u Uint128) Uint256() *uint256.Int {
	return &uint256.Int{u.Lo, u.Hi, 0, 0}
}

// Uint128FromUint256 narrows v. It reports false if v needs more than 128 bits.
func Uint128FromUint256(v *uint256.Int) (Uint128, bool) {
	if v[2] != 0 || v[3] != 0 {
		return Uint128{}, false
	}
	return Uint128{Lo: v[0], Hi: v[1]}, true
}

func (u Uint128) String() string { return u.Big().String() }

// Neg reports whether i is below zero.
func (i Int128) Neg() bool { return i.Hi < 0 }

// Big returns i as a new big.Int.
func (i Int128) Big() *big.Int {
	u := Uint128{Lo: i.Lo, Hi: uint64(i.Hi)}
	if !i.Neg() {
		return u.Big()
	}
	// two's complement: -(^u + 1)
	mag := new(uint256.Int).Not(u.Uint256())
	mag[2], mag[3] = 0, 0
	mag.AddUint64(mag, 1)
	return new(big.Int).Neg(mag.ToBig())
}

func (i Int128) String() string { return i.Big().String() }
