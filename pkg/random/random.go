// Package random provides a seedable pseudo-random generator for test and
// mock data: bounded numbers with a precision step, booleans, array picks and
// RFC 4122 version 4 UUID strings.
//
// A Random is backed by a 32-bit Mersenne Twister. Seeding it with the same
// value always reproduces the same sequence of generated values. It is not
// suitable for secrets.
//
// A Random is not safe for concurrent use. Give each goroutine its own
// instance; independent instances never share state.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Random is a seedable pseudo-random value generator. The zero value is ready
// to use and seeds itself from system entropy on first use.
type Random struct {
	mt          mt19937
	initialized bool
}

// New returns a Random seeded from a non-deterministic source.
func New() *Random {
	r := &Random{}
	r.seedFromEntropy()
	return r
}

// NewSeeded returns a Random seeded with seed.
func NewSeeded(seed int64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

func (r *Random) seedFromEntropy() {
	var buf [16]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		binary.LittleEndian.PutUint64(buf[:8], uint64(time.Now().UnixNano()))
	}
	key := make([]uint32, len(buf)/4)
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	r.mt.seedArray(key)
	r.initialized = true
}

func (r *Random) seedWords(lo, hi uint32) {
	if hi == 0 {
		r.mt.seed(lo)
	} else {
		r.mt.seedArray([]uint32{lo, hi})
	}
	r.initialized = true
}

// Seed resets the generator so that its future output is a pure function of
// seed. Seeds in [0, 2^32) use the reference MT19937 integer initialization;
// other values are split into their low and high 32-bit words.
func (r *Random) Seed(seed int64) {
	u := uint64(seed)
	r.seedWords(uint32(u), uint32(u>>32))
}

// SeedString resets the generator from a string seed. The string is hashed
// with xxHash64 and both halves of the digest feed the initialization.
func (r *Random) SeedString(seed string) {
	h := xxhash.Sum64String(seed)
	r.mt.seedArray([]uint32{uint32(h), uint32(h >> 32)})
	r.initialized = true
}

// InitSeed accepts any Go integer type, an integral finite float or a string
// and reseeds accordingly. Other values return ErrInvalidArgument and leave
// the generator untouched.
func (r *Random) InitSeed(seed any) error {
	switch v := seed.(type) {
	case int:
		r.Seed(int64(v))
	case int8:
		r.Seed(int64(v))
	case int16:
		r.Seed(int64(v))
	case int32:
		r.Seed(int64(v))
	case int64:
		r.Seed(v)
	case uint:
		r.seedWords(uint32(v), uint32(uint64(v)>>32))
	case uint8:
		r.Seed(int64(v))
	case uint16:
		r.Seed(int64(v))
	case uint32:
		r.Seed(int64(v))
	case uint64:
		r.seedWords(uint32(v), uint32(v>>32))
	case float32:
		return r.seedFloat(float64(v))
	case float64:
		return r.seedFloat(v)
	case string:
		r.SeedString(v)
	default:
		return fmt.Errorf("%w: unsupported seed type %T", ErrInvalidArgument, seed)
	}
	return nil
}

func (r *Random) seedFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return fmt.Errorf("%w: seed %v is not an integer", ErrInvalidArgument, v)
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("%w: seed %v out of range", ErrInvalidArgument, v)
	}
	r.Seed(int64(v))
	return nil
}

// Uint32 returns the next raw 32-bit word.
func (r *Random) Uint32() uint32 {
	if !r.initialized {
		r.seedFromEntropy()
	}
	return r.mt.next()
}

// Uint64 returns two raw words, high word first. It makes *Random a
// math/rand/v2 Source.
func (r *Random) Uint64() uint64 {
	hi := uint64(r.Uint32())
	return hi<<32 | uint64(r.Uint32())
}

// Float64 returns a uniformly distributed value in [0, 1) with 32 bits of
// precision. Every bounded generator consumes exactly one Float64 per draw.
func (r *Random) Float64() float64 {
	return float64(r.Uint32()) * (1.0 / 4294967296.0)
}

// Boolean returns true and false with equal probability.
func (r *Random) Boolean() bool {
	return r.Float64() < 0.5
}
