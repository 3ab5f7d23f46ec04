// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package random

import (
	"math/bits"
	"time"

	"github.com/gomlx/exceptions"
)

// Philox4x32-10 constants.
const (
	philoxM0 = 0xD2511F53
	philoxM1 = 0xCD9E8D57
	philoxW0 = 0x9E3779B9
	philoxW1 = 0xBB67AE85

	philoxRounds = 10
)

// Philox is the default implementation of the random.Interface: a counter-based generator
// (Philox4x32 with 10 rounds). Each 128 bits counter value is encrypted with the key (the seed)
// and yields 4 uint32 values.
//
// It is not safe for concurrent use: see NewLocked.
type Philox struct {
	key     [2]uint32
	counter [4]uint32

	// block holds the output for counter-1, of which the first used values were consumed.
	block [4]uint32
	used  int
}

var _ Interface = &Philox{}

// NewPhilox returns a new Philox with a state initialized from the system clock.
func NewPhilox() *Philox {
	return NewPhiloxWithSeed(time.Now().UnixNano())
}

// NewPhiloxWithSeed returns a new Philox with a state initialized from the given seed.
// Two generators with the same seed produce the same sequence.
func NewPhiloxWithSeed(seed int64) *Philox {
	p := &Philox{}
	p.key[0] = uint32(seed)
	p.key[1] = uint32(uint64(seed) >> 32)
	p.used = len(p.block)
	return p
}

// philoxBlock encrypts counter with key.
func philoxBlock(counter [4]uint32, key [2]uint32) [4]uint32 {
	c := counter
	k0, k1 := key[0], key[1]
	for range philoxRounds {
		hi0, lo0 := bits.Mul32(philoxM0, c[0])
		hi1, lo1 := bits.Mul32(philoxM1, c[2])
		c = [4]uint32{hi1 ^ c[1] ^ k0, lo1, hi0 ^ c[3] ^ k1, lo0}
		k0 += philoxW0
		k1 += philoxW1
	}
	return c
}

// incrementCounter increments the 128 bits counter, with carry.
func (p *Philox) incrementCounter() {
	for i := range p.counter {
		p.counter[i]++
		if p.counter[i] != 0 {
			return
		}
	}
}

// Uint32 returns the next 32 random bits.
func (p *Philox) Uint32() uint32 {
	if p.used == len(p.block) {
		p.block = philoxBlock(p.counter, p.key)
		p.incrementCounter()
		p.used = 0
	}
	v := p.block[p.used]
	p.used++
	return v
}

// Uint64 returns the next 64 random bits. It makes Philox a math/rand/v2 Source.
func (p *Philox) Uint64() uint64 {
	hi := uint64(p.Uint32())
	return hi<<32 | uint64(p.Uint32())
}

// IntN implements Interface, with an unbiased multiply-and-reject reduction of Uint64.
func (p *Philox) IntN(n int) int {
	if n <= 0 {
		exceptions.Panicf("random.Philox.IntN: invalid argument %d, it must be > 0", n)
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		hi, lo := bits.Mul64(p.Uint64(), bound)
		if lo >= threshold {
			return int(hi)
		}
	}
}

// Split returns a new generator that is independent of this one: its key is drawn from p.
func (p *Philox) Split() *Philox {
	return NewPhiloxWithSeed(int64(p.Uint64()))
}
