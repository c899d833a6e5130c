// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/genetics"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/randomness"
)

func TestCombineSelectsWholeParents(t *testing.T) {
	a := kitty.Dna{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}
	b := kitty.Dna{0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55}

	all := genetics.Selector{}
	for i := range all {
		all[i] = 0xff
	}

	assert.Equal(t, a, genetics.Combine(a, b, all), "all set selector should give parent A")
	assert.Equal(t, b, genetics.Combine(a, b, genetics.Selector{}), "clear selector should give parent B")
}

func TestCombineMixesPerBit(t *testing.T) {
	a := kitty.Dna{0xff, 0x00}
	b := kitty.Dna{0x00, 0xff}
	selector := genetics.Selector{0x0f, 0xf0}

	child := genetics.Combine(a, b, selector)
	assert.Equal(t, byte(0x0f), child[0], "wrong first byte")
	assert.Equal(t, byte(0x0f), child[1], "wrong second byte")
}

// for every bit position the child agrees with at least one parent
func TestCombineInheritsEveryBit(t *testing.T) {
	random := randomness.NewEntropy([]byte("genetics"))

	for n := 0; n < 200; n += 1 {
		a := genetics.DnaFromSeed(random.Random([]byte{'a', byte(n)}))
		b := genetics.DnaFromSeed(random.Random([]byte{'b', byte(n)}))
		selector := genetics.SelectorFromSeed(random.Random([]byte{'s', byte(n)}))

		child := genetics.Combine(a, b, selector)

		for i := range child {
			// a bit where both parents agree must be kept
			agree := ^(a[i] ^ b[i])
			assert.Equal(t, a[i]&agree, child[i]&agree, "%d: byte %d has a bit from neither parent", n, i)

			// where they differ the selector decides
			fromA := (a[i] ^ b[i]) & selector[i]
			assert.Equal(t, a[i]&fromA, child[i]&fromA, "%d: byte %d ignored the selector", n, i)
		}
	}
}

func TestSelectorFromSeed(t *testing.T) {
	seed := randomness.Seed{1, 2, 3}
	seed[kitty.DnaSize] = 0xff

	s := genetics.SelectorFromSeed(seed)
	assert.Equal(t, genetics.Selector{1, 2, 3}, s, "wrong selector")

	d := genetics.DnaFromSeed(seed)
	assert.Equal(t, kitty.Dna{1, 2, 3}, d, "wrong dna")
}
