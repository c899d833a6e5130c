// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genetics - combine two parent genomes into a child genome
package genetics

import (
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/randomness"
)

// Selector - one bit per genome bit: set takes parent A, clear takes parent B
type Selector [kitty.DnaSize]byte

// SelectorFromSeed - the leading bytes of a random seed
func SelectorFromSeed(seed randomness.Seed) Selector {
	var s Selector
	copy(s[:], seed[:kitty.DnaSize])
	return s
}

// DnaFromSeed - genome for a kitty that has no parents
func DnaFromSeed(seed randomness.Seed) kitty.Dna {
	var d kitty.Dna
	copy(d[:], seed[:kitty.DnaSize])
	return d
}

// Combine - every child bit comes from the same position in one of the parents
func Combine(a kitty.Dna, b kitty.Dna, selector Selector) kitty.Dna {
	var child kitty.Dna
	for i := range child {
		child[i] = (a[i] & selector[i]) | (b[i] &^ selector[i])
	}
	return child
}
