// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomness - sources of the pseudo-random bits used for
// kitty dna
//
// the output only drives cosmetic traits and is not cryptographically
// secure: anyone who knows the entropy can predict every result
package randomness

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// SeedSize - bytes produced by one call
const SeedSize = 32

// Seed - one random output
type Seed [SeedSize]byte

// Provider - supplies randomness for a subject
//
// identical subjects against an identical provider state must give
// identical seeds so that every replica computes the same ledger
type Provider interface {
	Random(subject []byte) Seed
}

type entropyProvider struct {
	entropy []byte
}

// NewEntropy - SHA3-256(entropy ++ subject)
func NewEntropy(entropy []byte) Provider {
	e := make([]byte, len(entropy))
	copy(e, entropy)
	return &entropyProvider{
		entropy: e,
	}
}

func (p *entropyProvider) Random(subject []byte) Seed {
	h := sha3.New256()
	h.Write(p.entropy)
	h.Write(subject)

	var s Seed
	copy(s[:], h.Sum(nil))
	return s
}

type fixedProvider struct {
	sync.Mutex
	seeds []Seed
	next  int
}

// NewFixed - returns the given seeds in order, repeating from the start
// when exhausted; the subject is ignored
func NewFixed(seeds ...Seed) Provider {
	if 0 == len(seeds) {
		seeds = []Seed{{}}
	}
	return &fixedProvider{
		seeds: seeds,
	}
}

func (p *fixedProvider) Random(subject []byte) Seed {
	p.Lock()
	defer p.Unlock()

	s := p.seeds[p.next]
	p.next = (p.next + 1) % len(p.seeds)
	return s
}
