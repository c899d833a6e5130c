// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Policy - rules that are a product decision rather than fixed behaviour
type Policy struct {
	// caller must own both parents to breed from them
	BreedRequiresOwnership bool `gluamapper:"breed_requires_ownership" json:"breed_requires_ownership"`

	// a transfer removes any sale listing so a listing always
	// belongs to the current owner
	TransferClearsListing bool `gluamapper:"transfer_clears_listing" json:"transfer_clears_listing"`
}

// DefaultPolicy - anyone may breed any kitties; transfers clear listings
func DefaultPolicy() Policy {
	return Policy{
		BreedRequiresOwnership: false,
		TransferClearsListing:  true,
	}
}
