// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/fault"
)

// wait for n tokens, fail if the burst can never hold them
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// one token per call
func rateLimit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// a page of kitties costs one token per kitty
//
// an out of range count still costs one token so bad requests are
// limited too
func rateLimitN(limiter *rate.Limiter, count int) error {
	if count <= 0 || count > maximumKittiesList {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return reserve(limiter, count)
}
