// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

func TestCheckConnect(t *testing.T) {
	tests := []struct {
		connect  string
		expected string
		err      error
	}{
		{"127.0.0.1:2130", "127.0.0.1:2130", nil},
		{" [::1]:2130 ", "[::1]:2130", nil},
		{"", "", ErrRequiredConnect},
		{"127.0.0.1", "", ErrInvalidConnect},
		{":2130", "", ErrInvalidConnect},
		{"localhost:", "", ErrInvalidConnect},
	}

	for i, item := range tests {
		actual, err := checkConnect(item.connect)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong connect", i)
	}
}

func TestCheckCaller(t *testing.T) {
	alice := account.Account{1}

	actual, err := checkCaller(alice.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, alice, actual, "wrong account")

	_, err = checkCaller("")
	assert.Equal(t, ErrRequiredCaller, err, "empty caller accepted")

	_, err = checkReceiver("")
	assert.Equal(t, ErrRequiredReceiver, err, "empty receiver accepted")

	_, err = checkCaller("not-base58-0OIl")
	assert.NotNil(t, err, "invalid caller accepted")
}

func TestCheckId(t *testing.T) {
	id, err := checkId("42")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, kitty.Id(42), id, "wrong id")

	_, err = checkId("")
	assert.Equal(t, ErrRequiredId, err, "empty id accepted")

	_, err = checkId("-1")
	assert.Equal(t, fault.ErrInvalidIdentifier, err, "negative id accepted")
}

func TestCheckName(t *testing.T) {
	name, err := checkName("tom")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "tom", name, "wrong name")

	_, err = checkName("much-too-long")
	assert.Equal(t, fault.ErrNameTooLong, err, "long name accepted")
}
