// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// this is the expected order
var cursorElements = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

func TestFetchCursor(t *testing.T) {
	s := setup(t)
	defer s.Close()

	populate(t, s, s.Pool.Kitties, cursorElements)

	// elements in another pool must not appear
	populate(t, s, s.Pool.Owners, []stringElement{{"key-zero", "other"}})

	cursor := s.Pool.Kitties.NewFetchCursor()

	seen := make([]stringElement, 0, len(cursorElements))
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		assert.True(t, len(data) <= 3, "fetch returned too many elements")
		for _, e := range data {
			seen = append(seen, stringElement{string(e.Key), string(e.Value)})
		}
	}
	assert.Equal(t, cursorElements, seen, "wrong elements")
}

func TestFetchCursorSeek(t *testing.T) {
	s := setup(t)
	defer s.Close()

	populate(t, s, s.Pool.Parents, []stringElement{
		{"\x00\x00\x00\x01", "a"},
		{"\x00\x00\x00\xff", "b"},
		{"\x00\x00\x01\x00", "c"},
	})

	cursor := s.Pool.Parents.NewFetchCursor().Seek([]byte{0, 0, 0, 2})
	data, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(data), "wrong count")
	assert.Equal(t, "b", string(data[0].Value), "seek did not skip first element")

	// key increment must carry into the next byte
	data, err = cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(data), "wrong count")
	assert.Equal(t, "c", string(data[0].Value), "carry lost an element")
}

func TestFetchCursorErrors(t *testing.T) {
	s := setup(t)
	defer s.Close()

	_, err := s.Pool.Kitties.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")

	var cursor *storage.FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor accepted")
}

func TestMap(t *testing.T) {
	s := setup(t)
	defer s.Close()

	populate(t, s, s.Pool.Kitties, cursorElements)

	n := 0
	err := s.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		assert.Equal(t, cursorElements[n].key, string(key), "wrong key")
		assert.Equal(t, cursorElements[n].value, string(value), "wrong value")
		n += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(cursorElements), n, "map did not visit all elements")

	stop := errors.New("stop")
	n = 0
	err = s.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error not returned")
	assert.Equal(t, 1, n, "map continued after error")
}
