// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

func TestIdOrdering(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 1}, kitty.Id(1).Bytes(), "wrong id bytes")
	assert.Equal(t, []byte{0, 0, 1, 0}, kitty.Id(256).Bytes(), "wrong id bytes")

	id, err := kitty.IdFromBytes([]byte{0xff, 0xff, 0xff, 0xff})
	assert.Nil(t, err, "decode error")
	assert.Equal(t, kitty.MaxId, id, "wrong max id")

	_, err = kitty.IdFromBytes([]byte{1})
	assert.Equal(t, fault.ErrRecordLength, err, "short id accepted")
}

func TestParseId(t *testing.T) {
	id, err := kitty.ParseId("42")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, kitty.Id(42), id, "wrong id")

	_, err = kitty.ParseId("-1")
	assert.Equal(t, fault.ErrInvalidIdentifier, err, "negative id accepted")

	_, err = kitty.ParseId("4294967296")
	assert.Equal(t, fault.ErrInvalidIdentifier, err, "oversize id accepted")
}

func TestKittyPack(t *testing.T) {
	k := kitty.Kitty{
		Dna:  kitty.Dna{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		Name: kitty.Name{'t', 'a', 'b', 'b', 'y'},
	}

	packed := k.Pack()
	assert.Equal(t, kitty.PackedSize, len(packed), "wrong packed length")
	assert.Equal(t, byte(0x10), packed[15], "dna not first")
	assert.Equal(t, byte('t'), packed[16], "name not after dna")

	unpacked, err := kitty.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, k, *unpacked, "wrong unpacked kitty")

	_, err = kitty.Unpack(packed[:20])
	assert.Equal(t, fault.ErrRecordLength, err, "old layout accepted as current")
}

func TestParentsPack(t *testing.T) {
	p := kitty.Parents{A: 3, B: 0x01020304}

	packed := p.Pack()
	assert.Equal(t, []byte{0, 0, 0, 3, 1, 2, 3, 4}, packed, "wrong packed parents")

	unpacked, err := kitty.UnpackParents(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, p, *unpacked, "wrong parents")

	_, err = kitty.UnpackParents(packed[1:])
	assert.Equal(t, fault.ErrRecordLength, err, "short parents accepted")
}

func TestName(t *testing.T) {
	n, err := kitty.NewName("kitty_v1")
	assert.Nil(t, err, "name error")
	assert.Equal(t, "kitty_v1", n.String(), "wrong name")

	n, err = kitty.NewName("tom")
	assert.Nil(t, err, "name error")
	assert.Equal(t, kitty.Name{'t', 'o', 'm'}, n, "name not zero padded")
	assert.Equal(t, "tom", n.String(), "padding not trimmed")

	_, err = kitty.NewName("much too long")
	assert.Equal(t, fault.ErrNameTooLong, err, "long name accepted")
}

func TestKittyJSON(t *testing.T) {
	k := kitty.Kitty{
		Dna:  kitty.Dna{0xab, 0xcd},
		Name: kitty.Name{'f', 'e', 'l', 'i', 'x'},
	}

	buffer, err := json.Marshal(k)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"dna":"abcd0000000000000000000000000000","name":"felix"}`, string(buffer), "wrong JSON")

	var decoded kitty.Kitty
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, k, decoded, "wrong decoded kitty")

	err = json.Unmarshal([]byte(`{"dna":"abcd","name":"x"}`), &decoded)
	assert.NotNil(t, err, "short dna accepted")
}
