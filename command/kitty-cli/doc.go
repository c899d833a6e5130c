// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// kitty-cli sends create, breed, market and query requests to a
// running kittyd over its TLS JSON RPC interface and prints the
// replies as JSON.
package main
