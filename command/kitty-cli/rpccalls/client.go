// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	kittyrpc "github.com/bitmark-inc/kittyd/rpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a kittyd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the kittyd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
	return c.client.Call(method, arguments, reply)
}

// Create - a new kitty owned by the caller
func (c *Client) Create(caller account.Account, name string) (*kittyrpc.KittyReply, error) {
	arguments := kittyrpc.CreateArguments{
		Caller: caller,
		Name:   name,
	}
	var reply kittyrpc.KittyReply
	if err := c.call("Kitties.Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Breed - a new kitty from two parents
func (c *Client) Breed(caller account.Account, a kitty.Id, b kitty.Id, name string) (*kittyrpc.KittyReply, error) {
	arguments := kittyrpc.BreedArguments{
		Caller: caller,
		A:      a,
		B:      b,
		Name:   name,
	}
	var reply kittyrpc.KittyReply
	if err := c.call("Kitties.Breed", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - give a kitty to another account
func (c *Client) Transfer(caller account.Account, to account.Account, id kitty.Id) (*kittyrpc.StatusReply, error) {
	arguments := kittyrpc.TransferArguments{
		Caller: caller,
		To:     to,
		Id:     id,
	}
	var reply kittyrpc.StatusReply
	if err := c.call("Kitties.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListForSale - offer a kitty for sale
func (c *Client) ListForSale(caller account.Account, id kitty.Id) (*kittyrpc.StatusReply, error) {
	return c.market("Kitties.ListForSale", caller, id)
}

// Buy - take a listed kitty
func (c *Client) Buy(caller account.Account, id kitty.Id) (*kittyrpc.StatusReply, error) {
	return c.market("Kitties.Buy", caller, id)
}

func (c *Client) market(method string, caller account.Account, id kitty.Id) (*kittyrpc.StatusReply, error) {
	arguments := kittyrpc.MarketArguments{
		Caller: caller,
		Id:     id,
	}
	var reply kittyrpc.StatusReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - everything about one kitty
func (c *Client) Get(id kitty.Id) (*ledger.Details, error) {
	arguments := kittyrpc.GetArguments{
		Id: id,
	}
	var reply ledger.Details
	if err := c.call("Kitties.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - a page of kitties
func (c *Client) List(start kitty.Id, count int) (*kittyrpc.ListReply, error) {
	arguments := kittyrpc.ListArguments{
		Start: start,
		Count: count,
	}
	var reply kittyrpc.ListReply
	if err := c.call("Kitties.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - request status from kittyd
func (c *Client) Info() (*kittyrpc.InfoReply, error) {
	var reply kittyrpc.InfoReply
	if err := c.call("Node.Info", &kittyrpc.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
