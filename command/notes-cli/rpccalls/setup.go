// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/jpillora/backoff"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	rpcnode "github.com/bitmark-inc/noteledger/rpc/node"
)

const (
	maximumAttempts = 5
	minimumDelay    = 10 * time.Millisecond
	maximumDelay    = time.Second
	dialTimeout     = 10 * time.Second
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *identity.PrivateKey
	program address.Address
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a notesd
//
// key may be nil when only read calls are made, the program address
// used in signatures is fetched from the node
func NewClient(connect string, key *identity.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		verbose: verbose,
		handle:  handle,
	}

	info, err := r.GetInfo()
	if nil != err {
		r.Close()
		return nil, err
	}
	r.program = info.Program

	return r, nil
}

// Close - shutdown the notesd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// GetInfo - request status from notesd
func (client *Client) GetInfo() (*rpcnode.InfoReply, error) {
	var reply rpcnode.InfoReply
	if err := client.call("Node.Info", rpcnode.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// call - resubmit while the node reports a lock conflict
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" request", arguments)

	b := &backoff.Backoff{
		Min:    minimumDelay,
		Max:    maximumDelay,
		Factor: 2,
		Jitter: true,
	}
	for {
		err := client.client.Call(method, arguments, reply)
		if !IsConflict(err) || int(b.Attempt())+1 >= maximumAttempts {
			if nil == err {
				client.printJson(method+" reply", reply)
			}
			return err
		}
		delay := b.Duration()
		if client.verbose {
			client.printf("%s: %s, retry in %s\n", method, err, delay)
		}
		time.Sleep(delay)
	}
}

// IsConflict - true for the server error of a lost lock race
func IsConflict(err error) bool {
	serverError, ok := err.(rpc.ServerError)
	return ok && fault.ErrAccountInUse.Error() == string(serverError)
}

func (client *Client) signer() (*identity.PrivateKey, error) {
	if nil == client.key {
		return nil, fault.ErrMissingSigner
	}
	return client.key, nil
}
