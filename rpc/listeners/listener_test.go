// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/rpc/certificate"
	"github.com/bitmark-inc/noteledger/rpc/fixtures"
	"github.com/bitmark-inc/noteledger/rpc/listeners"
)

type testHandler struct{}

func (h testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h testHandler) SetAllow(_ map[string][]*net.IPNet) {}

type Add struct{}
type AddArg struct {
	A int
	B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfig(t *testing.T) *tls.Config {
	cer, key := fixtures.Certificate(t)
	config, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return config
}

func randomListen() string {
	return fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
}

func TestHTTPS(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := randomListen()
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32"},
		},
	}

	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConfig(t), testHandler{})
	assert.Nil(t, err, "wrong NewHTTPS")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	paths := []struct {
		path     string
		expected string
	}{
		{listeners.RPCPath, "RPC"},
		{listeners.DetailsPath, "Details"},
		{"/", "Root"},
		{"/anything/else", "Root"},
	}

	for _, p := range paths {
		resp, err := client.Get("https://" + listen + p.path)
		if !assert.Nil(t, err, "wrong Get for %s", p.path) {
			continue
		}
		body, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, p.expected, string(body), "wrong route for %s", p.path)
	}
}

func TestHTTPSDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{MaximumConnections: 5}
	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener was created")
}

func TestHTTPSBadParameters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	_, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:1234"},
	}, log, &tls.Config{}, testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong connection limit check")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:1234"},
		Allow:              map[string][]string{"details": {"not-a-cidr"}},
	}, log, &tls.Config{}, testHandler{})
	assert.Equal(t, fault.ErrInvalidIpAddress, err, "wrong allow check")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	server := rpc.NewServer()
	_ = server.Register(Add{})

	listen := randomListen()
	conf := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
	}
	count := counter.Counter(0)

	l, err := listeners.NewRPC(&conf, logger.New(fixtures.LogCategory), &count, server, tlsConfig(t))
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if !assert.Nil(t, err, "wrong Dial") {
		return
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 3, B: 4}, &reply)
	assert.Nil(t, err, "wrong Call")
	assert.Equal(t, 7, reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRPCBadParameters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)
	server := rpc.NewServer()

	tests := []struct {
		conf     listeners.RPCConfiguration
		expected error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:1234"}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 5}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"1.2.3:1234"}}, fault.ErrInvalidIpAddress},
		{listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"127.0.0.1"}}, fault.ErrInvalidIpAddress},
	}

	for i, test := range tests {
		_, err := listeners.NewRPC(&test.conf, log, &count, server, &tls.Config{})
		assert.Equal(t, test.expected, err, "%d: wrong error", i)
	}
}

func TestRPCWildcardAndIPv6(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	conf := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"},
	}
	_, err := listeners.NewRPC(&conf, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Nil(t, err, "wrong parse of valid listen addresses")
}
