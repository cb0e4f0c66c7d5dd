// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP access to the RPC services and node details
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/counter"
)

// access control names
const (
	AllowDetails = "details"
)

// Handler - the HTTP endpoints
type Handler interface {
	SetAllow(map[string][]*net.IPNet)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
}

type handler struct {
	sync.RWMutex
	log            *logger.L
	server         *rpc.Server
	start          time.Time
	version        string
	maxConnections uint64
	connections    counter.Counter
	allow          map[string][]*net.IPNet
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// DetailsReply - node details
type DetailsReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
}

// New - handler for a registered RPC server
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maxConnections uint64) Handler {
	return &handler{
		log:            log,
		server:         server,
		start:          start,
		version:        version,
		maxConnections: maxConnections,
		allow:          make(map[string][]*net.IPNet),
	}
}

// SetAllow - networks permitted for each restricted endpoint
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendError(w, http.StatusNotFound, "not found")
}

// RPC - one JSON-RPC request in a POST body
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.connections.Acquire(h.maxConnections) {
		sendError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}
	defer h.connections.Decrement()

	w.Header().Set("Content-Type", "application/json")

	codec := jsonrpc.NewServerCodec(&httpConnection{in: r.Body, out: w})
	if err := h.server.ServeRequest(codec); nil != err {
		h.log.Errorf("rpc from: %s error: %s", r.RemoteAddr, err)
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Details - node details for permitted networks
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.allowed(AllowDetails, r.RemoteAddr) {
		sendError(w, http.StatusForbidden, "forbidden")
		return
	}
	if !h.connections.Acquire(h.maxConnections) {
		sendError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}
	defer h.connections.Decrement()

	reply := DetailsReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.connections.Uint64(),
	}
	sendReply(w, http.StatusOK, reply)
}

func (h *handler) allowed(name string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()
	for _, network := range h.allow[name] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func sendError(w http.ResponseWriter, code int, message string) {
	sendReply(w, code, errorReply{Code: code, Error: message})
}

func sendReply(w http.ResponseWriter, code int, reply interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(reply)
}

// adapt a request body and response writer to the codec
type httpConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *httpConnection) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *httpConnection) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *httpConnection) Close() error                { return nil }
