// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/fault"
)

const minConnectionCount = 1

// Listener - a configured server that can be started
type Listener interface {
	Serve() error
	Stop()
}

// convert each listen address to the network to use
//
//   *:PORT         both tcp4 and tcp6
//   [ip6]:PORT     tcp6
//   ip4:PORT       tcp4
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listen := make([]string, len(addrs))

	for i, addr := range addrs {
		host, port, err := net.SplitHostPort(addr)
		if nil != err || "" == port {
			log.Errorf("listen address: %q error: %v", addr, err)
			return nil, nil, fault.ErrInvalidIpAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			listen[i] = net.JoinHostPort("::", port)
			networks[i] = "tcp"
			continue
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIpAddress
			log.Errorf("listen address: %q error: %s", addr, err)
			return nil, nil, err
		}
		listen[i] = addr
	}

	return networks, listen, nil
}
