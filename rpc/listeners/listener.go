// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
)

// Listener - a configured server that can be started and stopped
type Listener interface {
	Serve() error
	Stop()
}

// validate listen addresses and return the network for each
//
// "*:PORT" is rewritten in place to "[::]:PORT"
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("empty listen address")
			return nil, fault.InvalidIpAddress
		}

		host, port, err := net.SplitHostPort(listen)
		if nil != err || "" == port {
			log.Errorf("listen address: %q  error: %v", listen, err)
			return nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]:" + port
			host = "::"
			parsed[i] = "tcp"
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, err
		}
	}

	return parsed, nil
}
