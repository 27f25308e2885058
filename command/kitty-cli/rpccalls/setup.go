// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
)

// ErrFingerprintMismatch - the server certificate is not the expected one
var ErrFingerprintMismatch = fault.InvalidError("server certificate fingerprint mismatch")

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a kittyd
//
// a non-blank fingerprint is compared with the hex SHA3-256 of the
// server certificate
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		err := checkFingerprint(conn.ConnectionState(), fingerprint)
		if nil != err {
			conn.Close()
			return nil, err
		}
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

func checkFingerprint(state tls.ConnectionState, fingerprint string) error {
	if 0 == len(state.PeerCertificates) {
		return ErrFingerprintMismatch
	}
	f := certificate.Fingerprint(state.PeerCertificates[0].Raw)
	if hex.EncodeToString(f[:]) != strings.ToLower(fingerprint) {
		return ErrFingerprintMismatch
	}
	return nil
}

// Close - shutdown the kittyd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
