// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/handler"
	"github.com/bitmark-inc/kittyd/rpc/node"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

type details struct {
	err error
}

func (d details) Gather() (*node.InfoReply, error) {
	if nil != d.err {
		return nil, d.err
	}
	return &node.InfoReply{Chain: "testing", Kitties: 3}, nil
}

func newHandler(maximum uint64, d details) handler.Handler {
	s := rpc.NewServer()
	_ = s.Register(Add{})
	return handler.New(logger.New(fixtures.LogCategory), s, d, maximum)
}

func allow(h handler.Handler, name string) {
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	h.SetAllow(map[string][]*net.IPNet{name: {ipNet}})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) eResp {
	var j eResp
	err := json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Nil(t, err, "decode error response")
	return j
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "http://not.found", nil))

	j := decodeError(t, w)
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})

	add := AddArg{A: 1, B: 2}
	data, _ := json.Marshal(jReq{ID: 5, Method: "Add.Add", Params: []AddArg{add}})

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "http://not.exist", bytes.NewReader(data)))

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodGet, "http://not.exist", nil))

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(0, details{})

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "http://not.exist", nil))

	assert.Equal(t, tooManyRequests, decodeError(t, w).Error, "wrong error")
}

func TestRPCWhenServeError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})

	data, _ := json.Marshal(jReq{})
	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "http://not.exist", bytes.NewReader(data)))

	b, _ := ioutil.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})
	allow(h, handler.AllowDetails)

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "http://test.com/kittyd/details", nil))

	var info node.InfoReply
	err := json.NewDecoder(w.Result().Body).Decode(&info)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, "testing", info.Chain, "wrong chain")
	assert.Equal(t, uint32(3), info.Kitties, "wrong kitty count")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})
	allow(h, handler.AllowMetrics)

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "http://test.com/kittyd/details", nil))

	assert.Equal(t, "forbidden", decodeError(t, w).Error, "wrong not allow")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})
	allow(h, handler.AllowDetails)

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodPost, "http://test.com/kittyd/details", nil))

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestDetailsWhenNoDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{err: fault.DatabaseIsNotSet})
	allow(h, handler.AllowDetails)

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "http://test.com/kittyd/details", nil))

	assert.Equal(t, http.StatusInternalServerError, decodeError(t, w).Code, "wrong code")
}

func TestMetrics(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})
	allow(h, handler.AllowMetrics)

	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "http://test.com/metrics", nil))

	b, _ := ioutil.ReadAll(w.Result().Body)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode, "wrong status")
	assert.Contains(t, string(b), "kittyd_rpc_connections", "gauge missing")
}

func TestMetricsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, details{})

	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "http://test.com/metrics", nil))

	assert.Equal(t, "forbidden", decodeError(t, w).Error, "wrong not allow")
}
