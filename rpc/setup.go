// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC access to the intent registry
//
// Two listeners are configured: a public one serving the Index
// service and an operator one additionally serving Admin. The
// operator listener carries authorization by reachability, so it
// should only listen on a loopback or otherwise restricted address.
package rpc

import (
	netrpc "net/rpc"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/counter"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/certificate"
	"github.com/Ekkarat1988/airswap-protocols/rpc/listeners"
	"github.com/Ekkarat1988/airswap-protocols/rpc/server"

	"github.com/bitmark-inc/logger"
)

const (
	clientName = "client_rpc"
	adminName  = "admin_rpc"
)

// connection count limits are shared across all listen addresses of a
// listener
var connectionCountClient counter.Counter
var connectionCountAdmin counter.Counter

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the configured RPC listeners
func Initialise(
	clientConfiguration *listeners.RPCConfiguration,
	adminConfiguration *listeners.RPCConfiguration,
	r *registry.Registry,
	administrator common.Address,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	err := serveListener(clientConfiguration, clientName, log,
		&connectionCountClient, server.Create(log, r))
	if nil != err {
		return err
	}

	// the admin listener is optional
	if 0 != len(adminConfiguration.Listen) {
		err = serveListener(adminConfiguration, adminName, log,
			&connectionCountAdmin, server.CreateAdmin(log, r, administrator))
		if nil != err {
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func serveListener(
	configuration *listeners.RPCConfiguration,
	name string,
	log *logger.L,
	count *counter.Counter,
	s *netrpc.Server,
) error {

	certificatePEM, err := os.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, configuration.Certificate, err)
		return err
	}
	keyPEM, err := os.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, configuration.PrivateKey, err)
		return err
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, name, certificatePEM, keyPEM)
	if nil != err {
		return err
	}

	l, err := listeners.NewRPC(configuration, name, log, count, s, tlsConfiguration, fingerprint)
	if nil != err {
		return err
	}

	return l.Serve()
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
