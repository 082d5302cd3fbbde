// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/admin"
	"github.com/Ekkarat1988/airswap-protocols/rpc/index"

	"github.com/bitmark-inc/logger"
)

// Create - the public server only exposes the intent services
func Create(log *logger.L, r *registry.Registry) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(index.New(log, r))

	return server
}

// CreateAdmin - the operator server additionally exposes lifecycle
// and blacklist control; it must only be bound to a restricted listener
func CreateAdmin(log *logger.L, r *registry.Registry, administrator common.Address) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(index.New(log, r))
	_ = server.Register(admin.New(log, r, administrator))

	return server
}
