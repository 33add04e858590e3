// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/nftext/api/metrics"
	"github.com/ava-labs/nftext/api/server"
	"github.com/ava-labs/nftext/config"
	"github.com/ava-labs/nftext/database"
	"github.com/ava-labs/nftext/database/factory"
	"github.com/ava-labs/nftext/trace"
	"github.com/ava-labs/nftext/utils/constants"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/utils/wrappers"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/chainext/psp02"
	"github.com/ava-labs/nftext/vms/uniques"
	"github.com/ava-labs/nftext/vms/wasmvm"

	psp02api "github.com/ava-labs/nftext/api/psp02"
	wasmapi "github.com/ava-labs/nftext/api/wasm"
)

const metricsEndpoint = "metrics"

var errShuttingDown = errors.New("node is shutting down")

// Node is a single process development chain that exposes the uniques module
// to contracts through the PSP-02 chain extension.
type Node struct {
	Log        logging.Logger
	LogFactory logging.Factory
	Config     *config.Config

	// Storage for this node
	DB database.Database

	// The uniques pallet every extension call ends up in
	Uniques *uniques.Module

	// Maps extension ids to their handlers
	Registry *chainext.Registry

	// Executes contracts deployed through the wasm API against [Registry]
	Runtime *wasmvm.Runtime

	MetricsRegisterer *prometheus.Registry
	metricsHandler    http.Handler
	Tracer            trace.Tracer

	APIServer *server.Server
	listener  net.Listener

	// Serializes state changing API calls
	apiLock sync.RWMutex

	shutdownOnce     sync.Once
	shutdownLock     sync.Mutex
	shuttingDown     bool
	exitCode         int
	DoneShuttingDown sync.WaitGroup
}

// New returns a node ready to be dispatched. On error every resource that was
// already acquired is released.
func New(
	config *config.Config,
	logFactory logging.Factory,
	logger logging.Logger,
) (*Node, error) {
	n := &Node{
		Log:        logger,
		LogFactory: logFactory,
		Config:     config,
	}
	n.DoneShuttingDown.Add(1)

	if err := n.initialize(); err != nil {
		n.Log.Error("failed to initialize node",
			zap.Error(err),
		)
		n.Shutdown(1)
		n.DoneShuttingDown.Wait()
		return nil, err
	}
	return n, nil
}

func (n *Node) initialize() error {
	n.Log.Info("initializing node",
		zap.String("version", constants.Version),
		zap.Reflect("config", n.Config),
	)

	if err := n.initMetrics(); err != nil {
		return fmt.Errorf("problem initializing metrics: %w", err)
	}
	if err := n.initTracer(); err != nil {
		return fmt.Errorf("problem initializing tracer: %w", err)
	}
	if err := n.initDatabase(); err != nil {
		return fmt.Errorf("problem initializing database: %w", err)
	}
	if err := n.initUniques(); err != nil {
		return fmt.Errorf("problem initializing uniques: %w", err)
	}
	if err := n.initChainExtensions(); err != nil {
		return fmt.Errorf("problem initializing chain extensions: %w", err)
	}
	if err := n.initRuntime(); err != nil {
		return fmt.Errorf("problem initializing contract runtime: %w", err)
	}
	if err := n.initAPIServer(); err != nil {
		return fmt.Errorf("problem initializing API server: %w", err)
	}
	if err := n.initMetricsAPI(); err != nil {
		return fmt.Errorf("problem initializing metrics API: %w", err)
	}
	if err := n.initPSP02API(); err != nil {
		return fmt.Errorf("problem initializing PSP-02 API: %w", err)
	}
	if err := n.initWasmAPI(); err != nil {
		return fmt.Errorf("problem initializing wasm API: %w", err)
	}
	return nil
}

func (n *Node) initMetrics() error {
	registry, handler, err := metrics.NewService()
	if err != nil {
		return err
	}
	n.MetricsRegisterer = registry
	n.metricsHandler = handler
	return nil
}

func (n *Node) initTracer() error {
	tracer, err := trace.New(n.Config.TraceConfig)
	if err != nil {
		return err
	}
	n.Tracer = tracer
	return nil
}

func (n *Node) initDatabase() error {
	dbLog, err := n.LogFactory.Make("db")
	if err != nil {
		return err
	}
	db, err := factory.NewDatabase(n.Config.DatabaseConfig, dbLog)
	if err != nil {
		return err
	}
	n.DB = db
	n.Log.Info("initialized database",
		zap.String("type", n.Config.DatabaseConfig.Name),
		zap.String("path", n.Config.DatabaseConfig.Path),
	)
	return nil
}

func (n *Node) initUniques() error {
	uniquesLog, err := n.LogFactory.Make("uniques")
	if err != nil {
		return err
	}
	n.Uniques = uniques.New(n.DB, uniquesLog)
	return n.Uniques.InitGenesis(n.Config.GenesisCollections)
}

func (n *Node) initChainExtensions() error {
	extLog, err := n.LogFactory.Make("chainext")
	if err != nil {
		return err
	}
	n.Registry = chainext.NewRegistry(extLog)

	ext, err := chainext.NewMeteredExtension(
		psp02.New(extLog, n.Uniques, n.Config.Weights, n.Config.Schedule),
		fmt.Sprintf("%s_psp02", constants.AppName),
		n.MetricsRegisterer,
	)
	if err != nil {
		return err
	}
	return n.Registry.Register(
		psp02.ExtensionID,
		chainext.NewTracedExtension(ext, "psp02", n.Tracer),
	)
}

func (n *Node) initRuntime() error {
	runtimeLog, err := n.LogFactory.Make("wasmvm")
	if err != nil {
		return err
	}
	runtime, err := wasmvm.NewRuntime(context.Background(), n.Registry, runtimeLog)
	if err != nil {
		return err
	}
	n.Runtime = runtime
	return nil
}

func (n *Node) initAPIServer() error {
	httpLog, err := n.LogFactory.Make("http")
	if err != nil {
		return err
	}
	n.APIServer = server.New(
		httpLog,
		n.Config.HTTPHost,
		n.Config.HTTPPort,
		n.Config.HTTPAllowedOrigins,
	)

	// Listen now so a taken port fails startup instead of dispatch.
	listenAddress := net.JoinHostPort(n.Config.HTTPHost, fmt.Sprint(n.Config.HTTPPort))
	n.listener, err = net.Listen("tcp", listenAddress)
	return err
}

func (n *Node) initMetricsAPI() error {
	n.Log.Info("initializing metrics API")
	return n.APIServer.AddRoute(n.metricsHandler, &n.apiLock, server.NoLock, metricsEndpoint, "")
}

func (n *Node) initPSP02API() error {
	n.Log.Info("initializing PSP-02 API")
	service := psp02api.NewService(
		n.Log,
		n.Registry,
		n.Uniques,
		n.Config.Weights,
		n.Config.GasLimit,
	)
	handler, err := psp02api.NewHandler(service)
	if err != nil {
		return err
	}
	return n.APIServer.AddRoute(handler, &n.apiLock, server.WriteLock, psp02api.Endpoint, "")
}

func (n *Node) initWasmAPI() error {
	n.Log.Info("initializing wasm API")
	handler, err := wasmapi.NewHandler(wasmapi.NewService(n.Log, n.Runtime, n.Config.GasLimit))
	if err != nil {
		return err
	}
	return n.APIServer.AddRoute(handler, &n.apiLock, server.WriteLock, wasmapi.Endpoint, "")
}

// Addr is the address the API server listens on.
func (n *Node) Addr() net.Addr {
	return n.listener.Addr()
}

// Dispatch serves the API until the node is shut down. It returns once the
// node has finished shutting down.
func (n *Node) Dispatch() error {
	n.shutdownLock.Lock()
	shuttingDown := n.shuttingDown
	n.shutdownLock.Unlock()
	if shuttingDown {
		n.DoneShuttingDown.Wait()
		return errShuttingDown
	}

	err := n.APIServer.DispatchOn(n.listener)
	if err != nil {
		n.Log.Error("API server dispatch failed",
			zap.Error(err),
		)
	}

	// If the API server isn't running, shut down the node.
	n.Shutdown(1)
	n.DoneShuttingDown.Wait()
	return err
}

// Shutdown releases every resource held by the node. Only the first call has
// any effect and only its exit code is reported.
func (n *Node) Shutdown(exitCode int) {
	n.shutdownOnce.Do(func() {
		n.shutdownLock.Lock()
		n.shuttingDown = true
		n.exitCode = exitCode
		n.shutdownLock.Unlock()

		n.shutdown()
		n.DoneShuttingDown.Done()
	})
}

func (n *Node) shutdown() {
	n.Log.Info("shutting down node",
		zap.Int("exitCode", n.ExitCode()),
	)

	errs := wrappers.Errs{}
	if n.APIServer != nil {
		errs.Add(n.APIServer.Shutdown())
	}
	if n.listener != nil {
		// The listener is already closed if the server was dispatched.
		_ = n.listener.Close()
	}
	if n.Runtime != nil {
		errs.Add(n.Runtime.Close(context.Background()))
	}
	if n.DB != nil {
		errs.Add(n.DB.Close())
	}
	if n.Tracer != nil {
		errs.Add(n.Tracer.Close())
	}
	if errs.Errored() {
		n.Log.Warn("error during node shutdown",
			zap.Error(errs.Err),
		)
	}
	n.Log.Info("finished node shutdown")
}

// ExitCode is the exit code passed to the first Shutdown call.
func (n *Node) ExitCode() int {
	n.shutdownLock.Lock()
	defer n.shutdownLock.Unlock()
	return n.exitCode
}
