// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/nftext/config"
	"github.com/ava-labs/nftext/node"
	"github.com/ava-labs/nftext/utils/logging"
)

var _ App = (*app)(nil)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// should block until the application finishes
	ExitCode() (int, error)
}

// New returns an App that runs a node described by [config].
func New(config config.Config) App {
	return &app{
		config: config,
	}
}

func Run(app App) int {
	// starting running the application
	if err := app.Start(); err != nil {
		return 1
	}

	// register signals to kill the application
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// start up a new go routine to handle attempts to kill the application
	var eg errgroup.Group
	eg.Go(func() error {
		for range signals {
			return app.Stop()
		}
		return nil
	})

	// wait for the app to exit and get the exit code response
	exitCode, err := app.ExitCode()

	// shut down the signal go routine
	signal.Stop(signals)
	close(signals)

	// if there was an error closing the application, report that error
	if err := eg.Wait(); err != nil {
		return 1
	}

	// if there was an error running the application, report that error
	if err != nil {
		return 1
	}

	// return the exit code that the application reported
	return exitCode
}

type app struct {
	config     config.Config
	log        logging.Logger
	logFactory logging.Factory
	node       *node.Node
	errs       errgroup.Group
}

// Start the node. Errors are written to the main log before they are
// returned.
func (a *app) Start() error {
	a.logFactory = logging.NewFactory(a.config.LoggingConfig)
	log, err := a.logFactory.Make("main")
	if err != nil {
		a.logFactory.Close()
		return err
	}
	a.log = log

	n, err := node.New(&a.config, a.logFactory, log)
	if err != nil {
		log.Fatal("couldn't start node",
			zap.Error(err),
		)
		a.logFactory.Close()
		return err
	}
	a.node = n

	log.Info("node listening",
		zap.Stringer("address", n.Addr()),
	)
	a.errs.Go(func() error {
		defer a.logFactory.Close()
		return a.node.Dispatch()
	})
	return nil
}

// Stop the node.
func (a *app) Stop() error {
	a.node.Shutdown(0)
	return nil
}

// ExitCode blocks until the node has shut down.
func (a *app) ExitCode() (int, error) {
	err := a.errs.Wait()
	return a.node.ExitCode(), err
}
