// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ava-labs/nftext/utils/constants"
	"github.com/ava-labs/nftext/utils/logging"
)

const (
	baseURL               = "/ext"
	readHeaderTimeout     = 10 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

var errUnknownLockOption = errors.New("invalid lock options")

// LockOption is the lock a handler holds while it serves a request.
type LockOption uint32

const (
	WriteLock LockOption = iota
	ReadLock
	NoLock
)

// Server maintains the HTTP router
type Server struct {
	// log this server writes to
	log logging.Logger
	// Maps endpoints to handlers
	router *mux.Router
	// points to the router handlers
	handler http.Handler
	// Listens for HTTP traffic on this address
	listenAddress string

	// http server
	srv *http.Server
}

// New creates the API server at the provided host and port
func New(
	log logging.Logger,
	host string,
	port uint16,
	allowedOrigins []string,
) *Server {
	router := mux.NewRouter()

	log.Info("API created",
		zap.Strings("allowedOrigins", allowedOrigins),
	)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	}).Handler(router)
	gzipHandler := gziphandler.GzipHandler(corsHandler)
	handler := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("server", constants.AppName+"/"+constants.Version)
			gzipHandler.ServeHTTP(w, r)
		},
	)

	return &Server{
		log:           log,
		router:        router,
		handler:       handler,
		listenAddress: net.JoinHostPort(host, fmt.Sprint(port)),
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler serves every registered route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// AddRoute registers [handler] at /ext/[base][endpoint]. The handler holds
// [lock] as described by [lockOption] while it serves a request.
func (s *Server) AddRoute(
	handler http.Handler,
	lock *sync.RWMutex,
	lockOption LockOption,
	base string,
	endpoint string,
) error {
	url := fmt.Sprintf("%s/%s%s", baseURL, base, endpoint)
	s.log.Info("adding route",
		zap.String("url", url),
	)
	h, err := lockMiddleware(handler, lockOption, lock)
	if err != nil {
		return err
	}
	s.router.Handle(url, h)
	return nil
}

// Dispatch starts the API server
func (s *Server) Dispatch() error {
	listener, err := net.Listen("tcp", s.listenAddress)
	if err != nil {
		return err
	}
	return s.DispatchOn(listener)
}

// DispatchOn serves the API on [listener] until Shutdown is called. It
// closes [listener] on return.
func (s *Server) DispatchOn(listener net.Listener) error {
	s.log.Info("HTTP API server listening",
		zap.Stringer("address", listener.Addr()),
	)

	err := s.srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Wraps a handler by grabbing and releasing a lock before calling the handler.
func lockMiddleware(handler http.Handler, lockOption LockOption, lock *sync.RWMutex) (http.Handler, error) {
	switch lockOption {
	case WriteLock:
		return middlewareHandler{
			before:  lock.Lock,
			after:   lock.Unlock,
			handler: handler,
		}, nil
	case ReadLock:
		return middlewareHandler{
			before:  lock.RLock,
			after:   lock.RUnlock,
			handler: handler,
		}, nil
	case NoLock:
		return handler, nil
	default:
		return nil, errUnknownLockOption
	}
}

type middlewareHandler struct {
	before, after func()
	handler       http.Handler
}

func (mh middlewareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mh.before()
	defer mh.after()
	mh.handler.ServeHTTP(w, r)
}

// Shutdown this server. A server shut down before it is dispatched never
// serves.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
