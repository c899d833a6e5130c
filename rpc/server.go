// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
//
// certificate and private key are PEM text
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Server - the kitty RPC services and their listeners
type Server struct {
	sync.Mutex

	log         *logger.L
	server      *rpc.Server
	connections uint64 // atomic
	listeners   []net.Listener
	wg          sync.WaitGroup
}

// New - register all services
func New(log *logger.L, l *ledger.Ledger, store *storage.Store, version string) (*Server, error) {
	s := &Server{
		log:    log,
		server: rpc.NewServer(),
	}

	start := time.Now().UTC()

	if err := s.server.Register(NewKitties(log, l, store.IsReadOnly())); nil != err {
		return nil, err
	}
	if err := s.server.Register(NewNode(log, start, version, l, store, s.Connections)); nil != err {
		return nil, err
	}

	return s, nil
}

// Connections - number of connected clients
func (s *Server) Connections() uint64 {
	return atomic.LoadUint64(&s.connections)
}

// Listen - start accepting TLS connections on all configured addresses
func (s *Server) Listen(configuration *RPCConfiguration) error {
	if configuration.MaximumConnections < minConnectionCount {
		s.log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		s.log.Errorf("missing %s listen", logName)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := Certificate(s.log, logName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	s.log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)

	// validate all listen addresses before opening any
	listen := make([]string, len(configuration.Listen))
	copy(listen, configuration.Listen)
	ipType, err := parseListenAddress(listen, s.log)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	for i, address := range listen {
		s.log.Infof("starting RPC server: %s", address)
		l, err := tls.Listen(ipType[i], address, tlsConfiguration)
		if nil != err {
			s.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		s.listeners = append(s.listeners, l)

		s.wg.Add(1)
		go s.serve(l, configuration.MaximumConnections)
	}
	return nil
}

// Addresses - the bound listen addresses
func (s *Server) Addresses() []string {
	s.Lock()
	defer s.Unlock()

	addresses := make([]string, 0, len(s.listeners))
	for _, l := range s.listeners {
		addresses = append(addresses, l.Addr().String())
	}
	return addresses
}

// Close - stop accepting connections
func (s *Server) Close() {
	s.Lock()
	for _, l := range s.listeners {
		_ = l.Close()
	}
	s.listeners = nil
	s.Unlock()

	s.wg.Wait()
	s.log.Info("RPC listeners stopped")
}

func (s *Server) serve(listen net.Listener, maximumConnections uint64) {
	defer s.wg.Done()

	for {
		conn, err := listen.Accept()
		if nil != err {
			s.log.Infof("rpc.server terminated: accept error: %s", err)
			break
		}
		if atomic.AddUint64(&s.connections, 1) <= maximumConnections {
			go func() {
				s.server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				atomic.AddUint64(&s.connections, ^uint64(0))
			}()
		} else {
			atomic.AddUint64(&s.connections, ^uint64(0))
			s.log.Warnf("connection limit: %d  rejected: %s", maximumConnections, conn.RemoteAddr())
			_ = conn.Close()
		}
	}
}

// Certificate - verify a PEM certificate and key pair and return
// a TLS configuration with its fingerprint
func Certificate(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in kittyd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// "*:PORT" listens on both tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			parts := strings.Split(listen, ":")
			if 2 != len(parts) {
				log.Errorf("rpc server listen error: %q", listen)
				return nil, fault.InvalidIpAddress
			}
			addrs[i] = "[::]" + ":" + parts[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
