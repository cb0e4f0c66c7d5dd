// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/rpc"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/note"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/rpc/handler"
	"github.com/bitmark-inc/noteledger/rpc/listeners"
	"github.com/bitmark-inc/noteledger/rpc/server"
	"github.com/bitmark-inc/noteledger/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	deriver, err := address.NewFromBase58(theConfiguration.Program)
	if nil != err {
		log.Criticalf("program address error: %s", err)
		exitwithstatus.Message("program address error: %s", err)
	}
	log.Infof("program: %s", deriver.Program())
	log.Infof("database: %q", theConfiguration.Database)

	// start the data storage
	log.Info("initialise storage")
	database, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite, logger.New("storage"))
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer database.Close()

	profiles := profile.New(database, deriver, logger.New("profile"))
	notes := note.New(database, deriver, logger.New("note"))

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, profiles, notes) {
		return
	}

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	// start up the rpc background processes
	rpcLog := logger.New("rpc")
	rpcCount := counter.Counter(0)
	rpcServer := server.Create(rpcLog, version, &rpcCount, profiles, notes, deriver)

	clientRPC, err := startRPC(rpcLog, theConfiguration, &rpcCount, rpcServer)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer clientRPC.Stop()

	httpsRPC, err := startHTTPS(logger.New("https"), theConfiguration, rpcServer)
	if nil != err {
		log.Criticalf("https initialise error: %s", err)
		exitwithstatus.Message("https initialise error: %s", err)
	}
	if nil != httpsRPC {
		defer httpsRPC.Stop()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

func startRPC(log *logger.L, theConfiguration *Configuration, count *counter.Counter, rpcServer *rpc.Server) (listeners.Listener, error) {
	rpcConfiguration := theConfiguration.ClientRPC

	tlsConfig, err := loadCertificate(log, "client_rpc", rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return nil, err
	}

	l, err := listeners.NewRPC(&rpcConfiguration, log, count, rpcServer, tlsConfig)
	if nil != err {
		return nil, err
	}
	return l, l.Serve()
}

// returns nil when no HTTPS listen address is configured
func startHTTPS(log *logger.L, theConfiguration *Configuration, rpcServer *rpc.Server) (listeners.Listener, error) {
	httpsConfiguration := theConfiguration.HttpsRPC
	if 0 == len(httpsConfiguration.Listen) {
		log.Info("https disabled")
		return nil, nil
	}

	tlsConfig, err := loadCertificate(log, "https_rpc", httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
	if nil != err {
		return nil, err
	}

	hdlr := handler.New(log, rpcServer, time.Now().UTC(), version, httpsConfiguration.MaximumConnections)
	l, err := listeners.NewHTTPS(&httpsConfiguration, log, tlsConfig, hdlr)
	if nil != err {
		return nil, err
	}
	return l, l.Serve()
}
