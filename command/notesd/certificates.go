// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/rpc/certificate"
	"github.com/bitmark-inc/noteledger/util"
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "notesd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// read a certificate and key pair from files and build the TLS setup
func loadCertificate(log *logger.L, name string, certificateFileName string, privateKeyFileName string) (*tls.Config, error) {
	cert, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q error: %s", name, certificateFileName, err)
		return nil, err
	}
	key, err := ioutil.ReadFile(privateKeyFileName)
	if nil != err {
		log.Errorf("%s private key: %q error: %s", name, privateKeyFileName, err)
		return nil, err
	}

	tlsConfig, _, err := certificate.Get(log, name, string(cert), string(key))
	return tlsConfig, err
}
