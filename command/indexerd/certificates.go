// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
)

const certificateValidity = 10 * 365 * 24 * time.Hour

// create a self-signed certificate pair for an RPC listener
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if fileExists(certificateFileName) {
		return fmt.Errorf("certificate: %q already exists", certificateFileName)
	}

	if fileExists(privateKeyFileName) {
		return fmt.Errorf("private key: %q already exists", privateKeyFileName)
	}

	org := "indexerd self signed cert for: " + name
	validUntil := time.Now().Add(certificateValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = os.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

func fileExists(name string) bool {
	s, err := os.Stat(name)
	return nil == err && s.Mode().IsRegular()
}
