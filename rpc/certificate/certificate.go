// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - sha3-256 of the DER encoded certificate
//
// reproduce with: openssl x509 -outform DER -in indexerd-rpc.crt | sha3sum -a 256
type Fingerprint [32]byte

// Get - load a PEM keypair and derive the TLS configuration for a
// listener together with the certificate fingerprint clients pin
func Get(log *logger.L, name string, certificatePEM []byte, keyPEM []byte) (*tls.Config, Fingerprint, error) {

	keyPair, err := tls.X509KeyPair(certificatePEM, keyPEM)
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	return tlsConfiguration, sha3.Sum256(keyPair.Certificate[0]), nil
}
