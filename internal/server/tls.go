package server

import (
	"crypto/tls"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/user/pwa-builder/internal/config"
	"github.com/user/pwa-builder/internal/errors"
)

// LoadTLSConfig loads the certificate pair and appends every certificate found
// in the CA file to the chain presented to clients.
func LoadTLSConfig(cfg *config.ServeConfig) (*tls.Config, error) {
	for purpose, path := range map[string]string{"certificate": cfg.Cert, "private key": cfg.Key} {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.NewMissingFileError(path, purpose)
		}
	}

	cert, err := tls.LoadX509KeyPair(cfg.Cert, cfg.Key)
	if err != nil {
		return nil, errors.NewTLSError(cfg.Cert, cfg.Key, err)
	}

	if cfg.CA != "" {
		chain, err := readCertificateChain(cfg.CA)
		if err != nil {
			return nil, err
		}
		cert.Certificate = append(cert.Certificate, chain...)
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}, nil
}

func readCertificateChain(path string) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewMissingFileError(path, "certificate authority")
	}

	var chain [][]byte
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			chain = append(chain, block.Bytes)
		}
	}
	if len(chain) == 0 {
		return nil, errors.NewTLSError(path, "", fmt.Errorf("no PEM certificates found in %s", path))
	}
	return chain, nil
}
