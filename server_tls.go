//go:build !tinygo

package igate

import (
	"golang.org/x/crypto/acme/autocert"
)

// ServeTLS serves on :443 with a Let's Encrypt certificate for host
func (s *Server) ServeTLS(host string) error {
	return s.Serve(autocert.NewListener(host))
}
