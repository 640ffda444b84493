package config

import (
	"campussrv/internal/catalogsrv/config"
)

// CampusDsn returns the DSN for the campus database
func CampusDsn() string {
	return config.CampusDSN()
}

// DNSFallbackServers returns the resolvers to try when the database
// host cannot be resolved with the system resolver.
func DNSFallbackServers() []string {
	return config.Config().DB.DNSFallbackServers
}
