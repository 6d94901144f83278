// Package geolite annotates summarized routes with country names from
// a GeoLite2 Country database. The database is optional; without one
// every lookup resolves to the empty string.
package geolite

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/oschwald/geoip2-golang"

	"netsum/internal/ipv4"
)

var (
	mu     sync.RWMutex
	reader *geoip2.Reader
)

// Open loads the configured country database. An empty path leaves
// annotation disabled and is not an error.
func Open(path string) error {
	if path == "" {
		return nil
	}

	db, err := geoip2.Open(path)
	if err != nil {
		return fmt.Errorf("open GeoLite2 database %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if reader != nil {
		_ = reader.Close()
	}
	reader = db

	log.Info("GeoLite2 country database loaded", "path", path)
	return nil
}

// Close releases the database, if one was loaded.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if reader != nil {
		_ = reader.Close()
		reader = nil
	}
}

// Country returns the English country name for an address, or "" when
// no database is loaded or the address is not in it.
func Country(addr ipv4.Address) string {
	mu.RLock()
	defer mu.RUnlock()
	if reader == nil {
		return ""
	}

	ip := net.IPv4(byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
	record, err := reader.Country(ip)
	if err != nil {
		return ""
	}

	return record.Country.Names["en"]
}
