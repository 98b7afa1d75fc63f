// Package devserver derives the base URL of a running Vite dev server from the
// URL of the page request being rendered.
package devserver

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/quantmind-br/viteassets/internal/domain"
)

// DefaultPort is the dev server's port when no override is configured
const DefaultPort = 5173

const maxPort = 65535

// ResolveBase returns scheme://host:port for the dev server that serves the
// page behind requestURL. Path, query, fragment and user info are dropped and
// the port is replaced by the override from ports, or DefaultPort.
// requestURL is not modified.
func ResolveBase(requestURL *url.URL, ports domain.PortSource) *url.URL {
	override := ""
	if ports != nil {
		override = ports.PortOverride()
	}
	port := CoercePort(override)

	return &url.URL{
		Scheme: requestURL.Scheme,
		Host:   net.JoinHostPort(requestURL.Hostname(), strconv.Itoa(port)),
	}
}

// CoercePort turns a configured port value into a usable port. Leading
// whitespace is skipped and the leading run of decimal digits is used, so
// "8080abc" yields 8080. Empty, non-numeric, zero and out-of-range values
// yield DefaultPort.
func CoercePort(raw string) int {
	raw = strings.TrimLeft(raw, " \t\n\r\v\f")
	raw = strings.TrimPrefix(raw, "+")

	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultPort
	}

	port, err := strconv.Atoi(raw[:end])
	if err != nil || port <= 0 || port > maxPort {
		return DefaultPort
	}
	return port
}

// StaticPort is a PortSource with a fixed override value
type StaticPort string

// PortOverride returns the fixed value
func (p StaticPort) PortOverride() string {
	return string(p)
}
