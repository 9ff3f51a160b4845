// Package network holds small TCP helpers used by health checks.
package network

import (
	"context"
	"net"
	"strconv"
	"time"
)

// DefaultDialTimeout used when CheckPort is given a zero timeout
const DefaultDialTimeout = 3 * time.Second

// CheckPort reports whether a TCP connection to host:port can be opened
func CheckPort(ctx context.Context, host string, port int, timeout time.Duration) bool {
	if host == "" || port <= 0 {
		return false
	}
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}

	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
