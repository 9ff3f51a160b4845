package network

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	ctx := context.Background()
	assert.True(t, CheckPort(ctx, "127.0.0.1", port, time.Second))

	ln.Close()
	assert.False(t, CheckPort(ctx, "127.0.0.1", port, time.Second))
	assert.False(t, CheckPort(ctx, "", 25, 0))
	assert.False(t, CheckPort(ctx, "127.0.0.1", 0, 0))
}
