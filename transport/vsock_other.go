//go:build !linux

package transport

import (
	"fmt"
	"net"
)

func dialVsock(target string) (net.Conn, error) {
	return nil, fmt.Errorf("vsock transport is only available on linux")
}

func listenVsock(target string) (net.Listener, error) {
	return nil, fmt.Errorf("vsock transport is only available on linux")
}
