// Package transport resolves a vaccel RPC bridge address into a
// net.Listener or net.Conn. Addresses follow a scheme://target shape:
// tcp://host:port, unix:///path/to.sock, or vsock://cid:port for a
// virtio-vsock endpoint between a guest and its host hypervisor.
package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

const (
	SchemeTCP  = "tcp"
	SchemeUnix = "unix"
	SchemeVsock = "vsock"
)

// Address is a parsed bridge endpoint.
type Address struct {
	Scheme string
	Target string // host:port, path, or cid:port depending on Scheme
}

// Parse splits a "scheme://target" address string.
func Parse(raw string) (Address, error) {
	parts := strings.SplitN(raw, "://", 2)
	if len(parts) != 2 {
		return Address{}, vaccelerr.NewProtocolError("malformed address %q, want scheme://target", raw)
	}
	return Address{Scheme: parts[0], Target: parts[1]}, nil
}

func (a Address) String() string {
	return a.Scheme + "://" + a.Target
}

// Listen opens a listener on addr.
func Listen(ctx context.Context, addr Address) (net.Listener, error) {
	var lc net.ListenConfig
	switch addr.Scheme {
	case SchemeTCP:
		l, err := lc.Listen(ctx, "tcp", addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("listen", err)
		}
		return l, nil
	case SchemeUnix:
		l, err := lc.Listen(ctx, "unix", addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("listen", err)
		}
		return l, nil
	case SchemeVsock:
		l, err := listenVsock(addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("listen", err)
		}
		return l, nil
	default:
		return nil, vaccelerr.NewProtocolError("unsupported transport scheme %q", addr.Scheme)
	}
}

// Dial connects to addr.
func Dial(ctx context.Context, addr Address) (net.Conn, error) {
	var d net.Dialer
	switch addr.Scheme {
	case SchemeTCP:
		c, err := d.DialContext(ctx, "tcp", addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("dial", err)
		}
		return c, nil
	case SchemeUnix:
		c, err := d.DialContext(ctx, "unix", addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("dial", err)
		}
		return c, nil
	case SchemeVsock:
		c, err := dialVsock(addr.Target)
		if err != nil {
			return nil, vaccelerr.NewTransportError("dial", err)
		}
		return c, nil
	default:
		return nil, vaccelerr.NewProtocolError("unsupported transport scheme %q", addr.Scheme)
	}
}

func splitCIDPort(target string) (cid, port uint32, err error) {
	parts := strings.SplitN(target, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("vsock target %q, want cid:port", target)
	}
	c, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("vsock cid %q: %w", parts[0], err)
	}
	p, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("vsock port %q: %w", parts[1], err)
	}
	return uint32(c), uint32(p), nil
}
