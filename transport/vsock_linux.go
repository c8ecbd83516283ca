//go:build linux

package transport

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// vsockConn adapts a raw AF_VSOCK file descriptor to net.Conn via
// os.File's generic file-based implementation; vsock sockets support the
// same read/write/close semantics as a connected stream socket.
type vsockConn struct {
	*os.File
	local, remote unix.SockaddrVM
}

func (c *vsockConn) LocalAddr() net.Addr  { return vsockAddr(c.local) }
func (c *vsockConn) RemoteAddr() net.Addr { return vsockAddr(c.remote) }

// SetDeadline, SetReadDeadline and SetWriteDeadline are unsupported on raw
// vsock file descriptors; the agent relies on context cancellation for
// timeouts on this transport instead.
func (c *vsockConn) SetDeadline(t time.Time) error      { return nil }
func (c *vsockConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *vsockConn) SetWriteDeadline(t time.Time) error { return nil }

type vsockAddr unix.SockaddrVM

func (a vsockAddr) Network() string { return "vsock" }
func (a vsockAddr) String() string {
	return fmt.Sprintf("vsock:%d:%d", a.CID, a.Port)
}

func dialVsock(target string) (net.Conn, error) {
	cid, port, err := splitCIDPort(target)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_VSOCK, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	sa := &unix.SockaddrVM{CID: cid, Port: port}
	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return nil, err
	}
	f := os.NewFile(uintptr(fd), "vsock")
	return &vsockConn{File: f, remote: *sa}, nil
}

type vsockListener struct {
	fd   int
	addr unix.SockaddrVM
}

func (l *vsockListener) Accept() (net.Conn, error) {
	nfd, sa, err := unix.Accept(l.fd)
	if err != nil {
		return nil, err
	}
	remote, _ := sa.(*unix.SockaddrVM)
	f := os.NewFile(uintptr(nfd), "vsock")
	c := &vsockConn{File: f, local: l.addr}
	if remote != nil {
		c.remote = *remote
	}
	return c, nil
}

func (l *vsockListener) Close() error { return unix.Close(l.fd) }
func (l *vsockListener) Addr() net.Addr { return vsockAddr(l.addr) }

func listenVsock(target string) (net.Listener, error) {
	cid, port, err := splitCIDPort(target)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_VSOCK, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	sa := &unix.SockaddrVM{CID: cid, Port: port}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, err
	}
	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &vsockListener{fd: fd, addr: *sa}, nil
}
