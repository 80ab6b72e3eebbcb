//go:build unix

// Package fdio reads and writes raw file descriptors, for environments where
// the byte source or sink is not wrapped in an *os.File (pipes, serial
// devices, sockets handed over by a supervisor).
package fdio

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// FD presents a raw file descriptor as an io.ReadWriteCloser. Interrupted
// system calls are retried.
type FD struct {
	fd int
}

// New wraps fd. The caller must not use fd directly afterwards.
func New(fd int) *FD {
	return &FD{fd: fd}
}

func (f *FD) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(f.fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

func (f *FD) Write(p []byte) (int, error) {
	for {
		n, err := unix.Write(f.fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

func (f *FD) Close() error {
	return unix.Close(f.fd)
}
