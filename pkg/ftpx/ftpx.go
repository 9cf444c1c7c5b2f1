// Package ftpx wraps FTP connectivity behind small Dialer and Session
// interfaces so callers can swap the real protocol client for a fake in
// tests, or pool connections without touching transfer code.
//
// The production implementation is backed by github.com/jlaffaye/ftp and
// opens one authenticated connection per session. Sessions are not safe
// for concurrent use; open one per goroutine.
package ftpx

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jlaffaye/ftp"
)

// EntryKind classifies a directory entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindLink
)

func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindLink:
		return "link"
	default:
		return "file"
	}
}

// Entry describes one name in a remote directory listing.
type Entry struct {
	Name     string
	Size     uint64
	Kind     EntryKind
	Modified time.Time
}

// Session is an authenticated FTP connection. Close must be called when
// done; afterwards the session is unusable.
type Session interface {
	// Store uploads r to the remote path, creating or replacing the file.
	Store(path string, r io.Reader) error
	// Retrieve opens the remote file for reading. The caller must close
	// the returned reader before issuing further commands on the session.
	Retrieve(path string) (io.ReadCloser, error)
	// List returns the bare names in a remote directory.
	List(dir string) ([]string, error)
	// Entries returns the full listing of a remote directory.
	Entries(dir string) ([]Entry, error)
	Close() error
}

// Dialer opens Sessions. The zero value of NetDialer is ready to use;
// tests substitute their own implementation.
type Dialer interface {
	Dial(ctx context.Context, addr, user, password string) (Session, error)
}

// NetDialer dials real FTP servers.
type NetDialer struct {
	// Timeout bounds the TCP connect. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is the connect timeout used when NetDialer.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Dial connects to addr ("host:port") and logs in. The context covers the
// dial only; subsequent session calls are bounded by the FTP server's own
// timeouts.
func (d *NetDialer) Dial(ctx context.Context, addr, user, password string) (Session, error) {
	timeout := d.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if err := conn.Login(user, password); err != nil {
		// The control connection is up but unusable; don't leak it.
		_ = conn.Quit()
		return nil, fmt.Errorf("login %s@%s: %w", user, addr, err)
	}
	return &netSession{conn: conn}, nil
}

type netSession struct {
	conn *ftp.ServerConn
}

func (s *netSession) Store(path string, r io.Reader) error {
	if err := s.conn.Stor(path, r); err != nil {
		return fmt.Errorf("store %s: %w", path, err)
	}
	return nil
}

func (s *netSession) Retrieve(path string) (io.ReadCloser, error) {
	resp, err := s.conn.Retr(path)
	if err != nil {
		return nil, fmt.Errorf("retrieve %s: %w", path, err)
	}
	return resp, nil
}

func (s *netSession) List(dir string) ([]string, error) {
	names, err := s.conn.NameList(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return names, nil
}

func (s *netSession) Entries(dir string) ([]Entry, error) {
	raw, err := s.conn.List(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, Entry{
			Name:     e.Name,
			Size:     e.Size,
			Kind:     kindOf(e.Type),
			Modified: e.Time,
		})
	}
	return entries, nil
}

func (s *netSession) Close() error {
	return s.conn.Quit()
}

func kindOf(t ftp.EntryType) EntryKind {
	switch t {
	case ftp.EntryTypeFolder:
		return KindDir
	case ftp.EntryTypeLink:
		return KindLink
	default:
		return KindFile
	}
}
