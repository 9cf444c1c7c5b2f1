// Package transfer moves files between the local machine and a game
// server's FTP space, using credentials fetched on demand from the
// Nitrado API.
package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/donmatraca/nitrado-go/pkg/ftpx"
	"github.com/donmatraca/nitrado-go/pkg/logging"
	"github.com/donmatraca/nitrado-go/pkg/nitrado"
)

// CredentialSource yields FTP credentials for a service. *nitrado.Client
// satisfies it.
type CredentialSource interface {
	GetFTPCredentials(ctx context.Context, serviceID string) (*nitrado.FTPCredentials, error)
}

// Bridge performs FTP transfers against a service. Each call opens its own
// session and closes it before returning, so a Bridge is safe for
// concurrent use as long as its Dialer is.
type Bridge struct {
	creds  CredentialSource
	dialer ftpx.Dialer
	log    *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithDialer replaces the FTP dialer. Tests use this to avoid the network.
func WithDialer(d ftpx.Dialer) Option {
	return func(b *Bridge) { b.dialer = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// NewBridge builds a Bridge over the given credential source.
func NewBridge(creds CredentialSource, opts ...Option) *Bridge {
	b := &Bridge{
		creds:  creds,
		dialer: &ftpx.NetDialer{},
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// session fetches credentials and opens an authenticated FTP session.
func (b *Bridge) session(ctx context.Context, serviceID string) (ftpx.Session, error) {
	creds, err := b.creds.GetFTPCredentials(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("ftp credentials for service %s: %w", serviceID, err)
	}
	sess, err := b.dialer.Dial(ctx, creds.Addr(), creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Upload streams a local file to the remote path, replacing any existing
// file there.
func (b *Bridge) Upload(ctx context.Context, serviceID, localPath, remotePath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer src.Close()

	sess, err := b.session(ctx, serviceID)
	if err != nil {
		return err
	}
	defer sess.Close()

	b.log.Debug("uploading file",
		"service_id", serviceID,
		"local", localPath,
		"remote", remotePath)
	if err := sess.Store(remotePath, src); err != nil {
		b.log.Error("upload failed", "remote", remotePath, "error", err)
		return err
	}
	return nil
}

// Download copies a remote file to the local path. A partial local file may
// remain if the transfer is interrupted.
func (b *Bridge) Download(ctx context.Context, serviceID, remotePath, localPath string) error {
	sess, err := b.session(ctx, serviceID)
	if err != nil {
		return err
	}
	defer sess.Close()

	b.log.Debug("downloading file",
		"service_id", serviceID,
		"remote", remotePath,
		"local", localPath)
	src, err := sess.Retrieve(remotePath)
	if err != nil {
		b.log.Error("download failed", "remote", remotePath, "error", err)
		return err
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("download %s: %w", remotePath, err)
	}
	return dst.Close()
}

// ListFiles returns the bare file names in a remote directory.
func (b *Bridge) ListFiles(ctx context.Context, serviceID, dir string) ([]string, error) {
	sess, err := b.session(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.List(dir)
}

// ListEntries returns the full listing of a remote directory, with sizes
// and modification times.
func (b *Bridge) ListEntries(ctx context.Context, serviceID, dir string) ([]ftpx.Entry, error) {
	sess, err := b.session(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.Entries(dir)
}
