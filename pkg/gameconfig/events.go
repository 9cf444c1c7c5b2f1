package gameconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/beevik/etree"

	"github.com/donmatraca/nitrado-go/pkg/logging"
)

// DefaultEventsPath is where DayZ keeps its event definitions relative to
// the FTP root on the Chernarus mission.
const DefaultEventsPath = "mpmissions/dayzOffline.chernarusplus/db/events.xml"

// ErrMalformedEvents reports an events document that could not be edited:
// unparseable XML or a root element other than <events>.
var ErrMalformedEvents = errors.New("malformed events document")

// Event is one <event> definition to add.
type Event struct {
	Name string
	// Attrs become XML attributes on the element, serialized in sorted
	// key order. A "name" key here is ignored; Name wins.
	Attrs map[string]string
}

// AddEvent appends an <event> element as the last child of the <events>
// root and returns the re-serialized document. The source must parse and
// must have an <events> root; anything else is ErrMalformedEvents. The
// rest of the document is left untouched.
func AddEvent(src []byte, ev Event) ([]byte, error) {
	if ev.Name == "" {
		return nil, errors.New("event name is empty")
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvents, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedEvents)
	}
	if root.Tag != "events" {
		return nil, fmt.Errorf("%w: root element is <%s>, want <events>", ErrMalformedEvents, root.Tag)
	}

	el := root.CreateElement("event")
	el.CreateAttr("name", ev.Name)
	keys := make([]string, 0, len(ev.Attrs))
	for k := range ev.Attrs {
		if k == "name" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.CreateAttr(k, ev.Attrs[k])
	}

	return doc.WriteToBytes()
}

// Transferer moves files both ways. *transfer.Bridge satisfies it.
type Transferer interface {
	Fetcher
	Upload(ctx context.Context, serviceID, localPath, remotePath string) error
}

// Injector edits the events file in place on the server: download, append,
// upload back.
type Injector struct {
	transfer   Transferer
	scratchDir string
	remotePath string
	log        *slog.Logger
}

// InjectorOption configures an Injector.
type InjectorOption func(*Injector)

// WithRemoteEventsPath overrides the remote events file location.
func WithRemoteEventsPath(path string) InjectorOption {
	return func(i *Injector) { i.remotePath = path }
}

// WithInjectorScratchDir sets where the events file is staged during the
// edit. Default is the system temp directory.
func WithInjectorScratchDir(dir string) InjectorOption {
	return func(i *Injector) { i.scratchDir = dir }
}

// WithInjectorLogger sets the logger. The default discards everything.
func WithInjectorLogger(log *slog.Logger) InjectorOption {
	return func(i *Injector) { i.log = log }
}

// NewInjector builds an Injector over a transfer bridge.
func NewInjector(transfer Transferer, opts ...InjectorOption) *Injector {
	i := &Injector{
		transfer:   transfer,
		scratchDir: os.TempDir(),
		remotePath: DefaultEventsPath,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InjectEvent downloads the events file, appends the event, and uploads
// the result back to the same remote path. The scratch copy is removed on
// every exit path. A malformed remote document fails with
// ErrMalformedEvents before anything is uploaded.
func (i *Injector) InjectEvent(ctx context.Context, serviceID string, ev Event) error {
	scratch := filepath.Join(i.scratchDir, "events.xml")
	if err := i.transfer.Download(ctx, serviceID, i.remotePath, scratch); err != nil {
		i.log.Error("fetch events file failed", "remote", i.remotePath, "error", err)
		return err
	}
	defer func() {
		if err := os.Remove(scratch); err != nil {
			i.log.Warn("scratch file not removed", "path", scratch, "error", err)
		}
	}()

	src, err := os.ReadFile(scratch)
	if err != nil {
		return fmt.Errorf("read %s: %w", scratch, err)
	}
	out, err := AddEvent(src, ev)
	if err != nil {
		i.log.Error("event injection failed", "remote", i.remotePath, "event", ev.Name, "error", err)
		return err
	}
	if err := os.WriteFile(scratch, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", scratch, err)
	}
	if err := i.transfer.Upload(ctx, serviceID, scratch, i.remotePath); err != nil {
		i.log.Error("push events file failed", "remote", i.remotePath, "error", err)
		return err
	}
	i.log.Info("event added", "service_id", serviceID, "event", ev.Name, "remote", i.remotePath)
	return nil
}
