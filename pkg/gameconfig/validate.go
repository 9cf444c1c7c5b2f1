// Package gameconfig checks and edits the XML/JSON configuration files a
// DayZ game server keeps on its FTP space: syntax validation, JSON Schema
// validation, and structural event injection.
package gameconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/donmatraca/nitrado-go/pkg/logging"
)

// Format identifies the syntax a file was checked as.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// Result is the outcome of a syntax check.
type Result struct {
	Format Format
	Valid  bool
	// Detail carries the parser error when Valid is false.
	Detail string
}

// Message renders the result as a one-line human report.
func (r Result) Message() string {
	name := strings.ToUpper(string(r.Format))
	if r.Valid {
		return fmt.Sprintf("%s syntax is valid", name)
	}
	return fmt.Sprintf("Syntax error in %s file: %s", name, r.Detail)
}

// ValidateFile syntax-checks a local file. The extension picks the parser:
// .xml or .json. Any other extension is an error — a Result is only
// returned for files the checker understands.
func ValidateFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		return validateXML(data), nil
	case ".json":
		return validateJSON(data), nil
	default:
		return Result{}, fmt.Errorf("unsupported file type %q: want .xml or .json", ext)
	}
}

func validateXML(data []byte) Result {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Result{Format: FormatXML, Detail: err.Error()}
	}
	if doc.Root() == nil {
		return Result{Format: FormatXML, Detail: "document has no root element"}
	}
	return Result{Format: FormatXML, Valid: true}
}

func validateJSON(data []byte) Result {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Result{Format: FormatJSON, Detail: err.Error()}
	}
	return Result{Format: FormatJSON, Valid: true}
}

// ValidateSchema checks a local JSON document against a JSON Schema file
// (draft 2020-12). A nil return means the document conforms.
func ValidateSchema(docPath, schemaPath string) error {
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", schemaPath, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", strings.NewReader(string(schemaData))); err != nil {
		return fmt.Errorf("load schema %s: %w", schemaPath, err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	docData, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", docPath, err)
	}
	var doc any
	if err := json.Unmarshal(docData, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", docPath, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", docPath, err)
	}
	return nil
}

// Fetcher downloads remote files. *transfer.Bridge satisfies it.
type Fetcher interface {
	Download(ctx context.Context, serviceID, remotePath, localPath string) error
}

// Checker validates files that live on the game server, fetching them over
// FTP into a scratch directory first.
type Checker struct {
	transfer   Fetcher
	scratchDir string
	log        *slog.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithScratchDir sets where downloaded files are staged. Default is the
// system temp directory.
func WithScratchDir(dir string) CheckerOption {
	return func(c *Checker) { c.scratchDir = dir }
}

// WithCheckerLogger sets the logger. The default discards everything.
func WithCheckerLogger(log *slog.Logger) CheckerOption {
	return func(c *Checker) { c.log = log }
}

// NewChecker builds a Checker over a transfer bridge.
func NewChecker(transfer Fetcher, opts ...CheckerOption) *Checker {
	c := &Checker{
		transfer:   transfer,
		scratchDir: os.TempDir(),
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckRemote downloads a remote file, syntax-checks it, and removes the
// scratch copy no matter how the check went.
func (c *Checker) CheckRemote(ctx context.Context, serviceID, remotePath string) (Result, error) {
	scratch := filepath.Join(c.scratchDir, filepath.Base(remotePath))
	if err := c.transfer.Download(ctx, serviceID, remotePath, scratch); err != nil {
		c.log.Error("fetch for validation failed", "remote", remotePath, "error", err)
		return Result{}, err
	}
	defer func() {
		if err := os.Remove(scratch); err != nil {
			c.log.Warn("scratch file not removed", "path", scratch, "error", err)
		}
	}()

	result, err := ValidateFile(scratch)
	if err != nil {
		return Result{}, err
	}
	c.log.Debug("validated remote file",
		"remote", remotePath,
		"format", string(result.Format),
		"valid", result.Valid)
	return result, nil
}
