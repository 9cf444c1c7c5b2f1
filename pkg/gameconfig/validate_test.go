package gameconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFile_XML(t *testing.T) {
	path := writeTemp(t, "types.xml", `<types><type name="AKM"/></types>`)

	res, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, FormatXML, res.Format)
	assert.Equal(t, "XML syntax is valid", res.Message())
}

func TestValidateFile_BadXML(t *testing.T) {
	path := writeTemp(t, "broken.xml", `<types><type name="AKM"></types>`)

	res, err := ValidateFile(path)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Detail)
	assert.Contains(t, res.Message(), "Syntax error in XML file: ")
}

func TestValidateFile_JSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"GameSettings": {"TimeAcceleration": 4}}`)

	res, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, FormatJSON, res.Format)
	assert.Equal(t, "JSON syntax is valid", res.Message())
}

func TestValidateFile_BadJSON(t *testing.T) {
	path := writeTemp(t, "broken.json", `{"GameSettings": `)

	res, err := ValidateFile(path)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message(), "Syntax error in JSON file: ")
}

func TestValidateFile_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "notes.txt", "hello")

	_, err := ValidateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
}

func TestValidateSchema(t *testing.T) {
	schema := writeTemp(t, "schema.json", `{
		"type": "object",
		"required": ["TimeAcceleration"],
		"properties": {"TimeAcceleration": {"type": "number", "minimum": 0}}
	}`)

	good := writeTemp(t, "good.json", `{"TimeAcceleration": 4}`)
	require.NoError(t, ValidateSchema(good, schema))

	bad := writeTemp(t, "bad.json", `{"TimeAcceleration": -1}`)
	err := ValidateSchema(bad, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")

	missing := writeTemp(t, "missing.json", `{}`)
	require.Error(t, ValidateSchema(missing, schema))
}

func TestValidateSchema_BadSchema(t *testing.T) {
	schema := writeTemp(t, "schema.json", `{"type": 12}`)
	doc := writeTemp(t, "doc.json", `{}`)
	require.Error(t, ValidateSchema(doc, schema))
}

// fakeTransfer keeps remote files in memory.
type fakeTransfer struct {
	files   map[string][]byte
	uploads int
}

func newFakeTransfer() *fakeTransfer {
	return &fakeTransfer{files: map[string][]byte{}}
}

func (f *fakeTransfer) Download(_ context.Context, _ string, remotePath, localPath string) error {
	b, ok := f.files[remotePath]
	if !ok {
		return fmt.Errorf("550 file not found: %s", remotePath)
	}
	return os.WriteFile(localPath, b, 0o644)
}

func (f *fakeTransfer) Upload(_ context.Context, _ string, localPath, remotePath string) error {
	b, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.files[remotePath] = b
	f.uploads++
	return nil
}

func TestChecker_CheckRemote(t *testing.T) {
	ft := newFakeTransfer()
	ft.files["db/globals.xml"] = []byte(`<variables><var name="TimeLogin" value="15"/></variables>`)
	scratch := t.TempDir()
	checker := NewChecker(ft, WithScratchDir(scratch))

	res, err := checker.CheckRemote(context.Background(), "1234567", "db/globals.xml")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	_, statErr := os.Stat(filepath.Join(scratch, "globals.xml"))
	assert.True(t, os.IsNotExist(statErr), "scratch file must be removed after a passing check")
}

func TestChecker_CheckRemote_InvalidStillCleansUp(t *testing.T) {
	ft := newFakeTransfer()
	ft.files["cfg/settings.json"] = []byte(`{"broken": `)
	scratch := t.TempDir()
	checker := NewChecker(ft, WithScratchDir(scratch))

	res, err := checker.CheckRemote(context.Background(), "1234567", "cfg/settings.json")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message(), "Syntax error in JSON file: ")

	_, statErr := os.Stat(filepath.Join(scratch, "settings.json"))
	assert.True(t, os.IsNotExist(statErr), "scratch file must be removed after a failing check too")
}

func TestChecker_CheckRemote_DownloadError(t *testing.T) {
	checker := NewChecker(newFakeTransfer(), WithScratchDir(t.TempDir()))

	_, err := checker.CheckRemote(context.Background(), "1234567", "db/absent.xml")
	require.Error(t, err)
}

func TestChecker_CheckRemote_UnsupportedExtension(t *testing.T) {
	ft := newFakeTransfer()
	ft.files["readme.txt"] = []byte("hi")
	scratch := t.TempDir()
	checker := NewChecker(ft, WithScratchDir(scratch))

	_, err := checker.CheckRemote(context.Background(), "1234567", "readme.txt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(filepath.Join(scratch, "readme.txt"))
	assert.True(t, os.IsNotExist(statErr), "scratch file must be removed when the type is unsupported")
}
