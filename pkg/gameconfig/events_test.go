package gameconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<events>
    <event name="AmbientHen">
        <nominal>15</nominal>
    </event>
    <event name="AnimalBear">
        <nominal>3</nominal>
    </event>
</events>
`

func TestAddEvent_AppendsAsLastChild(t *testing.T) {
	out, err := AddEvent([]byte(eventsDoc), Event{
		Name:  "StaticHeliCrash",
		Attrs: map[string]string{"nominal": "3", "active": "1"},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.Equal(t, "events", root.Tag)

	children := root.SelectElements("event")
	require.Len(t, children, 3, "existing events must survive the edit")
	assert.Equal(t, "AmbientHen", children[0].SelectAttrValue("name", ""))
	assert.Equal(t, "AnimalBear", children[1].SelectAttrValue("name", ""))

	last := children[2]
	assert.Equal(t, "StaticHeliCrash", last.SelectAttrValue("name", ""))
	assert.Equal(t, "3", last.SelectAttrValue("nominal", ""))
	assert.Equal(t, "1", last.SelectAttrValue("active", ""))

	// Existing children keep their structure.
	nominal := children[0].SelectElement("nominal")
	require.NotNil(t, nominal)
	assert.Equal(t, "15", nominal.Text())
}

func TestAddEvent_EmptyDocument(t *testing.T) {
	out, err := AddEvent([]byte(`<events></events>`), Event{Name: "InfectedVillage"})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	events := doc.Root().SelectElements("event")
	require.Len(t, events, 1, "an empty document gains exactly one event")
	assert.Equal(t, "InfectedVillage", events[0].SelectAttrValue("name", ""))
}

func TestAddEvent_Deterministic(t *testing.T) {
	ev := Event{Name: "X", Attrs: map[string]string{"b": "2", "a": "1", "c": "3"}}
	first, err := AddEvent([]byte(eventsDoc), ev)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := AddEvent([]byte(eventsDoc), ev)
		require.NoError(t, err)
		assert.Equal(t, first, again, "attribute order must not depend on map iteration")
	}
}

func TestAddEvent_NameAttrNotDuplicated(t *testing.T) {
	out, err := AddEvent([]byte(`<events/>`), Event{
		Name:  "Real",
		Attrs: map[string]string{"name": "Impostor"},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	ev := doc.Root().SelectElement("event")
	require.NotNil(t, ev)
	assert.Equal(t, "Real", ev.SelectAttrValue("name", ""))
	assert.Len(t, ev.Attr, 1)
}

func TestAddEvent_MalformedSource(t *testing.T) {
	_, err := AddEvent([]byte(`<events><event name="A"></events>`), Event{Name: "B"})
	require.ErrorIs(t, err, ErrMalformedEvents)
}

func TestAddEvent_WrongRoot(t *testing.T) {
	_, err := AddEvent([]byte(`<types><type name="AKM"/></types>`), Event{Name: "B"})
	require.ErrorIs(t, err, ErrMalformedEvents)
	assert.Contains(t, err.Error(), "types")
}

func TestAddEvent_EmptySource(t *testing.T) {
	_, err := AddEvent(nil, Event{Name: "B"})
	require.ErrorIs(t, err, ErrMalformedEvents)
}

func TestAddEvent_EmptyName(t *testing.T) {
	_, err := AddEvent([]byte(`<events/>`), Event{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedEvents, "a caller mistake is not a malformed document")
}

func TestInjector_InjectEvent(t *testing.T) {
	ft := newFakeTransfer()
	ft.files[DefaultEventsPath] = []byte(eventsDoc)
	scratch := t.TempDir()
	inj := NewInjector(ft, WithInjectorScratchDir(scratch))

	err := inj.InjectEvent(context.Background(), "1234567", Event{
		Name:  "StaticContaminatedArea",
		Attrs: map[string]string{"active": "1"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, ft.uploads)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(ft.files[DefaultEventsPath]))
	events := doc.Root().SelectElements("event")
	require.Len(t, events, 3)
	assert.Equal(t, "StaticContaminatedArea", events[2].SelectAttrValue("name", ""))

	_, statErr := os.Stat(filepath.Join(scratch, "events.xml"))
	assert.True(t, os.IsNotExist(statErr), "scratch file must be removed after injection")
}

func TestInjector_CustomRemotePath(t *testing.T) {
	const custom = "mpmissions/custom.map/db/events.xml"
	ft := newFakeTransfer()
	ft.files[custom] = []byte(`<events/>`)
	inj := NewInjector(ft,
		WithInjectorScratchDir(t.TempDir()),
		WithRemoteEventsPath(custom))

	require.NoError(t, inj.InjectEvent(context.Background(), "1234567", Event{Name: "A"}))
	assert.Contains(t, string(ft.files[custom]), `name="A"`)
}

func TestInjector_MalformedRemoteNotUploaded(t *testing.T) {
	ft := newFakeTransfer()
	ft.files[DefaultEventsPath] = []byte(`<events><event name="A"></events>`)
	scratch := t.TempDir()
	inj := NewInjector(ft, WithInjectorScratchDir(scratch))

	err := inj.InjectEvent(context.Background(), "1234567", Event{Name: "B"})
	require.ErrorIs(t, err, ErrMalformedEvents)
	assert.Zero(t, ft.uploads, "a malformed document must never be written back")

	_, statErr := os.Stat(filepath.Join(scratch, "events.xml"))
	assert.True(t, os.IsNotExist(statErr), "scratch file must be removed on failure too")
}

func TestInjector_DownloadFailure(t *testing.T) {
	inj := NewInjector(newFakeTransfer(), WithInjectorScratchDir(t.TempDir()))

	err := inj.InjectEvent(context.Background(), "1234567", Event{Name: "A"})
	require.Error(t, err)
}
