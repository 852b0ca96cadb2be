package controllers

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-streams/internal/models"
	"data-streams/internal/services"
)

type fakeView struct {
	loadHandler, searchHandler, quitHandler func()

	query        string
	original     []string
	filtered     []string
	status       string
	documentInfo string
	matches      [2]int
	errors       []string

	fileCallback    func(fyne.URIReadCloser, error)
	confirmCallback func(bool)
}

func (v *fakeView) SetLoadHandler(h func()) { v.loadHandler = h }

func (v *fakeView) SetSearchHandler(h func()) { v.searchHandler = h }

func (v *fakeView) SetQuitHandler(h func()) { v.quitHandler = h }

func (v *fakeView) Query() string { return v.query }

func (v *fakeView) SetOriginalLines(l []string) { v.original = append([]string{}, l...) }

func (v *fakeView) SetFilteredLines(l []string) { v.filtered = append([]string{}, l...) }

func (v *fakeView) ClearFilteredLines() { v.filtered = nil }

func (v *fakeView) UpdateStatus(s string) { v.status = s }

func (v *fakeView) SetDocumentInfo(name string, lines int) { v.documentInfo = name }

func (v *fakeView) SetMatchInfo(matches, total int) { v.matches = [2]int{matches, total} }

func (v *fakeView) ShowError(title string, err error) { v.errors = append(v.errors, err.Error()) }

func (v *fakeView) ShowConfirm(title, message string, cb func(bool)) { v.confirmCallback = cb }

func (v *fakeView) ShowFileDialog(cb func(fyne.URIReadCloser, error)) { v.fileCallback = cb }

// uriReader serves a fixed URI the way a file dialog reader does
type uriReader struct {
	data   []byte
	pos    int
	uri    fyne.URI
	closed bool
}

func (r *uriReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *uriReader) Close() error {
	r.closed = true
	return nil
}

func (r *uriReader) URI() fyne.URI {
	return r.uri
}

func newTestController(t *testing.T) (*MainController, *fakeView) {
	t.Helper()
	repo := models.NewDocumentRepository()
	svc := services.NewDocumentService(services.NewFileLoader(nil), repo, nil)
	mc := NewMainController(svc, nil)
	view := &fakeView{}
	mc.SetMainView(view)
	return mc, view
}

func writeFruit(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fruit.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nbanana\ngrape\npineapple\n"), 0o644))
	return path
}

func TestSetMainViewWiresHandlers(t *testing.T) {
	_, view := newTestController(t)

	assert.NotNil(t, view.loadHandler)
	assert.NotNil(t, view.searchHandler)
	assert.NotNil(t, view.quitHandler)
}

func TestLoadThenSearch(t *testing.T) {
	mc, view := newTestController(t)
	path := writeFruit(t)

	mc.LoadPath(path)
	require.Empty(t, view.errors)
	assert.Equal(t, []string{"apple", "banana", "grape", "pineapple"}, view.original)
	assert.Equal(t, "fruit.txt", view.documentInfo)
	assert.Equal(t, "Loaded 4 lines from fruit.txt", view.status)

	view.query = "apple"
	view.searchHandler()

	assert.Equal(t, []string{"apple", "pineapple"}, view.filtered)
	assert.Equal(t, [2]int{2, 4}, view.matches)
	assert.Equal(t, `2 of 4 lines match "apple"`, view.status)

	state := mc.GetApplicationState()
	assert.True(t, state.HasDocument)
	assert.Equal(t, path, state.DocumentPath)
	assert.Equal(t, "apple", state.LastQuery)
	assert.Equal(t, 2, state.LastMatches)
}

func TestLoadClearsPreviousResults(t *testing.T) {
	mc, view := newTestController(t)
	path := writeFruit(t)

	mc.LoadPath(path)
	mc.SearchFor("grape")
	require.Equal(t, []string{"grape"}, view.filtered)

	mc.LoadPath(path)
	assert.Nil(t, view.filtered)
}

func TestFailedLoadKeepsPreviousDocument(t *testing.T) {
	mc, view := newTestController(t)
	mc.LoadPath(writeFruit(t))

	mc.LoadPath(filepath.Join(t.TempDir(), "missing.txt"))

	require.Equal(t, []string{"Error: File does not exist."}, view.errors)
	assert.Equal(t, "Load failed", view.status)
	assert.Len(t, view.original, 4, "original pane is untouched")

	mc.SearchFor("banana")
	assert.Equal(t, []string{"banana"}, view.filtered)
}

func TestSearchEmptyQueryShowsError(t *testing.T) {
	mc, view := newTestController(t)
	mc.LoadPath(writeFruit(t))
	mc.SearchFor("apple")

	view.query = ""
	view.searchHandler()

	assert.Equal(t, []string{"Please enter a search string."}, view.errors)
	assert.Equal(t, []string{"apple", "pineapple"}, view.filtered, "filtered pane is untouched")
}

func TestSearchBeforeLoad(t *testing.T) {
	mc, view := newTestController(t)

	mc.SearchFor("x")

	assert.Empty(t, view.errors)
	assert.Empty(t, view.filtered)
	assert.Equal(t, "No file loaded, nothing to search", view.status)
}

func TestLoadFileFromDialog(t *testing.T) {
	mc, view := newTestController(t)
	path := writeFruit(t)

	view.loadHandler()
	require.NotNil(t, view.fileCallback)

	reader := &uriReader{uri: storage.NewFileURI(path)}
	view.fileCallback(reader, nil)

	assert.True(t, reader.closed)
	assert.Len(t, view.original, 4)
	assert.True(t, mc.GetApplicationState().HasDocument)
}

func TestLoadFileDialogCancelled(t *testing.T) {
	mc, view := newTestController(t)

	mc.LoadFile()
	view.fileCallback(nil, nil)

	assert.Empty(t, view.errors)
	assert.False(t, mc.GetApplicationState().HasDocument)
}

func TestLoadFileDialogError(t *testing.T) {
	mc, view := newTestController(t)

	mc.LoadFile()
	view.fileCallback(nil, errors.New("portal unavailable"))

	assert.Equal(t, []string{"portal unavailable"}, view.errors)
}

func TestLoadFileDialogPermissionDenied(t *testing.T) {
	mc, view := newTestController(t)
	var failed error
	mc.AddEventListener(EventLoadFailed, func(data interface{}) error {
		failed = data.(error)
		return nil
	})

	mc.LoadFile()
	view.fileCallback(nil, &fs.PathError{Op: "open", Path: "/tmp/secret.txt", Err: fs.ErrPermission})

	assert.Equal(t, []string{"Error: File is not readable."}, view.errors)
	assert.Equal(t, "Load failed", view.status)
	assert.ErrorIs(t, failed, services.ErrNotReadable)
	assert.False(t, mc.GetApplicationState().HasDocument)
}

func TestLoadFileDialogMissingFile(t *testing.T) {
	mc, view := newTestController(t)

	mc.LoadFile()
	view.fileCallback(nil, &fs.PathError{Op: "open", Path: "/tmp/gone.txt", Err: fs.ErrNotExist})

	assert.Equal(t, []string{"Error: File does not exist."}, view.errors)
}

func TestApplicationStateCounters(t *testing.T) {
	mc, _ := newTestController(t)
	path := writeFruit(t)

	mc.LoadPath(path)
	mc.LoadPath(path)
	mc.SearchFor("apple")
	mc.SearchFor("")

	state := mc.GetApplicationState()
	assert.Equal(t, 2, state.LoadCount)
	assert.Equal(t, 1, state.SearchCount)
}

func TestQuit(t *testing.T) {
	mc, view := newTestController(t)
	quits := 0
	mc.SetQuitFunc(func() { quits++ })

	view.quitHandler()
	assert.Equal(t, 1, quits)
}

func TestQuitWithConfirmation(t *testing.T) {
	mc, view := newTestController(t)
	quits := 0
	mc.SetQuitFunc(func() { quits++ })
	mc.SetConfirmQuit(true)

	mc.Quit()
	require.NotNil(t, view.confirmCallback)
	view.confirmCallback(false)
	assert.Equal(t, 0, quits)

	mc.Quit()
	view.confirmCallback(true)
	assert.Equal(t, 1, quits)
}

func TestEventsAreDeliveredSynchronously(t *testing.T) {
	mc, _ := newTestController(t)

	var loaded *models.Document
	var failed error
	var searched models.ResultSet
	mc.AddEventListener(EventDocumentLoaded, func(data interface{}) error {
		loaded = data.(*models.Document)
		return nil
	})
	mc.AddEventListener(EventLoadFailed, func(data interface{}) error {
		failed = data.(error)
		return nil
	})
	mc.AddEventListener(EventSearchComplete, func(data interface{}) error {
		searched = data.(models.ResultSet)
		return errors.New("handler errors are logged, not surfaced")
	})

	mc.LoadPath(writeFruit(t))
	require.NotNil(t, loaded)
	assert.Equal(t, 4, loaded.Len())

	mc.SearchFor("an")
	assert.Equal(t, []string{"banana"}, searched.Lines)

	mc.LoadPath(filepath.Join(t.TempDir(), "gone.txt"))
	assert.ErrorIs(t, failed, services.ErrNotFound)
}

func TestShutdownReleasesDocument(t *testing.T) {
	mc, _ := newTestController(t)
	mc.LoadPath(writeFruit(t))

	mc.Shutdown()

	assert.False(t, mc.GetApplicationState().HasDocument)
}
