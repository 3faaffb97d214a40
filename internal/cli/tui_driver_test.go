package cli

import (
	"testing"

	"github.com/alexanderramin/fluxo/internal/teatest"
)

// TestDriver wraps teatest.Driver with browser-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver creates a TestDriver for the flowchart browser of app.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newBrowseModel(app)
	d := teatest.New(t, m, teatest.WithSize(160, 60))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

func (d *TestDriver) browseModel() browseModel {
	return d.Model.(browseModel)
}

// Cursor returns the grid coordinates under the cursor.
func (d *TestDriver) Cursor() (row, col int) {
	m := d.browseModel()
	return m.row, m.col
}

// Hovered returns the hovered code as seen by the service.
func (d *TestDriver) Hovered() string {
	return d.app.Flowchart.Hovered()
}

// DetailsOpen reports whether the details panel is shown.
func (d *TestDriver) DetailsOpen() bool {
	return d.browseModel().showDetails
}

// IsQuitting returns whether the browser has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.browseModel().quitting || d.Quitting
}

// PlainView returns the rendered frame without ANSI escapes.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
