package cli

import (
	"testing"

	"github.com/formdeck/formdeck/internal/db"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/repository"
	"github.com/formdeck/formdeck/internal/service"
	"github.com/formdeck/formdeck/internal/teatest"
	"github.com/stretchr/testify/require"
)

// testStore builds an in-memory store for one test.
func testStore(t *testing.T) service.TemplateStore {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	store := service.NewTemplateStore(repository.NewSQLiteTemplateRepo(database), database)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestDriver wraps teatest.Driver with formdeck-specific inspection
// methods for appModel internals (view stack, transient output).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel over the given store, sets the
// terminal size, and drains Init() (which loads the template list
// synchronously from the in-memory database).
func NewTestDriver(t *testing.T, store service.TemplateStore) *TestDriver {
	t.Helper()

	m := newAppModel(store)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Output returns the transient output currently displayed, if any.
func (d *TestDriver) Output() string {
	return d.appModel().lastOutput
}

// IsQuitting reports whether the program has quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// BuilderDraft returns the active builder view's draft. Fails the test
// if the active view is not the builder.
func (d *TestDriver) BuilderDraft() domain.Template {
	m := d.appModel()
	v, ok := m.activeView().(*builderView)
	require.True(d.T, ok, "active view is not the builder")
	return v.draft
}
