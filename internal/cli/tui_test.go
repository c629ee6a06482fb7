package cli

import (
	"context"
	"testing"

	"github.com/formdeck/formdeck/internal/builder"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedTemplate saves a simple template with one required text field and
// returns it.
func seedTemplate(t *testing.T, store service.TemplateStore, name string) domain.Template {
	t.Helper()
	ctx := context.Background()

	draft, err := store.NewDraft(ctx)
	require.NoError(t, err)
	tpl := builder.SetName(*draft, name)
	tpl = builder.AddSection(tpl)
	secID := tpl.Sections[0].ID
	tpl = builder.AddField(tpl, secID, domain.FieldText)
	label := "Name"
	req := true
	tpl = builder.UpdateField(tpl, secID, tpl.Sections[0].Fields[0].ID,
		builder.FieldPatch{Label: &label, Required: &req})
	require.NoError(t, store.Save(ctx, &tpl))
	return tpl
}

// seedFieldTemplate saves a template whose single section holds one
// field of the given type, keeping the builder's defaults for it.
func seedFieldTemplate(t *testing.T, store service.TemplateStore, name string, ft domain.FieldType, required bool) domain.Template {
	t.Helper()
	ctx := context.Background()

	draft, err := store.NewDraft(ctx)
	require.NoError(t, err)
	tpl := builder.SetName(*draft, name)
	tpl = builder.AddSection(tpl)
	secID := tpl.Sections[0].ID
	tpl = builder.AddField(tpl, secID, ft)
	if required {
		req := true
		tpl = builder.UpdateField(tpl, secID, tpl.Sections[0].Fields[0].ID,
			builder.FieldPatch{Required: &req})
	}
	require.NoError(t, store.Save(ctx, &tpl))
	return tpl
}

func TestTUI_StartsOnEmptyTemplateList(t *testing.T) {
	d := NewTestDriver(t, testStore(t))

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.View(), "No templates yet")
	assert.Contains(t, d.View(), "0/5")
}

func TestTUI_QuitKeys(t *testing.T) {
	d := NewTestDriver(t, testStore(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())

	d2 := NewTestDriver(t, testStore(t))
	d2.PressCtrlC()
	assert.True(t, d2.IsQuitting())
}

func TestTUI_NewTemplateOpensBuilder(t *testing.T) {
	store := testStore(t)
	d := NewTestDriver(t, store)

	d.PressKey('n')

	assert.Equal(t, []ViewID{ViewTemplateList, ViewBuilder}, d.ViewStackIDs())
	assert.Equal(t, "Template 1", d.BuilderDraft().Name)

	// The draft stays uncommitted until saved.
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTUI_CancelEditLeavesStoreUntouched(t *testing.T) {
	store := testStore(t)
	seeded := seedTemplate(t, store, "Intake")
	d := NewTestDriver(t, store)

	d.PressEnter() // edit
	require.Equal(t, ViewBuilder, d.ActiveViewID())

	// Mutate the draft, then bail out.
	d.PressKey('a')
	assert.Len(t, d.BuilderDraft().Sections, 2)
	d.PressEsc()

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	stored, err := store.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Sections, 1)
}

func TestTUI_BuildAndSave(t *testing.T) {
	store := testStore(t)
	d := NewTestDriver(t, store)

	d.PressKey('n')
	d.PressKey('a') // add section
	assert.Contains(t, d.View(), "Section 1")
	d.PressKey('a')
	assert.Contains(t, d.View(), "Section 2")
	d.PressKey('s') // save

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	assert.Contains(t, d.Output(), "Saved")

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Sections, 2)
}

func TestTUI_CapacityErrorSurfaced(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	for i := 0; i < domain.MaxTemplates; i++ {
		draft, err := store.NewDraft(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, draft))
	}

	d := NewTestDriver(t, store)
	d.PressKey('n')

	// No view pushed, error shown, store unchanged.
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.Output(), "maximum of 5 templates")
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxTemplates, n)
}

func TestTUI_DeleteTemplate(t *testing.T) {
	store := testStore(t)
	seedTemplate(t, store, "Doomed")
	d := NewTestDriver(t, store)

	require.Contains(t, d.View(), "Doomed")
	d.PressKey('d')

	assert.NotContains(t, d.View(), "Doomed")
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTUI_EditWizardRoundTrip(t *testing.T) {
	store := testStore(t)
	d := NewTestDriver(t, store)

	d.PressKey('n')
	d.PressEnter() // open template details wizard on the details row
	require.Equal(t, ViewWizard, d.ActiveViewID())

	// Cancel applies nothing.
	d.PressEsc()
	require.Equal(t, ViewBuilder, d.ActiveViewID())
	assert.Equal(t, "Template 1", d.BuilderDraft().Name)
}

func TestTUI_PreviewTemplate(t *testing.T) {
	store := testStore(t)
	seedTemplate(t, store, "Survey")
	d := NewTestDriver(t, store)

	d.PressKey('v')
	assert.Equal(t, ViewRenderer, d.ActiveViewID())
	assert.Contains(t, d.View(), "Survey")

	d.PressEsc()
	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
}

// TestTUI_FillAndSubmit is the end-to-end fill scenario: a required
// text field blocks an empty submit, then "Ada" goes through and the
// acknowledgment carries the captured value.
func TestTUI_FillAndSubmit(t *testing.T) {
	store := testStore(t)
	seedTemplate(t, store, "Survey")
	d := NewTestDriver(t, store)

	d.PressKey('v')
	require.Equal(t, ViewRenderer, d.ActiveViewID())

	// Empty submit: the form's required validation keeps us on the view.
	d.PressEnter()
	assert.Equal(t, ViewRenderer, d.ActiveViewID())

	d.Type("Ada")
	d.PressEnter()

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	assert.Contains(t, d.Output(), "Form submitted")
	assert.Contains(t, d.Output(), "Ada")
}

// TestTUI_SubmitRequiredEnum: a required enum field offers only its
// real options, so the preselected first option already satisfies the
// requirement and a plain submit records it.
func TestTUI_SubmitRequiredEnum(t *testing.T) {
	store := testStore(t)
	seedFieldTemplate(t, store, "Poll", domain.FieldEnum, true)
	d := NewTestDriver(t, store)

	d.PressKey('v')
	require.Equal(t, ViewRenderer, d.ActiveViewID())
	assert.NotContains(t, d.View(), "(no selection)")

	d.PressEnter()

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	assert.Contains(t, d.Output(), "Form submitted")
	assert.Contains(t, d.Output(), "New enum field:")
	assert.Contains(t, d.Output(), "Option 1")
}

// TestTUI_SubmitBoolean: a boolean answer always lands in the record
// with its explicit yes/no state, defaulting to no.
func TestTUI_SubmitBoolean(t *testing.T) {
	store := testStore(t)
	seedFieldTemplate(t, store, "Checks", domain.FieldBoolean, false)
	d := NewTestDriver(t, store)

	d.PressKey('v')
	require.Equal(t, ViewRenderer, d.ActiveViewID())

	d.PressEnter()

	assert.Equal(t, ViewTemplateList, d.ActiveViewID())
	assert.Contains(t, d.Output(), "Form submitted")
	assert.Contains(t, d.Output(), "New boolean field:")
	assert.Contains(t, d.Output(), "no")
}

// TestTUI_EmptyTemplateRenders: a template with no sections still
// produces a submittable form.
func TestTUI_EmptyTemplateRenders(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	draft, err := store.NewDraft(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, draft))

	d := NewTestDriver(t, store)
	d.PressKey('v')
	require.Equal(t, ViewRenderer, d.ActiveViewID())
	assert.Contains(t, d.View(), "no fields")
}
