package builder

import (
	"testing"

	"github.com/formdeck/formdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftWithSection(t *testing.T) (domain.Template, string) {
	t.Helper()
	tpl := AddSection(domain.NewTemplate(0))
	require.Len(t, tpl.Sections, 1)
	return tpl, tpl.Sections[0].ID
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func stylePtr(s domain.LabelStyle) *domain.LabelStyle { return &s }

func TestAddSection_AutoNumbersTitles(t *testing.T) {
	tpl := domain.NewTemplate(0)
	tpl = AddSection(tpl)
	tpl = AddSection(tpl)

	require.Len(t, tpl.Sections, 2)
	assert.Equal(t, "Section 1", tpl.Sections[0].Title)
	assert.Equal(t, "Section 2", tpl.Sections[1].Title)
	assert.NotEqual(t, tpl.Sections[0].ID, tpl.Sections[1].ID)
}

func TestAddField_Defaults(t *testing.T) {
	tpl, secID := draftWithSection(t)

	tpl = AddField(tpl, secID, domain.FieldEnum)
	f := tpl.Sections[0].Fields[0]
	assert.Equal(t, "New enum field", f.Label)
	assert.False(t, f.Required)
	assert.Equal(t, []string{"Option 1", "Option 2"}, f.Options)

	tpl = AddField(tpl, secID, domain.FieldLabel)
	f = tpl.Sections[0].Fields[1]
	assert.Equal(t, "New label field", f.Label)
	assert.Equal(t, domain.StyleH2, f.LabelStyle)
	assert.Nil(t, f.Options)

	tpl = AddField(tpl, secID, domain.FieldText)
	f = tpl.Sections[0].Fields[2]
	assert.Equal(t, "New text field", f.Label)
	assert.Empty(t, f.Placeholder)
}

func TestAddField_UnknownSectionIsNoop(t *testing.T) {
	tpl, _ := draftWithSection(t)
	out := AddField(tpl, "missing", domain.FieldText)
	assert.Equal(t, 0, out.FieldCount())
}

func TestUpdateField_MergesPatch(t *testing.T) {
	tpl, secID := draftWithSection(t)
	tpl = AddField(tpl, secID, domain.FieldText)
	fieldID := tpl.Sections[0].Fields[0].ID

	tpl = UpdateField(tpl, secID, fieldID, FieldPatch{
		Label:       strPtr("Full Name"),
		Required:    boolPtr(true),
		Placeholder: strPtr("Jane Doe"),
	})

	f := tpl.Sections[0].Fields[0]
	assert.Equal(t, "Full Name", f.Label)
	assert.True(t, f.Required)
	assert.Equal(t, "Jane Doe", f.Placeholder)
	// Untouched attributes survive a later partial patch.
	tpl = UpdateField(tpl, secID, fieldID, FieldPatch{Required: boolPtr(false)})
	f = tpl.Sections[0].Fields[0]
	assert.Equal(t, "Full Name", f.Label)
	assert.False(t, f.Required)
}

func TestUpdateField_RejectsInvalidLabelStyle(t *testing.T) {
	tpl, secID := draftWithSection(t)
	tpl = AddField(tpl, secID, domain.FieldLabel)
	fieldID := tpl.Sections[0].Fields[0].ID

	tpl = UpdateField(tpl, secID, fieldID, FieldPatch{LabelStyle: stylePtr("h4")})
	assert.Equal(t, domain.StyleH2, tpl.Sections[0].Fields[0].LabelStyle)

	tpl = UpdateField(tpl, secID, fieldID, FieldPatch{LabelStyle: stylePtr(domain.StyleH1)})
	assert.Equal(t, domain.StyleH1, tpl.Sections[0].Fields[0].LabelStyle)
}

func TestUpdateField_UnknownTargetsAreNoops(t *testing.T) {
	tpl, secID := draftWithSection(t)
	tpl = AddField(tpl, secID, domain.FieldText)

	out := UpdateField(tpl, secID, "missing", FieldPatch{Label: strPtr("x")})
	assert.Equal(t, tpl.Sections[0].Fields[0].Label, out.Sections[0].Fields[0].Label)

	out = UpdateSection(tpl, "missing", SectionPatch{Title: strPtr("x")})
	assert.Equal(t, "Section 1", out.Sections[0].Title)
}

func TestDeleteSection_CascadesFields(t *testing.T) {
	tpl, secID := draftWithSection(t)
	tpl = AddField(tpl, secID, domain.FieldText)
	tpl = AddField(tpl, secID, domain.FieldBoolean)
	require.Equal(t, 2, tpl.FieldCount())

	tpl = DeleteSection(tpl, secID)
	assert.Empty(t, tpl.Sections)
	assert.Equal(t, 0, tpl.FieldCount())
}

func TestDeleteField(t *testing.T) {
	tpl, secID := draftWithSection(t)
	tpl = AddField(tpl, secID, domain.FieldText)
	tpl = AddField(tpl, secID, domain.FieldNumber)
	first := tpl.Sections[0].Fields[0].ID

	tpl = DeleteField(tpl, secID, first)
	require.Len(t, tpl.Sections[0].Fields, 1)
	assert.Equal(t, domain.FieldNumber, tpl.Sections[0].Fields[0].Type)

	// Unknown field id leaves the section untouched.
	tpl = DeleteField(tpl, secID, "missing")
	assert.Len(t, tpl.Sections[0].Fields, 1)
}

// TestOperations_NeverMutateInput is the cancel-correctness property: a
// builder session over a clone must leave the original byte-for-byte
// equal to its pre-edit value.
func TestOperations_NeverMutateInput(t *testing.T) {
	orig, secID := draftWithSection(t)
	orig = AddField(orig, secID, domain.FieldEnum)
	snapshot := orig.Clone()

	draft := orig
	draft = SetName(draft, "Renamed")
	draft = SetDescription(draft, "changed")
	draft = AddSection(draft)
	draft = UpdateSection(draft, secID, SectionPatch{Title: strPtr("Edited")})
	draft = UpdateField(draft, secID, draft.Sections[0].Fields[0].ID, FieldPatch{
		Options: &[]string{"A", "B"},
	})
	draft = DeleteSection(draft, secID)

	assert.Equal(t, snapshot, orig)
}

// TestIDUniqueness_AcrossOpSequences checks that any add/delete sequence
// keeps section and field ids unique within the document.
func TestIDUniqueness_AcrossOpSequences(t *testing.T) {
	tpl := domain.NewTemplate(0)
	for i := 0; i < 5; i++ {
		tpl = AddSection(tpl)
		secID := tpl.Sections[len(tpl.Sections)-1].ID
		for _, ft := range domain.AllFieldTypes {
			tpl = AddField(tpl, secID, ft)
		}
	}
	tpl = DeleteSection(tpl, tpl.Sections[0].ID)
	tpl = AddSection(tpl)

	seen := make(map[string]bool)
	for _, s := range tpl.Sections {
		require.False(t, seen[s.ID])
		seen[s.ID] = true
		for _, f := range s.Fields {
			require.False(t, seen[f.ID])
			seen[f.ID] = true
		}
	}
}

func TestParseOptions(t *testing.T) {
	assert.Equal(t, []string{"A", "B "}, ParseOptions("A\n\nB \n"))
	assert.Equal(t, []string{"A", "B"}, ParseOptions("A\n\nB"))
	assert.Nil(t, ParseOptions("\n  \n\t\n"))
	assert.Equal(t, []string{"dup", "dup"}, ParseOptions("dup\ndup"))
	assert.Equal(t, "A\nB", JoinOptions([]string{"A", "B"}))
}
