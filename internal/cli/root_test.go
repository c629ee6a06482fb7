package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	app := &App{Store: testStore(t)}
	root := NewRootCmd(app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "formdeck")
	assert.Contains(t, out.String(), Version)
}

func TestRootCmd_RefusesNonInteractiveTerminal(t *testing.T) {
	app := &App{
		Store:         testStore(t),
		IsInteractive: func() bool { return false },
	}
	root := NewRootCmd(app)
	root.SetArgs(nil)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
