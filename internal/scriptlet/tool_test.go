package scriptlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCommandInterpreters(t *testing.T) {
	name, args, err := ToolCommand("bash", "echo hi")
	require.NoError(t, err)
	assert.Equal(t, "bash", name)
	assert.Equal(t, []string{"-c", "echo hi"}, args)

	name, _, err = ToolCommand("py", "print(1)")
	require.NoError(t, err)
	assert.Equal(t, "python3", name)

	name, args, err = ToolCommand("node", "console.log(1)")
	require.NoError(t, err)
	assert.Equal(t, "node", name)
	assert.Equal(t, []string{"-e", "console.log(1)"}, args)
}

func TestToolCommandRejectsLauncherSideTools(t *testing.T) {
	for _, tool := range []string{"open", "paste", "type", "template", "bogus"} {
		_, _, err := ToolCommand(tool, "x")
		assert.Error(t, err, tool)
	}
}
