package layerlens

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()

	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := runCommand(t, "decode", "0x0004", "MO(3)", "Enter")
	require.NoError(t, err)

	assert.Contains(t, out, "0x0004")
	assert.Contains(t, out, "0x5223")
	assert.Contains(t, out, "MO(3)")
	assert.Contains(t, out, "0x0028")
}

func TestDecodeCommandRejectsGarbage(t *testing.T) {
	_, err := runCommand(t, "decode", "not-a-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-key")
}

func TestLayoutsCommand(t *testing.T) {
	out, err := runCommand(t, "layouts", "../../layout/testdata/split_3x6.json")
	require.NoError(t, err)

	assert.Contains(t, out, "4653:0001")
	assert.Contains(t, out, "4x3 matrix")
	assert.Contains(t, out, "LAYOUT_split (5 keys)")
	assert.Contains(t, out, "LAYOUT -> LAYOUT_split")
}

func TestStatsCommandNeedsHistory(t *testing.T) {
	statsHistory = ""

	_, err := runCommand(t, "stats")
	require.Error(t, err)
}
