package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestOptionsEncodeDecode(t *testing.T) {
	out, err := run(t, "options", "encode", "--gas", "200000")
	require.NoError(t, err)
	require.Equal(t, "0x00030100110100000000000000000000000000030d40", out)

	out, err = run(t, "options", "encode", "--gas", "1", "--drop", "5")
	require.NoError(t, err)

	decoded, err := run(t, "options", "decode", out)
	require.NoError(t, err)
	require.Equal(t, "gas=1 drop=5", decoded)

	_, err = run(t, "options", "encode", "--gas", "0")
	require.Error(t, err)

	_, err = run(t, "options", "encode", "--drop", "lots")
	require.Error(t, err)
}

func TestPayloadEncodeDecode(t *testing.T) {
	encoded, err := run(t, "payload", "encode", "Test message.")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "0x0000"))

	decoded, err := run(t, "payload", "decode", encoded)
	require.NoError(t, err)
	require.Equal(t, "Test message.", decoded)

	_, err = run(t, "payload", "decode", "0x1234")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("eid: 7\npeers:\n  - eid: 8\n    address: \"0x08\"\n"), 0o600))

	out, err := run(t, "config", "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "eid=7")
	require.Contains(t, out, "peers=1")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("eid: 0\n"), 0o600))
	_, err = run(t, "config", "validate", bad)
	require.Error(t, err)
}
