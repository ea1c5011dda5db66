package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abc123.csv")
	writeFile(t, path, "mov\npush\nmov\ncall\n")

	out, err := run(t, "sample", path, "--family", "zeus", "--log-level", "error")
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"family", "node", "node-weight"}, recs[0][:3])
	assert.Equal(t, []string{"zeus", "mov", "2"}, recs[1][:3])
}

func TestFamiliesCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zeus", "zeus.csv"), "zeus\ns1\n")
	writeFile(t, filepath.Join(root, "zeus", "s1.csv"), "mov\npush\n")
	writeFile(t, filepath.Join(root, "emotet", "emotet.csv"), "emotet\ne1\n")
	writeFile(t, filepath.Join(root, "emotet", "e1.csv"), "xor\nxor\n")

	outDir := t.TempDir()
	featuresPath := filepath.Join(outDir, "features.csv")
	metricsPath := filepath.Join(outDir, "opgraph.prom")
	_, err := run(t, "families",
		"--dataset", root,
		"--output", featuresPath,
		"--metrics-file", metricsPath,
		"--distances", filepath.Join(outDir, "distances"),
		"--workers", "2",
		"--log-level", "error",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(featuresPath)
	require.NoError(t, err)
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "emotet", recs[1][0])
	assert.Equal(t, "zeus", recs[3][0])

	assert.FileExists(t, metricsPath)
	assert.FileExists(t, filepath.Join(outDir, "distances", "distances_zeus.csv"))
}

func TestSamplesCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zeus", "zeus.csv"), "zeus\ns1\ns2\n")
	writeFile(t, filepath.Join(root, "zeus", "s1.csv"), "mov\npush\n")
	writeFile(t, filepath.Join(root, "zeus", "s2.csv"), "ret\n")

	outDir := t.TempDir()
	_, err := run(t, "samples", "--dataset", root, "--output", outDir, "--log-level", "error")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "zeus", "s1.csv"))
	assert.FileExists(t, filepath.Join(outDir, "zeus", "s2.csv"))
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "families", "--workers", "0", "--log-level", "error")
	assert.ErrorContains(t, err, "workers")

	_, err = run(t, "families", "--dataset", filepath.Join(t.TempDir(), "missing"), "--log-level", "error")
	assert.Error(t, err)
}
