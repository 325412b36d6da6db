package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/sceneio"
)

const testScene = `
root: {width: 120, height: 60}
nodes:
  - name: row
    anchor: TopLeft
    size: 120px 60px
    container:
      layout: {kind: stack, direction: LeftToRight}
      padding: 10px
    children:
      - {name: a, size: 40px 20px}
      - {name: b, size: 40px 20px}
  - name: label
    anchor: BottomRight
    text: Hi
`

func writeScene(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { layout.SetLogger(nil) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolveText(t *testing.T) {
	path := writeScene(t, testScene)
	out, _, err := run(t, "solve", path, "--measurer", "none")
	require.NoError(t, err)

	assert.Contains(t, out, "NODE")
	assert.Contains(t, out, "row")
	// The stack shrinks the row to its content plus padding.
	assert.Contains(t, out, "100x40")
	assert.Contains(t, out, "  a")
}

func TestSolveYAML(t *testing.T) {
	path := writeScene(t, testScene)
	out, _, err := run(t, "solve", path, "--format", "yaml", "--measurer", "none")
	require.NoError(t, err)

	var results []sceneio.NodeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	assert.Equal(t, "row", results[0].Name)
	assert.Equal(t, [2]float64{50, 20}, results[0].Center)
	assert.Equal(t, "a", results[2].Name)
	assert.Equal(t, [2]float64{30, 20}, results[2].Center)
	assert.Equal(t, [2]float64{70, 20}, results[3].Center)
}

func TestSolveMeasuresLabels(t *testing.T) {
	path := writeScene(t, testScene)
	for _, m := range []string{"face", "shaping"} {
		t.Run(m, func(t *testing.T) {
			out, _, err := run(t, "solve", path, "-f", "yaml", "--measurer", m)
			require.NoError(t, err)

			var results []sceneio.NodeResult
			require.NoError(t, yaml.Unmarshal([]byte(out), &results))
			label := results[1]
			require.Equal(t, "label", label.Name)
			assert.Greater(t, label.Size[0], 0.0)
			assert.Greater(t, label.Size[1], 0.0)
		})
	}
}

func TestSolveMetricsAndLogging(t *testing.T) {
	path := writeScene(t, testScene)
	_, stderr, err := run(t, "solve", path, "--measurer", "none", "--metrics", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, "layout_passes_total 1")
	assert.Contains(t, stderr, `layout_placements_total{layout="stack"} 1`)
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestHit(t *testing.T) {
	path := writeScene(t, testScene)
	tests := []struct {
		x, y string
		want string
	}{
		{"30", "20", "a"},
		{"70", "25", "b"},
		{"5", "5", "row"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "hit", path, tt.x, tt.y, "--measurer", "none")
		require.NoError(t, err)
		assert.Equal(t, tt.want+"\n", out, "hit %s,%s", tt.x, tt.y)
	}

	_, _, err := run(t, "hit", path, "110", "50", "--measurer", "none")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no node at (110, 50)")

	_, _, err = run(t, "hit", path, "x", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid x")
}

func TestSolveErrors(t *testing.T) {
	path := writeScene(t, testScene)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read scene"},
		{"bad format", []string{"solve", path, "--format", "xml"}, "invalid --format"},
		{"bad measurer", []string{"solve", path, "--measurer", "ruler"}, "invalid --measurer"},
		{"bad log level", []string{"solve", path, "--log-level", "loud"}, "invalid --log-level"},
		{"no args", []string{"solve"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	bad := writeScene(t, "nodes: [{container: {layout: {kind: grid}}}]")
	_, _, err := run(t, "solve", bad)
	assert.ErrorIs(t, err, layout.ErrNoColumns)
}

func TestRender(t *testing.T) {
	path := writeScene(t, testScene)
	out := filepath.Join(t.TempDir(), "out.png")
	_, _, err := run(t, "render", path, "-o", out, "--measurer", "none", "--fill")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestRenderStdout(t *testing.T) {
	path := writeScene(t, testScene)
	stdout, _, err := run(t, "render", path, "-o", "-", "--measurer", "none")
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader([]byte(stdout)))
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^layoutctl version \S+\n$`, out)
}
