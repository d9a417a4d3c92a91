package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `
version: 1
types:
  - name: acme.ClusteringBase
  - name: acme.Clustering
    extends: acme.ClusteringBase
dedicated:
  - component: acme.Clustering
    attribute: threshold
    factory: numeric.slider
editors:
  - type: core.Double
    constraints: [range]
    quantifier: all
    factory: numeric.range
  - type: core.Double
    factory: numeric.plain
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attrkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()
	return buf.String(), err
}

func TestCheckCommand_Valid(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "check", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "1 dedicated registration(s)")
	assert.Contains(t, out, "2 type editor(s)")
}

func TestCheckCommand_InvalidFile(t *testing.T) {
	path := writeRegistry(t, "types:\n  - name: a.A\n  - name: a.A\n")

	out, err := execute(t, "check", "-r", path)
	require.Error(t, err)
	assert.Contains(t, out, "declared twice")
}

func TestCheckCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "check", "-r", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInspectRegistrations_Table(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "inspect", "registrations", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Dedicated (1):")
	assert.Contains(t, out, "acme.Clustering")
	assert.Contains(t, out, "threshold")
	assert.Contains(t, out, "Type editors (2):")
	assert.Contains(t, out, "{range}")
}

func TestInspectRegistrations_JSON(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "inspect", "registrations", "-r", path, "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Source    string `json:"source"`
		Dedicated []struct {
			ComponentType string `json:"component_type"`
			AttributeKey  string `json:"attribute_key"`
		} `json:"dedicated"`
		Editors []struct {
			ValueType   string   `json:"value_type"`
			Constraints []string `json:"constraints"`
			Quantifier  string   `json:"quantifier"`
		} `json:"editors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, path, payload.Source)
	require.Len(t, payload.Dedicated, 1)
	assert.Equal(t, "acme.Clustering", payload.Dedicated[0].ComponentType)
	require.Len(t, payload.Editors, 2)
	assert.Equal(t, []string{"range"}, payload.Editors[0].Constraints)
	assert.Equal(t, "all", payload.Editors[0].Quantifier)
}

func TestInspectTypes(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "inspect", "types", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "acme.Clustering")
	assert.Contains(t, out, "acme.ClusteringBase")
}

func TestResolveCommand_DedicatedWins(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "resolve", "acme.Clustering", "threshold",
		"-r", path, "--type", "core.Double", "--constraint", "range")
	require.NoError(t, err)
	assert.Contains(t, out, "dedicated editor for acme.Clustering.threshold")
}

func TestResolveCommand_TypeEditor(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "resolve", "acme.Clustering", "cutoff",
		"-r", path, "--type", "core.Double", "--constraint", "range")
	require.NoError(t, err)
	assert.Contains(t, out, "type editor for core.Double")
	assert.Contains(t, out, "{range}")
	assert.Contains(t, out, "all")
}

func TestResolveCommand_NotFound(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "resolve", "acme.Clustering", "name",
		"-r", path, "--type", "core.Integer")
	require.Error(t, err)
	assert.Contains(t, out, "no suitable editor")
}

func TestResolveCommand_JSON(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "resolve", "acme.Clustering", "cutoff",
		"-r", path, "--type", "core.Double", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Kind string `json:"kind"`
		Type struct {
			ValueType string `json:"value_type"`
		} `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "type", payload.Kind)
	assert.Equal(t, "core.Double", payload.Type.ValueType)
}

func TestResolveCommand_JSONNotFound(t *testing.T) {
	path := writeRegistry(t, testRegistry)

	out, err := execute(t, "resolve", "acme.Clustering", "name",
		"-r", path, "--type", "core.Integer", "--format", "json")
	require.Error(t, err)

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload.Error, "no suitable editor")
}

func TestNewCommand_Scaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")

	out, err := execute(t, "new", path,
		"--component", "acme.Clustering", "--base", "acme.ClusteringBase", "--attribute", "threshold")
	require.NoError(t, err)
	assert.Contains(t, out, "created "+path)

	// The scaffold must pass its own validation.
	out, err = execute(t, "check", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "AttrKit version:")
}
