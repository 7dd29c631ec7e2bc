package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/tableless/internal/model"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contact.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_Definition(t *testing.T) {
	path := writeTestConfig(t, `
model: contact
mode: pretend_success
columns:
  - name: name
    type: string
    nullable: false
  - name: age
    type: integer
  - name: subscribed
    type: boolean
    default: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "contact", cfg.Model)

	d, err := cfg.Definition()
	require.NoError(t, err)
	require.Equal(t, model.PretendSuccess, d.Mode())

	cols := d.Columns()
	require.Len(t, cols, 3)
	require.Equal(t, "name", cols[0].Name)
	require.False(t, cols[0].Nullable)
	require.Equal(t, "age", cols[1].Name)
	require.True(t, cols[1].Nullable)
	require.Equal(t, true, cols[2].Default)
}

func TestLoadConfig_ModeOmittedDefaultsFailFast(t *testing.T) {
	path := writeTestConfig(t, `
model: contact
columns:
  - name: name
    type: string
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	d, err := cfg.Definition()
	require.NoError(t, err)
	require.Equal(t, model.FailFast, d.Mode())
}

func TestLoadConfig_BadMode(t *testing.T) {
	path := writeTestConfig(t, `
model: contact
mode: occasionally
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	_, err = cfg.Definition()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid tableless mode")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfigDefinition_MatchesCodeBuiltDefinition(t *testing.T) {
	path := writeTestConfig(t, `
model: contact
mode: pretend_success
columns:
  - name: name
    type: string
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	fromFile, err := cfg.Definition()
	require.NoError(t, err)

	fromCode := model.NewDefinition("contact", model.WithMode(model.PretendSuccess))
	fromCode.AddColumn("name", "string")

	require.Equal(t, fromCode.Mode(), fromFile.Mode())
	require.Equal(t, fromCode.Name(), fromFile.Name())
	require.Equal(t, fromCode.Columns(), fromFile.Columns())
}
