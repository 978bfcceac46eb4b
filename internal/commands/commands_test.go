// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fireodm/cli/internal/config"
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/internal/translate/dart"
	"github.com/fireodm/cli/internal/translate/gotypes"
	"github.com/fireodm/cli/internal/translate/markdown"
	"github.com/fireodm/cli/internal/translate/typescript"
	"github.com/fireodm/cli/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTranslators() translate.Register {
	reg := make(translate.Register)
	reg.Add(typescript.NewClientTranslator())
	reg.Add(typescript.NewAdminTranslator())
	reg.Add(&dart.Translator{})
	reg.Add(&gotypes.Translator{})
	reg.Add(&markdown.Translator{})
	return reg
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(testTranslators())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInit_NonInteractive(t *testing.T) {
	dir := inTempDir(t)

	_, err := execute(t, "init", "--non-interactive", "--targets", "typescript-client,go", "--go-package", "store")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "fireodm.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "firestore.schema.json", cfg.Schema)
	require.Len(t, cfg.Outputs, 2)
	assert.Equal(t, "generated/typescript-client", cfg.Outputs[0].Path)
	assert.Equal(t, "store", cfg.Outputs[1].Options["package"])
	assert.FileExists(t, filepath.Join(dir, "firestore.schema.json"))
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "targets required",
			args:    []string{"init", "--non-interactive"},
			wantErr: "non-interactive mode requires --targets",
		},
		{
			name:    "unknown target",
			args:    []string{"init", "--non-interactive", "--targets", "kotlin"},
			wantErr: "unknown target: kotlin",
		},
		{
			name:    "unknown format",
			args:    []string{"init", "--non-interactive", "--targets", "go", "--format", "toml"},
			wantErr: `unsupported format "toml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestInit_AlreadyInitialized(t *testing.T) {
	inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "go")
	require.NoError(t, err)

	_, err = execute(t, "init", "--non-interactive", "--targets", "go")
	assert.ErrorContains(t, err, "already initialized")
}

func TestGenerate(t *testing.T) {
	dir := inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "typescript-client,dart-client,go", "--format", "yaml")
	require.NoError(t, err)

	_, err = execute(t, "generate", "--dry-run")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "generated"))

	_, err = execute(t, "generate", "--target", "dart-client")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "generated", "dart-client", "models.dart"))
	assert.NoDirExists(t, filepath.Join(dir, "generated", "go"))

	_, err = execute(t, "generate")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "generated", "typescript-client", "models.ts"))
	assert.FileExists(t, filepath.Join(dir, "generated", "typescript-client", "base.ts"))
	assert.FileExists(t, filepath.Join(dir, "generated", "go", "models.go"))
}

func TestGenerate_UnconfiguredTarget(t *testing.T) {
	inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "go")
	require.NoError(t, err)

	_, err = execute(t, "generate", "--target", "dart-client")
	assert.ErrorContains(t, err, `no outputs configured for target "dart-client"`)
}

func TestValidate(t *testing.T) {
	dir := inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "go")
	require.NoError(t, err)

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Collections: 1")
	assert.Contains(t, out, "Fields: 2")
	assert.Contains(t, out, "firestore.schema.json is valid")

	broken := `{"schemaVersion": "1.0.0", "collections": {"users": {"fields": {"a.b": {"type": "string"}}}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "firestore.schema.json"), []byte(broken), 0o600))

	out, err = execute(t, "validate")
	assert.ErrorIs(t, err, validate.ErrSemantic)
	assert.Contains(t, out, "[field-name]")
}

func TestDescribe_JSON(t *testing.T) {
	inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "dart-client")
	require.NoError(t, err)

	out, err := execute(t, "describe", "users", "--target", "dart-client", "-o", "json")
	require.NoError(t, err)

	var view struct {
		Model  string `json:"model"`
		Fields []struct {
			Name      string            `json:"name"`
			Type      string            `json:"type"`
			Operators map[string]string `json:"operators"`
		} `json:"fields"`
		Updates []struct {
			Path string `json:"path"`
		} `json:"updates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "UsersData", view.Model)
	require.Len(t, view.Fields, 2)
	assert.Equal(t, "createdAt", view.Fields[0].Name)
	assert.Equal(t, "Timestamp", view.Fields[0].Type)
	assert.Equal(t, "List<String>", view.Fields[1].Operators["in"])
	assert.Len(t, view.Updates, 2)
}

func TestDescribe_Text(t *testing.T) {
	inTempDir(t)
	_, err := execute(t, "init", "--non-interactive", "--targets", "go")
	require.NoError(t, err)

	out, err := execute(t, "describe", "users", "--target", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Model:       UsersData (go)")
	assert.Contains(t, out, "  - name: string (required)")
}

func TestTargets(t *testing.T) {
	out, err := execute(t, "targets")
	require.NoError(t, err)
	assert.Equal(t, "dart-client\ngo\nmarkdown\ntypescript-admin\ntypescript-client\n", out)
}
