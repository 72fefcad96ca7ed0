package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/fman/internal/config"
	"github.com/Cyclone1070/fman/internal/logging"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/ui"
	"github.com/Cyclone1070/fman/internal/workflow"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// setupEnv isolates config, logs and env overrides under a temp HOME.
func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvMetricsAddr, "")
	t.Setenv(config.EnvLogFile, filepath.Join(home, "fman.log"))
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "fman")
	assert.Contains(t, out, "Directory:")
	assert.Contains(t, out, "Operations:")
	for _, name := range []string{"ls", "exec", "run", "version"} {
		assert.Contains(t, out, "  "+name)
	}
	assert.Contains(t, out, "--root")
}

func TestRootCommand_Version(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "invalid-command")

	assert.Error(t, err)
}

func TestRootCommand_StartsUIWithRoot(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	var gotRoot string
	var gotCfg *config.Config
	orig := runTUI
	runTUI = func(ctx context.Context, eng ui.Engine, cfg *config.Config) error {
		gotRoot, _ = eng.Root()
		gotCfg = cfg
		return nil
	}
	t.Cleanup(func() { runTUI = orig })

	_, err := execute(t, "--root", dir)

	require.NoError(t, err)
	assert.Equal(t, dir, gotRoot)
	require.NotNil(t, gotCfg)
}

func TestRootCommand_StartsUIDespiteBadRoot(t *testing.T) {
	setupEnv(t)
	missing := filepath.Join(t.TempDir(), "missing")

	var hasRoot bool
	var logs int
	orig := runTUI
	runTUI = func(ctx context.Context, eng ui.Engine, cfg *config.Config) error {
		_, hasRoot = eng.Root()
		logs = len(eng.AuditLog())
		return nil
	}
	t.Cleanup(func() { runTUI = orig })

	_, err := execute(t, "--root", missing)

	require.NoError(t, err)
	assert.False(t, hasRoot)
	assert.Equal(t, 1, logs)
}

func TestConfigFlag(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := execute(t, "ls", dir, "--config", filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("default root comes from the file", func(t *testing.T) {
		target := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(target, "a.txt"), nil, 0o644))
		cfgPath := filepath.Join(dir, "config.json")
		data, _ := json.Marshal(map[string]any{"engine": map[string]any{"default_root": target}})
		require.NoError(t, os.WriteFile(cfgPath, data, 0o644))

		out, err := execute(t, "ls", "--config", cfgPath)

		require.NoError(t, err)
		assert.Contains(t, out, "f  a.txt")
	})
}

func TestLogLevelFlag_Invalid(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "ls", t.TempDir(), "--log-level", "loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLs(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.log"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\n"), 0o644))

	out, err := execute(t, "ls", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "d  docs/\n")
	assert.Contains(t, out, "f  a.txt\n")
	assert.Contains(t, out, "f  build.log !\n")
	assert.Contains(t, out, "f  .gitignore\n")
}

func TestLs_UsesRootFlagAndEnv(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))

	out, err := execute(t, "ls", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")

	t.Setenv(config.EnvRoot, dir)
	out, err = execute(t, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
}

func TestLs_Empty(t *testing.T) {
	setupEnv(t)

	dir := t.TempDir()

	out, err := execute(t, "ls", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Directory is empty")

	out, err = execute(t, "ls", dir, "--json")
	require.NoError(t, err)
	var got snapshotJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, dir, got.Root)
	assert.Empty(t, got.Entries)
}

func TestLs_EmptyLogFileUsesDefault(t *testing.T) {
	setupEnv(t)
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv(config.EnvLogFile, "")

	_, err := execute(t, "ls", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "fman", "fman.log"), logging.DefaultFile())
	assert.FileExists(t, logging.DefaultFile())
}

func TestLs_JSON(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))

	out, err := execute(t, "ls", dir, "--json")

	require.NoError(t, err)
	var got snapshotJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, dir, got.Root)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, entryJSON{Name: "docs", Path: filepath.Join(dir, "docs"), Kind: "directory"}, got.Entries[0])
}

func TestLs_Errors(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "ls")
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = execute(t, "ls", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, directory.ErrNotFound)

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = execute(t, "ls", file)
	assert.ErrorIs(t, err, directory.ErrNotADirectory)
}

func TestExec_Success(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
		args  []string
		want  string
		check func(t *testing.T, dir string)
	}{
		{
			name: "create folder",
			args: []string{"create_folder", "reports"},
			want: "✓ Folder created: %s/reports",
			check: func(t *testing.T, dir string) {
				assert.DirExists(t, filepath.Join(dir, "reports"))
			},
		},
		{
			name: "create file with kebab name",
			args: []string{"create-file", "a.txt"},
			want: "✓ File created: %s/a.txt",
			check: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name: "rename file",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
			},
			args: []string{"rename_file", "a.txt", "b.txt"},
			want: "✓ File renamed from %[1]s/a.txt to %[1]s/b.txt",
			check: func(t *testing.T, dir string) {
				assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "b.txt"))
			},
		},
		{
			name: "delete folder",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "old", "nested"), 0o755))
			},
			args: []string{"delete_folder", "old"},
			want: "✓ Folder deleted: %s/old",
			check: func(t *testing.T, dir string) {
				assert.NoDirExists(t, filepath.Join(dir, "old"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			out, err := execute(t, append([]string{"exec", "--root", dir}, tt.args...)...)

			require.NoError(t, err)
			assert.Contains(t, out, fmt.Sprintf(tt.want, dir))
			tt.check(t, dir)
		})
	}
}

func TestExec_FilesystemFailure(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "exec", "--root", dir, "delete_file", "ghost.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "✗ Failed to delete file")
}

func TestExec_Rejected(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	t.Run("unknown command", func(t *testing.T) {
		_, err := execute(t, "exec", "--root", dir, "copy_file", "a")
		assert.ErrorIs(t, err, workflow.ErrUnknownCommand)
	})

	t.Run("rename needs two names", func(t *testing.T) {
		out, err := execute(t, "exec", "--root", dir, "rename_file", "a.txt")
		assert.ErrorIs(t, err, workflow.ErrWrongArity)
		assert.NotErrorIs(t, err, ErrReported)
		assert.Empty(t, out)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := execute(t, "exec", "--root", dir, "create_file", "  ")
		assert.ErrorIs(t, err, workflow.ErrEmptyInput)
	})

	t.Run("no root", func(t *testing.T) {
		_, err := execute(t, "exec", "create_file", "a")
		assert.ErrorIs(t, err, ErrNoRoot)
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExec_JSON(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "exec", "--root", dir, "--json", "create_file", "a.txt")

	require.NoError(t, err)
	var got execJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "create_file", got.Command)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, got.Paths)
	require.NotNil(t, got.Audit)
	assert.NotEmpty(t, got.Audit.ID)
	assert.Empty(t, got.Error)
}

func writePlan(t *testing.T, steps string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(steps), 0o644))
	return path
}

const failingPlan = `[
  {"command": "create_folder", "names": ["a"]},
  {"command": "delete_file", "names": ["ghost.txt"]},
  {"command": "create_file", "names": ["a/b.txt"]}
]`

func TestRun_StopsAtFirstFailure(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "run", "--root", dir, writePlan(t, failingPlan))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "1 succeeded, 1 failed, 1 skipped")
	assert.DirExists(t, filepath.Join(dir, "a"))
	assert.NoFileExists(t, filepath.Join(dir, "a", "b.txt"))
}

func TestRun_KeepGoing(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "run", "--root", dir, "--keep-going", writePlan(t, failingPlan))

	require.Error(t, err)
	assert.Contains(t, out, "2 succeeded, 1 failed, 0 skipped")
	assert.FileExists(t, filepath.Join(dir, "a", "b.txt"))
}

func TestRun_JSON(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	planPath := writePlan(t, `{"steps": [{"command": "create_file", "names": ["x.txt"]}]}`)

	out, err := execute(t, "run", "--root", dir, "--json", planPath)

	require.NoError(t, err)
	var got reportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Succeeded)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "create_file", got.Steps[0].Command)
	assert.Equal(t, "File created: "+filepath.Join(dir, "x.txt"), got.Steps[0].Message)
}

func TestRun_BadPlan(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	_, err := execute(t, "run", "--root", dir, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = execute(t, "run", "--root", dir, writePlan(t, `[{"command": "shred", "names": ["a"]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse plan")
}
