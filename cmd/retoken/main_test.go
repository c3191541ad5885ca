package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 chdir moves into dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRootCmd(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "components", "dashboard"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "components", "dashboard", "Sidebar.tsx"),
		[]byte(`<nav className="border-l-blue-600 bg-blue-50" />`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "components", "notes.md"),
		[]byte("bg-blue-600"), 0o644))
	chdir(t, dir)

	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Updated: ./components/dashboard/Sidebar.tsx\n\nTotal files updated: 1\n", stdout.String())

	got, err := os.ReadFile(filepath.Join(dir, "components", "dashboard", "Sidebar.tsx"))
	require.NoError(t, err)
	assert.Equal(t, `<nav className="border-l-green-600 bg-green-50" />`, string(got))

	notes, err := os.ReadFile(filepath.Join(dir, "components", "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "bg-blue-600", string(notes))
}

func TestRootCmd_StderrQuietUnlessDebug(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{name: "default", args: []string{}, wantDebug: false},
		{name: "debug", args: []string{"--debug"}, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "components"), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "components", "App.tsx"), []byte("bg-blue-600"), 0o644))
			chdir(t, dir)

			cmd := newRootCmd()
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, "Updated: ./components/App.tsx\n\nTotal files updated: 1\n", stdout.String())

			if tt.wantDebug {
				assert.Contains(t, stderr.String(), "file updated")
				assert.Contains(t, stderr.String(), "run complete")
			} else {
				assert.Empty(t, stderr.String(), "a clean run only writes the console lines")
			}
		})
	}
}

func TestRootCmd_MissingComponents(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading root ./components")
	assert.Empty(t, stdout.String())
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"src"})

	require.Error(t, cmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "retoken "), "first line names the binary")
	assert.Contains(t, lines[1], runtime.Version())
	assert.Equal(t, "table blue-to-green, 28 rules", lines[2])
}

func TestBuildInfoString(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "stamped",
			info: BuildInfo{
				Version:   "v1.2.3",
				Revision:  "abc123",
				Time:      "2025-01-01T00:00:00Z",
				Modified:  true,
				GoVersion: "go1.23.5",
				Platform:  "linux/amd64",
				Table:     "blue-to-green",
				Rules:     28,
			},
			want: "retoken v1.2.3 (abc123, modified)\n" +
				"built 2025-01-01T00:00:00Z with go1.23.5 for linux/amd64\n" +
				"table blue-to-green, 28 rules\n",
		},
		{
			name: "unstamped",
			info: BuildInfo{
				Version:   "dev",
				GoVersion: "go1.23.5",
				Platform:  "darwin/arm64",
				Table:     "blue-to-green",
				Rules:     28,
			},
			want: "retoken dev\n" +
				"built with go1.23.5 for darwin/arm64\n" +
				"table blue-to-green, 28 rules\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
