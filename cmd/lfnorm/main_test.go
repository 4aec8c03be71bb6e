// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing %s", path)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

func TestRun(t *testing.T) {
	color.NoColor = true
	pterm.DisableColor()
	defer func() {
		color.NoColor = false
		pterm.EnableColor()
	}()

	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string) []string
		wantCode   int
		wantStdout []string
		wantStderr string
		validate   func(t *testing.T, dir string)
	}{
		{
			name: "converts_directory",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, filepath.Join(dir, "a.txt"), "line1\r\nline2\r\n")
				writeFile(t, filepath.Join(dir, "sub", "b.txt"), "b\r\n")
				return []string{dir}
			},
			wantCode:   0,
			wantStdout: []string{"Converting: a.txt"},
			validate: func(t *testing.T, dir string) {
				assert.Equal(t, "line1\nline2\n", readFile(t, filepath.Join(dir, "a.txt")))
				assert.Equal(t, "b\r\n", readFile(t, filepath.Join(dir, "sub", "b.txt")))
			},
		},
		{
			name: "no_arguments",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, filepath.Join(dir, "a.txt"), "a\r\n")
				return nil
			},
			wantCode:   1,
			wantStdout: []string{usageLine},
			validate: func(t *testing.T, dir string) {
				assert.Equal(t, "a\r\n", readFile(t, filepath.Join(dir, "a.txt")), "no file should be modified")
			},
		},
		{
			name: "too_many_arguments",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, filepath.Join(dir, "a.txt"), "a\r\n")
				return []string{dir, dir}
			},
			wantCode:   1,
			wantStdout: []string{usageLine},
			validate: func(t *testing.T, dir string) {
				assert.Equal(t, "a\r\n", readFile(t, filepath.Join(dir, "a.txt")), "no file should be modified")
			},
		},
		{
			name: "unknown_flag",
			setup: func(t *testing.T, dir string) []string {
				return []string{"--recursive", dir}
			},
			wantCode:   1,
			wantStdout: []string{usageLine},
		},
		{
			name: "missing_directory",
			setup: func(t *testing.T, dir string) []string {
				return []string{filepath.Join(dir, "nope")}
			},
			wantCode:   2,
			wantStderr: "listing directory",
		},
		{
			name: "binary_file",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, filepath.Join(dir, "img.png"), "\x89PNG\r\n")
				return []string{dir}
			},
			wantCode:   4,
			wantStdout: []string{"Converting: img.png"},
			wantStderr: "decode error",
		},
		{
			name: "exclude_flag",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, filepath.Join(dir, "img.png"), "\x89PNG\r\n")
				writeFile(t, filepath.Join(dir, "notes.txt"), "n\r\n")
				return []string{"--exclude", "*.png", dir}
			},
			wantCode:   0,
			wantStdout: []string{"Converting: notes.txt"},
			validate: func(t *testing.T, dir string) {
				assert.Equal(t, "\x89PNG\r\n", readFile(t, filepath.Join(dir, "img.png")))
				assert.Equal(t, "n\n", readFile(t, filepath.Join(dir, "notes.txt")))
			},
		},
		{
			name: "config_file",
			setup: func(t *testing.T, dir string) []string {
				cfgPath := filepath.Join(t.TempDir(), "lfnorm.yaml")
				writeFile(t, cfgPath, "exclude:\n  - \"*.png\"\n")
				writeFile(t, filepath.Join(dir, "img.png"), "\x89PNG\r\n")
				writeFile(t, filepath.Join(dir, "notes.txt"), "n\r\n")
				return []string{"-c", cfgPath, dir}
			},
			wantCode:   0,
			wantStdout: []string{"Converting: notes.txt"},
		},
		{
			name: "bad_config_file",
			setup: func(t *testing.T, dir string) []string {
				cfgPath := filepath.Join(t.TempDir(), "lfnorm.yaml")
				writeFile(t, cfgPath, "recursive: true\n")
				writeFile(t, filepath.Join(dir, "a.txt"), "a\r\n")
				return []string{"--config", cfgPath, dir}
			},
			wantCode:   5,
			wantStderr: "config error",
			validate: func(t *testing.T, dir string) {
				assert.Equal(t, "a\r\n", readFile(t, filepath.Join(dir, "a.txt")))
			},
		},
		{
			name: "bad_exclude_flag",
			setup: func(t *testing.T, dir string) []string {
				return []string{"-e", "[a-", dir}
			},
			wantCode:   5,
			wantStderr: "invalid glob",
		},
		{
			name: "empty_directory",
			setup: func(t *testing.T, dir string) []string {
				return []string{dir}
			},
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.setup(t, dir)
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := run(context.Background(), args, stdout, stderr)

			assert.Equal(t, tt.wantCode, code, "exit code should match, stderr: %s", stderr.String())

			var lines []string
			for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
				if line != "" {
					lines = append(lines, strings.Replace(line, dir+string(filepath.Separator), "", 1))
				}
			}
			assert.Equal(t, tt.wantStdout, lines, "stdout should match")

			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr, "stderr should contain expected message")
			}
			if tt.validate != nil {
				tt.validate(t, dir)
			}
		})
	}
}

func TestRun_RelativeFolder(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "folder", "a.txt"), "a\r\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	stdout := &bytes.Buffer{}
	code := run(context.Background(), []string{"folder"}, stdout, &bytes.Buffer{})

	require.Equal(t, 0, code)
	assert.Equal(t, "a\n", readFile(t, filepath.Join(root, "folder", "a.txt")))
	assert.True(t, strings.HasPrefix(stdout.String(), "Converting: "), "stdout: %q", stdout.String())
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stdout.String()), filepath.Join("folder", "a.txt")))
}

func TestRun_Version(t *testing.T) {
	stdout := &bytes.Buffer{}
	code := run(context.Background(), []string{"--version"}, stdout, &bytes.Buffer{})

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "lfnorm "), "stdout: %q", stdout.String())
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(&bytes.Buffer{}, &bytes.Buffer{})
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "lfnorm <folder_name>", cmd.Use, "command use should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}

func TestVersionInfo_String(t *testing.T) {
	v := &VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "0123456789abcdef",
		Modified:  true,
	}
	assert.Equal(t, "v1.2.3 (0123456789ab-dirty) go1.23.5 linux/amd64", v.String())

	v = &VersionInfo{Version: "dev", GoVersion: "go1.23.5", Platform: "darwin/arm64"}
	assert.Equal(t, "dev (unknown) go1.23.5 darwin/arm64", v.String())
}
