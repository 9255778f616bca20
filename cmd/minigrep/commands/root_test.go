package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonemaro/minigrep/internal/version"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, files map[string]string, args ...string) result {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(memFs, path, []byte(content), 0644))
	}

	var stdout, stderr bytes.Buffer
	code := Execute(append([]string{"minigrep"}, args...), Options{
		Fs:     memFs,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestExecute(t *testing.T) {
	files := map[string]string{
		"poem.txt":  poem,
		"greek.txt": "alpha\nbeta\ngamma\n",
		"empty.txt": "",
		"dash.txt":  "-x marks\nno mark\n",
		"flags.txt": "use -v for more\nsee --help\nprint --version\n",
	}

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{
			name:   "case sensitive hit",
			args:   []string{"duct", "poem.txt", "true"},
			code:   0,
			stdout: "safe, fast, productive.\n",
			stderr: "Searching for duct in file poem.txt\n",
		},
		{
			name:   "case insensitive hit",
			args:   []string{"rUsT", "poem.txt", "false"},
			code:   0,
			stdout: "Rust:\n",
			stderr: "Searching for rUsT in file poem.txt\n",
		},
		{
			name:   "matches keep file order",
			args:   []string{"a", "greek.txt", "true"},
			code:   0,
			stdout: "alpha\nbeta\ngamma\n",
			stderr: "Searching for a in file greek.txt\n",
		},
		{
			name:   "no match",
			args:   []string{"zzz", "poem.txt", "true"},
			code:   0,
			stdout: "",
			stderr: "Searching for zzz in file poem.txt\n",
		},
		{
			name:   "empty file",
			args:   []string{"a", "empty.txt", "true"},
			code:   0,
			stdout: "",
			stderr: "Searching for a in file empty.txt\n",
		},
		{
			name:   "two user arguments",
			args:   []string{"duct", "poem.txt"},
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: Not enough arguments\n",
		},
		{
			name:   "no user arguments",
			args:   nil,
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: Not enough arguments\n",
		},
		{
			name:   "bad boolean",
			args:   []string{"duct", "poem.txt", "yes"},
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: Failed to parse bool\n",
		},
		{
			name:   "unknown flag",
			args:   []string{"--bogus", "duct", "poem.txt", "true"},
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: unknown flag: --bogus\n",
		},
		{
			name:   "dash query after double dash",
			args:   []string{"--", "-x", "dash.txt", "true"},
			code:   0,
			stdout: "-x marks\n",
			stderr: "Searching for -x in file dash.txt\n",
		},
		{
			name:   "dash query without double dash",
			args:   []string{"-x", "dash.txt", "true"},
			code:   0,
			stdout: "-x marks\n",
			stderr: "Searching for -x in file dash.txt\n",
		},
		{
			name:   "verbose flag spelling as query",
			args:   []string{"-v", "flags.txt", "true"},
			code:   0,
			stdout: "use -v for more\n",
			stderr: "Searching for -v in file flags.txt\n",
		},
		{
			name:   "help flag spelling as query",
			args:   []string{"--help", "flags.txt", "true"},
			code:   0,
			stdout: "see --help\n",
			stderr: "Searching for --help in file flags.txt\n",
		},
		{
			name:   "short help spelling as query",
			args:   []string{"-h", "flags.txt", "false"},
			code:   0,
			stdout: "see --help\n",
			stderr: "Searching for -h in file flags.txt\n",
		},
		{
			name:   "version spelling as query",
			args:   []string{"--version", "flags.txt", "true"},
			code:   0,
			stdout: "print --version\n",
			stderr: "Searching for --version in file flags.txt\n",
		},
		{
			name:   "help alone is not enough arguments",
			args:   []string{"--help"},
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: Not enough arguments\n",
		},
		{
			name:   "two flag-like arguments are not enough",
			args:   []string{"-v", "flags.txt"},
			code:   1,
			stdout: "",
			stderr: "Problem parsing arguments: Not enough arguments\n",
		},
		{
			name:   "flag in front of a dash query",
			args:   []string{"--buffer-size", "128", "-v", "flags.txt", "true"},
			code:   0,
			stdout: "use -v for more\n",
			stderr: "Searching for -v in file flags.txt\n",
		},
		{
			name:   "flag-like arguments after the query are positional",
			args:   []string{"mark", "dash.txt", "true", "--bogus"},
			code:   0,
			stdout: "-x marks\nno mark\n",
			stderr: "Searching for mark in file dash.txt\n",
		},
		{
			name:   "query named like a command",
			args:   []string{"version", "poem.txt", "true"},
			code:   0,
			stdout: "",
			stderr: "Searching for version in file poem.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runWith(t, files, tt.args...)

			assert.Equal(t, tt.code, res.code)
			assert.Equal(t, tt.stdout, res.stdout)
			assert.Equal(t, tt.stderr, res.stderr)
		})
	}
}

func TestExecuteMissingFile(t *testing.T) {
	res := runWith(t, nil, "duct", "missing.txt", "true")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)

	lines := strings.Split(strings.TrimSuffix(res.stderr, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Searching for duct in file missing.txt", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Application error: "), lines[1])
	assert.Contains(t, lines[1], "missing.txt")
}

func TestExecuteInvalidUTF8(t *testing.T) {
	res := runWith(t, map[string]string{"bin.dat": "\xff\xfe"}, "a", "bin.dat", "false")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Application error: stream did not contain valid UTF-8")
}

func TestExecuteIsIdempotent(t *testing.T) {
	files := map[string]string{"poem.txt": poem}

	first := runWith(t, files, "t", "poem.txt", "false")
	second := runWith(t, files, "t", "poem.txt", "false")

	assert.Equal(t, 0, first.code)
	assert.Equal(t, first.stdout, second.stdout)
}

func TestExecuteHelpBeforePositionals(t *testing.T) {
	res := runWith(t, map[string]string{"poem.txt": poem}, "--help", "duct", "poem.txt", "true")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--buffer-size")
	assert.NotContains(t, res.stdout, "safe, fast, productive.")
	assert.Empty(t, res.stderr)
}

func TestExecuteVerboseLogsToStderr(t *testing.T) {
	res := runWith(t, map[string]string{"poem.txt": poem}, "-v", "duct", "poem.txt", "true")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "safe, fast, productive.\n", res.stdout)
	assert.Contains(t, res.stderr, "Searching for duct in file poem.txt\n")
	assert.Contains(t, res.stderr, `"message":"Search completed"`)
}

func TestExecuteLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "minigrep.log")

	res := runWith(t, map[string]string{"poem.txt": poem},
		"-vv", "--log-file", logPath, "duct", "poem.txt", "true")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Searching for duct in file poem.txt\n", res.stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Starting search"`)
	assert.Contains(t, string(data), `"version":"`+version.Version+`"`)
}

func TestExecuteBadBufferSize(t *testing.T) {
	res := runWith(t, map[string]string{"poem.txt": poem}, "--buffer-size", "8", "duct", "poem.txt", "true")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Problem parsing arguments: buffer size must be at least 64 bytes\n", res.stderr)
}

func TestExecuteDefaultsProgramName(t *testing.T) {
	var stderr bytes.Buffer
	code := Execute(nil, Options{Fs: afero.NewMemMapFs(), Stdout: &bytes.Buffer{}, Stderr: &stderr})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Problem parsing arguments: Not enough arguments\n", stderr.String())
}
