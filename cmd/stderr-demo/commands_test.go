package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/stderr"
)

// execute runs the root command with args and returns what it wrote to
// stderr. Mode variables are cleared so the host environment cannot leak in.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{stderr.EnvQuiet, stderr.EnvDebug, stderr.EnvDev, stderr.EnvTrace, stderr.EnvSilly} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	var errOut, out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetErr(&errOut)
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--width", "80"}, args...))
	err := cmd.Execute()
	return errOut.String(), err
}

func TestLogCommand(t *testing.T) {
	got, err := execute(t, "", "log", "warn", "disk", "almost", "full")
	require.NoError(t, err)
	assert.Equal(t, "[△] disk almost full\n", got)
}

func TestLogCommandLabelAndQuiet(t *testing.T) {
	got, err := execute(t, "", "--label", "svc", "--quiet", "log", "info", "hidden")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = execute(t, "", "--label", "svc", "--quiet", "log", "error", "shown")
	require.NoError(t, err)
	assert.Equal(t, "[svc][✕] shown\n", got)
}

func TestLogCommandUnknownLevel(t *testing.T) {
	_, err := execute(t, "", "log", "loud", "x")
	require.ErrorIs(t, err, stderr.ErrUnknownLevel)
	assert.Contains(t, err.Error(), `unknown level: "loud"`)
}

func TestBoxCommand(t *testing.T) {
	got, err := execute(t, "", "box", "--style", "heavy", "hello", "hi")
	require.NoError(t, err)
	want := "┏━━━━━━━┓\n" +
		"┃ hello ┃\n" +
		"┃ hi    ┃\n" +
		"┗━━━━━━━┛\n"
	assert.Equal(t, want, got)
}

func TestBannerCommand(t *testing.T) {
	got, err := execute(t, "", "--width", "12", "banner", "--fill", "-", "go")
	require.NoError(t, err)
	assert.Equal(t, "---- go ----\n", got)

	_, err = execute(t, "", "banner", "--fill", "ab", "go")
	require.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	got, err := execute(t, "", "table", "--sep", "|", "Key|Value", "a|1", "bb|22")
	require.NoError(t, err)
	want := "Key  Value\n" +
		"---  -----\n" +
		"a    1\n" +
		"bb   22\n"
	assert.Equal(t, want, got)
}

func TestColumnsCommand(t *testing.T) {
	got, err := execute(t, "", "columns", "-n", "3", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "a  b  c\nd\n", got)
}

func TestFlagsCommand(t *testing.T) {
	got, err := execute(t, "", "flags", "0b1_01", "A", "B", "C")
	require.NoError(t, err)
	assert.Contains(t, got, "   │ 1  │ 0  │ 1  │\n")
	assert.Contains(t, got, "   │ C  │ B  │ A  │\n")

	_, err = execute(t, "", "flags", "0xZZ", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mask")
}

func TestTraceCommand(t *testing.T) {
	got, err := execute(t, "", "trace")
	require.NoError(t, err)
	assert.Equal(t, "[✓] trace demo complete\n", got)

	got, err = execute(t, "", "--trace", "trace")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(got, "λ┄┄┄["))
	assert.Contains(t, got, "[validate_database_url]")
	assert.Contains(t, got, "\t└┄┄[ ✻ ] 3 cached entries\n")
	assert.Equal(t, 2, strings.Count(got, "exiting"))
}

func TestContextCommand(t *testing.T) {
	got, err := execute(t, "", "context", "build", "build", "deploy")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "Context: build"))
	assert.Equal(t, 1, strings.Count(got, "Context: deploy"))
	assert.Equal(t, 3, strings.Count(got, "[λ] working in "))
}

func TestConfirmCommand(t *testing.T) {
	tests := map[string]struct {
		input string
		want  error
	}{
		"yes":  {input: "y\n", want: nil},
		"no":   {input: "n\n", want: exitCode(1)},
		"quit": {input: "q\n", want: exitCode(2)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.input, "confirm", "--boxed", "Proceed?")
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestLogFileMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	_, err := execute(t, "", "--log-file", path, "--quiet", "log", "okay", "mirrored")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"mirrored"`)
	assert.Contains(t, string(data), `"level_name":"okay"`)
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quiet: true\n"), 0o600))

	got, err := execute(t, "", "--config", path, "log", "info", "hidden")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = execute(t, "", "--config", path, "--quiet=false", "log", "info", "shown")
	require.NoError(t, err)
	assert.Equal(t, "[λ] shown\n", got)
}
