package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SEISCFG_CONFIG", "SEISCFG_LOG_LEVEL", "SEISCFG_NO_COLOR", "SEISCFG_DUMP", "SEISCFG_QUERY", "SEISCFG_STATUS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeConfig(t, dir, "cfg.json", `{"vp": 6000, "vs": 3500, "array": {"stations": ["A01", "A02"]}}`)
	bad := writeConfig(t, dir, "bad.json", `{not valid json`)
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{
			name:       "single valid file",
			args:       []string{"-no-color", good},
			wantCode:   exitOK,
			wantStdout: "✓ Configuration loaded from: " + good + "\n",
		},
		{
			name:       "missing file",
			args:       []string{"-no-color", missing},
			wantCode:   exitFailed,
			wantStdout: "✗ Configuration file not found: " + missing + "\n",
		},
		{
			name:     "mixed files",
			args:     []string{"-no-color", "-c", good, bad},
			wantCode: exitFailed,
			wantStdout: "✓ Configuration loaded from: " + good + "\n" +
				"✗ Error parsing JSON file: invalid character 'n' looking for beginning of object key string: line 1 column 2 (char 1)\n",
		},
		{
			name:       "query string value",
			args:       []string{"-no-color", "-q", "array.stations.1", good},
			wantCode:   exitOK,
			wantStdout: "✓ Configuration loaded from: " + good + "\nA02\n",
		},
		{
			name:       "query number value",
			args:       []string{"-no-color", "-q", "vp", good},
			wantCode:   exitOK,
			wantStdout: "✓ Configuration loaded from: " + good + "\n6000\n",
		},
		{
			name:       "query missing key",
			args:       []string{"-no-color", "-q", "rho", good},
			wantCode:   exitFailed,
			wantStdout: "✓ Configuration loaded from: " + good + "\n",
		},
		{
			name:     "dump",
			args:     []string{"-no-color", "-dump", good},
			wantCode: exitOK,
			wantStdout: "✓ Configuration loaded from: " + good + "\n" +
				"{\n  \"vp\": 6000,\n  \"vs\": 3500,\n  \"array\": {\n    \"stations\": [\n      \"A01\",\n      \"A02\"\n    ]\n  }\n}\n",
		},
		{
			name:     "no paths",
			args:     []string{"-no-color"},
			wantCode: exitInvalid,
		},
		{
			name:     "bad log level",
			args:     []string{"-log-level", "loud", good},
			wantCode: exitInvalid,
		},
		{
			name:       "status to log keeps stdout for dump",
			args:       []string{"-status", "log", "-q", "vs", good},
			wantCode:   exitOK,
			wantStdout: "3500\n",
		},
		{
			name:     "unknown status sink",
			args:     []string{"-status", "syslog", good},
			wantCode: exitInvalid,
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantCode: exitOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSettingsEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
		})
	}
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	clearSettingsEnv(t)
	p := writeConfig(t, t.TempDir(), "cfg.json", `{}`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-no-color", "-log-level", "debug", p}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "✓ Configuration loaded from: "+p+"\n", stdout.String())
	assert.Contains(t, stderr.String(), `"message":"configuration loaded"`)
	assert.Contains(t, stderr.String(), `"component":"loader"`)
}

func TestRun_PathsFromEnv(t *testing.T) {
	clearSettingsEnv(t)
	p := writeConfig(t, t.TempDir(), "env.json", `[1, 2]`)
	t.Setenv("SEISCFG_CONFIG", p)
	t.Setenv("SEISCFG_NO_COLOR", "true")
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "✓ Configuration loaded from: "+p+"\n", stdout.String())
}

func TestRun_StatusLinesToLog(t *testing.T) {
	clearSettingsEnv(t)
	dir := t.TempDir()
	good := writeConfig(t, dir, "cfg.json", `{"vp": 6000}`)
	missing := filepath.Join(dir, "missing.json")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-status", "log", good, missing}, &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `"component":"status"`)
	assert.Contains(t, stderr.String(), `"path":"`+good+`"`)
	assert.Contains(t, stderr.String(), `"level":"error"`)
	assert.Contains(t, stderr.String(), "Configuration loaded from: "+good)
	assert.Contains(t, stderr.String(), `"kind":"not_found"`)
	assert.Contains(t, stderr.String(), "Configuration file not found: "+missing)
}

func TestRun_FlagClearsEnvDump(t *testing.T) {
	clearSettingsEnv(t)
	p := writeConfig(t, t.TempDir(), "cfg.json", `{"vp": 6000}`)
	t.Setenv("SEISCFG_DUMP", "true")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-no-color", "-dump=false", p}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "✓ Configuration loaded from: "+p+"\n", stdout.String())
}
