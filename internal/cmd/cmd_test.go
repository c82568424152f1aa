package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/testutil"
)

// runCommand executes the CLI with the given args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestInitCmd(t *testing.T) {
	t.Run("creates starter config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")

		out, err := runCommand(t, "-c", path, "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file created")

		content := testutil.ReadFile(t, path)
		assert.Contains(t, content, "plugconf starter configuration")
		assert.Contains(t, content, "prefix:")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", "a: 1\n")

		_, err := runCommand(t, "-c", path, "init")
		require.Error(t, err)
		assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))

		_, err = runCommand(t, "-c", path, "init", "--force")
		require.NoError(t, err)
	})
}

func TestGetCmd(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yml", `
server:
  name: lobby
  port: 25565
`)

	t.Run("prints a scalar", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "get", "server.name")
		require.NoError(t, err)
		assert.Equal(t, "lobby\n", out)
	})

	t.Run("prints the whole tree without a key", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "get")
		require.NoError(t, err)
		assert.Contains(t, out, "name: lobby")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "get", "server", "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"lobby","port":25565}`, out)
	})

	t.Run("missing key exits not found", func(t *testing.T) {
		_, err := runCommand(t, "-c", path, "get", "server.motd")
		require.Error(t, err)
		assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
	})
}

func TestRenderCmd(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yml", `
prefix:
  enabled: true
  prefix: "&6Example &8> &r"
messages:
  welcome: "&aWelcome, {0}!"
  goodbye: "See you, %playerName."
  motd:
    - "&6Line one"
    - "Line two {0}"
`)

	t.Run("indexed placeholders with prefix", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "render", "messages.welcome", "Steve", "--raw")
		require.NoError(t, err)
		assert.Equal(t, "Example > Welcome, Steve!\n", out)
	})

	t.Run("no-prefix skips the prefix", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "render", "messages.welcome", "Steve", "--raw", "--no-prefix")
		require.NoError(t, err)
		assert.Equal(t, "Welcome, Steve!\n", out)
	})

	t.Run("named tokens", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "render", "messages.goodbye",
			"--var", "playerName=Steve", "--raw")
		require.NoError(t, err)
		assert.Equal(t, "Example > See you, Steve.\n", out)
	})

	t.Run("list renders one line per element", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "render", "messages.motd", "B", "--raw")
		require.NoError(t, err)
		assert.Equal(t, "Line one\nLine two B\n", out)
	})

	t.Run("invalid var flag", func(t *testing.T) {
		_, err := runCommand(t, "-c", path, "render", "messages.goodbye", "--var", "broken")
		assert.Error(t, err)
	})
}

func TestTidyCmd(t *testing.T) {
	t.Run("dedupes and saves", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", `
whitelist:
  players: [alice, bob, alice, carol, bob]
`)

		out, err := runCommand(t, "-c", path, "tidy")
		require.NoError(t, err)
		assert.Contains(t, out, "whitelist.players")
		assert.Contains(t, out, "-2 duplicate(s)")

		saved := testutil.ReadFile(t, path)
		assert.Contains(t, saved, "alice")
		assert.Equal(t, 1, strings.Count(saved, "alice"))
	})

	t.Run("dry run leaves the file alone", func(t *testing.T) {
		content := "players: [a, a]\n"
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", content)

		out, err := runCommand(t, "-c", path, "tidy", "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "dry run")
		assert.Equal(t, content, testutil.ReadFile(t, path))
	})

	t.Run("clean config reports nothing to tidy", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", "players: [a, b]\n")

		out, err := runCommand(t, "-c", path, "tidy")
		require.NoError(t, err)
		assert.Contains(t, out, "nothing to tidy")
	})
}

func TestVetCmd(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", "server: {port: 25565}\n")

		out, err := runCommand(t, "-c", path, "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "valid")
	})

	t.Run("schema violation exits with validation code", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yml", "server: {port: -1}\n")
		schema := testutil.WriteFile(t, dir, "schema.cue", "server?: port?: int & >0\n")

		_, err := runCommand(t, "-c", path, "vet", "--schema", schema)
		require.Error(t, err)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})

	t.Run("unparsable config", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yml", ":\n  - broken: [\n")
		_, err := runCommand(t, "-c", path, "vet")
		assert.Error(t, err)
	})
}

func TestDiffCmd(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yml", "server: {name: lobby}\n")
	b := testutil.WriteFile(t, dir, "b.yml", "server: {name: arena}\n")

	t.Run("identical", func(t *testing.T) {
		out, err := runCommand(t, "diff", a, a)
		require.NoError(t, err)
		assert.Contains(t, out, "no differences")
	})

	t.Run("changed", func(t *testing.T) {
		out, err := runCommand(t, "diff", a, b)
		require.NoError(t, err)
		assert.Contains(t, out, "1 difference")
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "plugconf")
}
