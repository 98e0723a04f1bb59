package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benjivesterby/go-fwint/fwint"
	"github.com/stretchr/testify/require"
)

// Run the application with the given arguments; return its standard and
// error outputs.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"fwint"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestPrimeCommand(t *testing.T) {
	t.Run("default test", func(t *testing.T) {
		out, _, err := run(t, "prime", "7919")
		require.NoError(t, err)
		require.Equal(t, "probably prime\n", out)

		out, _, err = run(t, "prime", "561")
		require.NoError(t, err)
		require.Equal(t, "composite\n", out)
	})

	t.Run("named tests", func(t *testing.T) {
		for _, name := range fwint.TestNames {
			out, _, err := run(t, "--seed", "x", "prime", "--test", name, "-c", "8", "1000003")
			require.NoError(t, err, name)
			require.Equal(t, "probably prime\n", out, name)
		}
	})

	t.Run("all tests", func(t *testing.T) {
		out, _, err := run(t, "--seed", "x", "prime", "--all", "1000003")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, len(fwint.TestNames))
		for i, name := range fwint.TestNames {
			require.Equal(t, name+": probably prime", lines[i])
		}
	})

	t.Run("radix", func(t *testing.T) {
		out, _, err := run(t, "--radix", "16", "prime", "1F")
		require.NoError(t, err)
		require.Equal(t, "probably prime\n", out)
	})

	t.Run("errors", func(t *testing.T) {
		_, _, err := run(t, "prime")
		require.Error(t, err)
		_, _, err = run(t, "prime", "12x")
		require.ErrorIs(t, err, fwint.ErrFormat)
		_, _, err = run(t, "prime", "--test", "aks", "7")
		require.ErrorIs(t, err, fwint.ErrInvalidArgument)
	})
}

func TestGenPrimeCommand(t *testing.T) {
	out, _, err := run(t, "--seed", "genprime", "genprime", "--bits", "128")
	require.NoError(t, err)
	p, err := fwint.Parse(strings.TrimSpace(out), 10)
	require.NoError(t, err)
	require.Equal(t, 128, p.BitLen())
	ok, err := p.IsProbablePrime()
	require.NoError(t, err)
	require.True(t, ok)

	// Same seed, same prime.
	out2, _, err := run(t, "--seed", "genprime", "genprime", "--bits", "128")
	require.NoError(t, err)
	require.Equal(t, out, out2)

	_, _, err = run(t, "genprime", "--bits", "1")
	require.ErrorIs(t, err, fwint.ErrInvalidArgument)
}

func TestKeyCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	out, logs, err := run(t, "--seed", "keys", "keygen", "--bits", "128", "--out", path)
	require.NoError(t, err)
	require.True(t, strings.Contains(logs, "key pair generated"))

	n, err := fwint.Parse(strings.TrimSpace(out), 10)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	kp, err := LoadKey(path)
	require.NoError(t, err)
	require.True(t, kp.Modulus().Equal(n))

	enc, _, err := run(t, "encrypt", "--key", path, "123456789")
	require.NoError(t, err)
	dec, _, err := run(t, "decrypt", "--key", path, strings.TrimSpace(enc))
	require.NoError(t, err)
	require.Equal(t, "123456789\n", dec)

	t.Run("key from environment", func(t *testing.T) {
		t.Setenv("FWINT_KEY_FILE", path)
		out, _, err := run(t, "decrypt", "1")
		require.NoError(t, err)
		require.Equal(t, "1\n", out)
	})

	t.Run("missing key", func(t *testing.T) {
		_, _, err := run(t, "encrypt", "--key", filepath.Join(t.TempDir(), "none.json"), "1")
		require.Error(t, err)
	})

	t.Run("value out of range", func(t *testing.T) {
		_, _, err := run(t, "encrypt", "--key", path, "-1")
		require.Error(t, err)
	})
}

func TestArithCommands(t *testing.T) {
	out, _, err := run(t, "modpow", "4", "13", "497")
	require.NoError(t, err)
	require.Equal(t, "445\n", out)

	out, _, err = run(t, "--radix", "16", "modpow", "4", "D", "1F1")
	require.NoError(t, err)
	require.Equal(t, "1BD\n", out)

	out, _, err = run(t, "jacobi", "5", "21")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	out, _, err = run(t, "jacobi", "2", "7")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	_, _, err = run(t, "jacobi", "2", "8")
	require.ErrorIs(t, err, fwint.ErrEvenModulus)

	_, _, err = run(t, "modpow", "4", "-1", "7")
	require.ErrorIs(t, err, fwint.ErrNegativeExponent)
}
