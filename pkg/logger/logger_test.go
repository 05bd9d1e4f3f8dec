package logger

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init(Config{Level: "loud"}))
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")
	require.NoError(t, Init(Config{Level: "info", File: path}))

	Info("slot added", "id", "slot-1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slot added")
	assert.Contains(t, string(data), "slot-1")
}

func TestFatal_WritesAndExits(t *testing.T) {
	if path := os.Getenv("SHIFT_BOARD_FATAL_LOG"); path != "" {
		if err := Init(Config{Level: "info", File: path}); err != nil {
			os.Exit(2)
		}
		Fatal("could not run server", "err", "port in use")
		return
	}

	path := filepath.Join(t.TempDir(), "fatal.log")
	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_WritesAndExits$")
	cmd.Env = append(os.Environ(), "SHIFT_BOARD_FATAL_LOG="+path)
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "process should exit with an error, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "could not run server")
	assert.Contains(t, string(data), "port in use")
}
