package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	err = Init()
	require.NoError(t, err)
	assert.NotNil(t, Logger)

	// Log file should exist after init
	_, err = os.Stat(LogFileName)
	assert.NoError(t, err)

	assert.NoError(t, Sync())
}

func TestWithComponent(t *testing.T) {
	t.Run("Nil logger", func(t *testing.T) {
		old := Logger
		Logger = nil
		t.Cleanup(func() { Logger = old })
		assert.Nil(t, WithComponent("test"))
	})
}
