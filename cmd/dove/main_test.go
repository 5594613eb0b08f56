package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dove"
	main "github.com/fwojciec/dove/cmd/dove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"build", "init"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "build")
		assert.Contains(t, stdout.String(), "init")
	})

	t.Run("no command is an error", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{}
		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--version"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Equal(t, "dove "+dove.Version+"\n", stdout.String())
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{Environ: []string{"DOVE_ICON_THREADS=many"}}
		err := m.Run(context.Background(), []string{"build"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, dove.EINVALID, dove.ErrorCode(err))
	})
}
