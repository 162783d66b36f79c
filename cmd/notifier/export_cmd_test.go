//go:build unit

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportCall struct {
	userID  uuid.UUID
	timeout time.Duration
}

func executeExport(t *testing.T, args ...string) ([]exportCall, error) {
	t.Helper()
	var calls []exportCall
	root := &cobra.Command{Use: "notifier", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(newExportCommandWith(func(_ context.Context, userID uuid.UUID, timeout time.Duration) error {
		calls = append(calls, exportCall{userID: userID, timeout: timeout})
		return nil
	}))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"export"}, args...))
	err := root.Execute()
	return calls, err
}

func TestExportCommand(t *testing.T) {
	userID := uuid.New()

	t.Run("success: runs once with the parsed user and default timeout", func(t *testing.T) {
		calls, err := executeExport(t, "--user", userID.String())

		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, userID, calls[0].userID)
		assert.Equal(t, time.Minute, calls[0].timeout)
	})

	t.Run("success: honours --timeout", func(t *testing.T) {
		calls, err := executeExport(t, "-u", userID.String(), "--timeout", "5s")

		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, 5*time.Second, calls[0].timeout)
	})

	t.Run("error: rejects bad input before running", func(t *testing.T) {
		testCases := []struct {
			name    string
			args    []string
			message string
		}{
			{name: "missing user", args: nil, message: `required flag(s) "user" not set`},
			{name: "malformed user", args: []string{"--user", "driver-1"}, message: "invalid --user"},
			{name: "zero timeout", args: []string{"--user", userID.String(), "--timeout", "0s"}, message: "invalid --timeout"},
			{name: "stray argument", args: []string{"--user", userID.String(), "extra"}, message: "unknown command"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				calls, err := executeExport(t, tc.args...)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
				assert.Empty(t, calls)
			})
		}
	})
}

func TestRootCommandRejectsUnknownSubcommand(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"purge"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
