package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/littlekai/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "No arguments uses the built-in menu",
			args: nil,
			expectedConfig: &app.Config{
				LogLevel:  "warn",
				LogFormat: "text",
			},
		},
		{
			name: "Happy path with all flags",
			args: []string{
				"-menu", "/menus/kai.hcl",
				"--itemize",
				"--log-level=DEBUG",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				MenuPath:  "/menus/kai.hcl",
				Itemize:   true,
				LogLevel:  "debug",
				LogFormat: "json",
			},
		},
		{
			name: "Shorthand flag",
			args: []string{"-m", "/short"},
			expectedConfig: &app.Config{
				MenuPath:  "/short",
				LogLevel:  "warn",
				LogFormat: "text",
			},
		},
		{
			name: "Positional menu path",
			args: []string{"/positional"},
			expectedConfig: &app.Config{
				MenuPath:  "/positional",
				LogLevel:  "warn",
				LogFormat: "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "-itemize")
			},
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=loud"},
			expectErr: "invalid log-level",
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Unknown flag",
			args:      []string{"--spicy"},
			expectErr: "flag provided but not defined: -spicy",
		},
		{
			name:      "Too many paths",
			args:      []string{"a.hcl", "b.hcl"},
			expectErr: "at most one MENU_PATH",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an *ExitError, got %T", err)
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
