package companion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/alertface/internal/appmsg"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		expected Config
		wantErr  bool
	}{
		{
			name: "listen_and_fail_with",
			yaml: `
listen: "0.0.0.0:9000"
fail_with: "MSG_BUSY"
`,
			expected: Config{Listen: "0.0.0.0:9000", FailWith: "MSG_BUSY", FailResult: appmsg.Busy},
		},
		{
			name:     "short_lowercase_name",
			yaml:     `fail_with: " send_timeout "`,
			expected: Config{Listen: DefaultListen, FailWith: "SEND_TIMEOUT", FailResult: appmsg.SendTimeout},
		},
		{
			name:     "empty_document_uses_defaults",
			yaml:     "",
			expected: DefaultConfig(),
		},
		{
			name:    "unknown_result",
			yaml:    `fail_with: "EXPLODED"`,
			wantErr: true,
		},
		{
			name:    "invalid_yaml",
			yaml:    "listen: [",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "companion.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			cfg, err := LoadConfig(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, appmsg.OK, cfg.FailResult)
}
