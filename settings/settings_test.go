package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dasdy/layerlens/settings"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.Set(settings.KeyKeyboard, "kb.json")

	s, err := settings.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "kb.json", s.KeyboardConfigPath)
	assert.Equal(t, "LAYOUT", s.LayoutName)
	assert.Equal(t, 60, s.Size)
	assert.Equal(t, settings.BottomRight, s.Position)
	assert.Equal(t, 2*time.Second, s.Timeout)
	assert.Equal(t, 10, s.Margin)
	assert.Equal(t, 9000, s.Port)
	assert.False(t, s.Save)
}

func TestLoadFromTOML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")

	require.NoError(t, v.ReadConfig(strings.NewReader(`
keyboard = "/tmp/kb.json"
layout = "LAYOUT_split_3x6_3"
size = 40
position = "Top_Left"
timeout = "500ms"
margin = 0
`)))

	s, err := settings.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "LAYOUT_split_3x6_3", s.LayoutName)
	assert.Equal(t, 40, s.Size)
	assert.Equal(t, settings.TopLeft, s.Position)
	assert.Equal(t, 500*time.Millisecond, s.Timeout)
	assert.Equal(t, 0, s.Margin)
}

func TestLoadTimeoutAsMilliseconds(t *testing.T) {
	load := func(t *testing.T, config string) (*settings.Settings, error) {
		t.Helper()

		v := viper.New()
		v.SetConfigType("toml")
		require.NoError(t, v.ReadConfig(strings.NewReader("keyboard = \"kb.json\"\n"+config)))

		return settings.Load(v)
	}

	s, err := load(t, "timeout = 2000\n")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, s.Timeout)

	s, err = load(t, "timeout = \"750\"\n")
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, s.Timeout)

	_, err = load(t, "timeout = 90000\n")
	require.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Duration
	}{
		{"duration", 3 * time.Second, 3 * time.Second},
		{"integer milliseconds", int64(1500), 1500 * time.Millisecond},
		{"float milliseconds", 250.0, 250 * time.Millisecond},
		{"numeric string", "100", 100 * time.Millisecond},
		{"duration string", "1m", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settings.ParseTimeout(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := settings.ParseTimeout("soon")
	require.ErrorIs(t, err, settings.ErrInvalidSettings)

	_, err = settings.ParseTimeout(true)
	require.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(s *settings.Settings)
		wantErr string
	}{
		{"missing keyboard", func(s *settings.Settings) { s.KeyboardConfigPath = " " }, "keyboard info JSON"},
		{"tiny keys", func(s *settings.Settings) { s.Size = 4 }, "size 4"},
		{"negative margin", func(s *settings.Settings) { s.Margin = -1 }, "margin -1"},
		{"long timeout", func(s *settings.Settings) { s.Timeout = time.Minute + time.Millisecond }, "timeout"},
		{"odd position", func(s *settings.Settings) { s.Position = "middle" }, "unknown position 'middle'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := settings.Default()
			s.KeyboardConfigPath = "kb.json"
			require.NoError(t, s.Validate())

			tc.modify(&s)

			err := s.Validate()
			require.ErrorIs(t, err, settings.ErrInvalidSettings)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layerlens.toml")

	s := settings.Default()
	s.KeyboardConfigPath = "kb.json"
	s.Position = settings.Bottom
	s.Timeout = 1500 * time.Millisecond

	require.NoError(t, s.WriteTo(path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	loaded, err := settings.Load(v)
	require.NoError(t, err)

	assert.Equal(t, s, *loaded)
}

func TestPositionCSS(t *testing.T) {
	assert.Equal(t, "bottom:10px;right:10px;", settings.BottomRight.CSS(10))
	assert.Equal(t, "top:0px;left:0px;", settings.TopLeft.CSS(0))
	assert.Contains(t, settings.Top.CSS(5), "translateX(-50%)")
}
