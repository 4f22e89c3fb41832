package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubBrowser(t *testing.T, goos string) *[]string {
	t.Helper()
	origRuntime, origStart := getRuntime, startCommand
	t.Cleanup(func() { getRuntime, startCommand = origRuntime, origStart })

	var got []string
	getRuntime = func() string { return goos }
	startCommand = func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}
	return &got
}

func TestOpenBrowser(t *testing.T) {
	t.Run("linux uses xdg-open", func(t *testing.T) {
		got := stubBrowser(t, "linux")

		require.NoError(t, OpenBrowser("https://jobs.example.com/1"))
		assert.Equal(t, []string{"xdg-open", "https://jobs.example.com/1"}, *got)
	})

	t.Run("windows passes the link to the protocol handler", func(t *testing.T) {
		got := stubBrowser(t, "windows")

		require.NoError(t, OpenBrowser("http://jobs.example.com/2?ref=applyx"))
		assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler", "http://jobs.example.com/2?ref=applyx"}, *got)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		got := stubBrowser(t, "plan9")

		err := OpenBrowser("https://jobs.example.com/1")
		assert.True(t, errors.Is(err, ErrServiceUnavailable))
		assert.Empty(t, *got)
	})

	t.Run("rejects links that are not http(s)", func(t *testing.T) {
		got := stubBrowser(t, "linux")

		for _, link := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "jobs.example.com/1", "https://"} {
			err := OpenBrowser(link)
			assert.True(t, errors.Is(err, ErrInvalidArgument), link)
		}
		assert.Empty(t, *got)
	})

	t.Run("start failure is returned", func(t *testing.T) {
		stubBrowser(t, "darwin")
		startCommand = func(string, ...string) error { return errors.New("no display") }

		err := OpenBrowser("https://jobs.example.com/1")
		assert.ErrorContains(t, err, "no display")
	})
}
