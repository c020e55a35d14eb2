package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Exercises)
	assert.Equal(t, "neck-roll", c.Exercises[0].ID)
	assert.Equal(t, 30*time.Second, c.Exercises[0].Duration)
	assert.Len(t, c.Checksum(), 64)
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	a, err := Load("")
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, b.Checksum(), a.Checksum())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routine.yaml")
	body := "- id: a\n  name: A\n  duration: 5s\n- id: b\n  name: B\n  duration: 1m\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Exercises, 2)
	assert.Equal(t, time.Minute, c.Exercises[1].Duration)

	def, _ := Default()
	assert.NotEqual(t, def.Checksum(), c.Checksum())
}

func TestParseRejects(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"empty":     {"[]", ErrEmpty},
		"no id":     {"- name: x\n  duration: 1s\n", ErrMissingID},
		"duplicate": {"- id: a\n  duration: 1s\n- id: a\n  duration: 2s\n", ErrDuplicateID},
		"zero":      {"- id: a\n  duration: 0s\n", ErrInvalidDuration},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(c.body))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
