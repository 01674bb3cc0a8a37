package manifest

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/eldritch-assets/pkg/eldritch"
)

func TestFromRegistry(t *testing.T) {
	m := FromRegistry(eldritch.MustBuild(eldritch.Options{}))

	assert.Equal(t, "eldritch", m.Prefix)
	assert.Equal(t, eldritch.MythosSeparate, m.Layout)
	assert.Len(t, m.Assets, 264)
	assert.Len(t, m.Categories, 18)
	assert.NotContains(t, m.ServerNames, "board")
	assert.True(t, m.Verify())
}

func TestVersion(t *testing.T) {
	t.Run("stable across builds", func(t *testing.T) {
		a := FromRegistry(eldritch.MustBuild(eldritch.Options{}))
		b := FromRegistry(eldritch.MustBuild(eldritch.Options{}))
		assert.Equal(t, a.Version, b.Version)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("manifests differ (-first +second):\n%s", diff)
		}
	})

	t.Run("layout does not change the asset version", func(t *testing.T) {
		a := FromRegistry(eldritch.MustBuild(eldritch.Options{MythosLayout: eldritch.MythosSeparate}))
		b := FromRegistry(eldritch.MustBuild(eldritch.Options{MythosLayout: eldritch.MythosLegacy}))
		assert.Equal(t, a.Version, b.Version)
	})

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t, Version("p", []string{"a", "b"}), Version("p", []string{"b", "a"}))
	})

	t.Run("entry boundaries matter", func(t *testing.T) {
		assert.NotEqual(t, Version("p", []string{"ab", "c"}), Version("p", []string{"a", "bc"}))
	})

	t.Run("prefix matters", func(t *testing.T) {
		assert.NotEqual(t, Version("p", []string{"a"}), Version("q", []string{"a"}))
	})

	t.Run("name based uuid", func(t *testing.T) {
		v := Version("p", []string{"a"})
		assert.Equal(t, 5, int(v.Version()))
	})
}

func TestEncode_JSON(t *testing.T) {
	m := FromRegistry(eldritch.Default())
	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf, FormatJSON))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "eldritch", raw["prefix"])
	assert.Equal(t, "separate", raw["mythos_layout"])
	assert.Equal(t, m.Version.String(), raw["version"])

	decoded, err := Decode(&buf, FormatJSON)
	require.NoError(t, err)
	assert.True(t, decoded.Verify())
	assert.Equal(t, m.Assets, decoded.Assets)
}

func TestEncode_YAML(t *testing.T) {
	m := FromRegistry(eldritch.MustBuild(eldritch.Options{MythosLayout: eldritch.MythosLegacy}))
	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf, FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "prefix: eldritch\n")
	assert.Contains(t, out, "mythos_layout: legacy\n")
	assert.Contains(t, out, m.Version.String())

	decoded, err := Decode(strings.NewReader(out), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, eldritch.MythosLegacy, decoded.Layout)
	assert.Equal(t, m.ServerNames, decoded.ServerNames)
	assert.True(t, decoded.Verify())
}

func TestEncode_UnknownFormat(t *testing.T) {
	m := FromRegistry(eldritch.Default())
	err := m.Encode(&bytes.Buffer{}, Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode(strings.NewReader(""), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestVerify_DetectsTampering(t *testing.T) {
	m := FromRegistry(eldritch.Default())
	m.Assets = append(m.Assets, "extra")
	assert.False(t, m.Verify())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
