package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/eldritch-assets/pkg/eldritch"
	"github.com/jwebster45206/eldritch-assets/pkg/names"
)

// Format is an output encoding for a Manifest.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown manifest format")

// namespace scopes manifest version ids so they never collide with other
// name-based UUIDs built from the same strings.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jwebster45206/eldritch-assets/manifest"))

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Manifest is a serializable snapshot of a registry.
type Manifest struct {
	Prefix      string                `json:"prefix" yaml:"prefix"`
	Version     uuid.UUID             `json:"version" yaml:"version"`
	Layout      eldritch.MythosLayout `json:"mythos_layout" yaml:"mythos_layout"`
	Categories  []names.Category      `json:"categories" yaml:"categories"`
	Assets      []string              `json:"assets" yaml:"assets"`
	ServerNames map[string]string     `json:"server_names" yaml:"server_names"`
}

// FromRegistry snapshots r.
func FromRegistry(r *eldritch.Registry) *Manifest {
	assets := r.AssetNames()
	return &Manifest{
		Prefix:      r.Prefix(),
		Version:     Version(r.Prefix(), assets),
		Layout:      r.Layout(),
		Categories:  r.Categories(),
		Assets:      assets,
		ServerNames: r.ServerNames(),
	}
}

// Version derives a stable id from the prefix and the ordered asset list.
// Any change to membership or order yields a different id.
func Version(prefix string, assets []string) uuid.UUID {
	var b strings.Builder
	b.WriteString(prefix)
	for _, a := range assets {
		// NUL can't appear in an asset name, so it keeps entries unambiguous.
		b.WriteByte(0)
		b.WriteString(a)
	}
	return uuid.NewSHA1(namespace, []byte(b.String()))
}

// Encode writes m to w in the given format.
func (m *Manifest) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode manifest as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode manifest as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml encoder: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a manifest previously written by Encode.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode json manifest: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode yaml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &m, nil
}

// Verify reports whether the manifest's version matches its contents.
func (m *Manifest) Verify() bool {
	return Version(m.Prefix, m.Assets) == m.Version
}
