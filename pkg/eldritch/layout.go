package eldritch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned by ParseMythosLayout for unrecognized values.
var ErrUnknownLayout = errors.New("unknown mythos layout")

// MythosLayout selects where the numbered mythos card ids are stored.
//
// The original manifest appended mythos ids to the gate card list and left the
// mythos list empty. MythosLegacy keeps that shape for consumers that read
// gateCards directly. The final asset list is the same under both layouts.
type MythosLayout int

const (
	// MythosSeparate keeps gate and mythos card ids in their own categories.
	MythosSeparate MythosLayout = iota
	// MythosLegacy appends mythos ids to gateCards and leaves mythosCards empty.
	MythosLegacy
)

func (m MythosLayout) String() string {
	switch m {
	case MythosSeparate:
		return "separate"
	case MythosLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("MythosLayout(%d)", int(m))
	}
}

// ParseMythosLayout accepts "separate" or "legacy", case-insensitive.
// An empty string selects the default layout.
func ParseMythosLayout(s string) (MythosLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "separate":
		return MythosSeparate, nil
	case "legacy":
		return MythosLegacy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// MarshalText lets layouts appear as strings in JSON and YAML output.
func (m MythosLayout) MarshalText() ([]byte, error) {
	switch m {
	case MythosSeparate, MythosLegacy:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, int(m))
	}
}

// UnmarshalText is the inverse of MarshalText.
func (m *MythosLayout) UnmarshalText(b []byte) error {
	layout, err := ParseMythosLayout(string(b))
	if err != nil {
		return err
	}
	*m = layout
	return nil
}
