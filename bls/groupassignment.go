package bls

import (
	"fmt"
	"strings"
)

// GroupAssignment selects which group of a pairing-friendly curve holds the signatures and which one holds the public
// keys. Points of the first group have the shorter encoding.
type GroupAssignment uint8

const (
	// ShortSignatures places signatures in the first group and public keys in the second group.
	ShortSignatures GroupAssignment = 0

	// ShortPublicKeys places public keys in the first group and signatures in the second group.
	ShortPublicKeys GroupAssignment = 1
)

// GroupAssignments lists both group assignments, ordered by id.
var GroupAssignments = []GroupAssignment{ShortSignatures, ShortPublicKeys}

// ID returns the 1-bit identifier of the group assignment used in the schema byte.
func (g GroupAssignment) ID() int {
	return int(g)
}

func (g GroupAssignment) valid() bool {
	return g == ShortSignatures || g == ShortPublicKeys
}

func (g GroupAssignment) String() string {
	switch g {
	case ShortSignatures:
		return "ShortSignatures"
	case ShortPublicKeys:
		return "ShortPublicKeys"
	default:
		return fmt.Sprintf("GroupAssignment(%d)", uint8(g))
	}
}

func (g GroupAssignment) MarshalText() ([]byte, error) {
	switch g {
	case ShortSignatures:
		return []byte("short-signatures"), nil
	case ShortPublicKeys:
		return []byte("short-public-keys"), nil
	default:
		return nil, fmt.Errorf("%w: unknown group assignment %d", ErrInvalidArgument, uint8(g))
	}
}

// UnmarshalText accepts "short-signatures" and "short-public-keys", case-insensitive, with '-' or '_' separators.
func (g *GroupAssignment) UnmarshalText(text []byte) error {
	switch strings.ReplaceAll(strings.ToLower(string(text)), "_", "-") {
	case "short-signatures":
		*g = ShortSignatures
	case "short-public-keys":
		*g = ShortPublicKeys
	default:
		return fmt.Errorf("%w: unknown group assignment %q", ErrInvalidArgument, string(text))
	}
	return nil
}
