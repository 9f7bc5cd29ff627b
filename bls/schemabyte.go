package bls

import "fmt"

// schemaByte is the one-byte encoding of a SignatureSchema, prefixed to every encoded key and signature:
//
//	bit 7:      group assignment id
//	bits 6..0:  curve id
type schemaByte uint8

const (
	groupAssignmentShift = 7
	curveIDMask          = 1<<groupAssignmentShift - 1 // 0x7F
)

// packSchemaByte fails for curve ids that do not fit into seven bits instead of truncating them.
func packSchemaByte(groupAssignment GroupAssignment, curve Curve) (schemaByte, error) {
	if !groupAssignment.valid() {
		return 0, fmt.Errorf("%w: unknown group assignment %d", ErrInvalidArgument, uint8(groupAssignment))
	}
	if curve < 0 || curve > curveIDMask {
		return 0, fmt.Errorf("%w: curve id %d is out of range [0, %d]", ErrInvalidArgument, int(curve), curveIDMask)
	}
	return schemaByte(groupAssignment.ID()<<groupAssignmentShift | int(curve)), nil
}

func (b schemaByte) unpack() (GroupAssignment, Curve) {
	return GroupAssignment(b >> groupAssignmentShift), Curve(b & curveIDMask)
}
