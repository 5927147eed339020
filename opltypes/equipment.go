package opltypes

import "fmt"

// Equipment is the supportive-gear category an entry competed in.
type Equipment uint8

const (
	EquipmentRaw Equipment = iota
	EquipmentWraps
	EquipmentSingle
	EquipmentMulti
	EquipmentUnlimited
	EquipmentStraps
)

// ParseEquipment parses the CSV spelling, which uses hyphens for the
// ply-based categories.
func ParseEquipment(s string) (Equipment, error) {
	switch s {
	case "Raw":
		return EquipmentRaw, nil
	case "Wraps":
		return EquipmentWraps, nil
	case "Single-ply":
		return EquipmentSingle, nil
	case "Multi-ply":
		return EquipmentMulti, nil
	case "Unlimited":
		return EquipmentUnlimited, nil
	case "Straps":
		return EquipmentStraps, nil
	default:
		return 0, fmt.Errorf("opltypes: invalid Equipment %q", s)
	}
}

func (e Equipment) String() string {
	switch e {
	case EquipmentRaw:
		return "Raw"
	case EquipmentWraps:
		return "Wraps"
	case EquipmentSingle:
		return "Single-ply"
	case EquipmentMulti:
		return "Multi-ply"
	case EquipmentUnlimited:
		return "Unlimited"
	case EquipmentStraps:
		return "Straps"
	default:
		return "?"
	}
}
