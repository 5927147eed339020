package coefficients

import "math"
import "github.com/oplcore/oplcore/opltypes"

// goodliftParams holds the three curve-fit parameters of the IPF
// GOODLIFT formula for a single (sex, equipment, event) combination.
type goodliftParams struct {
	a, b, c float64
}

// goodliftTable is keyed by [event][sex][equipment]. GOODLIFT is only
// published for full-meet (SBD) and Bench-only totals, Raw or
// Single-ply. Equipment is first normalized onto Raw or Single-ply, so
// only other events fall through to the zero tuple, which Goodlift's
// caller treats as undefined.
var goodliftTable = map[opltypes.Event]map[opltypes.Sex]map[opltypes.Equipment]goodliftParams{
	opltypes.EventSBD: {
		opltypes.SexMale: {
			opltypes.EquipmentRaw:    {1199.72839, 1025.18162, 0.009210},
			opltypes.EquipmentSingle: {1236.25115, 1449.21864, 0.01644},
		},
		opltypes.SexFemale: {
			opltypes.EquipmentRaw:    {610.32796, 1045.59282, 0.03048},
			opltypes.EquipmentSingle: {758.63878, 949.31382, 0.02435},
		},
	},
	opltypes.EventBench: {
		opltypes.SexMale: {
			opltypes.EquipmentRaw:    {320.98041, 281.40258, 0.01008},
			opltypes.EquipmentSingle: {381.22073, 733.79378, 0.02398},
		},
		opltypes.SexFemale: {
			opltypes.EquipmentRaw:    {142.40398, 442.52671, 0.04724},
			opltypes.EquipmentSingle: {221.82209, 357.00377, 0.02937},
		},
	},
}

// normalizeGoodliftEquipment collapses Wraps/Straps into Raw and
// Multi/Unlimited into Single-ply, matching the published table's
// coverage.
func normalizeGoodliftEquipment(equipment opltypes.Equipment) opltypes.Equipment {
	switch equipment {
	case opltypes.EquipmentRaw, opltypes.EquipmentWraps, opltypes.EquipmentStraps:
		return opltypes.EquipmentRaw
	default:
		return opltypes.EquipmentSingle
	}
}

// goodliftParamsFor resolves the fit parameters for a (sex, equipment,
// event) combination. Sex::Mx is treated as Male, matching the
// published table's dichotomous sex split.
func goodliftParamsFor(sex opltypes.Sex, equipment opltypes.Equipment, event opltypes.Event) goodliftParams {
	if sex == opltypes.SexMx {
		sex = opltypes.SexMale
	}
	bySex, ok := goodliftTable[event]
	if !ok {
		return goodliftParams{}
	}
	byEquipment, ok := bySex[sex]
	if !ok {
		return goodliftParams{}
	}
	return byEquipment[normalizeGoodliftEquipment(equipment)]
}

// Goodlift calculates GOODLIFT points, the IPF's current official
// scoring formula: total * 100/(A - B*e^(-C*bodyweightkg)).
func Goodlift(sex opltypes.Sex, equipment opltypes.Equipment, event opltypes.Event, bodyweight, total opltypes.WeightKg) opltypes.Points {
	p := goodliftParamsFor(sex, equipment, event)
	if p.a == 0 || bodyweight.Float64() < 35.0 || total.IsZero() {
		return opltypes.ZeroPoints
	}

	denominator := p.a - p.b*math.Exp(-p.c*bodyweight.Float64())
	if denominator == 0 {
		return opltypes.ZeroPoints
	}

	coefficient := 100.0 / denominator
	if coefficient < 0 {
		coefficient = 0
	}
	return opltypes.PointsFromFloat64(total.Float64() * coefficient)
}
