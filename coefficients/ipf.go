package coefficients

import "math"
import "github.com/oplcore/oplcore/opltypes"

// ipfParams holds the log-normal curve parameters of the classic IPF
// Points formula: a normal distribution with mean 500 and deviation
// 100, where the distribution's own mean and deviation are themselves
// linear in ln(bodyweight).
type ipfParams struct {
	mean1, mean2, dev1, dev2 float64
}

// ipfParamsTable is keyed by (event, sex, equipment) and holds the
// published (mean1, mean2, dev1, dev2) tuples. The formula was fit
// only for Raw and Single-ply, SBD and Bench. Equipment is first
// normalized onto Raw or Single-ply, so only other events return the
// zero tuple, which ipfParamsFor's caller treats as "undefined" per
// the formula's own definition.
var ipfParamsTable = map[opltypes.Event]map[opltypes.Sex]map[opltypes.Equipment]ipfParams{
	opltypes.EventSBD: {
		opltypes.SexMale: {
			opltypes.EquipmentRaw:    {310.67, 857.785, 53.216, 147.0835},
			opltypes.EquipmentSingle: {387.265, 1121.28, 80.6324, 222.4896},
		},
		opltypes.SexFemale: {
			opltypes.EquipmentRaw:    {125.1435, 228.03, 34.5246, 86.8301},
			opltypes.EquipmentSingle: {176.58, 373.315, 48.4534, 110.0103},
		},
	},
	opltypes.EventBench: {
		opltypes.SexMale: {
			opltypes.EquipmentRaw:    {86.4745, 259.155, 17.57845, 53.122},
			opltypes.EquipmentSingle: {133.94, 441.465, 35.3938, 113.0057},
		},
		opltypes.SexFemale: {
			opltypes.EquipmentRaw:    {25.0485, 43.848, 6.7172, 13.952},
			opltypes.EquipmentSingle: {49.106, 124.209, 23.199, 67.492},
		},
	},
}

// normalizeIPFEquipment collapses Wraps into Raw and Multi into
// Single: the formula only covers Raw and Single-ply, so the nearest
// equipment class is reused rather than leaving Wraps/Multi undefined.
func normalizeIPFEquipment(equipment opltypes.Equipment) opltypes.Equipment {
	switch equipment {
	case opltypes.EquipmentRaw, opltypes.EquipmentWraps, opltypes.EquipmentStraps:
		return opltypes.EquipmentRaw
	default:
		return opltypes.EquipmentSingle
	}
}

// normalizeIPFSex maps the dichotomous-sex Mx division onto Male, since
// the table is only published for Male and Female.
func normalizeIPFSex(sex opltypes.Sex) opltypes.Sex {
	if sex == opltypes.SexMx {
		return opltypes.SexMale
	}
	return sex
}

func ipfParamsFor(sex opltypes.Sex, equipment opltypes.Equipment, event opltypes.Event) ipfParams {
	bySex, ok := ipfParamsTable[event]
	if !ok {
		return ipfParams{}
	}
	byEquipment, ok := bySex[normalizeIPFSex(sex)]
	if !ok {
		return ipfParams{}
	}
	return byEquipment[normalizeIPFEquipment(equipment)]
}

// IPF calculates (classic) IPF Points.
func IPF(sex opltypes.Sex, equipment opltypes.Equipment, event opltypes.Event, bodyweight, total opltypes.WeightKg) opltypes.Points {
	p := ipfParamsFor(sex, equipment, event)
	if p.mean1 == 0 || bodyweight.Float64() <= 0 || total.IsZero() {
		return opltypes.ZeroPoints
	}

	bwLog := math.Log(bodyweight.Float64())
	mean := p.mean1*bwLog - p.mean2
	dev := p.dev1*bwLog - p.dev2
	if dev == 0 {
		return opltypes.ZeroPoints
	}

	points := 500.0 + 100.0*(total.Float64()-mean)/dev
	if points < 0 {
		points = 0
	}
	return opltypes.PointsFromFloat64(points)
}
