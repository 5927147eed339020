package coefficients_test

import (
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/oplcore/oplcore/coefficients"
	"github.com/oplcore/oplcore/opltypes"
)

// TestFormulas runs golden-value cases for every coefficient formula
// against testdata/formulas. Each case gives a formula name plus a
// sex/bodyweight/total triple and expects the formatted Points back,
// so a coefficient regression shows up as a diff against checked-in
// expected output rather than a hand-maintained assertion per formula.
func TestFormulas(t *testing.T) {
	datadriven.RunTest(t, "testdata/formulas", func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "eval" {
			t.Fatalf("unknown command %q", d.Cmd)
		}

		var formula, sexArg, bwArg, totalArg string
		for _, arg := range d.CmdArgs {
			switch arg.Key {
			case "formula":
				formula = arg.Vals[0]
			case "sex":
				sexArg = arg.Vals[0]
			case "bw":
				bwArg = arg.Vals[0]
			case "total":
				totalArg = arg.Vals[0]
			}
		}

		sex, err := opltypes.ParseSex(sexArg)
		if err != nil {
			t.Fatalf("ParseSex(%q): %v", sexArg, err)
		}
		bw, _, err := opltypes.ParseWeightKg(bwArg)
		if err != nil {
			t.Fatalf("ParseWeightKg(%q): %v", bwArg, err)
		}
		total, _, err := opltypes.ParseWeightKg(totalArg)
		if err != nil {
			t.Fatalf("ParseWeightKg(%q): %v", totalArg, err)
		}

		var points opltypes.Points
		switch formula {
		case "wilks":
			points = coefficients.Wilks(sex, bw, total)
		case "wilks2020":
			points = coefficients.Wilks2020(sex, bw, total)
		case "dots":
			points = coefficients.Dots(sex, bw, total)
		case "glossbrenner":
			points = coefficients.Glossbrenner(sex, bw, total)
		case "schwartzmalone":
			points = coefficients.SchwartzMalone(sex, bw, total)
		case "ah":
			points = coefficients.AH(sex, bw, total)
		case "nasa":
			points = coefficients.NASA(bw, total)
		case "hoffman":
			points = coefficients.Hoffman(bw, total)
		case "reshel":
			points = coefficients.Reshel(sex, bw, total)
		case "ipf":
			points = coefficients.IPF(sex, opltypes.EquipmentRaw, opltypes.EventSBD, bw, total)
		case "goodlift":
			points = coefficients.Goodlift(sex, opltypes.EquipmentRaw, opltypes.EventSBD, bw, total)
		case "mcculloch":
			age, err := opltypes.ParseAge("40")
			if err != nil {
				t.Fatalf("ParseAge: %v", err)
			}
			points = coefficients.McCulloch(sex, bw, total, age)
		default:
			t.Fatalf("unknown formula %q", formula)
		}

		return points.String() + "\n"
	})
}
