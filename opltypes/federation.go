package opltypes

import "fmt"

// Federation identifies the sanctioning body of a meet. The corpus
// carries several hundred distinct federations (affiliates, regional
// bodies, defunct organizations); rather than enumerate all of them as
// Go constants, Federation is a validated string newtype, with a
// curated set of well-known federations exposed as constants for use
// by MetaFederation definitions and tests.
type Federation string

// Well-known federations referenced by MetaFederation membership rules
// and by the test fixtures in §8 of the specification.
const (
	FederationIPF   Federation = "IPF"
	FederationUSAPL Federation = "USAPL"
	FederationUSPA  Federation = "USPA"
	FederationRPS   Federation = "RPS"
	FederationWRPF  Federation = "WRPF"
	FederationSPF   Federation = "SPF"
	FederationBB    Federation = "BB" // Britbench / BB-branded meets in test fixtures.
)

// ParseFederation validates a non-empty federation code.
func ParseFederation(s string) (Federation, error) {
	if s == "" {
		return "", fmt.Errorf("opltypes: empty Federation")
	}
	return Federation(s), nil
}

func (f Federation) String() string {
	return string(f)
}
