package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/query"
)

// parseFilterLine tokenizes a filter bar line with shlex and folds each
// "field:value" token into q, starting from query.Default(). Unknown
// field names or malformed values return a descriptive error instead
// of silently ignoring the token, so the status line can surface it.
func parseFilterLine(line string) (query.Filter, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return query.Filter{}, fmt.Errorf("tokenizing filter line: %w", err)
	}

	f := query.Default()
	for _, tok := range tokens {
		field, value, ok := strings.Cut(tok, ":")
		if !ok {
			return f, fmt.Errorf("expected field:value, got %q", tok)
		}
		if err := applyFilterToken(&f, field, value); err != nil {
			return f, err
		}
	}
	return f, nil
}

func applyFilterToken(f *query.Filter, field, value string) error {
	switch strings.ToLower(field) {
	case "equipment", "eq":
		eq, err := opltypes.ParseEquipment(value)
		if err != nil {
			return fmt.Errorf("field equipment: %w", err)
		}
		f.Equipment = eq
		f.AnyEquipment = false

	case "sex":
		sex, err := opltypes.ParseSex(value)
		if err != nil {
			return fmt.Errorf("field sex: %w", err)
		}
		f.Sex = sex
		f.AnySex = false

	case "fed", "federation":
		if mf, ok := parseMetaFederation(value); ok {
			f.Federation = query.FederationFilter{UseMeta: true, MetaFederation: mf}
			return nil
		}
		fed, err := opltypes.ParseFederation(value)
		if err != nil {
			return fmt.Errorf("field fed: %w", err)
		}
		f.Federation = query.FederationFilter{Federation: fed}

	case "class", "weightclass":
		wc, err := opltypes.ParseWeightClassKg(value)
		if err != nil {
			return fmt.Errorf("field class: %w", err)
		}
		f.WeightClass = wc

	case "ageclass":
		ac, err := opltypes.ParseAgeClass(value)
		if err != nil {
			return fmt.Errorf("field ageclass: %w", err)
		}
		f.AgeClass = ac

	case "year":
		if value == "*" || value == "any" {
			f.AnyYear = true
			return nil
		}
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("field year: %w", err)
		}
		f.Year = year
		f.AnyYear = false

	case "event":
		ef, ok := parseEventFilter(value)
		if !ok {
			return fmt.Errorf("field event: unrecognized value %q", value)
		}
		f.Event = ef

	case "state":
		f.State = opltypes.State(strings.ToUpper(value))
		f.AnyState = false

	default:
		return fmt.Errorf("unrecognized filter field %q", field)
	}
	return nil
}

func parseMetaFederation(value string) (cache.MetaFederation, bool) {
	for _, mf := range cache.AllMetaFederations {
		if strings.EqualFold(mf.String(), value) {
			return mf, true
		}
	}
	return 0, false
}

func parseEventFilter(value string) (cache.EventFilter, bool) {
	switch strings.ToUpper(value) {
	case "SBD":
		return cache.EventFilterSBD, true
	case "S", "SQUATONLY":
		return cache.EventFilterSquatOnly, true
	case "B", "BENCHONLY":
		return cache.EventFilterBenchOnly, true
	case "D", "DEADLIFTONLY":
		return cache.EventFilterDeadliftOnly, true
	case "PP", "PUSHPULL":
		return cache.EventFilterPushPull, true
	case "ALL", "*":
		return cache.EventFilterAll, true
	default:
		return 0, false
	}
}

func parseOrderBy(value string) (cache.OrderBy, bool) {
	for _, o := range cache.AllOrderBy {
		if strings.EqualFold(o.String(), value) {
			return o, true
		}
	}
	return 0, false
}
