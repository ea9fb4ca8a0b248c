package clampgen

import "fmt"

// TokenKey returns the spacing token name for value i, e.g. "clamp-12.5vh".
func TokenKey(i float64, unit Unit) string {
	return "clamp-" + FormatNumber(i) + string(unit)
}

// ClampValue returns the CSS expression for value i: a 0rem floor, the raw
// viewport length as the preferred size and its rem equivalent as the ceiling.
func ClampValue(i float64, unit Unit, remFactor float64) string {
	return fmt.Sprintf("clamp(0rem, %s%s, %srem)",
		trimZeros(ToFixed(i, 2)), unit, trimZeros(ToFixed(i*remFactor, 3)))
}

// GenerateClampStyle builds the tokens for every value from min to max
// inclusive. Each step is rounded to two decimals so drift does not
// accumulate over long sweeps. min > max yields an empty map, and a step
// too small to advance after rounding stops after the first value.
func GenerateClampStyle(min, max, step float64, unit Unit, remFactor float64) *TokenMap {
	tokens := NewTokenMap(0)
	for i := min; i <= max; {
		tokens.Set(TokenKey(i, unit), ClampValue(i, unit, remFactor))

		next := round2(i + step)
		if next <= i {
			break
		}
		i = next
	}
	return tokens
}

// GenerateSpacing sweeps every range with the factor for its unit and
// merges the results in order. It also returns how many keys a later range
// overwrote.
func GenerateSpacing(ranges []SpacingRange, factors Factors) (*TokenMap, int, error) {
	maps := make([]*TokenMap, 0, len(ranges))
	for _, r := range ranges {
		remFactor, err := factors.RemFactor(r.Unit)
		if err != nil {
			return nil, 0, err
		}
		maps = append(maps, GenerateClampStyle(r.Min, r.Max, r.Step, r.Unit, remFactor))
	}
	merged, collisions := MergeTokenMaps(maps...)
	return merged, collisions, nil
}
