package seed

import (
	"fmt"
	"math"
	"reflect"
)

// === Validation results ===

// Result is the outcome of validating a single raw seed value.
// Normalized is meaningful only when Valid is true.
type Result struct {
	Valid      bool
	Errors     []string
	Normalized Seed
}

// SetResult is the outcome of validating a raw seed collection.
// Normalized holds the normalized seeds in input order and is meaningful
// only when Valid is true.
type SetResult struct {
	Valid      bool
	Errors     []string
	Normalized []Seed
}

// === SeedValidator ===

// ValidateSeed normalizes and validates a single raw seed value.
//
// Run configs arrive as decoded YAML/JSON, so raw may be any numeric Go type
// (or something else entirely, which fails with a type error). Validation is
// pure: no logging, no state. On success Normalized holds
// floor(abs(raw)) mod 2^32.
func ValidateSeed(raw any) Result {
	val, ok := asFloat(raw)
	if !ok {
		return Result{Errors: []string{"Seed must be a number"}}
	}
	if math.IsNaN(val) {
		return Result{Errors: []string{"Seed cannot be NaN"}}
	}
	if math.IsInf(val, 0) {
		return Result{Errors: []string{"Seed must be finite"}}
	}
	return Result{Valid: true, Normalized: Normalize(val)}
}

// === SeedSetValidator ===

// ValidateSeeds validates a bounded, duplicate-free seed collection.
//
// The collection must be a slice or array of 1..MaxSeedsPerRun elements.
// Each element is validated via ValidateSeed with its index prefixed onto any
// failure, and the whole set is rejected if two elements collide after
// normalization (duplicates over raw values are irrelevant: 1 and 1.9
// normalize to the same stream seed and would silently share randomness).
func ValidateSeeds(raw any) SetResult {
	list, ok := asSlice(raw)
	if !ok {
		return SetResult{Errors: []string{"Seeds must be an array"}}
	}
	if len(list) == 0 {
		return SetResult{Errors: []string{"Seed array cannot be empty"}}
	}
	if len(list) > MaxSeedsPerRun {
		return SetResult{Errors: []string{
			fmt.Sprintf("Seed array cannot contain more than %d seeds, got %d", MaxSeedsPerRun, len(list)),
		}}
	}

	var errs []string
	normalized := make([]Seed, 0, len(list))
	for i, elem := range list {
		res := ValidateSeed(elem)
		if !res.Valid {
			for _, msg := range res.Errors {
				errs = append(errs, fmt.Sprintf("Seed %d: %s", i, msg))
			}
			continue
		}
		normalized = append(normalized, res.Normalized)
	}
	if len(errs) > 0 {
		return SetResult{Errors: errs}
	}

	seen := make(map[Seed]int, len(normalized))
	for i, s := range normalized {
		if first, dup := seen[s]; dup {
			errs = append(errs, fmt.Sprintf("Duplicate seed after normalization: seeds %d and %d both normalize to %d", first, i, s))
			continue
		}
		seen[s] = i
	}
	if len(errs) > 0 {
		return SetResult{Errors: errs}
	}
	return SetResult{Valid: true, Normalized: normalized}
}

// asFloat converts any numeric Go type to float64. Returns false for
// non-numeric values (strings, bools, nil, maps, ...).
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case Seed:
		return float64(v), true
	default:
		return 0, false
	}
}

// asSlice flattens any slice or array into []any.
func asSlice(raw any) ([]any, bool) {
	if list, ok := raw.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
