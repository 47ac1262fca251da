package node

import (
	"context"

	"github.com/rs/zerolog/log"

	"i18n-catalog/internal/catalog"
)

func init() { Register(CompareKeys{}) }

// CompareKeys reports the key paths present in one catalog but not the other.
// Its missing-key outputs are named after the input files' basenames.
type CompareKeys struct{}

func (CompareKeys) Name() string     { return "compare_keys" }
func (CompareKeys) Category() string { return categoryI18n }

func (CompareKeys) Description() string {
	return "Compare the key structure of two translation catalogs"
}

func (CompareKeys) Inputs() []Port {
	return []Port{
		{Name: "first_file", Label: "First catalog", Description: "Path of the first translation catalog", Type: TypeString, Required: true},
		{Name: "second_file", Label: "Second catalog", Description: "Path of the second translation catalog", Type: TypeString, Required: true},
	}
}

func (CompareKeys) Outputs() []Port {
	return []Port{
		{Name: "identical", Label: "Identical", Description: "True when both catalogs have the same key paths", Type: TypeBoolean},
		{Name: "missing_in_<file>", Label: "Missing keys", Description: "Sorted key paths absent from the named file, one entry per input", Type: TypeObject},
	}
}

func (CompareKeys) Run(_ context.Context, inputs map[string]any) (map[string]any, error) {
	first, err := stringInput(inputs, "first_file")
	if err != nil {
		return nil, err
	}
	second, err := stringInput(inputs, "second_file")
	if err != nil {
		return nil, err
	}

	log.Info().Str("first", first).Str("second", second).Msg("Comparing catalog keys")

	r, err := catalog.CompareKeys(first, second)
	if err != nil {
		return nil, err
	}

	log.Info().
		Bool("identical", r.Identical).
		Int(r.FirstLabel, len(r.MissingInFirst)).
		Int(r.SecondLabel, len(r.MissingInSecond)).
		Msg("Compared catalog keys")

	return r.Report(), nil
}
