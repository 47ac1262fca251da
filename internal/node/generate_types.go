package node

import (
	"context"

	"github.com/rs/zerolog/log"

	"i18n-catalog/internal/catalog"
)

const categoryI18n = "i18n"

func init() { Register(GenerateTypes{}) }

// GenerateTypes writes types.ts for a reference catalog.
type GenerateTypes struct{}

func (GenerateTypes) Name() string     { return "generate_types" }
func (GenerateTypes) Category() string { return categoryI18n }

func (GenerateTypes) Description() string {
	return "Generate types.ts from the reference (zh.ts) catalog"
}

func (GenerateTypes) Inputs() []Port {
	return []Port{
		{Name: "zh_ts_file", Label: "zh.ts path", Description: "Path of the reference translation catalog", Type: TypeString, Required: true},
		{Name: "output_dir", Label: "Output directory", Description: "Directory that receives types.ts", Type: TypeString, Required: true},
	}
}

func (GenerateTypes) Outputs() []Port {
	return []Port{
		{Name: "result", Label: "types.ts path", Description: "Path of the generated types.ts", Type: TypeString},
	}
}

func (GenerateTypes) Run(_ context.Context, inputs map[string]any) (map[string]any, error) {
	zhPath, err := stringInput(inputs, "zh_ts_file")
	if err != nil {
		return nil, err
	}
	outputDir, err := stringInput(inputs, "output_dir")
	if err != nil {
		return nil, err
	}

	log.Info().Str("file", zhPath).Msg("Reading catalog")

	out, err := catalog.GenerateTypes(zhPath, outputDir)
	if err != nil {
		return nil, err
	}

	log.Info().Str("output", out).Msg("Generated types.ts")
	return map[string]any{"result": out}, nil
}
