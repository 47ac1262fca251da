package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"i18n-catalog/internal/node"

	"github.com/spf13/cobra"
)

func nodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the workflow nodes and their ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeNodes(cmd.OutOrStdout())
		},
	}
}

func runNodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <node> [input=value ...]",
		Short: "Run a workflow node and print its JSON result",
		Long: `Runs a registered node the way a workflow engine would. The result is
always printed; a failed node exits non-zero.

Example:
  catalogtool run generate_types zh_ts_file=locales/zh.ts output_dir=src/i18n`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNode(cmd, args[0], args[1:])
		},
	}
}

func writeNodes(w io.Writer) error {
	for _, n := range node.All() {
		fmt.Fprintf(w, "%s [%s]\n  %s\n", n.Name(), n.Category(), n.Description())
		for _, p := range n.Inputs() {
			req := ""
			if p.Required {
				req = ", required"
			}
			fmt.Fprintf(w, "  in  %s (%s%s): %s\n", p.Name, p.Type, req, p.Description)
		}
		for _, p := range n.Outputs() {
			fmt.Fprintf(w, "  out %s (%s): %s\n", p.Name, p.Type, p.Description)
		}
	}
	return nil
}

// runNode handles the `run` command.
func runNode(cmd *cobra.Command, name string, pairs []string) error {
	n, ok := node.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown node %q", name)
	}

	inputs := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid input %q, want name=value", pair)
		}
		inputs[k] = v
	}

	ctx, cancel := setupContext()
	defer cancel()

	res := node.Execute(ctx, n, inputs)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode node result: %w", err)
	}

	if !res.OK() {
		return fmt.Errorf("node %s failed: %s", name, res.ErrorMessage())
	}
	return nil
}
