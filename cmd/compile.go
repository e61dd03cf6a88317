package cmd

import (
	"fmt"
	"strings"

	"github.com/declxml/xcsc/compiler"
	"github.com/spf13/cobra"
)

var outputDir string
var maxFunction stageFlag

// stageFlag is a pflag.Value that only accepts one of compiler.StageNames,
// so an unrecognized --max_function value is rejected at flag-parse time
// rather than surfacing as a pipeline error.
type stageFlag struct {
	value string
}

func (s *stageFlag) String() string { return s.value }

func (s *stageFlag) Set(v string) error {
	if v == "" {
		s.value = ""
		return nil
	}
	if !compiler.IsStageName(v) {
		return fmt.Errorf("must be one of: %s", strings.Join(compiler.StageNames, ", "))
	}
	s.value = v
	return nil
}

func (s *stageFlag) Type() string { return "stage" }

var compileCmd = &cobra.Command{
	Use:   "compile [input_file]",
	Short: "Compile a declaration document into C# source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := compiler.Compile(args[0], outputDir, maxFunction.String()); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputDir, "output_dir", "o", "generated", "Directory generated C# files are written to")
	compileCmd.Flags().Var(&maxFunction, "max_function", fmt.Sprintf("Stop after this stage instead of running the full pipeline (one of: %s)", strings.Join(compiler.StageNames, ", ")))
}
