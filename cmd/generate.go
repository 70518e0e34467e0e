/*
Copyright © 2026 The testgen Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cdforces/testgen"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random test suite",
	Long: `Draw the number of test cases, an array size ceiling and a value ceiling, then emit every case.
Pass --seed to replay a previous run; the seed in use is logged with --verbose.
Write the result to stdout or to a file via -o/--output.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	seed, err := flags.GetInt64("seed")
	if err != nil {
		return err
	}
	if !flags.Changed("seed") {
		seed = time.Now().Unix()
	}
	maxTests, err := flags.GetInt("max-tests")
	if err != nil {
		return err
	}
	maxArraySize, err := flags.GetInt("max-array-size")
	if err != nil {
		return err
	}
	maxValue, err := flags.GetInt("max-value")
	if err != nil {
		return err
	}
	sorted, err := flags.GetBool("sorted")
	if err != nil {
		return err
	}
	trailingSpace, err := flags.GetBool("trailing-space")
	if err != nil {
		return err
	}
	format, err := flags.GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := flags.GetString("output")
	if err != nil {
		return err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}

	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q: want text or json", format)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	suite, err := testgen.Generate(
		testgen.WithSeed(seed),
		testgen.WithBounds(testgen.Bounds{
			MaxTests:     maxTests,
			MaxArraySize: maxArraySize,
			MaxValue:     maxValue,
		}),
		testgen.WithSorted(sorted),
		testgen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var writer io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if format == "json" {
		err = suite.WriteJSON(writer)
	} else {
		err = suite.WriteText(writer, trailingSpace)
	}
	if err != nil {
		return err
	}
	logger.Info("test suite written", "seed", seed, "format", format)
	return nil
}

func addGenerateFlags(cmd *cobra.Command) {
	defaults := testgen.DefaultBounds()

	cmd.Flags().Int64("seed", 0, "seed for the random generator (default: current Unix time)")
	cmd.Flags().Int("max-tests", defaults.MaxTests, "ceiling for the number of test cases")
	cmd.Flags().Int("max-array-size", defaults.MaxArraySize, "ceiling for the array size ceiling")
	cmd.Flags().Int("max-value", defaults.MaxValue, "ceiling for the value ceiling")
	cmd.Flags().Bool("sorted", false, "sort every array in ascending order")
	cmd.Flags().Bool("trailing-space", false, "write a space after every value, as the legacy generator did")
	cmd.Flags().String("format", "text", "output format: text or json")
	cmd.Flags().StringP("output", "o", "", "write the generated suite to a file")
	cmd.Flags().BoolP("verbose", "v", false, "log the seed and drawn bounds to stderr")
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}
