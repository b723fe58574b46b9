// Command gen-factor-sat converts the factorization of an integer into
// a DIMACS CNF formula, either for a number given directly or for one
// drawn at random under an optional primality constraint — spec §6.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Skilldehyde/gen-factor-sat/dimacs"
	"github.com/Skilldehyde/gen-factor-sat/factoring"
	"github.com/Skilldehyde/gen-factor-sat/internal/observ"
	"github.com/Skilldehyde/gen-factor-sat/problem"
)

// version is substituted at release time; the original CLI reports it
// verbatim in its --version output.
const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gen-factor-sat",
		Short:   "Convert the factorization of a number into a CNF",
		Long:    "Convert the factorization of a number into a CNF.\nThe resulting CNF is represented in the DIMACS format.",
		Version: version,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s v{{.Version}}\n", root.Use))

	root.AddCommand(newNumberCmd(), newRandomCmd())
	return root
}

func newNumberCmd() *cobra.Command {
	var outfile string

	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "specify a number to be factorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("%q is not a valid integer", args[0])
			}

			instance, err := problem.Direct(number)
			if err != nil {
				return err
			}

			defaultName := fmt.Sprintf("factor_number%s.cnf", number.String())
			comments := factorizationComments(instance, nil, nil)
			return emit(instance, comments, outfile, defaultName)
		},
	}

	cmd.Flags().StringVarP(&outfile, "outfile", "o", "-", "redirect the output from stdout to the specified file")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var (
		minValue string
		seed     int64
		prime    bool
		noPrime  bool
		errRate  float64
		tries    int
		outfile  string
	)

	cmd := &cobra.Command{
		Use:   "random <max-value>",
		Short: "generate a random number to be factorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxValue, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("%q is not a valid integer", args[0])
			}
			min, ok := new(big.Int).SetString(minValue, 10)
			if !ok {
				return fmt.Errorf("%q is not a valid integer", minValue)
			}

			var primeConstraint *bool
			switch {
			case prime && noPrime:
				return fmt.Errorf("--prime and --no-prime are mutually exclusive")
			case prime:
				v := true
				primeConstraint = &v
			case noPrime:
				v := false
				primeConstraint = &v
			}

			var seedPtr *int64
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}

			result, err := problem.Random(problem.RandomOptions{
				Min:      min,
				Max:      maxValue,
				Seed:     seedPtr,
				Prime:    primeConstraint,
				MaxError: errRate,
				MaxTries: tries,
				Logger:   observ.New(),
			})
			if err != nil {
				return err
			}

			defaultName := fmt.Sprintf(
				"factor_seed%d_minn%s_maxn%s_%s.cnf",
				result.Seed, result.Min.String(), result.Max.String(), result.Classification.String(),
			)
			comments := factorizationComments(result.Instance, result.Max, &result.Seed)
			if err := emit(result.Instance, comments, outfile, defaultName); err != nil {
				return err
			}
			color.Green("wrote %d clauses for a %s number", len(result.Instance.CNF.Clauses), result.Classification)
			return nil
		},
	}

	cmd.Flags().StringVarP(&minValue, "min-value", "m", "2", "the smallest value the random number can take")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "use the seed to generate a pseudorandom number")
	cmd.Flags().BoolVar(&prime, "prime", false, "generate a prime number")
	cmd.Flags().BoolVar(&noPrime, "no-prime", false, "generate a composite number")
	cmd.Flags().Float64VarP(&errRate, "error", "e", 0.0, "probability that a composite number is declared prime")
	cmd.Flags().IntVarP(&tries, "tries", "t", 1000, "the number of tries to generate a matching number")
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "-", "redirect the output from stdout to the specified file")
	return cmd
}

// factorizationComments renders the DIMACS comment block in the
// original's order: an optional "range"/"seed" pair, a blank
// separator, then the factorization/factor-variable lines — spec §4.I.
func factorizationComments(inst factoring.Instance, maxValue *big.Int, seed *int64) []string {
	var comments []string

	if maxValue != nil {
		comments = append(comments, fmt.Sprintf("Random number in range: 2 - %s", maxValue.String()))
	}
	if seed != nil {
		comments = append(comments, fmt.Sprintf("Seed: %d", *seed))
	}
	if len(comments) > 0 {
		comments = append(comments, "")
	}

	comments = append(comments,
		fmt.Sprintf("Factorization of the number: %s", inst.Number.String()),
		fmt.Sprintf("Factor 1 is encoded in the variables: %v", inst.Factor1),
		fmt.Sprintf("Factor 2 is encoded in the variables: %v", inst.Factor2),
	)

	return comments
}

func emit(inst factoring.Instance, comments []string, outfile, defaultName string) error {
	path, err := resolveOutputPath(outfile, defaultName)
	if err != nil {
		return err
	}
	return writeOutput(path, dimacs.Encode(inst.CNF, comments))
}
