package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formalverse/flin/internal/syntax"
)

var (
	printFromPolish bool
	printToPolish   bool
	printVars       bool
	printOps        bool
)

var printCmd = &cobra.Command{
	Use:   "print [formulas...]",
	Short: "Parse formulas and print them in canonical notation",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide formulas")
			os.Exit(1)
		}

		for _, arg := range args {
			f, err := parseArgument(arg, printFromPolish)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			if printToPolish {
				fmt.Println(f.Polish())
			} else {
				fmt.Println(f)
			}
			if printVars {
				fmt.Printf("variables: %s\n", strings.Join(f.Variables(), " "))
			}
			if printOps {
				fmt.Printf("operators: %s\n", strings.Join(f.Operators(), " "))
			}
		}
	},
}

func init() {
	printCmd.Flags().BoolVar(&printFromPolish, "from-polish", false, "Parse input in polish notation")
	printCmd.Flags().BoolVar(&printToPolish, "polish", false, "Print output in polish notation")
	printCmd.Flags().BoolVar(&printVars, "vars", false, "List the variables of each formula")
	printCmd.Flags().BoolVar(&printOps, "ops", false, "List the operators and constants of each formula")
}

func parseArgument(arg string, fromPolish bool) (*syntax.Formula, error) {
	if fromPolish {
		return syntax.ParsePolish(arg)
	}
	return syntax.Parse(arg)
}
