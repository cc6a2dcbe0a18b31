package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formalverse/flin/internal/fresh"
	"github.com/formalverse/flin/internal/syntax"
)

var (
	substFromPolish bool
	substToPolish   bool
	varSubsts       []string
	opSubsts        []string
	renamePrefix    string
)

var substCmd = &cobra.Command{
	Use:   "subst [formulas...]",
	Short: "Apply variable and operator substitutions to formulas",
	Long: `Apply substitutions to formulas. Variable substitutions replace every
occurrence of a variable with a formula, all at once. Operator substitutions
replace every occurrence of an operator or constant with a template over the
reserved variables p and q. With --rename, every variable is renamed to a
freshly numbered one built from the given prefix.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide formulas")
			os.Exit(1)
		}

		for _, arg := range args {
			f, err := parseArgument(arg, substFromPolish)
			if err == nil {
				f, err = applySubstitutions(f)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			if substToPolish {
				fmt.Println(f.Polish())
			} else {
				fmt.Println(f)
			}
		}
	},
}

func init() {
	substCmd.Flags().BoolVar(&substFromPolish, "from-polish", false, "Parse input in polish notation")
	substCmd.Flags().BoolVar(&substToPolish, "polish", false, "Print output in polish notation")
	substCmd.Flags().StringArrayVar(&varSubsts, "var", nil, "Variable substitution NAME=FORMULA (repeatable)")
	substCmd.Flags().StringArrayVar(&opSubsts, "op", nil, "Operator substitution OP=TEMPLATE (repeatable)")
	substCmd.Flags().StringVar(&renamePrefix, "rename", "", "Rename every variable to PREFIX1, PREFIX2, ...")
}

func applySubstitutions(f *syntax.Formula) (*syntax.Formula, error) {
	if len(varSubsts) > 0 {
		m, err := parseSubstPairs(varSubsts)
		if err != nil {
			return nil, err
		}
		f, err = f.SubstituteVariables(m)
		if err != nil {
			return nil, err
		}
	}

	if len(opSubsts) > 0 {
		m, err := parseSubstPairs(opSubsts)
		if err != nil {
			return nil, err
		}
		f, err = f.SubstituteOperators(m)
		if err != nil {
			return nil, err
		}
	}

	if renamePrefix != "" {
		return renameVariables(f, renamePrefix)
	}
	return f, nil
}

func parseSubstPairs(pairs []string) (map[string]*syntax.Formula, error) {
	m := make(map[string]*syntax.Formula, len(pairs))
	for _, pair := range pairs {
		key, src, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("substitution %q is not of the form KEY=FORMULA", pair)
		}
		f, err := parseArgument(src, substFromPolish)
		if err != nil {
			return nil, fmt.Errorf("substitution for %q: %w", key, err)
		}
		m[key] = f
	}
	return m, nil
}

// renameVariables maps every variable of f to a freshly numbered variable
// built from prefix, in sorted order of the original names.
func renameVariables(f *syntax.Formula, prefix string) (*syntax.Formula, error) {
	seq := fresh.NewSequence(prefix)
	m := make(map[string]*syntax.Formula)
	for _, v := range f.Variables() {
		name := seq.Next()
		if !syntax.IsVariable(name) {
			return nil, fmt.Errorf("prefix %q does not produce valid variable names", prefix)
		}
		g, err := syntax.New(name)
		if err != nil {
			return nil, err
		}
		m[v] = g
	}
	return f.SubstituteVariables(m)
}
