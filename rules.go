package flin

import "github.com/formalverse/flin/internal"

// Rule names, as they appear in issues and in the configuration file.
const (
	RuleInvalidFormula   = internal.RuleInvalidFormula
	RuleOperatorBasis    = internal.RuleOperatorBasis
	RuleMaxDepth         = internal.RuleMaxDepth
	RuleDuplicateFormula = internal.RuleDuplicateFormula
)
