// Package formatter renders issues as annotated, colorized diagnostics with
// a snippet of the offending line.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/formalverse/flin/internal"
	tt "github.com/formalverse/flin/internal/types"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
)

// issueFormatter is the interface that wraps the IssueTemplate method.
// Each implementation shapes the diagnostic for one class of rule.
type issueFormatter interface {
	IssueTemplate() string
}

// getIssueFormatter returns the formatter for the given rule, falling back
// to the general one.
func getIssueFormatter(rule string) issueFormatter {
	switch rule {
	case internal.RuleOperatorBasis:
		return &BasisIssueFormatter{}
	case internal.RuleDuplicateFormula:
		return &DuplicateIssueFormatter{}
	default:
		return &GeneralIssueFormatter{}
	}
}

// GenerateFormattedIssue formats a slice of issues into a human-readable
// string, picking a formatter per issue based on its rule.
func GenerateFormattedIssue(issues []tt.Issue, snippet *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		formatter := getIssueFormatter(issue.Rule)
		builder.WriteString(buildIssue(issue, snippet, formatter))
	}
	return builder.String()
}

type issueData struct {
	Severity        string
	Rule            string
	Filename        string
	Line            int
	Column          int
	MaxLineNumWidth int
	Padding         string
	Message         string
	Suggestion      string
	Note            string
	SnippetLines    []string
}

func buildIssue(issue tt.Issue, snippet *internal.SourceCode, formatter issueFormatter) string {
	maxLineNumWidth := len(fmt.Sprintf("%d", issue.Line))

	data := issueData{
		Severity:        severityFor(issue.Category),
		Rule:            issue.Rule,
		Filename:        issue.Filename,
		Line:            issue.Line,
		Column:          issue.Column,
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		Message:         issue.Message,
		Suggestion:      issue.Suggestion,
		Note:            issue.Note,
		SnippetLines:    snippet.Lines,
	}

	funcMap := template.FuncMap{
		"header":          header,
		"snippet":         formulaSnippet,
		"caretAndMessage": caretAndMessage,
		"suggestion":      suggestion,
		"note":            note,
	}

	tmpl := template.Must(template.New("issue").Funcs(funcMap).Parse(formatter.IssueTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v", err)
	}
	return buf.String()
}

// severityFor maps an issue category to a display severity. Syntax problems
// make the file unusable; everything else is stylistic.
func severityFor(category string) string {
	if category == "syntax" {
		return "error"
	}
	return "warning"
}

// template helper functions

func header(rule string, severity string, maxLineNumWidth int, filename string, line int, column int) string {
	var endString string
	switch severity {
	case "error":
		endString = errorStyle.Sprint("error: ")
	default:
		endString = warningStyle.Sprint("warning: ")
	}

	endString += ruleStyle.Sprintf("%s\n", rule)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s:%d:%d\n", filename, line, column)
	return endString
}

func formulaSnippet(snippetLines []string, line int, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	if line-1 < 0 || line-1 >= len(snippetLines) {
		return endString
	}

	lineNum := fmt.Sprintf("%*d", maxLineNumWidth, line)
	endString += lineStyle.Sprintf("%s | ", lineNum)
	endString += fmt.Sprintf("%s\n", snippetLines[line-1])
	return endString
}

func caretAndMessage(message string, padding string, line int, column int, snippetLines []string) string {
	endString := lineStyle.Sprintf("%s| ", padding)
	if line-1 >= 0 && line-1 < len(snippetLines) && column > 0 {
		endString += strings.Repeat(" ", column-1)
		endString += messageStyle.Sprint("^")
	}
	endString += "\n"

	endString += lineStyle.Sprintf("%s= ", padding)
	endString += messageStyle.Sprintf("%s\n", message)
	return endString
}

func suggestion(suggestion string, padding string, maxLineNumWidth int, line int) string {
	if suggestion == "" {
		return ""
	}

	endString := suggestionStyle.Sprint("Suggestion:\n")
	endString += lineStyle.Sprintf("%s|\n", padding)

	for i, suggestionLine := range strings.Split(suggestion, "\n") {
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, line+i)
		endString += lineStyle.Sprintf("%s | %s\n", lineNum, suggestionLine)
	}

	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func note(note string) string {
	if note == "" {
		return ""
	}

	endString := suggestionStyle.Sprint("Note: ")
	endString += lineStyle.Sprintf("%s\n", note)
	return endString
}
