package formatter

type GeneralIssueFormatter struct{}

func (f *GeneralIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .Line .Column -}}
{{snippet .SnippetLines .Line .MaxLineNumWidth .Padding -}}
{{caretAndMessage .Message .Padding .Line .Column .SnippetLines}}
`
}

// BasisIssueFormatter adds the rewritten formula under the diagnostic.
type BasisIssueFormatter struct{}

func (f *BasisIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .Line .Column -}}
{{snippet .SnippetLines .Line .MaxLineNumWidth .Padding -}}
{{caretAndMessage .Message .Padding .Line .Column .SnippetLines}}
{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .Line}}
{{- end }}
`
}

// DuplicateIssueFormatter points back at the first occurrence.
type DuplicateIssueFormatter struct{}

func (f *DuplicateIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .Line .Column -}}
{{snippet .SnippetLines .Line .MaxLineNumWidth .Padding -}}
{{caretAndMessage .Message .Padding .Line .Column .SnippetLines}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
