// Package internal provides the core checking engine for flin.
//
// The engine operates on formula files: plain-text files holding one
// propositional formula per line, in either canonical infix or polish
// notation. Blank lines and lines starting with '#' are comments.
//
// Key components:
//
// Engine: validates every formula line and reports issues. Besides plain
// syntax errors it can enforce an operator basis (flagging formulas that use
// operators outside a configured set, with a rewrite into the basis as the
// suggestion), a maximum tree depth, and duplicate formulas within a file.
//
// Cache: a persistent result cache so unchanged files are not re-checked.
//
// SourceCode: the lines of a checked file, used by the formatters to render
// snippets under a diagnostic.
//
// The engine also supports a watch mode that re-checks formula files as they
// change on disk.
package internal
