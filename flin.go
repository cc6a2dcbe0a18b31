// Package flin checks files of propositional formulas, one formula per
// line, against a configurable set of rules. The subpackages expose the
// moving parts; this package is the convenience surface for embedding.
package flin

import (
	"github.com/formalverse/flin/check"
	"github.com/formalverse/flin/internal/types"
)

// Issue is one reported problem in a formula file.
type Issue = types.Issue

// CheckSource checks in-memory formula file content using the configuration
// at configPath. A missing configuration file is not an error; defaults
// apply.
func CheckSource(configPath string, source []byte) ([]Issue, error) {
	engine, err := check.New(configPath)
	if err != nil {
		return nil, err
	}
	return engine.RunSource(source)
}

// CheckFile checks a single formula file on disk.
func CheckFile(configPath, filename string) ([]Issue, error) {
	engine, err := check.New(configPath)
	if err != nil {
		return nil, err
	}
	return engine.Run(filename)
}
