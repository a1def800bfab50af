package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// patternFile is the --patterns-file format. Either a mapping with a
// "patterns" key or a bare sequence is accepted:
//
//	patterns:
//	  - "[ac][xi][ea] is the best"
//	  - 'x*box'
type patternFile struct {
	Patterns []string `yaml:"patterns"`
}

func loadPatternFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var patterns []string
		if err := root.Decode(&patterns); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return patterns, nil
	}

	var pf patternFile
	if err := root.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pf.Patterns, nil
}

// collectPatterns merges --pattern flags and the pattern file, flags first.
func collectPatterns(opts *options) ([]string, error) {
	patterns := append([]string(nil), opts.patterns...)
	if opts.patternsFile != "" {
		fromFile, err := loadPatternFile(opts.patternsFile)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, fromFile...)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no pattern given (use -p or --patterns-file)")
	}
	return patterns, nil
}
