package depcheck

import (
	"bufio"
	"os"
	"strings"

	"github.com/kpe/rasa-nlu/errors"
)

// ParseRequirements reads a grouped requirements manifest. A line starting
// with the comment marker introduces a logical requirement name; the
// following non-comment lines, until the next comment line, are the
// installable package names for that requirement.
//
//	# spacy
//	spacy
//	spacy-model-en
//
// parses to {"spacy": ["spacy", "spacy-model-en"]}. Lines before the first
// header and blank lines are ignored.
func ParseRequirements(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.ManifestReadError{Path: path, Err: err}
	}
	defer f.Close()

	requirements := make(map[string][]string)
	var current string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			current = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if current != "" {
				// Header with no install lines still declares the requirement.
				if _, ok := requirements[current]; !ok {
					requirements[current] = []string{}
				}
			}
			continue
		}
		if current == "" {
			continue
		}
		requirements[current] = append(requirements[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.ManifestReadError{Path: path, Err: err}
	}

	return requirements, nil
}
