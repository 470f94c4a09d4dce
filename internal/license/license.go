// Package license detects repository licenses so the aggregate report can
// carry them alongside language statistics.
package license

import (
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
)

// minConfidence is the detection threshold below which matches are ignored
const minConfidence = 0.9

// Match is one detected license
type Match struct {
	License    string  `json:"license"`
	Confidence float32 `json:"confidence"`
	File       string  `json:"file"`
}

// DetectInDirectory detects licenses from LICENSE-style files in a
// directory. Best effort: any failure returns an empty result.
func DetectInDirectory(dirPath string) []Match {
	fs, err := filer.FromDirectory(dirPath)
	if err != nil {
		return nil
	}

	detected, err := licensedb.Detect(fs)
	if err != nil {
		return nil
	}

	var matches []Match
	for licenseID, match := range detected {
		if match.Confidence > minConfidence {
			matches = append(matches, Match{
				License:    licenseID,
				Confidence: match.Confidence,
				File:       match.File,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].License < matches[j].License })
	return matches
}

// Names returns just the license identifiers of the matches
func Names(matches []Match) []string {
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.License)
	}
	return names
}
