// Package parser turns raw model output into triples. The model is asked for
// newline-delimited JSON but routinely wraps it in markdown fences or leads
// with prose; everything that is not a decodable triple line is dropped.
package parser

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/model"
)

// ParseTriples splits raw output on line boundaries and decodes each
// non-blank line independently as one Triple. Lines that fail to decode are
// logged at warn level and skipped; a bad line never aborts its siblings.
// Order is preserved. The result may be empty.
func ParseTriples(raw string, log *zap.Logger) []model.Triple {
	if log == nil {
		log = zap.NewNop()
	}

	var triples []model.Triple
	for _, line := range strings.Split(stripFences(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var t model.Triple
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			log.Warn("discarding unparseable line",
				zap.String("line", line),
				zap.Error(err))
			continue
		}
		triples = append(triples, t)
	}
	return triples
}

// stripFences removes a surrounding markdown code fence if present, a common
// quirk even when the prompt forbids markdown.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return raw
	}

	s = strings.TrimPrefix(s, "```")
	// opening fence may carry a language tag, e.g. ```json
	if idx := strings.Index(s, "\n"); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "json" || first == "jsonl" || first == "" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return s
}
