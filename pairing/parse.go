package pairing

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// solutionPattern matches one pairing block of the seed-solution text:
//
//	Pairing <int> : Base <token> : <csv-of-duties> ;
//
// Anything that does not match is skipped silently; the parse is
// deliberately best-effort and raises no validation errors.
var solutionPattern = regexp.MustCompile(`Pairing\s+(\d+)\s*:\s*Base\s+(\w+)\s*:\s*([^;]+);`)

// ParseSolution extracts all pairing blocks from r.
//
// Each match yields one Pairing with a synthetic ID "SOL_<n>", a trimmed
// base and a duty list split on commas with empty tokens discarded.
// Malformed or non-matching text yields zero records, not an error.
//
// Errors: only read failures from r.
//
// Complexity: O(len(text)).
func ParseSolution(r io.Reader) (Solution, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pairing: read solution: %w", err)
	}

	var sol Solution
	for _, m := range solutionPattern.FindAllStringSubmatch(string(data), -1) {
		var duties []string
		for _, tok := range strings.Split(m[3], ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				duties = append(duties, tok)
			}
		}
		sol = append(sol, Pairing{
			ID:     "SOL_" + m[1],
			Base:   strings.TrimSpace(m[2]),
			Duties: duties,
		})
	}

	return sol, nil
}

// LoadSolution reads and parses the seed solution at path.
// A missing file is the only fatal condition of the parse stage.
func LoadSolution(path string) (Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pairing: open solution: %w", err)
	}
	defer f.Close()

	return ParseSolution(f)
}
