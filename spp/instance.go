package spp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Instance file names inside an instance directory.
const (
	legsFile      = "legs.csv"      // required
	pairingsFile  = "pairings.csv"  // required
	incidenceFile = "incidence.csv" // optional; inference fallback
	costsFile     = "costs.csv"     // optional; leg-count fallback
)

// InstancePairing is one candidate column of the SPP: a pairing with its
// dense index, external identifier, base and covered-leg list.
type InstancePairing struct {
	Index int
	ID    string
	Base  string
	Legs  []string
}

// Instance holds one coverage instance loaded from a directory of up to
// four tabular files. Loaders may run individually (LoadLegs,
// LoadPairings, LoadIncidence, InferIncidence, LoadCosts) or through
// Load, which applies the canonical order with all fallbacks.
//
// Single-threaded by design: the leg registry grows in place during
// inference and must not be read by matrix construction concurrently.
type Instance struct {
	dir string
	log *zap.Logger

	// Legs is the append-only leg universe; nil until LoadLegs.
	Legs *LegRegistry

	// Pairings are sorted by their (user-supplied or auto) index and then
	// renumbered densely from 0, so matrix columns are contiguous
	// regardless of input ordering or gaps.
	Pairings []InstancePairing

	// Costs holds one cost per pairing index; nil until LoadCosts (or
	// BuildModel, which applies the leg-count default lazily).
	Costs []float64

	// Inc is the coverage matrix; nil until LoadIncidence or
	// InferIncidence.
	Inc *Incidence
}

// NewInstance prepares an Instance rooted at dir. No file I/O happens
// here; loading is deferred to the explicit loader methods so stages can
// run in a flexible order while debugging data problems.
func NewInstance(dir string, opts ...Option) *Instance {
	o := gatherOptions(opts...)

	return &Instance{dir: dir, log: o.log}
}

// Load runs the canonical ingestion pipeline: legs, pairings, incidence
// (direct load when the file exists, inference otherwise), costs.
func (in *Instance) Load() error {
	if err := in.LoadLegs(); err != nil {
		return err
	}
	if err := in.LoadPairings(); err != nil {
		return err
	}

	loaded, err := in.LoadIncidence()
	if err != nil {
		return err
	}
	if !loaded {
		if err = in.InferIncidence(); err != nil {
			return err
		}
	}

	return in.LoadCosts()
}

// LoadLegs reads legs.csv and assigns each row's leg a stable dense
// index. The leg column resolves through the aliases {leg_id, leg};
// its absence, like the file's, is fatal.
func (in *Instance) LoadLegs() error {
	header, rows, err := in.readTable(legsFile, ErrMissingLegsFile)
	if err != nil {
		return err
	}

	cols := resolveColumns(header, legsSchema)
	legPos, ok := cols["leg"]
	if !ok {
		return ErrMissingLegColumn
	}

	in.Legs = NewLegRegistry()
	for _, row := range rows {
		in.Legs.Add(strings.TrimSpace(cell(row, legPos)))
	}

	in.log.Info("loaded legs", zap.Int("count", in.Legs.Len()))

	return nil
}

// LoadPairings reads pairings.csv into the candidate column set.
//
// Columns resolve by case-insensitive alias (index, id, base, legs; see
// pairingsSchema); every column is optional. Missing index values are
// auto-numbered by row position; missing IDs default to the index;
// leg lists split on ';' when present, else on ','. After loading,
// pairings are sorted by index and renumbered densely from 0.
func (in *Instance) LoadPairings() error {
	header, rows, err := in.readTable(pairingsFile, ErrMissingPairingsFile)
	if err != nil {
		return err
	}

	cols := resolveColumns(header, pairingsSchema)
	idxPos, hasIdx := cols["index"]
	idPos, hasID := cols["id"]
	basePos, hasBase := cols["base"]
	legsPos, hasLegs := cols["legs"]

	pairings := make([]InstancePairing, 0, len(rows))
	for autoIdx, row := range rows {
		index := autoIdx
		if hasIdx {
			if raw := strings.TrimSpace(cell(row, idxPos)); raw != "" {
				index, err = strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("spp: pairings.csv row %d: bad pairing_index %q: %w", autoIdx+1, raw, err)
				}
			}
		}

		id := strconv.Itoa(index)
		if hasID {
			if raw := strings.TrimSpace(cell(row, idPos)); raw != "" {
				id = raw
			}
		}

		base := ""
		if hasBase {
			base = strings.TrimSpace(cell(row, basePos))
		}

		var legs []string
		if hasLegs {
			legs = splitLegList(cell(row, legsPos))
		}

		pairings = append(pairings, InstancePairing{Index: index, ID: id, Base: base, Legs: legs})
	}

	// Normalize: sort by the possibly sparse user indices, then renumber
	// densely so matrix columns line up with slice positions.
	sort.SliceStable(pairings, func(i, j int) bool { return pairings[i].Index < pairings[j].Index })
	for i := range pairings {
		pairings[i].Index = i
	}

	in.Pairings = pairings
	in.log.Info("loaded pairings", zap.Int("count", len(pairings)))

	return nil
}

// LoadIncidence populates the coverage matrix directly from
// (leg_index, pairing_index) pairs when incidence.csv exists.
//
// Returns false with no error when the file is absent — inference is the
// fallback, not a failure. Out-of-range pairs are silently ignored.
// Requires legs and pairings to be loaded (the matrix shape is fixed to
// the legs.csv universe; inference is the only growth point).
func (in *Instance) LoadIncidence() (bool, error) {
	if in.Legs == nil {
		return false, ErrLegsNotLoaded
	}
	if in.Pairings == nil {
		return false, ErrPairingsNotLoaded
	}

	header, rows, err := in.readTable(incidenceFile, nil)
	if errors.Is(err, fs.ErrNotExist) {
		in.log.Info("no incidence.csv found; inferring from pairings")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	cols := resolveColumns(header, incidenceSchema)
	legPos, hasLeg := cols["leg"]
	pairingPos, hasPairing := cols["pairing"]
	if !hasLeg || !hasPairing {
		return false, ErrMissingIncidenceColumns
	}

	a := NewIncidence(in.Legs.Len(), len(in.Pairings))
	for rowNum, row := range rows {
		li, liErr := strconv.Atoi(strings.TrimSpace(cell(row, legPos)))
		pj, pjErr := strconv.Atoi(strings.TrimSpace(cell(row, pairingPos)))
		if liErr != nil || pjErr != nil {
			return false, fmt.Errorf("spp: incidence.csv row %d: bad index pair", rowNum+1)
		}
		if li >= 0 && li < a.Rows() && pj >= 0 && pj < a.Cols() {
			a.Set(li, pj)
		}
	}

	in.Inc = a
	in.log.Info("loaded incidence matrix", zap.Int("legs", a.Rows()), zap.Int("pairings", a.Cols()))

	return true, nil
}

// InferIncidence constructs the coverage matrix from each pairing's leg
// list. Legs not present in the registry are appended with a warning
// rather than failing — the model must stay constructible even from an
// incomplete legs file. This is the only point where the leg universe
// grows after the initial load; already-assigned indices are untouched.
func (in *Instance) InferIncidence() error {
	if in.Legs == nil {
		return ErrLegsNotLoaded
	}
	if in.Pairings == nil {
		return ErrPairingsNotLoaded
	}

	// Grow the universe first so the matrix can be shaped once.
	for _, p := range in.Pairings {
		for _, leg := range p.Legs {
			if _, ok := in.Legs.Index(leg); !ok {
				in.log.Warn("leg not present in legs.csv; adding it", zap.String("leg", leg))
				in.Legs.Add(leg)
			}
		}
	}

	a := NewIncidence(in.Legs.Len(), len(in.Pairings))
	for _, p := range in.Pairings {
		for _, leg := range p.Legs {
			li, _ := in.Legs.Index(leg)
			a.Set(li, p.Index)
		}
	}

	in.Inc = a
	in.log.Info("incidence matrix inferred", zap.Int("legs", a.Rows()), zap.Int("pairings", a.Cols()))

	return nil
}

// LoadCosts fills the cost vector, one entry per pairing index.
//
// The default is each pairing's leg count — a proxy that keeps the
// optimization well-posed when no explicit costs exist. When costs.csv
// is present, rows override the default by pairing_index or pairing_id
// lookup; unresolvable or malformed rows are skipped with a warning and
// retain the default, never failing the whole load.
func (in *Instance) LoadCosts() error {
	if in.Pairings == nil {
		return ErrPairingsNotLoaded
	}

	costs := make([]float64, len(in.Pairings))
	for i, p := range in.Pairings {
		costs[i] = float64(len(p.Legs))
	}
	in.Costs = costs

	header, rows, err := in.readTable(costsFile, nil)
	if errors.Is(err, fs.ErrNotExist) {
		in.log.Info("no costs.csv found; using leg-count costs")
		return nil
	}
	if err != nil {
		return err
	}

	cols := resolveColumns(header, costsSchema)
	idxPos, hasIdx := cols["index"]
	idPos, hasID := cols["id"]
	costPos, hasCost := cols["cost"]
	if !hasCost {
		in.log.Warn("costs.csv has no cost column; keeping leg-count costs")
		return nil
	}

	for rowNum, row := range rows {
		pj, ok := in.resolvePairingIndex(row, idxPos, hasIdx, idPos, hasID)
		if !ok {
			in.log.Warn("skipping unresolvable cost row", zap.Int("row", rowNum+1))
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(cell(row, costPos)), 64)
		if err != nil {
			in.log.Warn("skipping malformed cost row", zap.Int("row", rowNum+1), zap.Error(err))
			continue
		}
		if pj >= 0 && pj < len(in.Costs) {
			in.Costs[pj] = value
		}
	}

	in.log.Info("loaded costs", zap.Int("pairings", len(in.Costs)))

	return nil
}

// resolvePairingIndex maps one costs.csv row to a pairing index, trying
// the explicit index column first, then the id column.
func (in *Instance) resolvePairingIndex(row []string, idxPos int, hasIdx bool, idPos int, hasID bool) (int, bool) {
	if hasIdx {
		if raw := strings.TrimSpace(cell(row, idxPos)); raw != "" {
			pj, err := strconv.Atoi(raw)
			if err != nil {
				return 0, false
			}
			return pj, true
		}
	}
	if hasID {
		if id := strings.TrimSpace(cell(row, idPos)); id != "" {
			for _, p := range in.Pairings {
				if p.ID == id {
					return p.Index, true
				}
			}
		}
	}

	return 0, false
}

// readTable opens one instance file and returns its header plus data
// rows. When the file does not exist: if missingErr is non-nil the file
// is required and missingErr is returned; otherwise the raw fs.ErrNotExist
// surfaces so callers can branch on the optional-file fallback.
func (in *Instance) readTable(name string, missingErr error) ([]string, [][]string, error) {
	path := filepath.Join(in.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && missingErr != nil {
			return nil, nil, fmt.Errorf("%w: %s", missingErr, path)
		}
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; cell() guards access
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("spp: read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

// cell returns row[pos] or "" when the row is too short.
func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}

	return row[pos]
}

// splitLegList splits a raw leg-list cell on ';' when one is present,
// else on ',', trimming tokens and dropping empties.
func splitLegList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}

	var legs []string
	for _, tok := range strings.Split(raw, sep) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			legs = append(legs, tok)
		}
	}

	return legs
}
