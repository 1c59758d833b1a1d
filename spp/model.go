package spp

// BuildModel assembles the normalized binary program from the loaded
// instance: one binary variable per pairing index, objective = Costs·x,
// and one exactly-one coverage constraint per leg row.
//
// Missing stages are completed lazily with their documented fallbacks:
// an absent incidence matrix is inferred from pairing leg lists, an
// absent (or misaligned) cost vector falls back to leg counts via
// LoadCosts. Legs and pairings themselves must have been loaded.
//
// Complexity: O(m·n) when inference runs, O(1) otherwise.
func (in *Instance) BuildModel() (*Model, error) {
	if in.Legs == nil {
		return nil, ErrLegsNotLoaded
	}
	if in.Pairings == nil {
		return nil, ErrPairingsNotLoaded
	}

	if in.Inc == nil {
		if err := in.InferIncidence(); err != nil {
			return nil, err
		}
	}
	if len(in.Costs) != len(in.Pairings) {
		if err := in.LoadCosts(); err != nil {
			return nil, err
		}
	}

	return &Model{Costs: in.Costs, Inc: in.Inc, Sense: SenseExactlyOne}, nil
}

// Solve builds the model, delegates to s and interprets the outcome.
//
// Exactly two outcomes are meaningful: a solver-reported optimum, whose
// selected pairing indices are returned with a nil Diagnosis, and
// everything else, which uniformly yields an empty selection plus a
// structural Diagnosis of the incidence matrix. A non-optimal status is
// a business outcome, not an error; the error return covers only broken
// inputs and solver transport failures.
func (in *Instance) Solve(s Solver) ([]int, *Diagnosis, error) {
	m, err := in.BuildModel()
	if err != nil {
		return nil, nil, err
	}

	res, err := s.Solve(m)
	if err != nil {
		return nil, nil, err
	}

	if res.Status != StatusOptimal {
		in.log.Warn("solve did not reach optimality; diagnosing structure")
		return nil, Diagnose(m.Inc, in.Legs), nil
	}

	return res.Selected, nil, nil
}
