package submodular

import (
	"time"
)

// MarginalGainMulti returns Δf(e|multi[i]) for every i, in input order.
//
// e is validated against every set before anything is evaluated. The
// originals and the augmented sets are each evaluated as one batch.
func (f *Function[T]) MarginalGainMulti(multi []Collection[T], e []T) (gains []T, err error) {
	workers := f.WorkerCount()
	start := time.Now()
	defer func() { f.observe(OpMarginalGainMulti, len(multi), workers, len(e), start, err) }()

	for i, S := range multi {
		if !S.Compatible(e) {
			return nil, &ErrDimensionMismatch{Expected: S.Dim(), Actual: len(e), Index: i}
		}
	}

	if len(multi) == 0 {
		return []T{}, nil
	}

	if mm, ok := f.eval.(MultiMarginalGainer[T]); ok {
		gains, err = mm.MarginalGainMulti(multi, e)
		if err != nil {
			return nil, evaluationError(-1, err)
		}
		if err := checkResultLen(len(gains), len(multi)); err != nil {
			return nil, err
		}
		return gains, nil
	}

	augmented := make([]Collection[T], len(multi))
	for i, S := range multi {
		augmented[i] = S.With(e)
	}

	base, err := f.evaluateBatch(multi, workers)
	if err != nil {
		return nil, err
	}
	withE, err := f.evaluateBatch(augmented, workers)
	if err != nil {
		return nil, err
	}

	gains = make([]T, len(multi))
	for i := range gains {
		gains[i] = withE[i] - base[i]
	}
	return gains, nil
}

// MarginalGainCandidates returns Δf(elems[j]|S) for every j, in input order.
//
// This is the hot path of greedy selection: S is evaluated once and its
// value reused for every candidate, and the augmented sets S ∪ {elems[j]}
// are evaluated as a single batch. Building an augmented set copies row
// headers only. An empty candidate list returns without evaluating S.
func (f *Function[T]) MarginalGainCandidates(S Collection[T], elems [][]T) (gains []T, err error) {
	workers := f.WorkerCount()
	start := time.Now()
	defer func() { f.observe(OpMarginalGainCandidates, len(elems), workers, S.Dim(), start, err) }()

	for j, e := range elems {
		if !S.Compatible(e) {
			return nil, &ErrDimensionMismatch{Expected: S.Dim(), Actual: len(e), Index: j}
		}
	}

	if len(elems) == 0 {
		return []T{}, nil
	}

	if cm, ok := f.eval.(CandidateMarginalGainer[T]); ok {
		gains, err = cm.MarginalGainCandidates(S, elems)
		if err != nil {
			return nil, evaluationError(-1, err)
		}
		if err := checkResultLen(len(gains), len(elems)); err != nil {
			return nil, err
		}
		return gains, nil
	}

	base, err := f.Evaluate(S)
	if err != nil {
		return nil, err
	}

	withE, err := f.evaluateBatch(augmentAll(S, elems), workers)
	if err != nil {
		return nil, err
	}

	gains = make([]T, len(elems))
	for j := range gains {
		gains[j] = withE[j] - base
	}
	return gains, nil
}

// augmentAll builds S ∪ {elems[j]} for every j. All row headers share one
// allocation; each augmented set owns a disjoint, capacity-capped window.
func augmentAll[T Scalar](S Collection[T], elems [][]T) []Collection[T] {
	n := S.Len() + 1
	block := make([][]T, n*len(elems))
	out := make([]Collection[T], len(elems))

	for j, e := range elems {
		rows := block[j*n : (j+1)*n : (j+1)*n]
		copy(rows, S.rows)
		rows[n-1] = e
		out[j] = Collection[T]{dim: S.dim, rows: rows}
	}
	return out
}
