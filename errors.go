package submodular

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when a dimension cannot be inferred from zero rows.
	ErrEmptyCollection = errors.New("submodular: empty collection")

	// ErrNilEvaluator is returned by New when no evaluator is supplied.
	ErrNilEvaluator = errors.New("submodular: nil evaluator")
)

// Kind classifies errors returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindDimensionMismatch
	KindInvalidDimension
	KindEmptyCollection
	KindEvaluation
	KindInvalidUtility
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindInvalidDimension:
		return "InvalidDimension"
	case KindEmptyCollection:
		return "EmptyCollection"
	case KindEvaluation:
		return "EvaluationFailure"
	case KindInvalidUtility:
		return "InvalidUtility"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// KindOf classifies err. Shape errors take precedence over evaluation errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var dm *ErrDimensionMismatch
	var id *ErrInvalidDimension
	var iu *ErrInvalidUtility
	var ev *ErrEvaluation

	switch {
	case errors.As(err, &dm):
		return KindDimensionMismatch
	case errors.As(err, &id):
		return KindInvalidDimension
	case errors.Is(err, ErrEmptyCollection):
		return KindEmptyCollection
	case errors.As(err, &iu):
		return KindInvalidUtility
	case errors.As(err, &ev):
		return KindEvaluation
	case errors.Is(err, ErrNilEvaluator):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}

// ErrDimensionMismatch indicates that an element's width differs from the
// dimension of the collection it is combined with.
//
// Index is the position of the offending set or candidate within a batch,
// or -1 for single-element operations.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Index    int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("submodular: dimension mismatch at index %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
	}
	return fmt.Sprintf("submodular: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid collection dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("submodular: invalid dimension: %d", e.Dimension)
}

// ErrEvaluation wraps a failure returned by an Evaluable.
//
// The original error can be accessed via errors.Unwrap, errors.Is and errors.As.
type ErrEvaluation struct {
	// Index is the position within the batch, or -1 outside a batch.
	Index int
	cause error
}

func (e *ErrEvaluation) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("submodular: evaluation failed at index %d: %v", e.Index, e.cause)
	}
	return fmt.Sprintf("submodular: evaluation failed: %v", e.cause)
}

func (e *ErrEvaluation) Unwrap() error { return e.cause }

// ErrInvalidUtility is returned in strict mode when an evaluator yields
// a negative or non-finite utility.
type ErrInvalidUtility struct {
	Index int
	Value float64
}

func (e *ErrInvalidUtility) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("submodular: invalid utility at index %d: %v", e.Index, e.Value)
	}
	return fmt.Sprintf("submodular: invalid utility: %v", e.Value)
}

// evaluationError tags err with a batch index. Errors already produced by
// this package keep their own type so KindOf stays accurate.
func evaluationError(index int, err error) error {
	var ev *ErrEvaluation
	if errors.As(err, &ev) {
		return err
	}
	var iu *ErrInvalidUtility
	if errors.As(err, &iu) {
		return err
	}
	return &ErrEvaluation{Index: index, cause: err}
}
