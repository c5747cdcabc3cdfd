package fare

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned by Fit when the features are linearly dependent.
var ErrSingular = errors.New("fare: singular design matrix")

// maxCondition is the largest design matrix condition number Fit accepts.
const maxCondition = 1e10

// Fit estimates an ordinary least squares model with intercept for y ~ X.
// Each row of X holds one value per entry of features.
func Fit(features []string, X [][]float64, y []float64) (*LinearModel, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("fare: no training rows")
	}
	if len(X) != len(y) {
		return nil, fmt.Errorf("fare: %d rows but %d targets", len(X), len(y))
	}

	p := len(features)
	if p == 0 {
		return nil, fmt.Errorf("fare: no features")
	}
	for r, x := range X {
		if len(x) != p {
			return nil, fmt.Errorf("fare: row %d has %d values, expected %d", r, len(x), p)
		}
	}

	// Design matrix [1 | X].
	rows, cols := len(X), p+1
	if rows < cols {
		return nil, fmt.Errorf("%w: %d rows for %d unknowns", ErrSingular, rows, cols)
	}
	a := mat.NewDense(rows, cols, nil)
	for r, x := range X {
		a.Set(r, 0, 1)
		for j, v := range x {
			a.Set(r, j+1, v)
		}
	}
	b := mat.NewDense(rows, 1, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(a)
	if c := qr.Cond(); !(c <= maxCondition) {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, c)
	}

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: condition number %g", ErrSingular, float64(cond))
		}
		return nil, fmt.Errorf("fare: failed to solve least squares: %w", err)
	}

	coefficients := make([]float64, p)
	for j := range coefficients {
		coefficients[j] = beta.At(j+1, 0)
	}

	return &LinearModel{
		Features:     append([]string(nil), features...),
		Coefficients: coefficients,
		Intercept:    beta.At(0, 0),
		Samples:      rows,
		TrainedAt:    time.Now().UTC(),
	}, nil
}
