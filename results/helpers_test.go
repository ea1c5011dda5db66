package results_test

import (
	"math"

	"github.com/google/go-cmp/cmp"
)

// cmpNaN treats NaN cells as equal.
var cmpNaN = cmp.Comparer(func(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
})
