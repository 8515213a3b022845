package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Cost is an activity cost as submitted by clients. Historically clients have
// sent numbers, numeric strings, empty strings and outright garbage here; a
// value that does not parse contributes 0 rather than failing the request.
type Cost float64

func (c *Cost) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*c = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*c = Cost(sanitize(f))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*c = 0
			return nil
		}
		*c = Cost(sanitize(f))
		return nil
	}

	*c = 0
	return nil
}

// sanitize keeps NaN and infinities out of budget sums.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// SumCosts totals a slice of raw cost values, counting anything non-finite
// as 0.
func SumCosts(costs []float64) float64 {
	var total float64
	for _, c := range costs {
		total += sanitize(c)
	}
	return total
}
