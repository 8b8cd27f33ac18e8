package knapsack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// ErrMalformedCertificate indicates a certificate that cannot be checked.
var ErrMalformedCertificate = errors.New("knapsack: malformed certificate")

type certificateJSON struct {
	Items []int `json:"items"`
}

// WriteCertificate encodes the selected items of s as {"items": [...]}.
func WriteCertificate(w io.Writer, s *Solution) error {
	return json.NewEncoder(w).Encode(certificateJSON{Items: s.Selected()})
}

// Report is the outcome of checking a certificate.
type Report struct {
	NumberOfItems      int // distinct selected items
	NumberOfDuplicates int
	Weight             int64
	Capacity           int64
	Profit             int64
	Feasible           bool
}

// Check evaluates a certificate against in. Duplicated items count towards
// weight and profit but make the certificate infeasible.
//
// Complexity: O(len(items)).
func Check(in *Instance, data []byte) (Report, error) {
	if !gjson.ValidBytes(data) {
		return Report{}, fmt.Errorf("%w: invalid JSON", ErrMalformedCertificate)
	}
	items := gjson.GetBytes(data, "items")
	if !items.IsArray() {
		return Report{}, fmt.Errorf("%w: items", ErrMalformedCertificate)
	}

	rep := Report{Capacity: in.Capacity}
	seen := make(map[int]struct{})
	var err error
	items.ForEach(func(_, v gjson.Result) bool {
		j := int(v.Int())
		if v.Type != gjson.Number || j < 0 || j >= len(in.Items) {
			err = fmt.Errorf("%w: item %s out of range", ErrMalformedCertificate, v.Raw)
			return false
		}
		rep.Weight += in.Items[j].Weight
		rep.Profit += in.Items[j].Profit
		if _, dup := seen[j]; dup {
			rep.NumberOfDuplicates++
		}
		seen[j] = struct{}{}
		return true
	})
	if err != nil {
		return Report{}, err
	}
	rep.NumberOfItems = len(seen)
	rep.Feasible = rep.NumberOfDuplicates == 0 && rep.Weight <= in.Capacity
	return rep, nil
}
