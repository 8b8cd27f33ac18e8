package tsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// ErrMalformedCertificate indicates a certificate that cannot be checked.
var ErrMalformedCertificate = errors.New("tsp: malformed certificate")

type certificateJSON struct {
	Locations []int `json:"locations"`
}

// WriteCertificate encodes the closed tour of s as {"locations": [...]}.
func WriteCertificate(w io.Writer, s *Solution) error {
	return json.NewEncoder(w).Encode(certificateJSON{Locations: s.Tour})
}

// Report is the outcome of checking a certificate.
type Report struct {
	NumberOfLocations  int // distinct locations visited
	NumberOfDuplicates int
	Length             int64
	Feasible           bool
}

// Check evaluates a certificate against in. A feasible certificate is a
// closed sequence (first == last) visiting every location exactly once in
// between; the length is summed over consecutive entries.
//
// Complexity: O(len(locations)).
func Check(in *Instance, data []byte) (Report, error) {
	if !gjson.ValidBytes(data) {
		return Report{}, fmt.Errorf("%w: invalid JSON", ErrMalformedCertificate)
	}
	locs := gjson.GetBytes(data, "locations")
	if !locs.IsArray() {
		return Report{}, fmt.Errorf("%w: locations", ErrMalformedCertificate)
	}
	arr := locs.Array()
	if len(arr) == 0 {
		return Report{}, fmt.Errorf("%w: no locations", ErrMalformedCertificate)
	}

	n := in.NumberOfLocations()
	seq := make([]int, len(arr))
	for i, v := range arr {
		id := int(v.Int())
		if v.Type != gjson.Number || id < 0 || id >= n {
			return Report{}, fmt.Errorf("%w: location %s out of range", ErrMalformedCertificate, v.Raw)
		}
		seq[i] = id
	}

	var rep Report
	seen := make(map[int]struct{}, n)
	for i, id := range seq[:len(seq)-1] {
		if _, dup := seen[id]; dup {
			rep.NumberOfDuplicates++
		}
		seen[id] = struct{}{}
		rep.Length += in.Distance(id, seq[i+1])
	}
	rep.NumberOfLocations = len(seen)
	rep.Feasible = rep.NumberOfDuplicates == 0 &&
		rep.NumberOfLocations == n &&
		seq[0] == seq[len(seq)-1]
	return rep, nil
}
