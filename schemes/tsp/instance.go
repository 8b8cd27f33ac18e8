package tsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/tidwall/gjson"
)

// Sentinel errors for instance input.
var (
	// ErrNilInstance indicates New was given no instance.
	ErrNilInstance = errors.New("tsp: instance is nil")

	// ErrEmptyInstance indicates an instance without locations.
	ErrEmptyInstance = errors.New("tsp: instance has no locations")

	// ErrMalformedInstance indicates invalid JSON or a missing field.
	ErrMalformedInstance = errors.New("tsp: malformed instance")

	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("tsp: xs and ys differ in length")
)

// Location is a point in the plane.
type Location struct {
	X int64
	Y int64
}

// Instance is a set of locations to visit.
type Instance struct {
	Locations []Location
}

// AddLocation appends a location and returns its id.
func (in *Instance) AddLocation(x, y int64) int {
	in.Locations = append(in.Locations, Location{X: x, Y: y})
	return len(in.Locations) - 1
}

// NumberOfLocations returns len(in.Locations).
func (in *Instance) NumberOfLocations() int { return len(in.Locations) }

// Distance is the Euclidean distance between locations i and j rounded to
// the nearest integer.
func (in *Instance) Distance(i, j int) int64 {
	dx := float64(in.Locations[j].X - in.Locations[i].X)
	dy := float64(in.Locations[j].Y - in.Locations[i].Y)
	return int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// ParseInstance decodes an instance from its JSON form.
func ParseInstance(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInstance)
	}
	root := gjson.ParseBytes(data)
	xs, err := readInt64s(root.Get("xs"), "xs")
	if err != nil {
		return nil, err
	}
	ys, err := readInt64s(root.Get("ys"), "ys")
	if err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(xs), len(ys))
	}
	in := &Instance{Locations: make([]Location, 0, len(xs))}
	for i := range xs {
		in.AddLocation(xs[i], ys[i])
	}
	return in, nil
}

// ReadInstance reads and decodes an instance file.
func ReadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tsp: read instance: %w", err)
	}
	return ParseInstance(data)
}

func readInt64s(v gjson.Result, field string) ([]int64, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInstance, field)
	}
	var (
		out = make([]int64, 0, len(v.Array()))
		err error
	)
	v.ForEach(func(_, x gjson.Result) bool {
		if x.Type != gjson.Number {
			err = fmt.Errorf("%w: %s[%d]", ErrMalformedInstance, field, len(out))
			return false
		}
		out = append(out, x.Int())
		return true
	})
	return out, err
}

type instanceJSON struct {
	Xs []int64 `json:"xs"`
	Ys []int64 `json:"ys"`
}

// Write encodes the instance as JSON to w.
func (in *Instance) Write(w io.Writer) error {
	doc := instanceJSON{
		Xs: make([]int64, len(in.Locations)),
		Ys: make([]int64, len(in.Locations)),
	}
	for i, l := range in.Locations {
		doc.Xs[i], doc.Ys[i] = l.X, l.Y
	}
	return json.NewEncoder(w).Encode(doc)
}

// Generate draws n locations uniformly on the integer grid [0, 1000]².
func Generate(n int, r *rand.Rand) *Instance {
	in := &Instance{Locations: make([]Location, 0, n)}
	for i := 0; i < n; i++ {
		in.AddLocation(r.Int63n(1001), r.Int63n(1001))
	}
	return in
}
