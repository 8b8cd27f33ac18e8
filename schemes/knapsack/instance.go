package knapsack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/tidwall/gjson"
)

// Sentinel errors for instance input.
var (
	// ErrNilInstance indicates New was given no instance.
	ErrNilInstance = errors.New("knapsack: instance is nil")

	// ErrMalformedInstance indicates invalid JSON or a missing field.
	ErrMalformedInstance = errors.New("knapsack: malformed instance")

	// ErrLengthMismatch indicates weights and profits of different lengths.
	ErrLengthMismatch = errors.New("knapsack: weights and profits differ in length")

	// ErrNegativeValue indicates a negative capacity, weight or profit.
	ErrNegativeValue = errors.New("knapsack: negative value")
)

// Item is one selectable object.
type Item struct {
	Weight int64
	Profit int64
}

// Instance is a knapsack instance.
type Instance struct {
	Capacity int64
	Items    []Item
}

// AddItem appends an item and returns its index.
func (in *Instance) AddItem(weight, profit int64) int {
	in.Items = append(in.Items, Item{Weight: weight, Profit: profit})
	return len(in.Items) - 1
}

// NumberOfItems returns len(in.Items).
func (in *Instance) NumberOfItems() int { return len(in.Items) }

// TotalWeight sums the weights of all items.
func (in *Instance) TotalWeight() int64 {
	var total int64
	for _, it := range in.Items {
		total += it.Weight
	}
	return total
}

// ParseInstance decodes an instance from its JSON form.
func ParseInstance(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInstance)
	}
	root := gjson.ParseBytes(data)

	capacity := root.Get("capacity")
	if capacity.Type != gjson.Number {
		return nil, fmt.Errorf("%w: capacity", ErrMalformedInstance)
	}
	weights, err := readInt64s(root.Get("weights"), "weights")
	if err != nil {
		return nil, err
	}
	profits, err := readInt64s(root.Get("profits"), "profits")
	if err != nil {
		return nil, err
	}
	if len(weights) != len(profits) {
		return nil, fmt.Errorf("%w: %d weights, %d profits", ErrLengthMismatch, len(weights), len(profits))
	}

	in := &Instance{Capacity: capacity.Int(), Items: make([]Item, 0, len(weights))}
	if in.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrNegativeValue, in.Capacity)
	}
	for j := range weights {
		if weights[j] < 0 || profits[j] < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrNegativeValue, j)
		}
		in.AddItem(weights[j], profits[j])
	}
	return in, nil
}

// ReadInstance reads and decodes an instance file.
func ReadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("knapsack: read instance: %w", err)
	}
	return ParseInstance(data)
}

func readInt64s(v gjson.Result, field string) ([]int64, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInstance, field)
	}
	arr := v.Array()
	out := make([]int64, len(arr))
	for i, x := range arr {
		if x.Type != gjson.Number {
			return nil, fmt.Errorf("%w: %s[%d]", ErrMalformedInstance, field, i)
		}
		out[i] = x.Int()
	}
	return out, nil
}

type instanceJSON struct {
	Capacity int64   `json:"capacity"`
	Weights  []int64 `json:"weights"`
	Profits  []int64 `json:"profits"`
}

// Write encodes the instance as JSON to w.
func (in *Instance) Write(w io.Writer) error {
	doc := instanceJSON{
		Capacity: in.Capacity,
		Weights:  make([]int64, len(in.Items)),
		Profits:  make([]int64, len(in.Items)),
	}
	for j, it := range in.Items {
		doc.Weights[j] = it.Weight
		doc.Profits[j] = it.Profit
	}
	return json.NewEncoder(w).Encode(doc)
}

// Generate draws an instance with n items: weights in [0, 1e6], each profit
// in [weight, weight+1e4], capacity between a quarter and three quarters of
// the total weight.
//
// Complexity: O(n).
func Generate(n int, r *rand.Rand) *Instance {
	in := &Instance{Items: make([]Item, 0, n)}
	for j := 0; j < n; j++ {
		w := r.Int63n(1_000_001)
		in.AddItem(w, w+r.Int63n(10_001))
	}
	total := in.TotalWeight()
	lo, hi := total/4, total*3/4
	in.Capacity = lo + r.Int63n(hi-lo+1)
	return in
}
