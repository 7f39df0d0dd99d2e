// Package split partitions stored dataset examples into training, validation
// and test sets and exports them as CSV.
package split

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Example is one labeled paragraph ready for training.
type Example struct {
	Key   string
	Text  string
	Label bool
}

// Ratios are the shares of each partition; they must sum to 1.
type Ratios struct {
	Train      float64
	Validation float64
	Test       float64
}

// Validate checks that every share is in (0,1) and that they sum to 1.
func (r Ratios) Validate() error {
	for _, v := range []float64{r.Train, r.Validation, r.Test} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("split ratios must be between 0 and 1, got %v", r)
		}
	}
	if math.Abs(r.Train+r.Validation+r.Test-1) > 1e-6 {
		return errors.New("split ratios must sum to 1")
	}
	return nil
}

// Partition holds the three example sets.
type Partition struct {
	Train      []Example
	Validation []Example
	Test       []Example
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func shuffled(examples []Example, rng *rand.Rand) []Example {
	out := append([]Example(nil), examples...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// holdoutSize rounds up like scikit-learn's train_test_split does for a
// fractional test size.
func holdoutSize(share float64, n int) int {
	size := int(math.Ceil(share*float64(n) - 1e-9))
	return min(max(size, 0), n)
}

// Split shuffles examples with seed, keeps the train share, and divides the
// remainder between test and validation in proportion to their ratios. The
// same input and seed always yield the same partition.
func Split(examples []Example, ratios Ratios, seed uint64) (Partition, error) {
	if err := ratios.Validate(); err != nil {
		return Partition{}, err
	}
	rng := newRand(seed)
	all := shuffled(examples, rng)

	nHoldout := holdoutSize(1-ratios.Train, len(all))
	holdout, train := all[:nHoldout], all[nHoldout:]

	holdout = shuffled(holdout, rng)
	nTest := holdoutSize(ratios.Test/(ratios.Test+ratios.Validation), len(holdout))
	return Partition{
		Train:      train,
		Validation: holdout[nTest:],
		Test:       holdout[:nTest],
	}, nil
}

// Oversample balances examples by drawing negatives with replacement until
// there are as many as positives, then shuffles positives and draws together.
// When either class is empty the examples are only shuffled.
func Oversample(examples []Example, seed uint64) []Example {
	rng := newRand(seed)
	var positives, negatives []Example
	for _, ex := range examples {
		if ex.Label {
			positives = append(positives, ex)
		} else {
			negatives = append(negatives, ex)
		}
	}
	if len(positives) == 0 || len(negatives) == 0 {
		return shuffled(examples, rng)
	}
	out := make([]Example, 0, 2*len(positives))
	out = append(out, positives...)
	for range positives {
		out = append(out, negatives[rng.IntN(len(negatives))])
	}
	return shuffled(out, rng)
}

// Counts returns the number of positive and negative examples.
func Counts(examples []Example) (positives, negatives int) {
	for _, ex := range examples {
		if ex.Label {
			positives++
		} else {
			negatives++
		}
	}
	return positives, negatives
}
