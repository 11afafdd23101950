// Package modelselection provides k-fold cross-validation.
package modelselection

import (
	"math/rand/v2"

	"github.com/statlearn/statlearn/pkg/errors"
)

// Fold is one train/test split of the row indices.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold partitions rows into NSplits folds. By default the folds are
// contiguous runs in row order, so the same n and k always produce the same
// partition; the first n mod k folds get one extra row. Shuffling is opt-in
// and seeded, never silent.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    uint64
}

// NewKFold creates a deterministic, unshuffled splitter. Fewer than 2 splits
// defaults to 5.
func NewKFold(nSplits int) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{NSplits: nSplits}
}

// NewShuffledKFold creates a splitter that shuffles row order with the given
// seed before partitioning.
func NewShuffledKFold(nSplits int, seed uint64) *KFold {
	kf := NewKFold(nSplits)
	kf.Shuffle = true
	kf.Seed = seed
	return kf
}

// Split partitions nSamples row indices into folds. Every row lands in
// exactly one test set.
func (kf *KFold) Split(nSamples int) ([]Fold, error) {
	if nSamples < kf.NSplits {
		return nil, errors.NewValueError("KFold.Split", "more splits than samples")
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}
	if kf.Shuffle {
		r := rand.New(rand.NewPCG(kf.Seed, kf.Seed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := nSamples / kf.NSplits
	remainder := nSamples % kf.NSplits

	current := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		test := make([]int, testSize)
		copy(test, indices[current:current+testSize])

		train := make([]int, 0, nSamples-testSize)
		train = append(train, indices[:current]...)
		train = append(train, indices[current+testSize:]...)

		folds[i] = Fold{TrainIndices: train, TestIndices: test}
		current += testSize
	}

	return folds, nil
}
