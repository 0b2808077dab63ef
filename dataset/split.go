package dataset

import (
	"fmt"
	"math/rand"
)

/*
Split takes a fraction in (0, 1) and a seed and partitions the dataset's
samples into a training dataset and a test dataset holding roughly the
given fraction of the samples, after a seeded shuffle. The input dataset
is not mutated and every sample lands in exactly one of the results.
*/
func (ds *Dataset) Split(testFraction float64, seed int64) (train, test *Dataset, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v is not in (0, 1)", testFraction)
	}
	train, err = New(ds.features)
	if err != nil {
		return nil, nil, err
	}
	test, err = New(ds.features)
	if err != nil {
		return nil, nil, err
	}
	order := rand.New(rand.NewSource(seed)).Perm(len(ds.rows))
	testCount := int(testFraction * float64(len(ds.rows)))
	for i, o := range order {
		target := train
		if i < testCount {
			target = test
		}
		if err := target.Append(ds.rows[o], ds.labels[o]); err != nil {
			return nil, nil, err
		}
	}
	return train, test, nil
}
