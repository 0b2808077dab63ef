/*
Package evaluation computes classification quality metrics for predicted
label vectors against their true values.
*/
package evaluation

import "fmt"

/*
Metrics holds the quality measures of a prediction run: overall
accuracy, the confusion matrix over the evaluated classes (true classes
on rows, predicted on columns, both in class order), per-class
precision, recall and F1, and their macro averages.
*/
type Metrics struct {
	Accuracy   float64
	Confusion  [][]int
	Classes    []int
	PerClass   map[int]ClassMetrics
	MacroF1    float64
	NumSamples int
}

/*
ClassMetrics holds the quality measures of one class.
*/
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

/*
Calculate takes aligned true and predicted label vectors and the slice
of classes to evaluate over and returns their metrics or an error if the
vectors are misaligned, empty, or hold a label outside the classes.
*/
func Calculate(yTrue, yPred []int, classes []int) (*Metrics, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("%d true labels but %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, fmt.Errorf("cannot evaluate empty label vectors")
	}
	index := make(map[int]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}
	confusion := make([][]int, len(classes))
	for i := range confusion {
		confusion[i] = make([]int, len(classes))
	}
	correct := 0
	for i := range yTrue {
		ti, ok := index[yTrue[i]]
		if !ok {
			return nil, fmt.Errorf("true label %d is not among the evaluated classes", yTrue[i])
		}
		pi, ok := index[yPred[i]]
		if !ok {
			return nil, fmt.Errorf("predicted label %d is not among the evaluated classes", yPred[i])
		}
		confusion[ti][pi]++
		if ti == pi {
			correct++
		}
	}
	m := &Metrics{
		Accuracy:   float64(correct) / float64(len(yTrue)),
		Confusion:  confusion,
		Classes:    classes,
		PerClass:   make(map[int]ClassMetrics, len(classes)),
		NumSamples: len(yTrue),
	}
	for i, class := range classes {
		tp := confusion[i][i]
		fp, fn, support := 0, 0, 0
		for j := range classes {
			support += confusion[i][j]
			if j != i {
				fp += confusion[j][i]
				fn += confusion[i][j]
			}
		}
		precision := safeDivide(float64(tp), float64(tp+fp))
		recall := safeDivide(float64(tp), float64(tp+fn))
		f1 := safeDivide(2*precision*recall, precision+recall)
		m.PerClass[class] = ClassMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support,
		}
		m.MacroF1 += f1
	}
	m.MacroF1 /= float64(len(classes))
	return m, nil
}

func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
