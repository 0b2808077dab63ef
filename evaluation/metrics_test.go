package evaluation

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculatePerfectPredictions(t *testing.T) {
	m, err := Calculate([]int{0, 1, 0, 1}, []int{0, 1, 0, 1}, []int{0, 1})
	if err != nil {
		t.Fatalf("calculating: unexpected error %v", err)
	}
	if m.Accuracy != 1 || m.MacroF1 != 1 {
		t.Errorf("got accuracy %v and macro F1 %v, expected both 1", m.Accuracy, m.MacroF1)
	}
	if m.NumSamples != 4 {
		t.Errorf("got %d samples, expected 4", m.NumSamples)
	}
	if !reflect.DeepEqual(m.Confusion, [][]int{{2, 0}, {0, 2}}) {
		t.Errorf("got confusion matrix %v, expected it diagonal", m.Confusion)
	}
	for _, class := range m.Classes {
		cm := m.PerClass[class]
		if cm.Precision != 1 || cm.Recall != 1 || cm.F1 != 1 || cm.Support != 2 {
			t.Errorf("class %d: got %+v, expected perfect scores with support 2", class, cm)
		}
	}
}

func TestCalculateMixedPredictions(t *testing.T) {
	yTrue := []int{0, 0, 0, 1, 1, 1}
	yPred := []int{0, 0, 1, 1, 1, 0}
	m, err := Calculate(yTrue, yPred, []int{0, 1})
	if err != nil {
		t.Fatalf("calculating: unexpected error %v", err)
	}
	if !almostEqual(m.Accuracy, 4.0/6.0) {
		t.Errorf("got accuracy %v, expected 2/3", m.Accuracy)
	}
	if !reflect.DeepEqual(m.Confusion, [][]int{{2, 1}, {1, 2}}) {
		t.Errorf("got confusion matrix %v, expected [[2 1] [1 2]]", m.Confusion)
	}
	for _, class := range []int{0, 1} {
		cm := m.PerClass[class]
		if !almostEqual(cm.Precision, 2.0/3.0) || !almostEqual(cm.Recall, 2.0/3.0) || !almostEqual(cm.F1, 2.0/3.0) {
			t.Errorf("class %d: got %+v, expected 2/3 everywhere", class, cm)
		}
		if cm.Support != 3 {
			t.Errorf("class %d: got support %d, expected 3", class, cm.Support)
		}
	}
	if !almostEqual(m.MacroF1, 2.0/3.0) {
		t.Errorf("got macro F1 %v, expected 2/3", m.MacroF1)
	}
}

func TestCalculateAbsentClass(t *testing.T) {
	m, err := Calculate([]int{0, 0}, []int{0, 0}, []int{0, 1})
	if err != nil {
		t.Fatalf("calculating: unexpected error %v", err)
	}
	cm := m.PerClass[1]
	if cm.Precision != 0 || cm.Recall != 0 || cm.F1 != 0 || cm.Support != 0 {
		t.Errorf("class 1 never occurs: got %+v, expected zero scores instead of NaN", cm)
	}
	if math.IsNaN(m.MacroF1) {
		t.Errorf("macro F1 is NaN with an absent class")
	}
}

func TestCalculateErrors(t *testing.T) {
	if _, err := Calculate([]int{0}, []int{0, 1}, []int{0, 1}); err == nil {
		t.Errorf("misaligned vectors: expected an error, got none")
	}
	if _, err := Calculate(nil, nil, []int{0}); err == nil {
		t.Errorf("empty vectors: expected an error, got none")
	}
	if _, err := Calculate([]int{2}, []int{0}, []int{0, 1}); err == nil {
		t.Errorf("true label outside the classes: expected an error, got none")
	}
	if _, err := Calculate([]int{0}, []int{2}, []int{0, 1}); err == nil {
		t.Errorf("predicted label outside the classes: expected an error, got none")
	}
}
