package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/saplingml/sapling"
	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/evaluation"
	"github.com/saplingml/sapling/feature"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	trainingConfig
	testInput    string
	testFraction float64
	seed         int64
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{trainingConfig: trainingConfig{dataIOConfig: dataIOConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a grown tree",
		Long:  `Grow a tree from training data and test its performance against a held-out test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			features, err := config.loadFeatures()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, testingSet, err := config.datasets(ctx, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			labels := append(append([]string{}, trainingSet.Labels()...), testingSet.Labels()...)
			encoder := dataset.NewLabelEncoder(labels)
			classifier, err := config.growTree(features, trainingSet, encoder)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testset with %d samples...", testingSet.Count())
			metrics, err := config.evaluate(classifier, encoder, testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			report(metrics, encoder)
		},
	}
	config.registerTrainingFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "input with the test data set, in any of the formats the input flag accepts (defaults to holding out a shuffled fraction of the training input)")
	cmd.PersistentFlags().Float64Var(&(config.testFraction), "test-fraction", 0.25, "fraction of the training input held out for testing when no test-input is given")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 1, "seed for the shuffle that holds out the test fraction")
	return cmd
}

func (tcc *testCmdConfig) datasets(ctx context.Context, features []*feature.Feature) (*dataset.Dataset, *dataset.Dataset, error) {
	trainingSet, err := tcc.readDataset(ctx, tcc.dataInput, features, tcc.classFeature, "training")
	if err != nil {
		return nil, nil, err
	}
	if tcc.testInput != "" {
		testingSet, err := tcc.readDataset(ctx, tcc.testInput, features, tcc.classFeature, "testing")
		if err != nil {
			return nil, nil, err
		}
		return trainingSet, testingSet, nil
	}
	tcc.Logf("Holding out a %v fraction of the training set for testing...", tcc.testFraction)
	return trainingSet.Split(tcc.testFraction, tcc.seed)
}

func (tcc *testCmdConfig) evaluate(classifier *sapling.Classifier, encoder *dataset.LabelEncoder, testingSet *dataset.Dataset) (*evaluation.Metrics, error) {
	preds, err := classifier.Predict(testingSet.Rows())
	if err != nil {
		return nil, err
	}
	yTest, err := encoder.Transform(testingSet.Labels())
	if err != nil {
		return nil, err
	}
	classes := make([]int, len(encoder.Classes()))
	for i := range classes {
		classes[i] = i
	}
	return evaluation.Calculate(yTest, preds, classes)
}

func report(metrics *evaluation.Metrics, encoder *dataset.LabelEncoder) {
	fmt.Printf("accuracy %f over %d samples, macro F1 %f\n", metrics.Accuracy, metrics.NumSamples, metrics.MacroF1)
	labels := encoder.Classes()
	for i, class := range metrics.Classes {
		cm := metrics.PerClass[class]
		fmt.Printf("class %s: precision %f, recall %f, F1 %f, support %d\n",
			labels[i], cm.Precision, cm.Recall, cm.F1, cm.Support)
	}
	fmt.Println("confusion matrix (true rows, predicted columns):")
	for i := range metrics.Confusion {
		cells := make([]string, len(metrics.Confusion[i]))
		for j, count := range metrics.Confusion[i] {
			cells[j] = fmt.Sprintf("%d", count)
		}
		fmt.Printf("%s: %s\n", labels[i], strings.Join(cells, " "))
	}
}
