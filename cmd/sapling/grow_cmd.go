package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saplingml/sapling"
	"github.com/saplingml/sapling/dataset"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	trainingConfig
	output string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{trainingConfig: trainingConfig{dataIOConfig: dataIOConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict a certain feature.`,
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
			classifier, encoder, trainingSet, err := config.trainFromInput(ctx, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			preds, err := classifier.Predict(trainingSet.Rows())
			if err != nil {
				fmt.Fprintf(os.Stderr, "evaluating grown tree: %v\n", err)
				os.Exit(4)
			}
			y, err := encoder.Transform(trainingSet.Labels())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			correct := 0
			for i, p := range preds {
				if p == y[i] {
					correct++
				}
			}
			config.Logf("Done")
			config.Logf("Grown tree has %d nodes, depth %d, training accuracy %f",
				classifier.Root().Count(), classifier.Depth(), float64(correct)/float64(len(preds)))
			err = outputTree(config.output, classifier, encoder)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	config.registerTrainingFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be rendered (defaults to STDOUT)")
	return cmd
}

func outputTree(outputPath string, classifier *sapling.Classifier, encoder *dataset.LabelEncoder) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	for i, label := range encoder.Classes() {
		fmt.Fprintf(f, "class %d: %s\n", i, label)
	}
	_, err = fmt.Fprint(f, classifier.Root().String())
	return err
}
