package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/dataset/csv"
	"github.com/saplingml/sapling/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	trainingConfig
	samplesInput string
	output       string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{trainingConfig: trainingConfig{dataIOConfig: dataIOConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class feature for a set of samples",
		Long:  `Grow a tree from training data and use it to predict the class feature value of a set of unlabelled samples`,
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
			classifier, encoder, _, err := config.trainFromInput(ctx, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			samples, err := config.samples(features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Predicting %s for %d samples...", config.classFeature, samples.Count())
			predictions, err := classifier.Predict(samples.Rows())
			if err != nil {
				fmt.Fprintf(os.Stderr, "predicting samples: %v\n", err)
				os.Exit(5)
			}
			predictedLabels, err := encoder.Inverse(predictions)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			labelled, err := dataset.New(features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			for i, row := range samples.Rows() {
				if err := labelled.Append(row, predictedLabels[i]); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(7)
				}
			}
			config.Logf("Done")
			err = config.writeDataset(ctx, config.output, labelled, config.classFeature, "predicted")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
		},
	}
	config.registerTrainingFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.samplesInput), "samples", "s", "", "path to a CSV file with the unlabelled samples to predict (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "output for the samples with their predicted labels, in any of the formats the input flag accepts (defaults to STDOUT in CSV)")
	return cmd
}

/*
samples reads the unlabelled samples to predict: CSV without a label
column, from the configured path or STDIN.
*/
func (pcc *predictCmdConfig) samples(features []*feature.Feature) (*dataset.Dataset, error) {
	f := os.Stdin
	if pcc.samplesInput != "" {
		pcc.Logf("Opening %s to read samples...", pcc.samplesInput)
		var err error
		f, err = os.Open(pcc.samplesInput)
		if err != nil {
			return nil, fmt.Errorf("opening samples at %s: %v", pcc.samplesInput, err)
		}
		defer f.Close()
	} else {
		pcc.Logf("Reading samples from STDIN...")
	}
	return csv.ReadDataset(f, features, "")
}
