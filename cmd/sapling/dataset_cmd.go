package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saplingml/sapling/feature"
	"github.com/saplingml/sapling/feature/yaml"
	"github.com/spf13/cobra"
)

type datasetCmdConfig struct {
	dataIOConfig
	input         string
	metadataInput string
	classFeature  string
	output        string
}

func datasetCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datasetCmdConfig{dataIOConfig: dataIOConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage datasets of samples",
		Long:  `Read a dataset of samples from one backend and write it to another`,
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
			ds, err := config.readDataset(ctx, config.input, features, config.classFeature, "input")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Read %d samples", ds.Count())
			err = config.writeDataset(ctx, config.output, ds, config.classFeature, "output")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "input with the dataset, in any of the formats the grow command accepts (defaults to STDIN in CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", "name of the feature holding the sample labels (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "output for the dataset, in any of the formats the input flag accepts (defaults to STDOUT in CSV)")
	config.registerFlags(cmd)
	return cmd
}

func (dcc *datasetCmdConfig) Validate() error {
	if dcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if dcc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

func (dcc *datasetCmdConfig) loadFeatures() ([]*feature.Feature, error) {
	features, err := yaml.ReadFeaturesFromFile(dcc.metadataInput)
	if err != nil {
		return nil, err
	}
	kept := make([]*feature.Feature, 0, len(features))
	found := false
	for _, f := range features {
		if f.Name() == dcc.classFeature {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil, fmt.Errorf("class feature '%s' is not defined", dcc.classFeature)
	}
	return kept, nil
}
