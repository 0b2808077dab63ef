package main

import (
	"context"
	"fmt"

	"github.com/saplingml/sapling"
	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/feature"
	"github.com/saplingml/sapling/feature/yaml"
	"github.com/spf13/cobra"
)

/*
trainingConfig holds the flags shared by every command that grows a
tree: where the training data and its metadata live, which feature to
predict and the growth options.
*/
type trainingConfig struct {
	dataIOConfig
	dataInput       string
	metadataInput   string
	classFeature    string
	positiveClass   string
	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
}

func (tc *trainingConfig) registerTrainingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(tc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(tc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(tc.classFeature), "class-feature", "c", "", "name of the feature the grown tree should predict (required)")
	cmd.PersistentFlags().StringVar(&(tc.positiveClass), "positive-class", "", "label whose rate orders the categories of categorical features (defaults to the second label in lexicographical order)")
	cmd.PersistentFlags().IntVar(&(tc.maxDepth), "max-depth", 0, "recorded limit on the depth of the grown tree")
	cmd.PersistentFlags().IntVar(&(tc.minSamplesSplit), "min-samples-split", 0, "recorded limit on the size of a node for it to be split")
	cmd.PersistentFlags().IntVar(&(tc.minSamplesLeaf), "min-samples-leaf", 0, "recorded limit on the size of a grown leaf")
	tc.registerFlags(cmd)
}

func (tc *trainingConfig) Validate() error {
	if tc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

/*
loadFeatures reads the feature metadata and separates the class feature
from the features the tree will split on.
*/
func (tc *trainingConfig) loadFeatures() ([]*feature.Feature, error) {
	features, err := yaml.ReadFeaturesFromFile(tc.metadataInput)
	if err != nil {
		return nil, err
	}
	kept := make([]*feature.Feature, 0, len(features))
	found := false
	for _, f := range features {
		if f.Name() == tc.classFeature {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil, fmt.Errorf("class feature '%s' is not defined", tc.classFeature)
	}
	return kept, nil
}

/*
growTree builds a classifier for the given features with the configured
options, encodes the training set's labels with the given encoder and
fits the classifier, returning it.
*/
func (tc *trainingConfig) growTree(features []*feature.Feature, trainingSet *dataset.Dataset, encoder *dataset.LabelEncoder) (*sapling.Classifier, error) {
	y, err := encoder.Transform(trainingSet.Labels())
	if err != nil {
		return nil, err
	}
	opts := []sapling.Option{
		sapling.MaxDepth(tc.maxDepth),
		sapling.MinSamplesSplit(tc.minSamplesSplit),
		sapling.MinSamplesLeaf(tc.minSamplesLeaf),
	}
	if tc.positiveClass != "" {
		positive, ok := encoder.Class(tc.positiveClass)
		if !ok {
			return nil, fmt.Errorf("positive class %q does not appear in the training labels", tc.positiveClass)
		}
		opts = append(opts, sapling.PositiveClass(positive))
	}
	classifier, err := sapling.New(features, opts...)
	if err != nil {
		return nil, err
	}
	tc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...",
		trainingSet.Count(), len(features), tc.classFeature)
	if err := classifier.Fit(trainingSet.Rows(), y); err != nil {
		return nil, fmt.Errorf("growing the tree: %v", err)
	}
	return classifier, nil
}

/*
trainFromInput reads the training set from the configured input, fits an
encoder on its labels and grows a tree, returning all three.
*/
func (tc *trainingConfig) trainFromInput(ctx context.Context, features []*feature.Feature) (*sapling.Classifier, *dataset.LabelEncoder, *dataset.Dataset, error) {
	trainingSet, err := tc.readDataset(ctx, tc.dataInput, features, tc.classFeature, "training")
	if err != nil {
		return nil, nil, nil, err
	}
	encoder := dataset.NewLabelEncoder(trainingSet.Labels())
	classifier, err := tc.growTree(features, trainingSet, encoder)
	if err != nil {
		return nil, nil, nil, err
	}
	return classifier, encoder, trainingSet, nil
}
