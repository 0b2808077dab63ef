package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTrainingConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		config trainingConfig
		ok     bool
	}{
		{"all required flags", trainingConfig{metadataInput: "features.yml", classFeature: "churned"}, true},
		{"missing metadata", trainingConfig{classFeature: "churned"}, false},
		{"missing class feature", trainingConfig{metadataInput: "features.yml"}, false},
		{"nothing set", trainingConfig{}, false},
	}
	for _, tc := range testCases {
		err := tc.config.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected an error, got none", tc.name)
		}
	}
}

func TestTrainingConfigLoadFeatures(t *testing.T) {
	metadata := filepath.Join(t.TempDir(), "features.yml")
	content := []byte("features:\n  age: real\n  plan: categorical\n  churned: categorical\n")
	if err := os.WriteFile(metadata, content, 0644); err != nil {
		t.Fatalf("writing metadata file: %v", err)
	}

	config := trainingConfig{metadataInput: metadata, classFeature: "churned"}
	features, err := config.loadFeatures()
	if err != nil {
		t.Fatalf("loading features: unexpected error %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("got %d features, expected the class feature dropped from 3", len(features))
	}
	for _, f := range features {
		if f.Name() == "churned" {
			t.Errorf("the class feature was not dropped")
		}
	}

	config.classFeature = "missing"
	if _, err := config.loadFeatures(); err == nil {
		t.Errorf("loading with an undefined class feature: expected an error, got none")
	}
}
