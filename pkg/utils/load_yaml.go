package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
)

type referenceFile struct {
	References []referenceRecord `yaml:"references"`
}

type referenceRecord struct {
	ID           string `yaml:"id"`
	AddressLine1 string `yaml:"address_line1"`
	AddressLine2 string `yaml:"address_line2"`
	City         string `yaml:"city"`
	State        string `yaml:"state"`
	Pincode      string `yaml:"pincode"`
	Zone         string `yaml:"zone"`
	// Missing means active
	IsActive *bool `yaml:"is_active"`
}

// LoadReferencesYAML reads the references list of a YAML file
func LoadReferencesYAML(path string) ([]matcher.ReferenceAddress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read reference file: %w", err)
	}

	var file referenceFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("unable to unmarshal reference file: %w", err)
	}

	refs := make([]matcher.ReferenceAddress, 0, len(file.References))
	for _, r := range file.References {
		active := r.IsActive == nil || *r.IsActive
		refs = append(refs, matcher.ReferenceAddress{
			ID:           r.ID,
			AddressLine1: r.AddressLine1,
			AddressLine2: r.AddressLine2,
			City:         r.City,
			State:        r.State,
			Pincode:      r.Pincode,
			Zone:         r.Zone,
			IsActive:     active,
		})
	}
	return refs, nil
}
