package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hhfp/household-projector/internal/domain"
	"github.com/hhfp/household-projector/pkg/dateutil"
)

// InputParser handles parsing of household profile files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a household profile from a YAML file, resolves derived
// fields, and validates it once at the boundary.
func (ip *InputParser) LoadFromFile(filename string) (*domain.HouseholdProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML profile.
func (ip *InputParser) Parse(data []byte) (*domain.HouseholdProfile, error) {
	var profile domain.HouseholdProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.resolveAges(&profile, time.Now())

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// resolveAges fills in ages from birth dates when the profile supplies dates
// instead of ages.
func (ip *InputParser) resolveAges(profile *domain.HouseholdProfile, now time.Time) {
	if profile.Primary.Age == 0 && !profile.Primary.BirthDate.IsZero() {
		profile.Primary.Age = dateutil.Age(profile.Primary.BirthDate, now)
	}
	if profile.Partner != nil && profile.Partner.Age == 0 && !profile.Partner.BirthDate.IsZero() {
		profile.Partner.Age = dateutil.Age(profile.Partner.BirthDate, now)
	}
}

// Marshal serializes a profile back to YAML (used by the scenario store).
func Marshal(profile *domain.HouseholdProfile) ([]byte, error) {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}
	return data, nil
}
