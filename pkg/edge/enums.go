package edge

import (
	"encoding/json"
	"fmt"
)

// Jurisdiction restricts where a storage bucket's data may reside. The
// upstream API adds jurisdiction codes over time, so unknown wire values
// are preserved rather than rejected.
type Jurisdiction struct {
	value string
}

// Known jurisdictions.
var (
	JurisdictionDefault = Jurisdiction{value: "default"}
	JurisdictionEU      = Jurisdiction{value: "eu"}
	JurisdictionFedRAMP = Jurisdiction{value: "fedramp"}
)

var knownJurisdictions = map[string]struct{}{
	JurisdictionDefault.value: {},
	JurisdictionEU.value:      {},
	JurisdictionFedRAMP.value: {},
}

// JurisdictionFromString builds a Jurisdiction from its wire value.
func JurisdictionFromString(value string) Jurisdiction {
	return Jurisdiction{value: value}
}

// String returns the wire value.
func (j Jurisdiction) String() string {
	return j.value
}

// IsKnown reports whether the value is one this library was built against.
func (j Jurisdiction) IsKnown() bool {
	_, known := knownJurisdictions[j.value]

	return known
}

// MarshalJSON serializes the wire value, not an in-memory name.
func (j Jurisdiction) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(j.value)
	if err != nil {
		return nil, fmt.Errorf("marshaling jurisdiction: %w", err)
	}

	return data, nil
}

// UnmarshalJSON accepts any string, preserving unknown future values.
func (j *Jurisdiction) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("unmarshaling jurisdiction: %w", err)
	}

	j.value = value

	return nil
}

// MarshalYAML serializes the wire value.
func (j Jurisdiction) MarshalYAML() (interface{}, error) {
	return j.value, nil
}

// UnmarshalYAML accepts any string, preserving unknown future values.
func (j *Jurisdiction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string

	err := unmarshal(&value)
	if err != nil {
		return fmt.Errorf("unmarshaling jurisdiction: %w", err)
	}

	j.value = value

	return nil
}
