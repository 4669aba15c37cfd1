package service

import "encoding/json"

// OptionalString is a tri-state JSON field: absent, explicit null, or a
// value. Update inputs use it for nullable columns so that "not provided"
// and "set to null" stay distinguishable after decoding.
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON records that the field appeared in the payload before
// decoding its value. It is never called for absent fields.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
