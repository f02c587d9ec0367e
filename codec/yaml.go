package codec

import "gopkg.in/yaml.v3"

// YAML is a codec backed by gopkg.in/yaml.v3.
//
// YAML output is indentation-based and human-readable by construction, so
// the codec does not implement IndentMarshaler.
type YAML struct{}

// Marshal encodes the value to YAML.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal decodes the YAML data into v.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("yaml").
func (YAML) Name() string { return "yaml" }
