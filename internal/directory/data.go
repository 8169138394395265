package directory

import _ "embed"

//go:embed agencies.yaml
var defaultAgenciesYAML []byte

// LoadDefault builds the Directory from the embedded agency dataset.
func LoadDefault() (*Directory, error) {
	return Load(defaultAgenciesYAML)
}
