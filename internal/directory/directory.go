package directory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"medrights-backend/internal/complaints"
)

// ErrConfiguration marks a broken directory: duplicate or missing agency
// ids, or an issue type no agency has jurisdiction over. Fatal at startup;
// never degraded at request time.
var ErrConfiguration = errors.New("directory configuration error")

// Directory is the read-only agency lookup shared by the engines. It is
// fully populated at construction and never mutated, so concurrent reads
// need no locking.
type Directory struct {
	agencies []Agency
	byID     map[string]Agency
}

type directoryFile struct {
	Agencies []Agency `yaml:"agencies"`
}

// New builds a Directory and runs the load-time invariant checks.
func New(agencies []Agency) (*Directory, error) {
	if len(agencies) == 0 {
		return nil, fmt.Errorf("%w: no agencies defined", ErrConfiguration)
	}

	byID := make(map[string]Agency, len(agencies))
	for _, agency := range agencies {
		id := strings.TrimSpace(agency.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: agency with empty id", ErrConfiguration)
		}
		if strings.TrimSpace(agency.Name) == "" {
			return nil, fmt.Errorf("%w: agency %q has no name", ErrConfiguration, id)
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate agency id %q", ErrConfiguration, id)
		}
		for _, tag := range agency.JurisdictionTags {
			if !tag.Valid() {
				return nil, fmt.Errorf("%w: agency %q has unknown jurisdiction tag %q", ErrConfiguration, id, tag)
			}
		}
		byID[id] = agency
	}

	// Every issue type must route somewhere, and every id the engines
	// hard-reference must exist, before any request is served.
	for _, issue := range complaints.IssueTypes() {
		if !anyCovers(agencies, issue) {
			return nil, fmt.Errorf("%w: no agency has jurisdiction over issue type %q", ErrConfiguration, issue)
		}
	}
	for _, required := range []string{AgencyANVISA, AgencyCMED, AgencyPROCON, AgencyHealthMinistry, AgencyProsecutor, AgencyPublicDefender} {
		if _, ok := byID[required]; !ok {
			return nil, fmt.Errorf("%w: required agency %q is missing", ErrConfiguration, required)
		}
	}

	return &Directory{agencies: append([]Agency(nil), agencies...), byID: byID}, nil
}

// Load parses a YAML directory document and builds a Directory from it.
func Load(data []byte) (*Directory, error) {
	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return New(file.Agencies)
}

// LoadFile builds a Directory from a YAML file on disk.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfiguration, path, err)
	}
	return Load(data)
}

// Get returns the agency for the given id. A miss means an engine holds a
// reference the directory does not know about, which is a configuration
// error, not user input.
func (d *Directory) Get(id string) (Agency, error) {
	agency, ok := d.byID[id]
	if !ok {
		return Agency{}, fmt.Errorf("%w: unknown agency id %q", ErrConfiguration, id)
	}
	return agency, nil
}

// FindByJurisdiction returns the agencies able to receive the given issue
// type, in directory order.
func (d *Directory) FindByJurisdiction(issue complaints.IssueType) []Agency {
	var out []Agency
	for _, agency := range d.agencies {
		if agency.CoversIssue(issue) {
			out = append(out, agency)
		}
	}
	return out
}

// Agencies returns a copy of every agency in directory order.
func (d *Directory) Agencies() []Agency {
	return append([]Agency(nil), d.agencies...)
}

func anyCovers(agencies []Agency, issue complaints.IssueType) bool {
	for _, agency := range agencies {
		if agency.CoversIssue(issue) {
			return true
		}
	}
	return false
}
