package experiment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/jobshop-sim/jobshop/pkg/conf"
)

const (
	metadataKindFlags    = "flags"
	metadataKindPlatform = "platform"
)

// MetadataMap holds the key value pairs recorded for one kind.
type MetadataMap map[string]string

type metadataRecord struct {
	Kind     string      `json:"kind"`
	Time     time.Time   `json:"time"`
	Metadata MetadataMap `json:"metadata"`
}

// Metadata collects descriptive data about an experiment run and persists it
// as metadata.json inside the run directory.
type Metadata struct {
	ExperimentID string           `json:"experiment_id"`
	Records      []metadataRecord `json:"records"`

	dir string
}

// NewMetadata returns a metadata recorder for the run directory.
func NewMetadata(experimentID, dir string) *Metadata {
	return &Metadata{ExperimentID: experimentID, dir: dir}
}

// Record stores a map of metadata under the given kind.
func (m *Metadata) Record(kind string, metadata MetadataMap) {
	m.Records = append(m.Records, metadataRecord{
		Kind:     kind,
		Time:     time.Now(),
		Metadata: metadata,
	})
}

// RecordFlags stores the current values of all registered flags.
func (m *Metadata) RecordFlags() {
	m.Record(metadataKindFlags, conf.GetFlags())
}

// RecordPlatform stores basic facts about the host the run executed on.
func (m *Metadata) RecordPlatform() {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	m.Record(metadataKindPlatform, MetadataMap{
		"hostname":   hostname,
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"go_version": runtime.Version(),
	})
}

// Save writes the collected metadata to metadata.json.
func (m *Metadata) Save() error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize experiment metadata")
	}
	path := filepath.Join(m.dir, "metadata.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	return nil
}
