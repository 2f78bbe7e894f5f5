package fs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CreateExperimentDir creates a directory for one experiment run under the
// given root, named after the run id, together with a master log file inside.
// The returned file is open for appending; closing it is the caller's
// responsibility.
func CreateExperimentDir(root, runID string) (dir string, logFile *os.File, err error) {
	dir = filepath.Join(root, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, errors.Wrapf(err, "could not create experiment directory %q", dir)
	}

	logFile, err = os.OpenFile(filepath.Join(dir, "master.log"),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "could not create master log in %q", dir)
	}

	return dir, logFile, nil
}
