package dashmet

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
)

// Storage describes the usage of the filesystem holding the dashboard's data.
type Storage struct {
	Path        string
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// StorageUsage returns the usage of the filesystem that the given path is on.
// If path is a file, its directory is used.
func StorageUsage(path string) (Storage, error) {
	dir := path
	if dir == "" {
		dir = "."
	} else if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		dir = filepath.Dir(dir)
	}

	u, err := disk.Usage(dir)
	if err != nil {
		return Storage{}, errors.Wrapf(err, "failed to get usage of %q", dir)
	}

	return Storage{
		Path:        u.Path,
		Total:       u.Total,
		Used:        u.Used,
		UsedPercent: u.UsedPercent,
	}, nil
}
