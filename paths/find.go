// Package paths locates game resource files on the local filesystem.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// EnvDataDir names the environment variable holding an extra directory to
// search for resource files.
const EnvDataDir = "SHADOWDIVE_DATA"

var dataDir string

// SearchDirs returns the directories Find looks in, in order: the
// --data_dir flag, $SHADOWDIVE_DATA, the working directory and its
// resources subdirectory.
func SearchDirs() []string {
	var dirs []string
	if dataDir != "" {
		dirs = append(dirs, dataDir)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		dirs = append(dirs, env)
	}
	return append(dirs, ".", "resources")
}

// Find locates the passed resource file name and returns a path to it, or
// an empty string if it is in none of the SearchDirs.
//
// For example, for "SOUNDS.DAT" it may return "resources/SOUNDS.DAT".
func Find(fileName string) string {
	for _, dir := range SearchDirs() {
		path := filepath.Join(dir, fileName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. If Find returns an empty string, an error wrapping
// os.ErrNotExist is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "go-shadowdive/paths/Open(%q): not found in %v", fileName, SearchDirs())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "go-shadowdive/paths/Open(%q): failed to open", fileName)
	}
	return f, nil
}

// Resolve returns name unchanged if it names an existing file, and otherwise
// whatever Find returns for it.
func Resolve(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if found := Find(name); found != "" {
		return found
	}
	return name
}
