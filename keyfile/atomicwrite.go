package keyfile

import (
	"io/fs"
	"os"
	"path/filepath"
)

// atomicWrite writes data to a temporary file in the directory of name and renames it to name, so that readers never
// observe a partially written key file.
func atomicWrite(name string, data []byte, perm fs.FileMode) (err error) {
	fd, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fd.Close()
			_ = os.Remove(fd.Name())
		}
	}()

	if _, err = fd.Write(data); err != nil {
		return err
	}
	// os.CreateTemp always creates the file with mode 0600
	if perm != 0600 {
		if err = fd.Chmod(perm); err != nil {
			return err
		}
	}
	if err = fd.Sync(); err != nil {
		return err
	}
	if err = fd.Close(); err != nil {
		return err
	}
	return os.Rename(fd.Name(), name)
}
