package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names export files that are still being staged.
const TempFilePrefix = ".rufty-export-"

// writeFileAtomic stages data in the target's directory and renames the staged
// file over filename. The target either keeps its old content or gets all of data.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("stage export: %w", err)
	}
	stagedName := staged.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(stagedName)
		}
	}()

	if err = staged.Chmod(perm); err == nil {
		if _, err = staged.Write(data); err == nil {
			err = staged.Sync()
		}
	}
	if closeErr := staged.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("stage export %s: %w", stagedName, err)
	}

	if err = os.Rename(stagedName, filename); err != nil {
		return fmt.Errorf("publish export %s: %w", filename, err)
	}
	return nil
}
