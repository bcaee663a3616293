package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/allfiles/internal/types"
)

const (
	outputFileMode = os.FileMode(0o644)

	errorCreateTemporaryFormat = "create temporary file in %s: %w"
	errorWriteTemporaryFormat  = "write temporary file %s: %w"
	errorSyncTemporaryFormat   = "sync temporary file %s: %w"
	errorCloseTemporaryFormat  = "close temporary file %s: %w"
	errorChmodTemporaryFormat  = "set permissions on %s: %w"
	errorRenameFormat          = "rename %s to %s: %w"
)

// WriteAtomically replaces targetPath with data. The content is first written
// to a temporary file in the same directory and then renamed over the target,
// so a failed write leaves any previous file untouched.
func WriteAtomically(fileSystem afero.Fs, targetPath string, data []byte) error {
	targetDirectory := filepath.Dir(targetPath)
	temporaryFile, createError := afero.TempFile(fileSystem, targetDirectory, types.TemporaryFilePattern)
	if createError != nil {
		return fmt.Errorf(errorCreateTemporaryFormat, targetDirectory, createError)
	}
	temporaryPath := temporaryFile.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		_ = temporaryFile.Close()
		_ = fileSystem.Remove(temporaryPath)
	}()

	if _, writeError := temporaryFile.Write(data); writeError != nil {
		return fmt.Errorf(errorWriteTemporaryFormat, temporaryPath, writeError)
	}
	if syncError := temporaryFile.Sync(); syncError != nil {
		return fmt.Errorf(errorSyncTemporaryFormat, temporaryPath, syncError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		return fmt.Errorf(errorCloseTemporaryFormat, temporaryPath, closeError)
	}
	if chmodError := fileSystem.Chmod(temporaryPath, outputFileMode); chmodError != nil {
		return fmt.Errorf(errorChmodTemporaryFormat, temporaryPath, chmodError)
	}
	if renameError := fileSystem.Rename(temporaryPath, targetPath); renameError != nil {
		return fmt.Errorf(errorRenameFormat, temporaryPath, targetPath, renameError)
	}
	committed = true
	return nil
}
