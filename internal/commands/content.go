package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/allfiles/internal/types"
	"github.com/temirov/allfiles/internal/utils"
)

const (
	// errorWalkFormat is used when the content walk cannot read an entry.
	errorWalkFormat = "walking %s: %w"

	// warningFileReadMessage is logged when a file cannot be read.
	warningFileReadMessage = "failed to read file"

	// warningFileDecodeMessage is logged when a file is not valid text.
	warningFileDecodeMessage = "failed to decode file as text"
)

// GetContentData walks rootPath depth-first in lexical order and returns one
// FileOutput per regular file that passes the filter. Directories are not
// pruned: the filter is applied to every file individually. Read and decode
// failures are logged and produce a record with empty content; directory
// read failures abort the walk.
func (contentCollector *ContentCollector) GetContentData(rootPath string) ([]types.FileOutput, error) {
	if contentCollector.Filter == nil {
		return nil, errMissingFilter
	}
	fileSystem := effectiveFileSystem(contentCollector.FileSystem)
	logger := contentCollector.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxDepth := effectiveMaxDepth(contentCollector.MaxDepth)
	cleanedRootPath := filepath.Clean(rootPath)

	var fileOutputs []types.FileOutput
	walkError := afero.Walk(fileSystem, cleanedRootPath, func(walkedPath string, fileInfo os.FileInfo, accessError error) error {
		if accessError != nil {
			return fmt.Errorf(errorWalkFormat, walkedPath, accessError)
		}
		if fileInfo.IsDir() {
			relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
			if utils.PathDepth(relativePath) > maxDepth {
				return fmt.Errorf(errorDepthFormat, ErrDepthExceeded, walkedPath, maxDepth)
			}
			return nil
		}
		if !fileInfo.Mode().IsRegular() {
			return nil
		}
		if contentCollector.Filter.ShouldIgnore(walkedPath) {
			return nil
		}
		fileOutputs = append(fileOutputs, contentCollector.readFileOutput(fileSystem, logger, walkedPath, fileInfo))
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}

	return fileOutputs, nil
}

// readFileOutput loads and decodes a single file. The returned record is
// always usable; Readable is false when the content had to be left empty.
func (contentCollector *ContentCollector) readFileOutput(fileSystem afero.Fs, logger *zap.Logger, filePath string, fileInfo os.FileInfo) types.FileOutput {
	fileOutput := types.FileOutput{
		Path:      filePath,
		Name:      fileInfo.Name(),
		Extension: utils.FileExtension(fileInfo.Name()),
		SizeBytes: fileInfo.Size(),
	}

	fileBytes, readError := afero.ReadFile(fileSystem, filePath)
	if readError != nil {
		logger.Warn(warningFileReadMessage, zap.String("path", filePath), zap.Error(readError))
		return fileOutput
	}
	fileOutput.MimeType = utils.DetectMimeType(fileBytes)

	decodedContent, decodeError := utils.DecodeText(fileBytes)
	if decodeError != nil {
		logger.Warn(warningFileDecodeMessage,
			zap.String("path", filePath),
			zap.String("mimeType", fileOutput.MimeType),
			zap.Error(decodeError),
		)
		return fileOutput
	}

	fileOutput.Content = decodedContent
	fileOutput.Readable = true
	return fileOutput
}
