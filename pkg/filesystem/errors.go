package filesystem

import (
	stderrors "errors"
	"io/fs"

	"github.com/sdiehl/ipython/pkg/errors"
)

// ReadError classifies a failed read of filename: FILE_NOT_FOUND when the
// file does not exist, FILE_ACCESS otherwise.
func ReadError(err error, filename string) error {
	code := errors.ErrFileAccess
	if stderrors.Is(err, fs.ErrNotExist) {
		code = errors.ErrFileNotFound
	}
	return errors.Wrapf(err, code, "reading %s", filename).WithDetail("filename", filename)
}
