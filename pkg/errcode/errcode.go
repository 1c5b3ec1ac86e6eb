package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	ParseFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	StoreConnectionError
	StoreNotReadyError
	StoreVersionError
	StoreReadError
	StoreBackendError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaTablesExistError

	// Populate errors
	PopulateDumpReadError
	PopulateInsertError

	// Optimize errors
	OptimizeOrphansError
	OptimizeVacuumError

	// Resolution errors
	NotFoundError
	UnknownGenerationError
	InvalidInputError
	EvolutionDecodeError

	// Output errors
	RenderError
)

// Is reports whether any *gn.Error in err's chain carries the given code.
func Is(err error, code gn.ErrorCode) bool {
	for err != nil {
		var gnErr *gn.Error
		if !errors.As(err, &gnErr) {
			return false
		}
		if gnErr.Code == code {
			return true
		}
		err = gnErr.Err
	}
	return false
}
