package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the metadata file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformedDocument indicates the metadata file is not a valid JSON object.
	ErrMalformedDocument = errors.New("is not valid JSON")

	// ErrMissingField indicates a required field is absent from the document.
	ErrMissingField = errors.New("is missing field")

	// ErrTypeMismatch indicates a field holds a value of the wrong JSON type.
	ErrTypeMismatch = errors.New("has a field of the wrong type")

	// ErrRead indicates the metadata file could not be read.
	ErrRead = errors.New("read")

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing the metadata file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)
)
