package slides

import (
	"errors"
	"fmt"
)

// ErrFieldNotFound is returned by FieldByKey when no field carries the key.
var ErrFieldNotFound = errors.New("field not found")

// MalformedContentError reports a metaobject response that lacks part of the
// expected nesting. Path names the first missing element, e.g.
// "metaobject.fields[0].references".
type MalformedContentError struct {
	Path string
}

func (e *MalformedContentError) Error() string {
	return fmt.Sprintf("malformed content object: missing %s", e.Path)
}

// IsMalformed reports whether err wraps a MalformedContentError.
func IsMalformed(err error) bool {
	var malformed *MalformedContentError
	return errors.As(err, &malformed)
}

func malformed(path string) error {
	return &MalformedContentError{Path: path}
}
