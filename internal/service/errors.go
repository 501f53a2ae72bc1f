package service

import "errors"

// ErrNotAuthor is returned when a user attempts to modify content they
// do not own. Handlers translate it into a redirect to the read view
// rather than a hard failure.
var ErrNotAuthor = errors.New("only the author may modify this content")
