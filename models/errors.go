package models

import "errors"

// ErrNoDraft is returned by DraftStore operations when the session has no
// draft in progress.
var ErrNoDraft = errors.New("no item is being edited in this session")
