package utils

import "errors"

// ErrUserInitiatedExit signals that the user asked to leave (help,
// version, interrupt). Main treats it as a clean zero exit.
var ErrUserInitiatedExit = errors.New("user initiated exit")
