// Package auth manages the session credential issued by the dropsite server.
//
// A single bearer token is persisted at a time: a new create or access
// overwrites whatever token was saved before. The token is re-read from disk
// before every upload and download, so it survives process restarts.
package auth

import "errors"

// ErrMissingCredentials occurs when no usable credential is saved locally
var ErrMissingCredentials = errors.New("no saved credential found, create or access a site first")
