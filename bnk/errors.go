package bnk

import "errors"

// Sentinel errors surfaced by the bnk package. Check with errors.Is.
var (
	ErrTruncated             = errors.New("bnk: truncated container framing")
	ErrBadHeader             = errors.New("bnk: missing or invalid BKHD header")
	ErrMissingIndex          = errors.New("bnk: bank has no DIDX audio index")
	ErrUnknownAudioID        = errors.New("bnk: audio id not present in index")
	ErrReplacementUnreadable = errors.New("bnk: replacement byte source failed to read")
	ErrSinkFailure           = errors.New("bnk: output sink failed")
)
