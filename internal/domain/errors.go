package domain

import "errors"

var (
	ErrInvalidWorld            = errors.New("invalid world state")
	ErrInvalidWord             = errors.New("invalid word")
	ErrInvalidPrefix           = errors.New("no complete utterance starts with prefix")
	ErrInvalidUtterance        = errors.New("not a valid complete utterance")
	ErrDegenerateNormalization = errors.New("cannot normalize distribution with zero total")
	ErrInvalidDepth            = errors.New("invalid recursion depth")
	ErrMissingEntry            = errors.New("semantics entry not found")
	ErrConflictingEntry        = errors.New("conflicting semantics entry")
	ErrInvalidParams           = errors.New("invalid model parameters")
	ErrNonTerminating          = errors.New("utterance generation did not reach end marker")
	ErrModelNotFound           = errors.New("model not found")
)
