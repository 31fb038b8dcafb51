package compliance

import "errors"

var (
	ErrNotPDF           = errors.New("compliance: file is not a PDF")
	ErrNoFileSelected   = errors.New("compliance: no file selected")
	ErrCheckInFlight    = errors.New("compliance: a check is already running")
	ErrCheckFailed      = errors.New("compliance: check failed")
	ErrInvalidCatalogue = errors.New("compliance: invalid pillar catalogue")
)
