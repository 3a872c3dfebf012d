package qrcode

import "errors"

// ErrFormatInformation is returned when format information cannot be
// read from either its primary or backup location.
var ErrFormatInformation = errors.New("qrcode: could not read format information")

// ErrVersionInformation is returned when version information (for
// version 7+ symbols) cannot be read from either copy.
var ErrVersionInformation = errors.New("qrcode: could not read version information")

// ErrInvalidData is returned for a structurally malformed bitstream: an
// unrecognized mode indicator, a malformed ECI designator, or a
// truncated segment. Codeword count mismatches are ErrInvalidArgument.
var ErrInvalidData = errors.New("qrcode: invalid data")

// ErrInvalidArgument is returned when a caller-supplied value (matrix
// dimension, codeword count) is inconsistent with the QR code symbol
// format.
var ErrInvalidArgument = errors.New("qrcode: invalid argument")
