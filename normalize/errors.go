package normalize

import "errors"

// ErrInvalidInput indicates a malformed or mixed-schema input that no
// adapter here can normalize (spec §7); CSV row-shape detection in
// cmd/payback surfaces this sentinel too.
var ErrInvalidInput = errors.New("normalize: invalid input")
