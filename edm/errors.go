// SPDX-License-Identifier: MIT

package edm

import "errors"

// ErrMaskLength describes a training or prediction mask that does not match
// the generator's series length. Predict reports that case as
// core.UNKNOWN_ERROR and does not return this error.
var ErrMaskLength = errors.New("edm: mask length does not match generator series length")
