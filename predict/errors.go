// SPDX-License-Identifier: MIT

package predict

import "errors"

var (
	// ErrNoNeighbors is returned when a predictor is invoked over an empty
	// neighbor selection.
	ErrNoNeighbors = errors.New("predict: no neighbors supplied")

	// ErrSVDFailed is returned when S-map's thin SVD solve fails to
	// factorize the weighted design matrix.
	ErrSVDFailed = errors.New("predict: singular value decomposition failed")
)
