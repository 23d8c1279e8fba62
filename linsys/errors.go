// SPDX-License-Identifier: MIT

package linsys

import "errors"

var (
	// ErrShape is returned for ragged rows or len(B) != len(A).
	ErrShape = errors.New("linsys: malformed system shape")

	// ErrInconsistent is returned when a row reduces to 0 = c with c ≠ 0.
	ErrInconsistent = errors.New("linsys: inconsistent system")

	// ErrOverflow is returned by Affine when a scaled coefficient leaves int64.
	ErrOverflow = errors.New("linsys: coefficient overflows int64")

	// ErrFreeLength is returned by BackSubstitute for a vector not aligned with Free().
	ErrFreeLength = errors.New("linsys: free vector length mismatch")
)
