package maths

import "errors"

var (
	errVectorNaN                = errors.New("maths: vector component is NaN")
	errQuaternionNaN             = errors.New("maths: quaternion angle or axis component is NaN")
	errQuaternionDegenerateAxis = errors.New("maths: rotation axis has zero length")
)
