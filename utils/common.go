package utils

const (
	// NODETOL is the tolerance used when comparing nodal coordinates
	NODETOL = 1.e-12
)
