//go:build !release

package invariant

const strict = true
