package asset

import (
	"errors"
	"fmt"
)

// Kind names the asset category a LoadError refers to.
type Kind string

const (
	KindMesh     Kind = "mesh"
	KindTexture  Kind = "texture"
	KindMaterial Kind = "material"
)

// ErrNotFound is wrapped when a name is missing from a Library.
var ErrNotFound = errors.New("asset not registered")

// LoadError reports a missing or malformed asset. Loading is eager and happens
// once before the frame loop starts, so every LoadError is fatal to startup.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
