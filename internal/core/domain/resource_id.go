package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// PackageSpec names a versioned package a resource belongs to. The zero value means "no package".
type PackageSpec struct {
	Namespace string
	Name      string
	Version   string
}

// ParsePackageSpec parses "@namespace/name:version".
func ParsePackageSpec(s string) (PackageSpec, error) {
	rest, ok := strings.CutPrefix(s, "@")
	if !ok {
		return PackageSpec{}, zerr.With(ErrInvalidPackageSpec, "spec", s)
	}
	namespace, rest, ok := strings.Cut(rest, "/")
	if !ok || namespace == "" {
		return PackageSpec{}, zerr.With(ErrInvalidPackageSpec, "spec", s)
	}
	name, version, ok := strings.Cut(rest, ":")
	if !ok || name == "" || version == "" {
		return PackageSpec{}, zerr.With(ErrInvalidPackageSpec, "spec", s)
	}
	return PackageSpec{Namespace: namespace, Name: name, Version: version}, nil
}

// IsZero reports whether no package is set.
func (p PackageSpec) IsZero() bool {
	return p == PackageSpec{}
}

func (p PackageSpec) String() string {
	return fmt.Sprintf("@%s/%s:%s", p.Namespace, p.Name, p.Version)
}

// ResourceID identifies a resource by optional package and virtual path.
// It is a comparable value: two IDs are equal iff their fields are equal, so IDs are used directly as map keys.
type ResourceID struct {
	pkg      PackageSpec
	vpath    VirtualPath
	detached bool
}

// StdinID is the well-known identifier for standard input. It never equals an ID built with NewResourceID.
var StdinID = ResourceID{vpath: NewVirtualPath("<stdin>"), detached: true}

// NewResourceID creates an identifier for a virtual path, optionally inside a package.
func NewResourceID(pkg PackageSpec, vpath VirtualPath) ResourceID {
	return ResourceID{pkg: pkg, vpath: vpath}
}

// NewDetachedID creates an identifier that does not correspond to any file, e.g. an in-memory main document.
func NewDetachedID(name string) ResourceID {
	return ResourceID{vpath: NewVirtualPath(name), detached: true}
}

// Package returns the package and whether one is set.
func (id ResourceID) Package() (PackageSpec, bool) {
	return id.pkg, !id.pkg.IsZero()
}

// VirtualPath returns the path within the root.
func (id ResourceID) VirtualPath() VirtualPath {
	return id.vpath
}

// Detached reports whether the identifier has no backing file.
func (id ResourceID) Detached() bool {
	return id.detached
}

// Join returns the identifier for rel relative to this one, staying in the same package.
func (id ResourceID) Join(rel string) ResourceID {
	return ResourceID{pkg: id.pkg, vpath: id.vpath.Join(rel)}
}

func (id ResourceID) String() string {
	s := id.vpath.String()
	if id.detached {
		s = strings.TrimPrefix(s, "/")
	}
	if !id.pkg.IsZero() {
		return id.pkg.String() + s
	}
	return s
}
