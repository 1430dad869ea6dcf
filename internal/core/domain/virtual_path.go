package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const parentDir = ".."

// VirtualPath is a slash-separated path rooted at a project (or package) root, e.g. "/chapters/intro.qd".
//
// Construction removes "." segments and folds "dir/.." pairs lexically, but keeps ".." segments
// that would climb above the root so that Resolve can deny them instead of silently clamping.
type VirtualPath struct {
	s InternedString
}

// NewVirtualPath normalizes p into a virtual path. Both "/" and the OS separator are accepted.
func NewVirtualPath(p string) VirtualPath {
	p = filepath.ToSlash(p)
	parts := make([]string, 0, strings.Count(p, "/")+1)
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
			continue
		case parentDir:
			if n := len(parts); n > 0 && parts[n-1] != parentDir {
				parts = parts[:n-1]
				continue
			}
			parts = append(parts, parentDir)
		default:
			parts = append(parts, seg)
		}
	}
	return VirtualPath{s: NewInternedString("/" + strings.Join(parts, "/"))}
}

// VirtualPathWithinRoot forms the virtual path of the system path p relative to root.
// Both paths are made absolute first; p must be inside root.
func VirtualPathWithinRoot(p, root string) (VirtualPath, error) {
	absPath, err := filepath.Abs(p)
	if err != nil {
		return VirtualPath{}, zerr.With(zerr.Wrap(err, ErrInvalidVirtualPath.Error()), "path", p)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return VirtualPath{}, zerr.With(zerr.Wrap(err, ErrInvalidVirtualPath.Error()), "root", root)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == parentDir || strings.HasPrefix(rel, parentDir+string(filepath.Separator)) {
		return VirtualPath{}, zerr.With(ErrInputOutsideRoot, "path", p)
	}
	return NewVirtualPath(rel), nil
}

// String returns the normalized form, always starting with "/".
func (v VirtualPath) String() string {
	if v.s.IsZero() {
		return "/"
	}
	return v.s.String()
}

// Segments returns the path components.
func (v VirtualPath) Segments() []string {
	trimmed := strings.TrimPrefix(v.String(), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Escapes reports whether the path climbs above its root.
func (v VirtualPath) Escapes() bool {
	segs := v.Segments()
	return len(segs) > 0 && segs[0] == parentDir
}

// Join resolves rel against the directory containing v. A rel starting with "/" is taken from the root.
func (v VirtualPath) Join(rel string) VirtualPath {
	if strings.HasPrefix(filepath.ToSlash(rel), "/") {
		return NewVirtualPath(rel)
	}
	dir := v.String()
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i]
	}
	return NewVirtualPath(dir + "/" + rel)
}

// Resolve joins the path onto root. The check is purely lexical: a path that would escape root
// through ".." fails with ErrAccessDenied, while symlinks inside root are not inspected.
func (v VirtualPath) Resolve(root string) (string, error) {
	if v.Escapes() {
		return "", NewFileError(KindAccessDenied, "", nil)
	}
	return filepath.Join(append([]string{root}, v.Segments()...)...), nil
}
