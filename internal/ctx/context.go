// Package ctx carries the small set of ambient facts (parent tag code,
// layer type, alpha flag) that shape the decoding of context-sensitive
// tag bodies such as LayerAttributes.
package ctx

import "github.com/pagkit/pagparse/format"

// Context is an immutable value threaded by copy into every nested parse
// call. The top-level driver starts with all fields unset and HasAlpha
// false; each descent refines a copy via the With* builders, never
// mutating the parent's context.
type Context struct {
	parentCode  *format.TagCode
	layerType   *format.LayerType
	hasAlpha    bool
	strictEnums bool
}

// Root returns the context a top-level parse begins with: no parent
// code, no layer type, no alpha.
func Root() Context {
	return Context{}
}

// WithParentCode returns a copy of c with the parent tag code set.
func (c Context) WithParentCode(code format.TagCode) Context {
	next := c
	v := code
	next.parentCode = &v
	return next
}

// WithLayerType returns a copy of c with the layer type set.
func (c Context) WithLayerType(lt format.LayerType) Context {
	next := c
	v := lt
	next.layerType = &v
	return next
}

// WithAlpha returns a copy of c with the alpha flag set.
func (c Context) WithAlpha(hasAlpha bool) Context {
	next := c
	next.hasAlpha = hasAlpha
	return next
}

// ParentCode reports the parent tag code and whether it is set.
func (c Context) ParentCode() (format.TagCode, bool) {
	if c.parentCode == nil {
		return 0, false
	}
	return *c.parentCode, true
}

// LayerType reports the layer type and whether it is set.
func (c Context) LayerType() (format.LayerType, bool) {
	if c.layerType == nil {
		return format.LayerType{}, false
	}
	return *c.layerType, true
}

// HasAlpha reports the current alpha flag.
func (c Context) HasAlpha() bool {
	return c.hasAlpha
}

// WithStrictEnums returns a copy of c with the strict-enum policy set.
func (c Context) WithStrictEnums(strict bool) Context {
	next := c
	next.strictEnums = strict
	return next
}

// StrictEnums reports whether an unknown enum discriminant should be
// treated as a decode error rather than producing an Unknown(byte)
// value.
func (c Context) StrictEnums() bool {
	return c.strictEnums
}
