// Package render binds template contexts into ZPL label payloads.
//
// Templates use pongo2 (Django/Jinja2 syntax), which supplies the filter
// vocabulary labels rely on: default-value substitution and fixed-width
// wordwrap are presentation concerns evaluated at render time, not by the
// normalizer. Rendering is deterministic and all-or-nothing; the payload is
// opaque bytes to everything downstream.
package render
