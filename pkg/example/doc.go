// Package example adapts a recorded example into a documentable unit.
//
// The wrapper decides whether an example belongs in the docs at all and
// whether it is public, computes where its page goes (Dirname/Filename),
// builds the data mapping templates see (Metadata) and renders it through a
// template reference the caller binds before Render.
package example
