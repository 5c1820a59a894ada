// Package lucid contains the domain types of Lucid Geometry: a chain of
// segments, each rotating about a world axis at a rational speed, whose end
// traces a closed curve in 3D.
//
// The interesting work happens in the path package, which computes the period
// after which a chain returns to its starting configuration and samples the
// curve over exactly that period.
package lucid

// Version is the version of the module, reported by the CLI and the API.
const Version = "0.3.0"

// Name is the product name.
const Name = "Lucid Geometry"
