// Package vector provides the fixed-size Vector2, Vector3 and Vector4 value
// types and the arbitrary-dimension VecN.
//
// The fixed-size types are plain structs with value receivers: arithmetic
// never mutates an operand, it returns a fresh value. The only mutators are
// SetComponent (pointer receiver) and field assignment. Dimension is encoded
// in the type, so a Vector2 can never be passed where a Vector3 is expected.
//
// VecN carries its dimension at runtime; binary operations validate it and
// return ErrDimensionMismatch instead of truncating or padding.
package vector
