// Package vec provides arithmetic, geometric and elementwise operations over
// small fixed-arity vectors: 2, 3 and 4 components of int32, uint32 or
// float32.
//
// The nine concrete types are aliases of three generic structs:
//
//	Int2, Int3, Int4       = Vec2[int32],   Vec3[int32],   Vec4[int32]
//	Uint2, Uint3, Uint4    = Vec2[uint32],  Vec3[uint32],  Vec4[uint32]
//	Float2, Float3, Float4 = Vec2[float32], Vec3[float32], Vec4[float32]
//
// # Operations
//
// Operations valid for every scalar kind are methods:
//
//   - Add, Sub, Mul, Div: componentwise (Hadamard), never a matrix product
//   - AddScalar, SubScalar, MulScalar, DivScalar: v op s
//   - RAdd, RSub, RMul, RDiv: s op v (RSub and RDiv are not commutative)
//   - AddAssign, SubAssign, MulAssign and their *ScalarAssign forms: in place
//   - Min, Max, Clamp, ClampScalar, Dot, ReduceMin, ReduceMax
//
// Operations restricted to a subset of kinds are generic functions whose
// constraint rejects the other kinds at compile time: Neg and Abs (signed and
// float), DivAssign, Length, Normalize, Lerp, Smoothstep, Floor, Frac, Fmod,
// Fmin and Fmax (float), Shl and Shr (integer). Cross and Reflect take Float3.
//
// # Numeric semantics
//
// Nothing in this package allocates, validates its inputs or returns an
// error. Float operations follow IEEE-754 (division by zero gives ±Inf or
// NaN, Normalize of the zero vector gives non-finite components). Integer
// division by zero panics with Go's run-time error. Shifts follow Go: >> is
// arithmetic for int32 and logical for uint32, and shifting by 32 or more
// yields 0 (or -1 for a negative int32 shifted right).
//
// Min and Max use std::min/std::max ordering (b < a ? b : a), while the float
// variants Fmin and Fmax use the host fminf/fmaxf shims (a < b ? a : b). The
// two differ only when a component is NaN.
//
// The reciprocal square root used by Normalize comes from internal/shim and
// is exact by default; building with -tags fastmath switches it to an
// approximation.
package vec
