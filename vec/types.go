package vec

// Vec2 is a 2-component vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec3 is a 3-component vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec4 is a 4-component vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

type (
	Int2 = Vec2[int32]
	Int3 = Vec3[int32]
	Int4 = Vec4[int32]

	Uint2 = Vec2[uint32]
	Uint3 = Vec3[uint32]
	Uint4 = Vec4[uint32]

	Float2 = Vec2[float32]
	Float3 = Vec3[float32]
	Float4 = Vec4[float32]
)

// MakeInt2 returns the Int2 (x, y).
func MakeInt2(x, y int32) Int2 { return Int2{X: x, Y: y} }

// MakeInt3 returns the Int3 (x, y, z).
func MakeInt3(x, y, z int32) Int3 { return Int3{X: x, Y: y, Z: z} }

// MakeInt4 returns the Int4 (x, y, z, w).
func MakeInt4(x, y, z, w int32) Int4 { return Int4{X: x, Y: y, Z: z, W: w} }

// MakeUint2 returns the Uint2 (x, y).
func MakeUint2(x, y uint32) Uint2 { return Uint2{X: x, Y: y} }

// MakeUint3 returns the Uint3 (x, y, z).
func MakeUint3(x, y, z uint32) Uint3 { return Uint3{X: x, Y: y, Z: z} }

// MakeUint4 returns the Uint4 (x, y, z, w).
func MakeUint4(x, y, z, w uint32) Uint4 { return Uint4{X: x, Y: y, Z: z, W: w} }

// MakeFloat2 returns the Float2 (x, y).
func MakeFloat2(x, y float32) Float2 { return Float2{X: x, Y: y} }

// MakeFloat3 returns the Float3 (x, y, z).
func MakeFloat3(x, y, z float32) Float3 { return Float3{X: x, Y: y, Z: z} }

// MakeFloat4 returns the Float4 (x, y, z, w).
func MakeFloat4(x, y, z, w float32) Float4 { return Float4{X: x, Y: y, Z: z, W: w} }

// Splat2 returns a Vec2 with every component set to s.
func Splat2[T Scalar](s T) Vec2[T] { return Vec2[T]{s, s} }

// Splat3 returns a Vec3 with every component set to s.
func Splat3[T Scalar](s T) Vec3[T] { return Vec3[T]{s, s, s} }

// Splat4 returns a Vec4 with every component set to s.
func Splat4[T Scalar](s T) Vec4[T] { return Vec4[T]{s, s, s, s} }
