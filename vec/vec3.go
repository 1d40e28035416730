package vec

// Add returns a + b componentwise.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b componentwise.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the componentwise (Hadamard) product of a and b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div returns a / b componentwise. For integer vectors a zero component in b
// panics.
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// AddScalar returns (a.X+s, a.Y+s, a.Z+s).
func (a Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{a.X + s, a.Y + s, a.Z + s}
}

// SubScalar returns (a.X-s, a.Y-s, a.Z-s).
func (a Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{a.X - s, a.Y - s, a.Z - s}
}

// MulScalar returns a scaled by s.
func (a Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// DivScalar returns (a.X/s, a.Y/s, a.Z/s).
func (a Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// RAdd returns (s+a.X, s+a.Y, s+a.Z).
func (a Vec3[T]) RAdd(s T) Vec3[T] {
	return Vec3[T]{s + a.X, s + a.Y, s + a.Z}
}

// RSub returns (s-a.X, s-a.Y, s-a.Z), the reverse of SubScalar.
func (a Vec3[T]) RSub(s T) Vec3[T] {
	return Vec3[T]{s - a.X, s - a.Y, s - a.Z}
}

// RMul returns (s*a.X, s*a.Y, s*a.Z).
func (a Vec3[T]) RMul(s T) Vec3[T] {
	return Vec3[T]{s * a.X, s * a.Y, s * a.Z}
}

// RDiv returns (s/a.X, s/a.Y, s/a.Z), the reverse of DivScalar.
func (a Vec3[T]) RDiv(s T) Vec3[T] {
	return Vec3[T]{s / a.X, s / a.Y, s / a.Z}
}

// AddAssign sets a to a + b.
func (a *Vec3[T]) AddAssign(b Vec3[T]) {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
}

// SubAssign sets a to a - b.
func (a *Vec3[T]) SubAssign(b Vec3[T]) {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z
}

// MulAssign sets a to a * b componentwise.
func (a *Vec3[T]) MulAssign(b Vec3[T]) {
	a.X *= b.X
	a.Y *= b.Y
	a.Z *= b.Z
}

// AddScalarAssign adds s to every component of a.
func (a *Vec3[T]) AddScalarAssign(s T) {
	a.X += s
	a.Y += s
	a.Z += s
}

// SubScalarAssign subtracts s from every component of a.
func (a *Vec3[T]) SubScalarAssign(s T) {
	a.X -= s
	a.Y -= s
	a.Z -= s
}

// MulScalarAssign scales a by s.
func (a *Vec3[T]) MulScalarAssign(s T) {
	a.X *= s
	a.Y *= s
	a.Z *= s
}

// Min returns the componentwise minimum of a and b (see Min).
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b (see Max).
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z)}
}

// ReduceMin returns the smallest component, folded as Min(X, Min(Y, Z)).
func (a Vec3[T]) ReduceMin() T {
	return Min(a.X, Min(a.Y, a.Z))
}

// ReduceMax returns the largest component, folded as Max(X, Max(Y, Z)).
func (a Vec3[T]) ReduceMax() T {
	return Max(a.X, Max(a.Y, a.Z))
}

// Clamp restricts every component of a to the matching [lo, hi] range.
func (a Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{Clamp(a.X, lo.X, hi.X), Clamp(a.Y, lo.Y, hi.Y), Clamp(a.Z, lo.Z, hi.Z)}
}

// ClampScalar restricts every component of a to [lo, hi].
func (a Vec3[T]) ClampScalar(lo, hi T) Vec3[T] {
	return Vec3[T]{Clamp(a.X, lo, hi), Clamp(a.Y, lo, hi), Clamp(a.Z, lo, hi)}
}

// Dot returns the sum of the componentwise products of a and b.
// Integer dot products wrap on overflow.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Neg3 returns -v.
func Neg3[T Signed | Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Abs3 returns the componentwise absolute value of v.
func Abs3[T Signed | Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// DivAssign3 sets *v to *v / b componentwise.
// Only float vectors support in-place division.
func DivAssign3[T Float](v *Vec3[T], b Vec3[T]) {
	v.X /= b.X
	v.Y /= b.Y
	v.Z /= b.Z
}

// DivScalarAssign3 divides every component of *v by s.
func DivScalarAssign3[T Float](v *Vec3[T], s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Fmin3 returns the componentwise minimum of a and b using fminf semantics.
func Fmin3[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Fmin(a.X, b.X), Fmin(a.Y, b.Y), Fmin(a.Z, b.Z)}
}

// Fmax3 returns the componentwise maximum of a and b using fmaxf semantics.
func Fmax3[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Fmax(a.X, b.X), Fmax(a.Y, b.Y), Fmax(a.Z, b.Z)}
}

// Length3 returns the Euclidean length sqrt(dot(v, v)).
func Length3[T Float](v Vec3[T]) T {
	return sqrt(v.Dot(v))
}

// Normalize3 returns v scaled by rsqrt(dot(v, v)).
//
// v must be non-zero; the zero vector yields non-finite components.
func Normalize3[T Float](v Vec3[T]) Vec3[T] {
	return v.MulScalar(Rsqrt(v.Dot(v)))
}

// Lerp3 returns a + t*(b-a). t is not clamped.
func Lerp3[T Float](a, b Vec3[T], t T) Vec3[T] {
	return a.Add(b.Sub(a).RMul(t))
}

// Smoothstep3 applies Smoothstep to each component of x with the matching
// edges from a and b.
func Smoothstep3[T Float](a, b, x Vec3[T]) Vec3[T] {
	y := x.Sub(a).Div(b.Sub(a)).ClampScalar(0, 1)
	return y.Mul(y).Mul(y.RMul(2).RSub(3))
}

// Floor3 returns the componentwise floor of v.
func Floor3[T Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)}
}

// Frac3 returns the componentwise fractional part v - floor(v).
func Frac3[T Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{Frac(v.X), Frac(v.Y), Frac(v.Z)}
}

// Fmod3 returns the componentwise floating-point remainder of a/b.
func Fmod3[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Fmod(a.X, b.X), Fmod(a.Y, b.Y), Fmod(a.Z, b.Z)}
}

// Shl3 shifts every component of v left by n bits.
func Shl3[T Integer](v Vec3[T], n uint) Vec3[T] {
	return Vec3[T]{v.X << n, v.Y << n, v.Z << n}
}

// Shr3 shifts every component of v right by n bits (arithmetic for int32,
// logical for uint32).
func Shr3[T Integer](v Vec3[T], n uint) Vec3[T] {
	return Vec3[T]{v.X >> n, v.Y >> n, v.Z >> n}
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Float3) Float3 {
	// The conversions round each product, so the compiler cannot fuse one
	// of them into an FMA and Cross(a, b) == -Cross(b, a) holds exactly.
	return Float3{
		X: float32(a.Y*b.Z) - float32(a.Z*b.Y),
		Y: float32(a.Z*b.X) - float32(a.X*b.Z),
		Z: float32(a.X*b.Y) - float32(a.Y*b.X),
	}
}

// Reflect returns the reflection of the incident vector i about the surface
// normal n: i - 2*n*dot(n, i).
//
// n must be unit length; Reflect does not normalize it. Only then does the
// result have the same length as i.
func Reflect(i, n Float3) Float3 {
	return i.Sub(n.RMul(2).MulScalar(n.Dot(i)))
}
