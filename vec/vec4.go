package vec

// Add returns a + b componentwise.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns a - b componentwise.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the componentwise product of a and b.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Div returns a / b componentwise.
func (a Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

// AddScalar adds s to every component of a.
func (a Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{a.X + s, a.Y + s, a.Z + s, a.W + s}
}

// SubScalar subtracts s from every component of a.
func (a Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{a.X - s, a.Y - s, a.Z - s, a.W - s}
}

// MulScalar returns a scaled by s.
func (a Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// DivScalar divides every component of a by s.
func (a Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

// RAdd returns s + a componentwise.
func (a Vec4[T]) RAdd(s T) Vec4[T] {
	return Vec4[T]{s + a.X, s + a.Y, s + a.Z, s + a.W}
}

// RSub returns s - a componentwise.
func (a Vec4[T]) RSub(s T) Vec4[T] {
	return Vec4[T]{s - a.X, s - a.Y, s - a.Z, s - a.W}
}

// RMul returns s * a componentwise.
func (a Vec4[T]) RMul(s T) Vec4[T] {
	return Vec4[T]{s * a.X, s * a.Y, s * a.Z, s * a.W}
}

// RDiv returns s / a componentwise.
func (a Vec4[T]) RDiv(s T) Vec4[T] {
	return Vec4[T]{s / a.X, s / a.Y, s / a.Z, s / a.W}
}

// AddAssign sets a to a + b.
func (a *Vec4[T]) AddAssign(b Vec4[T]) {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
	a.W += b.W
}

// SubAssign sets a to a - b.
func (a *Vec4[T]) SubAssign(b Vec4[T]) {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z
	a.W -= b.W
}

// MulAssign sets a to a * b componentwise.
func (a *Vec4[T]) MulAssign(b Vec4[T]) {
	a.X *= b.X
	a.Y *= b.Y
	a.Z *= b.Z
	a.W *= b.W
}

// AddScalarAssign adds s to every component of a.
func (a *Vec4[T]) AddScalarAssign(s T) {
	a.X += s
	a.Y += s
	a.Z += s
	a.W += s
}

// SubScalarAssign subtracts s from every component of a.
func (a *Vec4[T]) SubScalarAssign(s T) {
	a.X -= s
	a.Y -= s
	a.Z -= s
	a.W -= s
}

// MulScalarAssign scales a by s.
func (a *Vec4[T]) MulScalarAssign(s T) {
	a.X *= s
	a.Y *= s
	a.Z *= s
	a.W *= s
}

// Min returns the componentwise minimum of a and b.
func (a Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z), Min(a.W, b.W)}
}

// Max returns the componentwise maximum of a and b.
func (a Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z), Max(a.W, b.W)}
}

// ReduceMin returns the smallest component. Adjacent pairs are folded first:
// Min(Min(X, Y), Min(Z, W)).
func (a Vec4[T]) ReduceMin() T {
	return Min(Min(a.X, a.Y), Min(a.Z, a.W))
}

// ReduceMax returns the largest component, folded as
// Max(Max(X, Y), Max(Z, W)).
func (a Vec4[T]) ReduceMax() T {
	return Max(Max(a.X, a.Y), Max(a.Z, a.W))
}

// Clamp restricts each component of a to the matching [lo, hi] range.
func (a Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Clamp(a.X, lo.X, hi.X),
		Clamp(a.Y, lo.Y, hi.Y),
		Clamp(a.Z, lo.Z, hi.Z),
		Clamp(a.W, lo.W, hi.W),
	}
}

// ClampScalar restricts each component of a to [lo, hi].
func (a Vec4[T]) ClampScalar(lo, hi T) Vec4[T] {
	return Vec4[T]{Clamp(a.X, lo, hi), Clamp(a.Y, lo, hi), Clamp(a.Z, lo, hi), Clamp(a.W, lo, hi)}
}

// Dot returns the sum of the componentwise products of a and b.
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Neg4 returns -v.
func Neg4[T Signed | Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Abs4 returns the componentwise absolute value of v.
func Abs4[T Signed | Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

// DivAssign4 sets *v to *v / b componentwise.
func DivAssign4[T Float](v *Vec4[T], b Vec4[T]) {
	v.X /= b.X
	v.Y /= b.Y
	v.Z /= b.Z
	v.W /= b.W
}

// DivScalarAssign4 divides every component of *v by s.
func DivScalarAssign4[T Float](v *Vec4[T], s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

// Fmin4 returns the componentwise fminf of a and b.
func Fmin4[T Float](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{Fmin(a.X, b.X), Fmin(a.Y, b.Y), Fmin(a.Z, b.Z), Fmin(a.W, b.W)}
}

// Fmax4 returns the componentwise fmaxf of a and b.
func Fmax4[T Float](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{Fmax(a.X, b.X), Fmax(a.Y, b.Y), Fmax(a.Z, b.Z), Fmax(a.W, b.W)}
}

// Length4 returns sqrt(dot(v, v)).
func Length4[T Float](v Vec4[T]) T {
	return sqrt(v.Dot(v))
}

// Normalize4 returns v scaled to unit length. v must be non-zero.
func Normalize4[T Float](v Vec4[T]) Vec4[T] {
	return v.MulScalar(Rsqrt(v.Dot(v)))
}

// Lerp4 returns a + t*(b-a).
func Lerp4[T Float](a, b Vec4[T], t T) Vec4[T] {
	return a.Add(b.Sub(a).RMul(t))
}

// Smoothstep4 applies Smoothstep componentwise.
func Smoothstep4[T Float](a, b, x Vec4[T]) Vec4[T] {
	y := x.Sub(a).Div(b.Sub(a)).ClampScalar(0, 1)
	return y.Mul(y).Mul(y.RMul(2).RSub(3))
}

// Floor4 returns the componentwise floor of v.
func Floor4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

// Frac4 returns the componentwise fractional part of v.
func Frac4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Frac(v.X), Frac(v.Y), Frac(v.Z), Frac(v.W)}
}

// Fmod4 returns the componentwise remainder of a/b.
func Fmod4[T Float](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{Fmod(a.X, b.X), Fmod(a.Y, b.Y), Fmod(a.Z, b.Z), Fmod(a.W, b.W)}
}

// Shl4 shifts every component of v left by n bits.
func Shl4[T Integer](v Vec4[T], n uint) Vec4[T] {
	return Vec4[T]{v.X << n, v.Y << n, v.Z << n, v.W << n}
}

// Shr4 shifts every component of v right by n bits.
func Shr4[T Integer](v Vec4[T], n uint) Vec4[T] {
	return Vec4[T]{v.X >> n, v.Y >> n, v.Z >> n, v.W >> n}
}
