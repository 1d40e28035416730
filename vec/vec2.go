package vec

// Add returns a + b componentwise.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b componentwise.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul returns the componentwise product of a and b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Div returns a / b componentwise.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X / b.X, a.Y / b.Y}
}

// AddScalar returns (a.X+s, a.Y+s).
func (a Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{a.X + s, a.Y + s}
}

// SubScalar returns (a.X-s, a.Y-s).
func (a Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{a.X - s, a.Y - s}
}

// MulScalar returns a scaled by s.
func (a Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{a.X * s, a.Y * s}
}

// DivScalar returns (a.X/s, a.Y/s).
func (a Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{a.X / s, a.Y / s}
}

// RAdd returns (s+a.X, s+a.Y).
func (a Vec2[T]) RAdd(s T) Vec2[T] {
	return Vec2[T]{s + a.X, s + a.Y}
}

// RSub returns (s-a.X, s-a.Y).
func (a Vec2[T]) RSub(s T) Vec2[T] {
	return Vec2[T]{s - a.X, s - a.Y}
}

// RMul returns (s*a.X, s*a.Y).
func (a Vec2[T]) RMul(s T) Vec2[T] {
	return Vec2[T]{s * a.X, s * a.Y}
}

// RDiv returns (s/a.X, s/a.Y).
func (a Vec2[T]) RDiv(s T) Vec2[T] {
	return Vec2[T]{s / a.X, s / a.Y}
}

// AddAssign sets a to a + b.
func (a *Vec2[T]) AddAssign(b Vec2[T]) {
	a.X += b.X
	a.Y += b.Y
}

// SubAssign sets a to a - b.
func (a *Vec2[T]) SubAssign(b Vec2[T]) {
	a.X -= b.X
	a.Y -= b.Y
}

// MulAssign sets a to a * b componentwise.
func (a *Vec2[T]) MulAssign(b Vec2[T]) {
	a.X *= b.X
	a.Y *= b.Y
}

// AddScalarAssign adds s to both components of a.
func (a *Vec2[T]) AddScalarAssign(s T) {
	a.X += s
	a.Y += s
}

// SubScalarAssign subtracts s from both components of a.
func (a *Vec2[T]) SubScalarAssign(s T) {
	a.X -= s
	a.Y -= s
}

// MulScalarAssign scales a by s.
func (a *Vec2[T]) MulScalarAssign(s T) {
	a.X *= s
	a.Y *= s
}

// Min returns the componentwise minimum of a and b.
func (a Vec2[T]) Min(b Vec2[T]) Vec2[T] {
	return Vec2[T]{Min(a.X, b.X), Min(a.Y, b.Y)}
}

// Max returns the componentwise maximum of a and b.
func (a Vec2[T]) Max(b Vec2[T]) Vec2[T] {
	return Vec2[T]{Max(a.X, b.X), Max(a.Y, b.Y)}
}

// ReduceMin returns Min(X, Y).
func (a Vec2[T]) ReduceMin() T {
	return Min(a.X, a.Y)
}

// ReduceMax returns Max(X, Y).
func (a Vec2[T]) ReduceMax() T {
	return Max(a.X, a.Y)
}

// Clamp restricts each component of a to the matching [lo, hi] range.
func (a Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{Clamp(a.X, lo.X, hi.X), Clamp(a.Y, lo.Y, hi.Y)}
}

// ClampScalar restricts each component of a to [lo, hi].
func (a Vec2[T]) ClampScalar(lo, hi T) Vec2[T] {
	return Vec2[T]{Clamp(a.X, lo, hi), Clamp(a.Y, lo, hi)}
}

// Dot returns a.X*b.X + a.Y*b.Y.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Neg2 returns -v.
func Neg2[T Signed | Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Abs2 returns the componentwise absolute value of v.
func Abs2[T Signed | Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{Abs(v.X), Abs(v.Y)}
}

// DivAssign2 sets *v to *v / b componentwise.
func DivAssign2[T Float](v *Vec2[T], b Vec2[T]) {
	v.X /= b.X
	v.Y /= b.Y
}

// DivScalarAssign2 divides both components of *v by s.
func DivScalarAssign2[T Float](v *Vec2[T], s T) {
	v.X /= s
	v.Y /= s
}

// Fmin2 returns the componentwise fminf of a and b.
func Fmin2[T Float](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{Fmin(a.X, b.X), Fmin(a.Y, b.Y)}
}

// Fmax2 returns the componentwise fmaxf of a and b.
func Fmax2[T Float](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{Fmax(a.X, b.X), Fmax(a.Y, b.Y)}
}

// Length2 returns sqrt(dot(v, v)).
func Length2[T Float](v Vec2[T]) T {
	return sqrt(v.Dot(v))
}

// Normalize2 returns v scaled to unit length. v must be non-zero.
func Normalize2[T Float](v Vec2[T]) Vec2[T] {
	return v.MulScalar(Rsqrt(v.Dot(v)))
}

// Lerp2 returns a + t*(b-a).
func Lerp2[T Float](a, b Vec2[T], t T) Vec2[T] {
	return a.Add(b.Sub(a).RMul(t))
}

// Smoothstep2 applies Smoothstep componentwise.
func Smoothstep2[T Float](a, b, x Vec2[T]) Vec2[T] {
	y := x.Sub(a).Div(b.Sub(a)).ClampScalar(0, 1)
	return y.Mul(y).Mul(y.RMul(2).RSub(3))
}

// Floor2 returns the componentwise floor of v.
func Floor2[T Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{Floor(v.X), Floor(v.Y)}
}

// Frac2 returns the componentwise fractional part of v.
func Frac2[T Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{Frac(v.X), Frac(v.Y)}
}

// Fmod2 returns the componentwise remainder of a/b.
func Fmod2[T Float](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{Fmod(a.X, b.X), Fmod(a.Y, b.Y)}
}

// Shl2 shifts both components of v left by n bits.
func Shl2[T Integer](v Vec2[T], n uint) Vec2[T] {
	return Vec2[T]{v.X << n, v.Y << n}
}

// Shr2 shifts both components of v right by n bits.
func Shr2[T Integer](v Vec2[T], n uint) Vec2[T] {
	return Vec2[T]{v.X >> n, v.Y >> n}
}
