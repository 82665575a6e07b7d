package mathutil

// Mat2x3 is a 2×3 matrix stored as 2 rows of Vec3.
type Mat2x3 [2]Vec3

func (m Mat2x3) At(r, c int) float64 { return m[r][c] }

func (m Mat2x3) Equal(b Mat2x3) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 3×2 matrix with rows and columns swapped.
func (m Mat2x3) Transpose() Mat3x2 {
	var t Mat3x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat2x3) MulVec(v Vec3) Vec2 {
	var o Vec2
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}

// Mat2x4 is a 2×4 matrix stored as 2 rows of Vec4.
type Mat2x4 [2]Vec4

func (m Mat2x4) At(r, c int) float64 { return m[r][c] }

func (m Mat2x4) Equal(b Mat2x4) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 4×2 matrix with rows and columns swapped.
func (m Mat2x4) Transpose() Mat4x2 {
	var t Mat4x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat2x4) MulVec(v Vec4) Vec2 {
	var o Vec2
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}

// Mat3x2 is a 3×2 matrix stored as 3 rows of Vec2.
type Mat3x2 [3]Vec2

func (m Mat3x2) At(r, c int) float64 { return m[r][c] }

func (m Mat3x2) Equal(b Mat3x2) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 2×3 matrix with rows and columns swapped.
func (m Mat3x2) Transpose() Mat2x3 {
	var t Mat2x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat3x2) MulVec(v Vec2) Vec3 {
	var o Vec3
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}

// Mat3x4 is a 3×4 matrix stored as 3 rows of Vec4.
type Mat3x4 [3]Vec4

func (m Mat3x4) At(r, c int) float64 { return m[r][c] }

func (m Mat3x4) Equal(b Mat3x4) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 4×3 matrix with rows and columns swapped.
func (m Mat3x4) Transpose() Mat4x3 {
	var t Mat4x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat3x4) MulVec(v Vec4) Vec3 {
	var o Vec3
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}

// Mat4x2 is a 4×2 matrix stored as 4 rows of Vec2.
type Mat4x2 [4]Vec2

func (m Mat4x2) At(r, c int) float64 { return m[r][c] }

func (m Mat4x2) Equal(b Mat4x2) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 2×4 matrix with rows and columns swapped.
func (m Mat4x2) Transpose() Mat2x4 {
	var t Mat2x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat4x2) MulVec(v Vec2) Vec4 {
	var o Vec4
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}

// Mat4x3 is a 4×3 matrix stored as 4 rows of Vec3.
type Mat4x3 [4]Vec3

func (m Mat4x3) At(r, c int) float64 { return m[r][c] }

func (m Mat4x3) Equal(b Mat4x3) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the 3×4 matrix with rows and columns swapped.
func (m Mat4x3) Transpose() Mat3x4 {
	var t Mat3x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns M × v.
func (m Mat4x3) MulVec(v Vec3) Vec4 {
	var o Vec4
	for i := range m {
		o[i] = m[i].Dot(v)
	}
	return o
}
