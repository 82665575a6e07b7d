package mathutil

import "fmt"

// Mat4 is a 4×4 matrix stored as rows. Used for affine transforms of
// homogeneous tuples.
type Mat4 [4]Vec4

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 { return Mat4{} }

// NewMat4 builds a matrix from explicit row data.
func NewMat4(rows [4][4]float64) Mat4 {
	var m Mat4
	for i := range rows {
		m[i] = Vec4(rows[i])
	}
	return m
}

func (m Mat4) At(r, c int) float64 { return m[r][c] }

func (m Mat4) Equal(b Mat4) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat4) IsIdentity() bool { return m == Mat4Identity() }

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// MulVec returns M × v. Points pick up the translation column, free
// vectors do not.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Submatrix removes row r and column c.
func (m Mat4) Submatrix(r, c int) Mat3 {
	checkIndex(4, r, c)
	var s Mat3
	for i := 0; i < 3; i++ {
		si := skip(i, r)
		for j := 0; j < 3; j++ {
			s[i][j] = m[si][skip(j, c)]
		}
	}
	return s
}

func (m Mat4) Minor(r, c int) float64 { return m.Submatrix(r, c).Det() }

func (m Mat4) Cofactor(r, c int) float64 {
	return signed(r, c, m.Minor(r, c))
}

// Det expands along the first column. Each level recurses into 3×3 and
// 2×2 cofactors, which is fine for the sizes this package has.
func (m Mat4) Det() float64 {
	var d float64
	for i := 0; i < 4; i++ {
		d += m[i][0] * m.Cofactor(i, 0)
	}
	return d
}

// IsInvertible tests the determinant against exact zero. A nearly singular
// matrix still counts as invertible.
func (m Mat4) IsInvertible() bool { return m.Det() != 0 }

// Inverse returns the adjugate divided by the determinant, or false when m
// is singular.
func (m Mat4) Inverse() (Mat4, bool) {
	d := m.Det()
	if d == 0 {
		return Mat4{}, false
	}
	var inv Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[c][r] = m.Cofactor(r, c) / d
		}
	}
	return inv, true
}

func (m Mat4) InverseErr() (Mat4, error) {
	inv, ok := m.Inverse()
	if !ok {
		return Mat4{}, ErrSingular
	}
	return inv, nil
}

// MustInverse panics with ErrSingular when m is not invertible.
func (m Mat4) MustInverse() Mat4 {
	inv, ok := m.Inverse()
	if !ok {
		panic(ErrSingular)
	}
	return inv
}

// signed negates v when r+c is odd.
func signed(r, c int, v float64) float64 {
	if (r+c)%2 != 0 {
		return -v
	}
	return v
}

// skip maps index i of a reduced matrix back to the source, stepping over
// the removed index.
func skip(i, removed int) int {
	if i >= removed {
		return i + 1
	}
	return i
}

func checkIndex(n, r, c int) {
	if r < 0 || r >= n || c < 0 || c >= n {
		panic(fmt.Sprintf("mathutil: index (%d,%d) out of range for %d×%d matrix", r, c, n, n))
	}
}
