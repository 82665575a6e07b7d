package mathutil

// Mat3 is a 3×3 matrix stored as rows. Value type for zero heap allocation.
type Mat3 [3]Vec3

func Mat3Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func Mat3Zero() Mat3 { return Mat3{} }

// NewMat3 builds a matrix from explicit row data.
func NewMat3(rows [3][3]float64) Mat3 {
	var m Mat3
	for i := range rows {
		m[i] = Vec3(rows[i])
	}
	return m
}

func (m Mat3) At(r, c int) float64 { return m[r][c] }

func (m Mat3) Equal(b Mat3) bool {
	for i := range m {
		if !m[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// MulVec returns M × v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Submatrix removes row r and column c.
func (m Mat3) Submatrix(r, c int) Mat2 {
	checkIndex(3, r, c)
	var s Mat2
	for i := 0; i < 2; i++ {
		si := skip(i, r)
		for j := 0; j < 2; j++ {
			s[i][j] = m[si][skip(j, c)]
		}
	}
	return s
}

func (m Mat3) Minor(r, c int) float64 { return m.Submatrix(r, c).Det() }

func (m Mat3) Cofactor(r, c int) float64 {
	return signed(r, c, m.Minor(r, c))
}

// Det expands along the first column.
func (m Mat3) Det() float64 {
	var d float64
	for i := 0; i < 3; i++ {
		d += m[i][0] * m.Cofactor(i, 0)
	}
	return d
}

// IsInvertible tests the determinant against exact zero.
func (m Mat3) IsInvertible() bool { return m.Det() != 0 }

// Inverse returns the adjugate divided by the determinant, or false when m
// is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	d := m.Det()
	if d == 0 {
		return Mat3{}, false
	}
	var inv Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[c][r] = m.Cofactor(r, c) / d
		}
	}
	return inv, true
}

func (m Mat3) InverseErr() (Mat3, error) {
	inv, ok := m.Inverse()
	if !ok {
		return Mat3{}, ErrSingular
	}
	return inv, nil
}

func (m Mat3) MustInverse() Mat3 {
	inv, ok := m.Inverse()
	if !ok {
		panic(ErrSingular)
	}
	return inv
}
