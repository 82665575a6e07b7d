package mathutil

// Mat2 is a 2×2 matrix stored as rows.
type Mat2 [2]Vec2

func Mat2Identity() Mat2 { return Mat2{{1, 0}, {0, 1}} }

func Mat2Zero() Mat2 { return Mat2{} }

// NewMat2 builds a matrix from explicit row data.
func NewMat2(rows [2][2]float64) Mat2 {
	var m Mat2
	for i := range rows {
		m[i] = Vec2(rows[i])
	}
	return m
}

func (m Mat2) At(r, c int) float64 { return m[r][c] }

func (m Mat2) Equal(b Mat2) bool {
	return m[0].Equal(b[0]) && m[1].Equal(b[1])
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// MulVec returns M × v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{m[0].Dot(v), m[1].Dot(v)}
}

// Submatrix of a 2×2 matrix is the single element left after removing row
// r and column c.
func (m Mat2) Submatrix(r, c int) float64 {
	checkIndex(2, r, c)
	return m[1-r][1-c]
}

func (m Mat2) Minor(r, c int) float64 { return m.Submatrix(r, c) }

func (m Mat2) Cofactor(r, c int) float64 {
	return signed(r, c, m.Minor(r, c))
}

// Det expands along the first column.
func (m Mat2) Det() float64 {
	return m[0][0]*m.Cofactor(0, 0) + m[1][0]*m.Cofactor(1, 0)
}

// IsInvertible tests the determinant against exact zero.
func (m Mat2) IsInvertible() bool { return m.Det() != 0 }

// Inverse returns the adjugate divided by the determinant, or false when m
// is singular.
func (m Mat2) Inverse() (Mat2, bool) {
	d := m.Det()
	if d == 0 {
		return Mat2{}, false
	}
	var inv Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			inv[c][r] = m.Cofactor(r, c) / d
		}
	}
	return inv, true
}

func (m Mat2) InverseErr() (Mat2, error) {
	inv, ok := m.Inverse()
	if !ok {
		return Mat2{}, ErrSingular
	}
	return inv, nil
}

func (m Mat2) MustInverse() Mat2 {
	inv, ok := m.Inverse()
	if !ok {
		panic(ErrSingular)
	}
	return inv
}
