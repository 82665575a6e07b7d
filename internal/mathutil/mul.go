package mathutil

// Products are named after the shape of the right operand: Mul3x4 takes a
// Mat3x4. Every method transposes the right operand first so the inner loop
// is a dot product of two rows.

func (m Mat2) Mul2(b Mat2) Mat2 {
	bt := b.Transpose()
	var p Mat2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2) Mul2x3(b Mat2x3) Mat2x3 {
	bt := b.Transpose()
	var p Mat2x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2) Mul2x4(b Mat2x4) Mat2x4 {
	bt := b.Transpose()
	var p Mat2x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x3) Mul3x2(b Mat3x2) Mat2 {
	bt := b.Transpose()
	var p Mat2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x3) Mul3(b Mat3) Mat2x3 {
	bt := b.Transpose()
	var p Mat2x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x3) Mul3x4(b Mat3x4) Mat2x4 {
	bt := b.Transpose()
	var p Mat2x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x4) Mul4x2(b Mat4x2) Mat2 {
	bt := b.Transpose()
	var p Mat2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x4) Mul4x3(b Mat4x3) Mat2x3 {
	bt := b.Transpose()
	var p Mat2x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat2x4) Mul4(b Mat4) Mat2x4 {
	bt := b.Transpose()
	var p Mat2x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x2) Mul2(b Mat2) Mat3x2 {
	bt := b.Transpose()
	var p Mat3x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x2) Mul2x3(b Mat2x3) Mat3 {
	bt := b.Transpose()
	var p Mat3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x2) Mul2x4(b Mat2x4) Mat3x4 {
	bt := b.Transpose()
	var p Mat3x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3) Mul3x2(b Mat3x2) Mat3x2 {
	bt := b.Transpose()
	var p Mat3x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3) Mul3(b Mat3) Mat3 {
	bt := b.Transpose()
	var p Mat3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3) Mul3x4(b Mat3x4) Mat3x4 {
	bt := b.Transpose()
	var p Mat3x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x4) Mul4x2(b Mat4x2) Mat3x2 {
	bt := b.Transpose()
	var p Mat3x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x4) Mul4x3(b Mat4x3) Mat3 {
	bt := b.Transpose()
	var p Mat3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat3x4) Mul4(b Mat4) Mat3x4 {
	bt := b.Transpose()
	var p Mat3x4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x2) Mul2(b Mat2) Mat4x2 {
	bt := b.Transpose()
	var p Mat4x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x2) Mul2x3(b Mat2x3) Mat4x3 {
	bt := b.Transpose()
	var p Mat4x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x2) Mul2x4(b Mat2x4) Mat4 {
	bt := b.Transpose()
	var p Mat4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x3) Mul3x2(b Mat3x2) Mat4x2 {
	bt := b.Transpose()
	var p Mat4x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x3) Mul3(b Mat3) Mat4x3 {
	bt := b.Transpose()
	var p Mat4x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4x3) Mul3x4(b Mat3x4) Mat4 {
	bt := b.Transpose()
	var p Mat4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4) Mul4x2(b Mat4x2) Mat4x2 {
	bt := b.Transpose()
	var p Mat4x2
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4) Mul4x3(b Mat4x3) Mat4x3 {
	bt := b.Transpose()
	var p Mat4x3
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}

func (m Mat4) Mul4(b Mat4) Mat4 {
	bt := b.Transpose()
	var p Mat4
	for i := range p {
		for j := range bt {
			p[i][j] = m[i].Dot(bt[j])
		}
	}
	return p
}
