package mvnorm_test

import "gonum.org/v1/gonum/mat"

// gonum refuses to allocate zero-sized matrices, so the N==0 / D==0 edge
// cases are exercised through minimal shape-only implementations of the
// mat interfaces. At/AtVec are never reached for empty shapes.

// shapeMat is an r×c matrix of zeros.
type shapeMat struct{ r, c int }

func (m shapeMat) Dims() (int, int)    { return m.r, m.c }
func (m shapeMat) At(_, _ int) float64 { return 0 }
func (m shapeMat) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// shapeVec is a length-n vector of zeros.
type shapeVec struct{ n int }

func (v shapeVec) Dims() (int, int)    { return v.n, 1 }
func (v shapeVec) At(_, _ int) float64 { return 0 }
func (v shapeVec) T() mat.Matrix       { return mat.Transpose{Matrix: v} }
func (v shapeVec) AtVec(_ int) float64 { return 0 }
func (v shapeVec) Len() int            { return v.n }

// shapeSym is an n×n symmetric matrix of zeros.
type shapeSym struct{ n int }

func (s shapeSym) Dims() (int, int)    { return s.n, s.n }
func (s shapeSym) At(_, _ int) float64 { return 0 }
func (s shapeSym) T() mat.Matrix       { return s }
func (s shapeSym) SymmetricDim() int   { return s.n }
