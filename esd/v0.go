package esd

import "github.com/arloliu/flatesd/format"

// V0Indices identifies the daughters of a V0 by their track indices.
type V0Indices struct {
	Neg int
	Pos int
}

// V0 is a neutral two-prong decay candidate.
type V0 struct {
	V0Indices

	NegParam ExternalTrackParam
	PosParam ExternalTrackParam
}

// NewV0 builds a V0 from its daughter tracks, copying their refitted parameters.
func NewV0(neg *Track, negID int, pos *Track, posID int) *V0 {
	v0 := &V0{V0Indices: V0Indices{Neg: negID, Pos: posID}}
	if p := neg.Param(format.ParamRefitted); p != nil {
		v0.NegParam = *p
	}
	if p := pos.Param(format.ParamRefitted); p != nil {
		v0.PosParam = *p
	}

	return v0
}

// NegIndex returns the index of the negative daughter.
func (v *V0) NegIndex() int { return v.Neg }

// PosIndex returns the index of the positive daughter.
func (v *V0) PosIndex() int { return v.Pos }
