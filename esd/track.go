package esd

import (
	"slices"

	"github.com/arloliu/flatesd/format"
)

// ExternalTrackParam is a track parameterisation at a reference plane.
type ExternalTrackParam struct {
	Alpha     float32
	X         float32
	Y         float32
	Z         float32
	Snp       float32
	Tgl       float32
	Signed1Pt float32

	// Covariance is the packed lower triangle of the 5x5 covariance matrix.
	Covariance [15]float32
}

// TPCCluster is a cluster attached to a track in the TPC.
type TPCCluster struct {
	X       float32
	Y       float32
	Z       float32
	SigmaY2 float32
	SigmaZ2 float32
	Charge  float32
	QMax    float32
	PadRow  uint8
}

// Track is a reconstructed track with up to four parameterisations.
type Track struct {
	Label        int32
	Status       uint64
	NITSClusters uint16
	Params       [format.NumTrackParams]*ExternalTrackParam
	TPCClusters  []TPCCluster
}

// Param returns the parameterisation for role, or nil.
func (t *Track) Param(role format.TrackParamRole) *ExternalTrackParam {
	if int(role) >= len(t.Params) {
		return nil
	}

	return t.Params[role]
}

// SetParam stores a copy of p for role. A nil p clears the role.
func (t *Track) SetParam(role format.TrackParamRole, p *ExternalTrackParam) {
	if int(role) >= len(t.Params) {
		return
	}
	if p == nil {
		t.Params[role] = nil
		return
	}
	cp := *p
	t.Params[role] = &cp
}

// ParamMask returns the bit mask of the roles present on the track.
func (t *Track) ParamMask() uint8 {
	var mask uint8
	for i, p := range t.Params {
		if p != nil {
			mask |= format.TrackParamRole(i).Mask()
		}
	}

	return mask
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	cp := &Track{
		Label:        t.Label,
		Status:       t.Status,
		NITSClusters: t.NITSClusters,
		TPCClusters:  slices.Clone(t.TPCClusters),
	}
	for i, p := range t.Params {
		if p != nil {
			pc := *p
			cp.Params[i] = &pc
		}
	}

	return cp
}
