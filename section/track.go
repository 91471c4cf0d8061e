package section

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
)

// Track record layout:
//
//	Bytes  | Field        | Type
//	-------|--------------|-------
//	0-3    | Size         | uint32, whole record including this header
//	4      | ParamMask    | uint8, one bit per format.TrackParamRole
//	5      | Reserved     | uint8
//	6-7    | NTPCClusters | uint16
//	8-9    | NITSClusters | uint16
//	10-11  | Reserved     | uint16
//	12-15  | Label        | int32
//	16-23  | Status       | uint64
//	24-    | Params       | TrackParamSize bytes per set mask bit, in role order
//	...    | TPC clusters | TPCClusterSize bytes each
//
// Parameter block (TrackParamSize bytes): Alpha, X, Y, Z, Snp, Tgl, Signed1Pt,
// then the 15 covariance terms, all float32.
//
// Cluster block (TPCClusterSize bytes): X, Y, Z, SigmaY2, SigmaZ2, Charge,
// QMax as float32, PadRow as uint8, 3 reserved bytes.

const paramMaskAll = 1<<format.NumTrackParams - 1

// TrackSize returns the exact encoded size of t.
func TrackSize(t *esd.Track) int {
	size := TrackHeaderSize + len(t.TPCClusters)*TPCClusterSize
	for _, p := range t.Params {
		if p != nil {
			size += TrackParamSize
		}
	}

	return size
}

// WriteTrack encodes t at the start of dst.
//
// Parameters:
//   - dst: Destination, must hold at least TrackSize(t) bytes
//   - engine: Byte order of the payload
//   - t: Source track
//
// Returns:
//   - int: Number of bytes written, equal to TrackSize(t)
//   - error: ErrTooManyClusters or ErrOutOfSpace
func WriteTrack(dst []byte, engine endian.EndianEngine, t *esd.Track) (int, error) {
	if len(t.TPCClusters) > MaxTPCClusters {
		return 0, fmt.Errorf("%w: %d clusters, maximum %d", errs.ErrTooManyClusters, len(t.TPCClusters), MaxTPCClusters)
	}

	size := TrackSize(t)
	if len(dst) < size {
		return 0, fmt.Errorf("%w: track needs %d bytes, %d free", errs.ErrOutOfSpace, size, len(dst))
	}

	engine.PutUint32(dst[0:4], uint32(size)) //nolint:gosec
	dst[4] = t.ParamMask()
	dst[5] = 0
	engine.PutUint16(dst[6:8], uint16(len(t.TPCClusters))) //nolint:gosec
	engine.PutUint16(dst[8:10], t.NITSClusters)
	engine.PutUint16(dst[10:12], 0)
	engine.PutUint32(dst[12:16], uint32(t.Label)) //nolint:gosec
	engine.PutUint64(dst[16:24], t.Status)

	pos := TrackHeaderSize
	for _, p := range t.Params {
		if p == nil {
			continue
		}
		writeParam(dst[pos:pos+TrackParamSize], engine, p)
		pos += TrackParamSize
	}

	for i := range t.TPCClusters {
		writeCluster(dst[pos:pos+TPCClusterSize], engine, &t.TPCClusters[i])
		pos += TPCClusterSize
	}

	return size, nil
}

// TrackRecordSize returns the self-reported size of the track record at the
// start of src after checking it against the header counts. It is the stride to
// the next track record.
func TrackRecordSize(src []byte, engine endian.EndianEngine) (int, error) {
	if len(src) < TrackHeaderSize {
		return 0, fmt.Errorf("%w: track header truncated", errs.ErrInvalidRecordSize)
	}

	size := int(engine.Uint32(src[0:4]))
	mask := src[4]
	nClusters := int(engine.Uint16(src[6:8]))

	if mask&^paramMaskAll != 0 || nClusters > MaxTPCClusters {
		return 0, fmt.Errorf("%w: param mask 0x%02x, %d clusters", errs.ErrInvalidRecordSize, mask, nClusters)
	}

	expected := TrackHeaderSize + bits.OnesCount8(mask)*TrackParamSize + nClusters*TPCClusterSize
	if size != expected || len(src) < size {
		return 0, fmt.Errorf("%w: track record size %d, expected %d, %d available",
			errs.ErrInvalidRecordSize, size, expected, len(src))
	}

	return size, nil
}

// ReadTrack decodes the track record at the start of src.
//
// Returns:
//   - esd.Track: Decoded track
//   - int: Record size, the offset of the next track record
//   - error: ErrInvalidRecordSize if the record is truncated or inconsistent
func ReadTrack(src []byte, engine endian.EndianEngine) (esd.Track, int, error) {
	size, err := TrackRecordSize(src, engine)
	if err != nil {
		return esd.Track{}, 0, err
	}

	mask := src[4]
	nClusters := int(engine.Uint16(src[6:8]))

	t := esd.Track{
		NITSClusters: engine.Uint16(src[8:10]),
		Label:        int32(engine.Uint32(src[12:16])), //nolint:gosec
		Status:       engine.Uint64(src[16:24]),
	}

	pos := TrackHeaderSize
	for role := range format.NumTrackParams {
		if mask&format.TrackParamRole(role).Mask() == 0 {
			continue
		}
		p := readParam(src[pos:pos+TrackParamSize], engine)
		t.Params[role] = &p
		pos += TrackParamSize
	}

	if nClusters > 0 {
		t.TPCClusters = make([]esd.TPCCluster, nClusters)
		for i := range t.TPCClusters {
			t.TPCClusters[i] = readCluster(src[pos:pos+TPCClusterSize], engine)
			pos += TPCClusterSize
		}
	}

	return t, size, nil
}

func writeParam(b []byte, engine endian.EndianEngine, p *esd.ExternalTrackParam) {
	endian.PutFloat32(engine, b[0:4], p.Alpha)
	endian.PutFloat32(engine, b[4:8], p.X)
	endian.PutFloat32(engine, b[8:12], p.Y)
	endian.PutFloat32(engine, b[12:16], p.Z)
	endian.PutFloat32(engine, b[16:20], p.Snp)
	endian.PutFloat32(engine, b[20:24], p.Tgl)
	endian.PutFloat32(engine, b[24:28], p.Signed1Pt)
	for i, c := range p.Covariance {
		endian.PutFloat32(engine, b[28+i*4:], c)
	}
}

func readParam(b []byte, engine endian.EndianEngine) esd.ExternalTrackParam {
	p := esd.ExternalTrackParam{
		Alpha:     endian.Float32(engine, b[0:4]),
		X:         endian.Float32(engine, b[4:8]),
		Y:         endian.Float32(engine, b[8:12]),
		Z:         endian.Float32(engine, b[12:16]),
		Snp:       endian.Float32(engine, b[16:20]),
		Tgl:       endian.Float32(engine, b[20:24]),
		Signed1Pt: endian.Float32(engine, b[24:28]),
	}
	for i := range p.Covariance {
		p.Covariance[i] = endian.Float32(engine, b[28+i*4:])
	}

	return p
}

func writeCluster(b []byte, engine endian.EndianEngine, c *esd.TPCCluster) {
	endian.PutFloat32(engine, b[0:4], c.X)
	endian.PutFloat32(engine, b[4:8], c.Y)
	endian.PutFloat32(engine, b[8:12], c.Z)
	endian.PutFloat32(engine, b[12:16], c.SigmaY2)
	endian.PutFloat32(engine, b[16:20], c.SigmaZ2)
	endian.PutFloat32(engine, b[20:24], c.Charge)
	endian.PutFloat32(engine, b[24:28], c.QMax)
	b[28] = c.PadRow
	b[29], b[30], b[31] = 0, 0, 0
}

func readCluster(b []byte, engine endian.EndianEngine) esd.TPCCluster {
	return esd.TPCCluster{
		X:       endian.Float32(engine, b[0:4]),
		Y:       endian.Float32(engine, b[4:8]),
		Z:       endian.Float32(engine, b[8:12]),
		SigmaY2: endian.Float32(engine, b[12:16]),
		SigmaZ2: endian.Float32(engine, b[16:20]),
		Charge:  endian.Float32(engine, b[20:24]),
		QMax:    endian.Float32(engine, b[24:28]),
		PadRow:  b[28],
	}
}
