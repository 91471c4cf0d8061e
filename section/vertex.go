package section

import (
	"fmt"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
)

// Vertex record layout (VertexSize bytes):
//
//	Bytes  | Field         | Type
//	-------|---------------|-----------
//	0-23   | Position      | [3]float64
//	24-71  | Covariance    | [6]float64
//	72-79  | Chi2          | float64
//	80-83  | NContributors | int32
//	84     | Status        | uint8
//	85     | Role          | uint8
//	86-87  | Reserved      | 2 bytes

// WriteVertex encodes v with the given role tag at the start of dst.
//
// Returns:
//   - int: VertexSize
//   - error: ErrOutOfSpace if dst is shorter than VertexSize
func WriteVertex(dst []byte, engine endian.EndianEngine, role format.VertexRole, v *esd.Vertex) (int, error) {
	if len(dst) < VertexSize {
		return 0, fmt.Errorf("%w: %s vertex needs %d bytes, %d free", errs.ErrOutOfSpace, role, VertexSize, len(dst))
	}

	for i, p := range v.Position {
		endian.PutFloat64(engine, dst[i*8:], p)
	}
	for i, c := range v.Covariance {
		endian.PutFloat64(engine, dst[24+i*8:], c)
	}
	endian.PutFloat64(engine, dst[72:80], v.Chi2)
	engine.PutUint32(dst[80:84], uint32(v.NContributors)) //nolint:gosec

	dst[84] = 0
	if v.Status {
		dst[84] = 1
	}
	dst[85] = uint8(role)
	dst[86], dst[87] = 0, 0

	return VertexSize, nil
}

// ReadVertex decodes the vertex record at the start of src.
//
// Returns:
//   - esd.Vertex: Decoded vertex
//   - format.VertexRole: The role tag written with the record
//   - error: ErrInvalidRecordSize if src is truncated
func ReadVertex(src []byte, engine endian.EndianEngine) (esd.Vertex, format.VertexRole, error) {
	if len(src) < VertexSize {
		return esd.Vertex{}, 0, fmt.Errorf("%w: vertex record needs %d bytes, %d available", errs.ErrInvalidRecordSize, VertexSize, len(src))
	}

	var v esd.Vertex
	for i := range v.Position {
		v.Position[i] = endian.Float64(engine, src[i*8:])
	}
	for i := range v.Covariance {
		v.Covariance[i] = endian.Float64(engine, src[24+i*8:])
	}
	v.Chi2 = endian.Float64(engine, src[72:80])
	v.NContributors = int32(engine.Uint32(src[80:84])) //nolint:gosec
	v.Status = src[84] != 0

	return v, format.VertexRole(src[85]), nil
}
