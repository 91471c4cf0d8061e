package flat

import (
	"reflect"

	"github.com/arloliu/flatesd/esd"
)

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Source is the read surface of a rich event consumed by SetFromESD and
// EstimateSize.
type Source interface {
	MagneticField() float64
	PeriodNumber() uint32
	RunNumber() int32
	OrbitNumber() uint32
	TimeStamp() uint32
	BunchCrossNumber() uint16
	EventSpecie() uint8
	TriggerMask() uint64
	TriggerMaskNext50() uint64

	// Run returns the run description holding the trigger class names, or nil.
	Run() *esd.Run

	PrimaryVertexTracks() *esd.Vertex
	PrimaryVertexSPD() *esd.Vertex

	NumberOfTracks() int
	Track(i int) *esd.Track
	NumberOfV0s() int
	V0(i int) *esd.V0
}

// Sink is the mutation surface of a rich event used by GetESDEvent.
type Sink interface {
	Reset()
	CreateStdContent()

	SetMagneticField(v float64)
	SetPeriodNumber(v uint32)
	SetRunNumber(v int32)
	SetOrbitNumber(v uint32)
	SetTimeStamp(v uint32)
	SetBunchCrossNumber(v uint16)
	SetEventSpecie(v uint8)
	SetTriggerMask(v uint64)
	SetTriggerMaskNext50(v uint64)
	SetTriggerClass(name string, index int)

	SetPrimaryVertexSPD(v *esd.Vertex)
	SetPrimaryVertexTPC(v *esd.Vertex)
	SetPrimaryVertexTracks(v *esd.Vertex)

	AddTrack(t *esd.Track) int
	Track(i int) *esd.Track
	AddV0(v *esd.V0) int
}

var (
	_ Source = (*esd.Event)(nil)
	_ Sink   = (*esd.Event)(nil)
)
