package flat

import "github.com/arloliu/flatesd/esd"

// GetESDEvent resets sink and fills it from the flat event.
//
// V0 daughter indices are resolved against the track list rebuilt in sink,
// exactly as they were stored. When some source tracks were absent the rebuilt
// list is dense, so an index may land on a different track or on none; a V0
// whose daughter cannot be found is skipped.
func (e *Event) GetESDEvent(sink Sink) {
	if isNil(sink) {
		return
	}

	sink.Reset()
	sink.CreateStdContent()

	sink.SetMagneticField(e.hdr.MagneticField)
	sink.SetPeriodNumber(e.hdr.PeriodNumber)
	sink.SetRunNumber(e.hdr.RunNumber)
	sink.SetOrbitNumber(e.hdr.OrbitNumber)
	sink.SetBunchCrossNumber(e.hdr.BunchCrossNumber)
	sink.SetTimeStamp(e.hdr.TimeStamp)
	sink.SetEventSpecie(e.hdr.EventSpecie)

	for tc := range e.Triggers() {
		sink.SetTriggerClass(tc.Name, tc.Index)
	}
	sink.SetTriggerMask(e.hdr.TriggerMask)
	sink.SetTriggerMaskNext50(e.hdr.TriggerMaskNext50)

	if v, ok := e.PrimaryVertexSPD(); ok {
		sink.SetPrimaryVertexSPD(&v)
	}
	if v, ok := e.PrimaryVertexTPC(); ok {
		sink.SetPrimaryVertexTPC(&v)
	}
	if v, ok := e.PrimaryVertexTracks(); ok {
		sink.SetPrimaryVertexTracks(&v)
	}

	for _, t := range e.Tracks() {
		sink.AddTrack(&t)
	}

	for ids := range e.V0s() {
		neg := sink.Track(ids.Neg)
		pos := sink.Track(ids.Pos)
		if neg == nil || pos == nil {
			e.logger.Debug("v0 skipped, daughter not found", "neg", ids.Neg, "pos", ids.Pos)
			continue
		}
		sink.AddV0(esd.NewV0(neg, ids.Neg, pos, ids.Pos))
	}
}
