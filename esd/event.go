package esd

// Event is a reconstructed detector event.
//
// Note: Event is NOT thread-safe.
type Event struct {
	magneticField     float64
	periodNumber      uint32
	runNumber         int32
	orbitNumber       uint32
	timeStamp         uint32
	bunchCrossNumber  uint16
	eventSpecie       uint8
	triggerMask       uint64
	triggerMaskNext50 uint64

	run *Run

	vertexTracks *Vertex
	vertexSPD    *Vertex
	vertexTPC    *Vertex

	tracks []*Track
	v0s    []*V0
}

// NewEvent creates an event with its standard content already created.
func NewEvent() *Event {
	ev := &Event{}
	ev.CreateStdContent()

	return ev
}

// Reset drops every field and container. CreateStdContent must be called
// before trigger classes can be registered again.
func (e *Event) Reset() {
	*e = Event{}
}

// CreateStdContent creates the run description and empty track and V0 containers.
func (e *Event) CreateStdContent() {
	if e.run == nil {
		e.run = NewRun()
	}
	if e.tracks == nil {
		e.tracks = make([]*Track, 0)
	}
	if e.v0s == nil {
		e.v0s = make([]*V0, 0)
	}
}

func (e *Event) MagneticField() float64        { return e.magneticField }
func (e *Event) PeriodNumber() uint32          { return e.periodNumber }
func (e *Event) RunNumber() int32              { return e.runNumber }
func (e *Event) OrbitNumber() uint32           { return e.orbitNumber }
func (e *Event) TimeStamp() uint32             { return e.timeStamp }
func (e *Event) BunchCrossNumber() uint16      { return e.bunchCrossNumber }
func (e *Event) EventSpecie() uint8            { return e.eventSpecie }
func (e *Event) TriggerMask() uint64           { return e.triggerMask }
func (e *Event) TriggerMaskNext50() uint64     { return e.triggerMaskNext50 }
func (e *Event) SetMagneticField(v float64)    { e.magneticField = v }
func (e *Event) SetPeriodNumber(v uint32)      { e.periodNumber = v }
func (e *Event) SetRunNumber(v int32)          { e.runNumber = v }
func (e *Event) SetOrbitNumber(v uint32)       { e.orbitNumber = v }
func (e *Event) SetTimeStamp(v uint32)         { e.timeStamp = v }
func (e *Event) SetBunchCrossNumber(v uint16)  { e.bunchCrossNumber = v }
func (e *Event) SetEventSpecie(v uint8)        { e.eventSpecie = v }
func (e *Event) SetTriggerMask(v uint64)       { e.triggerMask = v }
func (e *Event) SetTriggerMaskNext50(v uint64) { e.triggerMaskNext50 = v }

// Run returns the run description, or nil when standard content was not created.
func (e *Event) Run() *Run {
	return e.run
}

// SetTriggerClass registers a trigger class with the run description.
// It is a no-op when the event has no run description.
func (e *Event) SetTriggerClass(name string, index int) {
	if e.run == nil {
		return
	}
	e.run.SetTriggerClass(name, index)
}

// TriggerClasses returns the registered trigger classes in slot order.
func (e *Event) TriggerClasses() []TriggerClass {
	if e.run == nil {
		return nil
	}

	return e.run.TriggerClasses()
}

// FiredTriggerClasses returns the space-padded names of the fired trigger classes.
func (e *Event) FiredTriggerClasses() string {
	return FiredClasses(e.TriggerClasses(), e.triggerMask, e.triggerMaskNext50)
}

// IsTriggerClassFired reports whether the named class is registered and fired.
func (e *Event) IsTriggerClassFired(name string) bool {
	for _, tc := range e.TriggerClasses() {
		if tc.Name == name {
			return IsFired(e.triggerMask, e.triggerMaskNext50, tc.Index)
		}
	}

	return false
}

func (e *Event) PrimaryVertexTracks() *Vertex { return e.vertexTracks }
func (e *Event) PrimaryVertexSPD() *Vertex    { return e.vertexSPD }
func (e *Event) PrimaryVertexTPC() *Vertex    { return e.vertexTPC }

// SetPrimaryVertexTracks stores a copy of v as the track-fitted vertex.
func (e *Event) SetPrimaryVertexTracks(v *Vertex) { e.vertexTracks = cloneVertex(v) }

// SetPrimaryVertexSPD stores a copy of v as the SPD vertex.
func (e *Event) SetPrimaryVertexSPD(v *Vertex) { e.vertexSPD = cloneVertex(v) }

// SetPrimaryVertexTPC stores a copy of v as the TPC vertex.
func (e *Event) SetPrimaryVertexTPC(v *Vertex) { e.vertexTPC = cloneVertex(v) }

func cloneVertex(v *Vertex) *Vertex {
	if v == nil {
		return nil
	}
	cp := *v

	return &cp
}

// NumberOfTracks returns the number of track slots, including empty ones.
func (e *Event) NumberOfTracks() int {
	return len(e.tracks)
}

// Track returns the track in slot i, or nil when the slot is empty or out of range.
func (e *Event) Track(i int) *Track {
	if i < 0 || i >= len(e.tracks) {
		return nil
	}

	return e.tracks[i]
}

// AddTrack appends a copy of t and returns its index. A nil t appends an empty slot.
func (e *Event) AddTrack(t *Track) int {
	if t != nil {
		t = t.Clone()
	}
	e.tracks = append(e.tracks, t)

	return len(e.tracks) - 1
}

// SetTrack replaces slot i with a copy of t. A nil t empties the slot.
func (e *Event) SetTrack(i int, t *Track) bool {
	if i < 0 || i >= len(e.tracks) {
		return false
	}
	if t != nil {
		t = t.Clone()
	}
	e.tracks[i] = t

	return true
}

// NumberOfV0s returns the number of V0 slots.
func (e *Event) NumberOfV0s() int {
	return len(e.v0s)
}

// V0 returns the V0 in slot i, or nil.
func (e *Event) V0(i int) *V0 {
	if i < 0 || i >= len(e.v0s) {
		return nil
	}

	return e.v0s[i]
}

// AddV0 appends a copy of v and returns its index. A nil v appends an empty slot.
func (e *Event) AddV0(v *V0) int {
	if v != nil {
		cp := *v
		v = &cp
	}
	e.v0s = append(e.v0s, v)

	return len(e.v0s) - 1
}
