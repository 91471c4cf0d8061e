package esd

import "strings"

// MaxTriggerClasses is the number of configurable trigger class slots in a run.
const MaxTriggerClasses = 100

// TriggerClass is a registered trigger class name and its slot index.
type TriggerClass struct {
	Name  string
	Index int
}

// IsFired reports whether trigger slot index is set in the combined 128-bit mask.
//
// Slots 0-63 live in mask, slots 64-127 in maskNext50.
func IsFired(mask, maskNext50 uint64, index int) bool {
	switch {
	case index < 0:
		return false
	case index < 64:
		return mask&(1<<uint(index)) != 0
	case index < 128:
		return maskNext50&(1<<uint(index-64)) != 0
	default:
		return false
	}
}

// FiredClasses renders the fired classes the way trigger strings are printed
// throughout the framework: every name padded with one space on each side.
func FiredClasses(classes []TriggerClass, mask, maskNext50 uint64) string {
	var sb strings.Builder
	for _, tc := range classes {
		if IsFired(mask, maskNext50, tc.Index) {
			sb.WriteByte(' ')
			sb.WriteString(tc.Name)
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// Run holds run-level configuration shared by all events of a run.
type Run struct {
	triggerClasses [MaxTriggerClasses]string
}

// NewRun creates an empty run description.
func NewRun() *Run {
	return &Run{}
}

// SetTriggerClass registers name for slot index. Out-of-range slots are ignored.
func (r *Run) SetTriggerClass(name string, index int) bool {
	if index < 0 || index >= MaxTriggerClasses {
		return false
	}
	r.triggerClasses[index] = name

	return true
}

// TriggerClass returns the class name registered for slot index, or "".
func (r *Run) TriggerClass(index int) string {
	if index < 0 || index >= MaxTriggerClasses {
		return ""
	}

	return r.triggerClasses[index]
}

// TriggerClasses returns the registered classes in slot order.
func (r *Run) TriggerClasses() []TriggerClass {
	classes := make([]TriggerClass, 0)
	for i, name := range r.triggerClasses {
		if name != "" {
			classes = append(classes, TriggerClass{Name: name, Index: i})
		}
	}

	return classes
}

// Reset clears all registered trigger classes.
func (r *Run) Reset() {
	r.triggerClasses = [MaxTriggerClasses]string{}
}
