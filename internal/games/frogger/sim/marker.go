package sim

// Marker records where the player was hit. It never moves or updates.
type Marker struct {
	X, Y float64
}

// MarkerLog is an append-only list of markers for the current round.
type MarkerLog struct {
	markers []Marker
}

// Append records a marker.
func (l *MarkerLog) Append(m Marker) {
	l.markers = append(l.markers, m)
}

// Len returns the number of recorded markers.
func (l *MarkerLog) Len() int {
	return len(l.markers)
}

// All returns a copy of the markers in the order they were recorded.
func (l *MarkerLog) All() []Marker {
	out := make([]Marker, len(l.markers))
	copy(out, l.markers)
	return out
}

// clear empties the log. Only a session reset may do this.
func (l *MarkerLog) clear() {
	l.markers = l.markers[:0]
}
