package esd

// Vertex is a reconstructed primary vertex.
type Vertex struct {
	Position      [3]float64
	Covariance    [6]float64 // lower triangle: xx, xy, yy, xz, yz, zz
	Chi2          float64
	NContributors int32
	Status        bool
}

// X returns the x coordinate.
func (v *Vertex) X() float64 { return v.Position[0] }

// Y returns the y coordinate.
func (v *Vertex) Y() float64 { return v.Position[1] }

// Z returns the z coordinate.
func (v *Vertex) Z() float64 { return v.Position[2] }
