// Package shape holds simple geometric value objects.
package shape

// Rectangle is a plain width/height pair
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a rectangle with the given sides
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width * Height
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
