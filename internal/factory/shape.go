package factory

import (
	"fmt"
	"strings"
)

// Shape is something that can be drawn.
type Shape interface {
	Draw() string
}

type Circle struct{}

func (Circle) Draw() string { return "Circle object" }

type Rectangle struct{}

func (Rectangle) Draw() string { return "Rectangle object" }

type Square struct{}

func (Square) Draw() string { return "Square object" }

// NewShape returns the shape named by name (case-insensitive).
func NewShape(name string) (Shape, error) {
	switch strings.ToUpper(name) {
	case "CIRCLE":
		return Circle{}, nil
	case "RECTANGLE":
		return Rectangle{}, nil
	case "SQUARE":
		return Square{}, nil
	default:
		return nil, fmt.Errorf("shape %q: %w", name, ErrUnknownType)
	}
}
