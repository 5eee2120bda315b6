// Package change implements the polymorphic reversible edit at the heart
// of the undo journal: one Change per mutated field, exchanging a saved
// value with the field it targets. One interface, one concrete struct
// per supported field type, dispatched through Swap.
package change

import (
	"time"

	"github.com/vertexdoc/objdoc/object"
)

// Change is one reversible edit. Swap is an involution: calling it twice
// in a row restores the original state of whatever it targets.
type Change interface {
	// Owner is the object the edit was made on, for lifecycle purposes:
	// undo.Manager retains it once per recorded change, and Step.Release
	// gives that hold back when the step is discarded.
	Owner() object.Managed

	// Swap exchanges the live value at the target with the value this
	// change is currently holding.
	Swap()
}

// Point2 and Point3 are minimal 2D/3D point value types; the full
// geometry lives in the vector/matrix collaborator this module does not
// implement.
type Point2 struct{ X, Y float64 }
type Point3 struct{ X, Y, Z float64 }

// Color is a minimal RGBA value type; the full color management lives in
// the collaborator this module does not implement.
type Color struct{ R, G, B, A float64 }

// baseChange factors out the owner back-pointer every variant carries.
type baseChange struct {
	owner object.Managed
}

func (b baseChange) Owner() object.Managed { return b.owner }

// --- scalar variants -------------------------------------------------

type BoolChange struct {
	baseChange
	target *bool
	saved  bool
}

func NewBoolChange(owner object.Managed, target *bool) *BoolChange {
	return &BoolChange{baseChange{owner}, target, *target}
}
func (c *BoolChange) Swap() { *c.target, c.saved = c.saved, *c.target }

type Int8Change struct {
	baseChange
	target *int8
	saved  int8
}

func NewInt8Change(owner object.Managed, target *int8) *Int8Change {
	return &Int8Change{baseChange{owner}, target, *target}
}
func (c *Int8Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Uint8Change struct {
	baseChange
	target *uint8
	saved  uint8
}

func NewUint8Change(owner object.Managed, target *uint8) *Uint8Change {
	return &Uint8Change{baseChange{owner}, target, *target}
}
func (c *Uint8Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Int16Change struct {
	baseChange
	target *int16
	saved  int16
}

func NewInt16Change(owner object.Managed, target *int16) *Int16Change {
	return &Int16Change{baseChange{owner}, target, *target}
}
func (c *Int16Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Uint16Change struct {
	baseChange
	target *uint16
	saved  uint16
}

func NewUint16Change(owner object.Managed, target *uint16) *Uint16Change {
	return &Uint16Change{baseChange{owner}, target, *target}
}
func (c *Uint16Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Int32Change struct {
	baseChange
	target *int32
	saved  int32
}

func NewInt32Change(owner object.Managed, target *int32) *Int32Change {
	return &Int32Change{baseChange{owner}, target, *target}
}
func (c *Int32Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Uint32Change struct {
	baseChange
	target *uint32
	saved  uint32
}

func NewUint32Change(owner object.Managed, target *uint32) *Uint32Change {
	return &Uint32Change{baseChange{owner}, target, *target}
}
func (c *Uint32Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Int64Change struct {
	baseChange
	target *int64
	saved  int64
}

func NewInt64Change(owner object.Managed, target *int64) *Int64Change {
	return &Int64Change{baseChange{owner}, target, *target}
}
func (c *Int64Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Uint64Change struct {
	baseChange
	target *uint64
	saved  uint64
}

func NewUint64Change(owner object.Managed, target *uint64) *Uint64Change {
	return &Uint64Change{baseChange{owner}, target, *target}
}
func (c *Uint64Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Float32Change struct {
	baseChange
	target *float32
	saved  float32
}

func NewFloat32Change(owner object.Managed, target *float32) *Float32Change {
	return &Float32Change{baseChange{owner}, target, *target}
}
func (c *Float32Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Float64Change struct {
	baseChange
	target *float64
	saved  float64
}

func NewFloat64Change(owner object.Managed, target *float64) *Float64Change {
	return &Float64Change{baseChange{owner}, target, *target}
}
func (c *Float64Change) Swap() { *c.target, c.saved = c.saved, *c.target }

// --- string / date / color / point variants --------------------------

type StringChange struct {
	baseChange
	target *string
	saved  string
}

func NewStringChange(owner object.Managed, target *string) *StringChange {
	return &StringChange{baseChange{owner}, target, *target}
}
func (c *StringChange) Swap() { *c.target, c.saved = c.saved, *c.target }

type DateChange struct {
	baseChange
	target *time.Time
	saved  time.Time
}

func NewDateChange(owner object.Managed, target *time.Time) *DateChange {
	return &DateChange{baseChange{owner}, target, *target}
}
func (c *DateChange) Swap() { *c.target, c.saved = c.saved, *c.target }

type ColorChange struct {
	baseChange
	target *Color
	saved  Color
}

func NewColorChange(owner object.Managed, target *Color) *ColorChange {
	return &ColorChange{baseChange{owner}, target, *target}
}
func (c *ColorChange) Swap() { *c.target, c.saved = c.saved, *c.target }

type Point2Change struct {
	baseChange
	target *Point2
	saved  Point2
}

func NewPoint2Change(owner object.Managed, target *Point2) *Point2Change {
	return &Point2Change{baseChange{owner}, target, *target}
}
func (c *Point2Change) Swap() { *c.target, c.saved = c.saved, *c.target }

type Point3Change struct {
	baseChange
	target *Point3
	saved  Point3
}

func NewPoint3Change(owner object.Managed, target *Point3) *Point3Change {
	return &Point3Change{baseChange{owner}, target, *target}
}
func (c *Point3Change) Swap() { *c.target, c.saved = c.saved, *c.target }

// --- byte buffer -------------------------------------------------------

// Buffer is an owning byte buffer. Target fields hold it as one value,
// never as a separate pointer and length that could desynchronize.
type Buffer struct {
	Data []byte
}

type BufferChange struct {
	baseChange
	target *Buffer
	saved  Buffer
}

func NewBufferChange(owner object.Managed, target *Buffer) *BufferChange {
	return &BufferChange{baseChange{owner}, target, *target}
}
func (c *BufferChange) Swap() { *c.target, c.saved = c.saved, *c.target }
