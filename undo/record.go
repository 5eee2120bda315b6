package undo

import (
	"time"

	"github.com/vertexdoc/objdoc/change"
	"github.com/vertexdoc/objdoc/object"
)

// One RecordX method per supported field type. All share the same
// three-part precondition: active must be true, undoing must be false,
// and the field pointer must be non-nil.

func (m *Manager) RecordBool(owner object.Managed, field *bool) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewBoolChange(owner, field))
}

func (m *Manager) RecordInt8(owner object.Managed, field *int8) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewInt8Change(owner, field))
}

func (m *Manager) RecordUint8(owner object.Managed, field *uint8) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewUint8Change(owner, field))
}

func (m *Manager) RecordInt16(owner object.Managed, field *int16) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewInt16Change(owner, field))
}

func (m *Manager) RecordUint16(owner object.Managed, field *uint16) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewUint16Change(owner, field))
}

func (m *Manager) RecordInt32(owner object.Managed, field *int32) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewInt32Change(owner, field))
}

func (m *Manager) RecordUint32(owner object.Managed, field *uint32) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewUint32Change(owner, field))
}

func (m *Manager) RecordInt64(owner object.Managed, field *int64) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewInt64Change(owner, field))
}

func (m *Manager) RecordUint64(owner object.Managed, field *uint64) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewUint64Change(owner, field))
}

func (m *Manager) RecordFloat32(owner object.Managed, field *float32) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewFloat32Change(owner, field))
}

func (m *Manager) RecordFloat64(owner object.Managed, field *float64) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewFloat64Change(owner, field))
}

func (m *Manager) RecordString(owner object.Managed, field *string) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewStringChange(owner, field))
}

func (m *Manager) RecordDate(owner object.Managed, field *time.Time) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewDateChange(owner, field))
}

func (m *Manager) RecordColor(owner object.Managed, field *change.Color) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewColorChange(owner, field))
}

func (m *Manager) RecordPoint2(owner object.Managed, field *change.Point2) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewPoint2Change(owner, field))
}

func (m *Manager) RecordPoint3(owner object.Managed, field *change.Point3) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewPoint3Change(owner, field))
}

// RecordObjectRef records a change to a slot holding a ManagedObject
// handle. It does not retain or release the handle itself — the caller
// must bracket the assignment with RegisterRelease(old)/RegisterRetain
// (new).
func (m *Manager) RecordObjectRef(owner object.Managed, field *object.Managed) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewObjectRefChange(owner, field))
}

// RecordBuffer records a change to an owning (pointer, length) pair,
// represented here as the single-valued change.Buffer.
func (m *Manager) RecordBuffer(owner object.Managed, field *change.Buffer) {
	if !m.shouldRecord() || field == nil {
		return
	}
	owner.Retain()
	m.record(change.NewBufferChange(owner, field))
}
