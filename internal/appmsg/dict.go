package appmsg

// Sizes reported by the watch SDK as the smallest buffers Open accepts.
const (
	InboxSizeMinimum  = 124
	OutboxSizeMinimum = 636
)

const (
	dictHeaderSize  = 1
	tupleHeaderSize = 7
	int32Size       = 4
)

// Tuple is a single key/value field of an outbound message.
type Tuple struct {
	Key   uint32 `json:"key"`
	Type  string `json:"type"`
	Value int32  `json:"value"`
}

// Dict is the staging area for an outbound message. It is obtained from
// Messenger.OutboxBegin and is only valid until the following OutboxSend.
type Dict struct {
	tuples   []Tuple
	capacity int
	size     int
}

func newDict(capacity int) *Dict {
	return &Dict{capacity: capacity, size: dictHeaderSize}
}

// WriteInt appends a signed 32-bit integer field.
func (d *Dict) WriteInt(key uint32, value int32) Result {
	if d == nil {
		return InvalidArgs
	}
	need := tupleHeaderSize + int32Size
	if d.size+need > d.capacity {
		return BufferOverflow
	}
	d.tuples = append(d.tuples, Tuple{Key: key, Type: "int", Value: value})
	d.size += need
	return OK
}

// Len reports the number of tuples written.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.tuples)
}

// Size reports the encoded size in bytes.
func (d *Dict) Size() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Tuples returns a copy of the written fields.
func (d *Dict) Tuples() []Tuple {
	if d == nil || len(d.tuples) == 0 {
		return nil
	}
	dup := make([]Tuple, len(d.tuples))
	copy(dup, d.tuples)
	return dup
}
