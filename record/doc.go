// Package record implements the record format engine: the Builder that
// assembles a buffer section by section, the Encoder that plans a whole
// record from typed fields, and the two view types that interpret a raw byte
// buffer with strict bounds and type checking.
//
// A sealed buffer is a closed, self-describing artifact. Given only its
// bytes, any holder can construct a View (read-only, zero-copy) or a
// MutableView (bounded in-place rewrites) with no external schema and no
// shared state with the producer.
//
// Building a record with the Encoder:
//
//	enc, _ := record.NewEncoder()
//	_ = record.AddField(enc, 2, uint32(30))
//	_ = enc.AddString(10, "Hello", 256)
//	buf, _ := enc.Finish()
//
// Reading it back:
//
//	v, _ := record.NewView(buf)
//	count, _ := record.GetField[uint32](v, 2)
//	name, _ := v.GetString(10)
//
// Rewriting fields in place, without changing the buffer's length:
//
//	mv, _ := record.NewMutableView(buf)
//	_ = record.ModifyField(mv, 2, uint32(31))
//	_ = mv.ModifyString(10, "World")
//
// Concurrency: any number of Views over one buffer may be used concurrently.
// A MutableView requires exclusive access to its buffer for its entire
// lifetime; the library does not lock, so the single-writer guarantee is the
// caller's responsibility.
package record
