package tags

// Tuple2 holds two positionally decoded values.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 holds three positionally decoded values.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 holds four positionally decoded values.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Tuple5 holds five positionally decoded values.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// Of2 decodes a Tuple2 by running a then b.
func Of2[A, B any](a Decoder[A], b Decoder[B]) Decoder[Tuple2[A, B]] {
	return DecoderFunc[Tuple2[A, B]](func(f Fields) Tuple2[A, B] {
		var t Tuple2[A, B]
		t.V0 = a.Decode(f)
		t.V1 = b.Decode(f)
		return t
	})
}

// Of3 decodes a Tuple3 by running a, b, c in order.
func Of3[A, B, C any](a Decoder[A], b Decoder[B], c Decoder[C]) Decoder[Tuple3[A, B, C]] {
	return DecoderFunc[Tuple3[A, B, C]](func(f Fields) Tuple3[A, B, C] {
		var t Tuple3[A, B, C]
		t.V0 = a.Decode(f)
		t.V1 = b.Decode(f)
		t.V2 = c.Decode(f)
		return t
	})
}

// Of4 decodes a Tuple4.
func Of4[A, B, C, D any](a Decoder[A], b Decoder[B], c Decoder[C], d Decoder[D]) Decoder[Tuple4[A, B, C, D]] {
	return DecoderFunc[Tuple4[A, B, C, D]](func(f Fields) Tuple4[A, B, C, D] {
		var t Tuple4[A, B, C, D]
		t.V0 = a.Decode(f)
		t.V1 = b.Decode(f)
		t.V2 = c.Decode(f)
		t.V3 = d.Decode(f)
		return t
	})
}

// Of5 decodes a Tuple5.
func Of5[A, B, C, D, E any](a Decoder[A], b Decoder[B], c Decoder[C], d Decoder[D], e Decoder[E]) Decoder[Tuple5[A, B, C, D, E]] {
	return DecoderFunc[Tuple5[A, B, C, D, E]](func(f Fields) Tuple5[A, B, C, D, E] {
		var t Tuple5[A, B, C, D, E]
		t.V0 = a.Decode(f)
		t.V1 = b.Decode(f)
		t.V2 = c.Decode(f)
		t.V3 = d.Decode(f)
		t.V4 = e.Decode(f)
		return t
	})
}
