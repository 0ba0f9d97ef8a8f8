package wide

import "github.com/mhr3/myersed/peq"

// Distance returns the Levenshtein distance between the pattern t was built
// from and b. It runs the same recurrence as the scalar engine, with the
// one addition and the two shifts routed through the cross-lane primitives.
func Distance(t *peq.Table[Vec512], b []byte) int {
	vp := AllOnes
	vn := Zero

	for _, x := range b {
		eq := t.At(x)

		// d0 = (((eq & vp) + vp) ^ vp) | eq
		d0 := eq.And(vp).Add(vp).Xor(vp).Or(eq)

		// hp = vn | !(vp | d0)
		hp := vn.Or(vp.Or(d0).Not())
		hn := vp.And(d0)

		xh := eq.Or(vn)

		hp = hp.ShiftLeft1().Or(One)

		// vp = (hn << 1) | !(xh | hp)
		vp = hn.ShiftLeft1().Or(xh.Or(hp).Not())
		vn = hp.And(xh)
	}

	m := MaskUpTo(t.Len())

	return len(b) + vp.And(m).PopCount() - vn.And(m).PopCount()
}
