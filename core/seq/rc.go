// core/seq/rc.go
package seq

/* ------------------------ complement lookup table ------------------------ */

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i) // bytes outside the alphabet map to themselves
	}
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		la, lb := a|0x20, b|0x20
		complement[la], complement[lb] = lb, la
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y') // A/G  <->  C/T
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('S', 'S') // GC   <->  GC
	pair('W', 'W') // AT   <->  AT
	pair('N', 'N')
}

// Complement returns the IUPAC complement of b, preserving case. Bytes
// outside the alphabet are returned unchanged.
func Complement(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of s. RevComp(RevComp(s)) == s
// for every input.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}
