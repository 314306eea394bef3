// core/onehot/onehot.go
package onehot

// Base is the one-hot encoding of a single nucleotide in A, C, G, T order.
type Base [4]uint8

var (
	A    = Base{1, 0, 0, 0}
	C    = Base{0, 1, 0, 0}
	G    = Base{0, 0, 1, 0}
	T    = Base{0, 0, 0, 1}
	Zero = Base{}
)

/* -------------------------- one-hot lookup table -------------------------- */

var table [256]Base // every entry not set below stays Zero

func init() {
	table['A'] = A
	table['C'] = C
	table['G'] = G
	table['T'] = T
}

// Encode maps one raw FASTA symbol to its one-hot vector.
// Only uppercase A/C/G/T are recognized; lowercase, N, gaps and anything else
// encode to the zero vector.
func Encode(b byte) Base { return table[b] }

// EncodeSeq appends the encoding of every symbol in seq to dst.
func EncodeSeq(dst []Base, seq []byte) []Base {
	if cap(dst)-len(dst) < len(seq) {
		grown := make([]Base, len(dst), len(dst)+len(seq))
		copy(grown, dst)
		dst = grown
	}
	for _, b := range seq {
		dst = append(dst, table[b])
	}
	return dst
}

// Decode returns the symbol a one-hot vector stands for, 'N' for the zero
// vector or anything that is not exactly one-hot.
func Decode(v Base) byte {
	switch v {
	case A:
		return 'A'
	case C:
		return 'C'
	case G:
		return 'G'
	case T:
		return 'T'
	}
	return 'N'
}

// DecodeSeq is the inverse of EncodeSeq up to the information lost for
// unrecognized symbols.
func DecodeSeq(v []Base) []byte {
	out := make([]byte, len(v))
	for i, b := range v {
		out[i] = Decode(b)
	}
	return out
}
