package isa

const (
	// WordBits is the width of an integer operand.
	WordBits = 32
	// DoubleBits is the width of a multiply product.
	DoubleBits = WordBits * 2
	// ByteBits is the number of bits in a byte.
	ByteBits = 8
)

const (
	// F32Bits is the size of a packed single-precision float.
	F32Bits = 32
	// F32FracBits is the size of the fraction field.
	F32FracBits = 23
	// F32ExpBits is the size of the biased exponent field.
	F32ExpBits = 8
	// F32ExpBias is the exponent bias.
	F32ExpBias = 127
	// F32ExpMax is the all-ones exponent field, reserved for Inf and NaN.
	F32ExpMax = 255

	// F32SigBits is the significand width with the implicit bit attached.
	F32SigBits = F32FracBits + 1

	// F32ExpWorkBits is the width of the FPU's working exponent register.
	// Two's complement; wide enough for the sum of two biased exponents
	// and for the negative range reached while denormalizing.
	F32ExpWorkBits = 12

	// F32SigWorkBits is the width of the FPU's working significand:
	// 24 significand bits, one bit of headroom for mantissa overflow,
	// and guard, round, and sticky bits below.
	F32SigWorkBits = F32SigBits + 1 + 3
)
