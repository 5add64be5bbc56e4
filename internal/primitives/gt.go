package primitives

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// GTExp raises base to the power of the scalar exponent, in the target
// group GT. GT is written multiplicatively here; scalar "multiplication" of
// a pairing value by a field element is GT exponentiation.
func GTExp(base bls12381.GT, exponent fr.Element) bls12381.GT {
	var e big.Int
	exponent.ToBigInt(&e)

	var z bls12381.GT
	z.Exp(base, &e)
	return z
}

// GTMul combines two target-group elements. Written additively in the
// scheme's equations (R4 is a "sum" of three pairing terms), this is GT
// multiplication.
func GTMul(a, b bls12381.GT) bls12381.GT {
	var z bls12381.GT
	z.Mul(&a, &b)
	return z
}

// GTMulAll folds GTMul over a non-empty slice.
func GTMulAll(terms ...bls12381.GT) bls12381.GT {
	z := terms[0]
	for _, t := range terms[1:] {
		z = GTMul(z, t)
	}
	return z
}

// GTInverse returns the multiplicative inverse in GT, standing in for the
// additive negation used in the scheme's equations.
func GTInverse(a bls12381.GT) bls12381.GT {
	var z bls12381.GT
	z.Inverse(&a)
	return z
}
