package colour

import "math"

// pow25to7 is 25^7, the chroma pivot of the CIEDE2000 weighting functions.
const pow25to7 = 6103515625.0

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// primeHue returns h' in degrees, 0 for a neutral colour.
func primeHue(aPrime, b float64) float64 {
	if aPrime == 0 && b == 0 {
		return 0
	}
	return NormaliseHue(math.Atan2(b, aPrime) * 180 / math.Pi)
}

// chromaWeight returns sqrt(C^7 / (C^7 + 25^7)).
func chromaWeight(c float64) float64 {
	c7 := math.Pow(c, 7)
	return math.Sqrt(c7 / (c7 + pow25to7))
}

// CIEDE2000 returns the CIEDE2000 colour difference between two Lab colours
// with unit weighting factors (kL = kC = kH = 1).
//
// The result is symmetric and zero for identical inputs. It is not a metric:
// the triangle inequality does not hold in general.
func CIEDE2000(lab1, lab2 Lab) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - chromaWeight(cBar))
	a1p := lab1.A * (1 + g)
	a2p := lab2.A * (1 + g)

	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := primeHue(a1p, lab1.B)
	h2p := primeHue(a2p, lab2.B)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	neutral := c1p*c2p == 0

	var dhp float64
	if !neutral {
		dhp = HueDelta(h1p, h2p)
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lBarP := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBarP float64
	if neutral {
		hBarP = h1p + h2p
	} else {
		hBarP = MeanHue(h1p, h2p)
	}

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	rC := 2 * chromaWeight(cBarP)

	l50 := (lBarP - 50) * (lBarP - 50)
	sL := 1 + 0.015*l50/math.Sqrt(20+l50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t
	rT := -math.Sin(rad(2*dTheta)) * rC

	tl := dLp / sL
	tc := dCp / sC
	th := dHp / sH

	return math.Sqrt(tl*tl + tc*tc + th*th + rT*tc*th)
}

// DeltaE converts both colours to Lab and returns their CIEDE2000 difference.
func DeltaE(a, b RGB) float64 {
	return CIEDE2000(RGBToLab(a), RGBToLab(b))
}
