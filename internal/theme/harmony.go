package theme

// Harmony is a hue relationship between the primary and accent hues.
type Harmony string

const (
	Complementary      Harmony = "complementary"
	Analogous          Harmony = "analogous"
	Triadic            Harmony = "triadic"
	SplitComplementary Harmony = "splitComplementary"
	Monochromatic      Harmony = "monochromatic"
)

// Harmonies lists every strategy in selection order.
var Harmonies = []Harmony{Complementary, Analogous, Triadic, SplitComplementary, Monochromatic}

const analogousSpread = 30

// AccentHue derives an accent hue from primary. Strategies with two
// candidate hues pick one with rnd.
func AccentHue(primary int, h Harmony, rnd Rand) int {
	switch h {
	case Complementary:
		return wrapHue(primary + 180)
	case Analogous:
		return pick(rnd, wrapHue(primary-analogousSpread), wrapHue(primary+analogousSpread))
	case Triadic:
		return pick(rnd, wrapHue(primary+120), wrapHue(primary+240))
	case SplitComplementary:
		comp := primary + 180
		return pick(rnd, wrapHue(comp-30), wrapHue(comp+30))
	default:
		return wrapHue(primary)
	}
}

func pick(rnd Rand, a, b int) int {
	if intn(rnd, 2) == 0 {
		return a
	}
	return b
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
