package textshape

import (
	"golang.org/x/text/unicode/bidi"
)

type direction int

const (
	dirNeutral direction = iota
	dirLTR
	dirRTL
	dirNumber
)

// cluster is a base character followed by its combining marks.
type cluster struct {
	runes []rune
	dir   direction
	level int
}

// Reorder converts one line from logical to visual order for a left-to-right
// renderer. The paragraph direction is taken from the first strong character;
// runs of right-to-left text are reversed while numbers keep their digit order.
// Combining marks stay attached to their base letter.
func Reorder(line string) string {
	clusters := splitClusters(line)
	if len(clusters) == 0 {
		return line
	}

	base := baseDirection(clusters)
	resolveNumbers(clusters, base)
	resolveNeutrals(clusters, base)
	assignLevels(clusters, base)
	resetTrailingWhitespace(clusters, base)
	mirrorBrackets(clusters)

	maxLevel := 0
	for _, c := range clusters {
		if c.level > maxLevel {
			maxLevel = c.level
		}
	}
	for lvl := maxLevel; lvl >= 1; lvl-- {
		reverseRuns(clusters, lvl)
	}

	out := make([]rune, 0, len(line))
	for _, c := range clusters {
		out = append(out, c.runes...)
	}
	return string(out)
}

func classOf(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

func splitClusters(line string) []*cluster {
	var out []*cluster
	for _, r := range line {
		cls := classOf(r)
		if cls == bidi.NSM && len(out) > 0 {
			last := out[len(out)-1]
			last.runes = append(last.runes, r)
			continue
		}

		c := &cluster{runes: []rune{r}}
		switch cls {
		case bidi.L:
			c.dir = dirLTR
		case bidi.R, bidi.AL:
			c.dir = dirRTL
		case bidi.EN, bidi.AN:
			c.dir = dirNumber
		default:
			c.dir = dirNeutral
		}
		out = append(out, c)
	}
	return out
}

func baseDirection(clusters []*cluster) direction {
	for _, c := range clusters {
		if c.dir == dirLTR || c.dir == dirRTL {
			return c.dir
		}
	}
	return dirLTR
}

// resolveNumbers turns numbers that follow left-to-right text into left-to-right text.
// The remaining numbers behave as right-to-left for their neighbours.
func resolveNumbers(clusters []*cluster, base direction) {
	last := base
	for _, c := range clusters {
		switch c.dir {
		case dirLTR, dirRTL:
			last = c.dir
		case dirNumber:
			if last == dirLTR {
				c.dir = dirLTR
			}
		}
	}
}

// resolveNeutrals gives neutral characters the direction of their surroundings
// when both sides agree and the paragraph direction otherwise.
func resolveNeutrals(clusters []*cluster, base direction) {
	for i := 0; i < len(clusters); {
		if clusters[i].dir != dirNeutral {
			i++
			continue
		}

		j := i
		for j < len(clusters) && clusters[j].dir == dirNeutral {
			j++
		}

		before, after := base, base
		if i > 0 {
			before = strongOf(clusters[i-1].dir)
		}
		if j < len(clusters) {
			after = strongOf(clusters[j].dir)
		}

		resolved := base
		if before == after {
			resolved = before
		}
		for k := i; k < j; k++ {
			clusters[k].dir = resolved
		}
		i = j
	}
}

func strongOf(d direction) direction {
	if d == dirNumber {
		return dirRTL
	}
	return d
}

func assignLevels(clusters []*cluster, base direction) {
	for _, c := range clusters {
		switch {
		case c.dir == dirRTL:
			c.level = 1
		case base == dirRTL:
			// left-to-right text and numbers inside a right-to-left paragraph
			c.level = 2
		case c.dir == dirNumber:
			c.level = 2
		default:
			c.level = 0
		}
	}
}

func resetTrailingWhitespace(clusters []*cluster, base direction) {
	baseLevel := 0
	if base == dirRTL {
		baseLevel = 1
	}
	for i := len(clusters) - 1; i >= 0; i-- {
		if classOf(clusters[i].runes[0]) != bidi.WS {
			return
		}
		clusters[i].level = baseLevel
	}
}

// mirrorBrackets swaps brackets on right-to-left levels for their counterparts.
func mirrorBrackets(clusters []*cluster) {
	for _, c := range clusters {
		if c.level%2 == 0 {
			continue
		}
		if p, _ := bidi.LookupRune(c.runes[0]); p.IsBracket() {
			c.runes[0] = []rune(bidi.ReverseString(string(c.runes[0])))[0]
		}
	}
}

// reverseRuns reverses every maximal run of clusters at level lvl or higher.
func reverseRuns(clusters []*cluster, lvl int) {
	for i := 0; i < len(clusters); {
		if clusters[i].level < lvl {
			i++
			continue
		}
		j := i
		for j < len(clusters) && clusters[j].level >= lvl {
			j++
		}
		for a, b := i, j-1; a < b; a, b = a+1, b-1 {
			clusters[a], clusters[b] = clusters[b], clusters[a]
		}
		i = j
	}
}
