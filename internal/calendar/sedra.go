package calendar

import (
	"fmt"
	"strings"
	"time"
)

var portionNames = [...]struct{ english, hebrew string }{
	{"Bereishis", "בראשית"},
	{"Noach", "נח"},
	{"Lech Lecha", "לך לך"},
	{"Vayeira", "וירא"},
	{"Chayei Sarah", "חיי שרה"},
	{"Toldos", "תולדות"},
	{"Vayeitzei", "ויצא"},
	{"Vayishlach", "וישלח"},
	{"Vayeishev", "וישב"},
	{"Mikeitz", "מקץ"},
	{"Vayigash", "ויגש"},
	{"Vayechi", "ויחי"},
	{"Shemos", "שמות"},
	{"Va'eira", "וארא"},
	{"Bo", "בא"},
	{"Beshalach", "בשלח"},
	{"Yisro", "יתרו"},
	{"Mishpatim", "משפטים"},
	{"Terumah", "תרומה"},
	{"Tetzaveh", "תצוה"},
	{"Ki Sisa", "כי תשא"},
	{"Vayakhel", "ויקהל"},
	{"Pekudei", "פקודי"},
	{"Vayikra", "ויקרא"},
	{"Tzav", "צו"},
	{"Shemini", "שמיני"},
	{"Tazria", "תזריע"},
	{"Metzora", "מצורע"},
	{"Acharei Mos", "אחרי מות"},
	{"Kedoshim", "קדושים"},
	{"Emor", "אמור"},
	{"Behar", "בהר"},
	{"Bechukosai", "בחוקותי"},
	{"Bamidbar", "במדבר"},
	{"Nasso", "נשא"},
	{"Beha'aloscha", "בהעלותך"},
	{"Shelach", "שלח"},
	{"Korach", "קרח"},
	{"Chukas", "חקת"},
	{"Balak", "בלק"},
	{"Pinchas", "פינחס"},
	{"Matos", "מטות"},
	{"Masei", "מסעי"},
	{"Devarim", "דברים"},
	{"Va'eschanan", "ואתחנן"},
	{"Eikev", "עקב"},
	{"Re'eh", "ראה"},
	{"Shoftim", "שופטים"},
	{"Ki Seitzei", "כי תצא"},
	{"Ki Savo", "כי תבוא"},
	{"Nitzavim", "נצבים"},
	{"Vayeilech", "וילך"},
	{"Haazinu", "האזינו"},
	{"Vezos Haberachah", "וזאת הברכה"},
}

// Portion is the Torah reading of one Shabbos. Combined readings hold two numbers.
type Portion struct {
	Numbers []int `json:"numbers"`
}

// English returns the transliterated name, e.g. "Vayakhel-Pekudei"
func (p Portion) English() string {
	return p.join(func(i int) string { return portionNames[i].english })
}

// Hebrew returns the Hebrew name, e.g. "ויקהל-פקודי"
func (p Portion) Hebrew() string {
	return p.join(func(i int) string { return portionNames[i].hebrew })
}

// String implements fmt.Stringer
func (p Portion) String() string {
	return p.English()
}

func (p Portion) join(name func(int) string) string {
	parts := make([]string, 0, len(p.Numbers))
	for _, n := range p.Numbers {
		if n < 0 || n >= len(portionNames) {
			parts = append(parts, fmt.Sprintf("#%d", n))
			continue
		}
		parts = append(parts, name(n))
	}
	return strings.Join(parts, "-")
}

// readingSegment is a run of Shabbosos whose last reading is normally pinned to a fixed date
type readingSegment struct {
	last int
	// pairs lists the readings that may be doubled up, in the order they get combined
	pairs [][2]int
}

func cycleSegments(leap bool) [3]readingSegment {
	springPairs := [][2]int{{26, 27}, {28, 29}, {31, 32}, {21, 22}}
	if leap {
		springPairs = [][2]int{{21, 22}, {26, 27}, {28, 29}, {31, 32}}
	}
	return [3]readingSegment{
		// .. Bamidbar, the Shabbos before Shavuos unless the spring has a Shabbos to spare,
		// in which case Nasso is read before Shavuos too
		{last: 33, pairs: springPairs},
		// .. Devarim, the Shabbos on or before Tisha B'Av
		{last: 43, pairs: [][2]int{{41, 42}, {38, 39}}},
		// .. Haazinu
		{last: 52, pairs: [][2]int{{50, 51}}},
	}
}

// shabbosSlot is one Shabbos of a reading cycle
type shabbosSlot struct {
	date time.Time
	hd   HebrewDate
}

// cycleAnchors are the Gregorian dates that split one year's reading cycle
type cycleAnchors struct {
	shavuos   time.Time // 6 Sivan
	tishaBeav time.Time // 9 Av
	leap      bool
}

// assignPortions maps each non-festival Shabbos of a cycle to its reading
func assignPortions(slots []shabbosSlot, anchors cycleAnchors) (map[string]Portion, error) {
	var buckets [3][]shabbosSlot
	for _, slot := range slots {
		if isFestivalShabbos(slot.hd) {
			continue
		}
		switch {
		case slot.date.Before(anchors.shavuos):
			buckets[0] = append(buckets[0], slot)
		case !slot.date.After(anchors.tishaBeav):
			buckets[1] = append(buckets[1], slot)
		default:
			buckets[2] = append(buckets[2], slot)
		}
	}

	result := make(map[string]Portion, len(slots))
	segments := cycleSegments(anchors.leap)
	n := 0
	for i, seg := range segments {
		portions := seg.last - n + 1
		combine := portions - len(buckets[i])
		if combine < 0 {
			// surplus Shabbosos read ahead into the next segment
			if i == len(segments)-1 {
				return nil, fmt.Errorf("reading segment %d has %d Shabbosos for %d portions", i+1, len(buckets[i]), portions)
			}
			combine = 0
		}
		if combine > len(seg.pairs) {
			return nil, fmt.Errorf("reading segment %d has %d Shabbosos for %d portions", i+1, len(buckets[i]), portions)
		}

		doubled := make(map[int]bool, combine)
		for _, pair := range seg.pairs[:combine] {
			doubled[pair[0]] = true
		}

		for _, slot := range buckets[i] {
			key := slot.date.Format("2006-01-02")
			if doubled[n] {
				result[key] = Portion{Numbers: []int{n, n + 1}}
				n += 2
				continue
			}
			result[key] = Portion{Numbers: []int{n}}
			n++
		}
	}

	return result, nil
}
