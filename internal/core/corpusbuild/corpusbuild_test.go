package corpusbuild

import "testing"

func TestCounter_AddAccumulatesHitsPerLangAndSize(t *testing.T) {
	c := NewCounter()
	c.Add(Sentence{Lang: "eng", Text: "hello", User: "alice"})
	c.Add(Sentence{Lang: "eng", Text: "help", User: "alice"})

	hits := c.Hits(2, "eng")
	if hits["he"] != 2 {
		t.Fatalf("hits[he] = %d, want 2", hits["he"])
	}

	langs := c.Langs(2)
	if len(langs) != 1 || langs[0] != "eng" {
		t.Fatalf("Langs(2) = %v, want [eng]", langs)
	}
}

func TestCounter_AddSkipsUserScoringWhenUserEmpty(t *testing.T) {
	c := NewCounter()
	c.Add(Sentence{Lang: "eng", Text: "hello"})

	if contribs := c.UserContribs(); len(contribs) != 0 {
		t.Fatalf("UserContribs() = %v, want empty", contribs)
	}
}

func TestCounter_UserContribsAccumulateByGraphemeCount(t *testing.T) {
	c := NewCounter()
	c.Add(Sentence{Lang: "eng", Text: "hi", User: "alice"})
	c.Add(Sentence{Lang: "eng", Text: "hello", User: "alice"})
	c.Add(Sentence{Lang: "fra", Text: "salut", User: "alice"})

	contribs := c.UserContribs()
	if len(contribs) != 2 {
		t.Fatalf("UserContribs() = %v, want 2 entries", contribs)
	}
	byLang := make(map[string]uint64, len(contribs))
	for _, uc := range contribs {
		byLang[uc.Lang] = uc.Total
	}
	if byLang["eng"] != 7 {
		t.Fatalf("eng total = %d, want 7", byLang["eng"])
	}
	if byLang["fra"] != 5 {
		t.Fatalf("fra total = %d, want 5", byLang["fra"])
	}
}

func TestExtract_DropsGramsBelowFrequencyFloor(t *testing.T) {
	// rare's share (1/150000) clears the ideogram floor (0.000005) but
	// falls below the standard floor (0.00001) used for "eng"
	c := &Counter{
		hits: map[int]map[string]map[string]uint64{
			2: {"eng": {"aa": 149999, "zz": 1}},
		},
		users: map[userLang]uint64{},
	}

	rows := c.Extract(2)
	if len(rows) != 1 || rows[0].Gram != "aa" {
		t.Fatalf("Extract(2) = %v, want only [aa]", rows)
	}
}

func TestExtract_IdeogramFloorKeepsSharesThatEngFloorWouldDrop(t *testing.T) {
	c := &Counter{
		hits: map[int]map[string]map[string]uint64{
			2: {"cmn": {"你好": 149999, "再见": 1}},
		},
		users: map[userLang]uint64{},
	}

	rows := c.Extract(2)
	if len(rows) != 2 {
		t.Fatalf("Extract(2) = %v, want both grams to survive the ideogram floor", rows)
	}
}

func TestFreqLimit_LowerForIdeogramLangs(t *testing.T) {
	if got := freqLimit("cmn"); got != IdeogramNgramFreqLimit {
		t.Fatalf("freqLimit(cmn) = %v, want %v", got, IdeogramNgramFreqLimit)
	}
	if got := freqLimit("yue"); got != IdeogramNgramFreqLimit {
		t.Fatalf("freqLimit(yue) = %v, want %v", got, IdeogramNgramFreqLimit)
	}
	if got := freqLimit("eng"); got != NgramFreqLimit {
		t.Fatalf("freqLimit(eng) = %v, want %v", got, NgramFreqLimit)
	}
}

func TestSizes_MatchesDetectorCascadeRange(t *testing.T) {
	got := Sizes()
	want := []int{5, 4, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sizes() = %v, want %v", got, want)
		}
	}
}
