package team

// AllID is the category id of the "all teams" pseudo-category.
// It is also what an unknown label resolves to at submission time.
const AllID = 0

// AllLabel is the only accepted spelling of the "all teams" selector.
const AllLabel = "통합"

// UnknownLabel is shown for category ids that are not in the table
const UnknownLabel = "알 수 없음"

// Team 구단(카테고리) 정보
type Team struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

var teams = []Team{
	{ID: 1, Label: "KIA 타이거즈"},
	{ID: 2, Label: "삼성 라이온즈"},
	{ID: 3, Label: "LG 트윈스"},
	{ID: 4, Label: "두산 베어스"},
	{ID: 5, Label: "KT 위즈"},
	{ID: 6, Label: "SSG 랜더스"},
	{ID: 7, Label: "롯데 자이언츠"},
	{ID: 8, Label: "한화 이글스"},
	{ID: 9, Label: "NC 다이노스"},
	{ID: 10, Label: "키움 히어로즈"},
}

var (
	byLabel = make(map[string]int, len(teams))
	byID    = make(map[int]string, len(teams))
)

func init() {
	for _, t := range teams {
		byLabel[t.Label] = t.ID
		byID[t.ID] = t.Label
	}
}

// All returns a copy of the team table in display order
func All() []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

// IsAll reports whether label selects every category
func IsAll(label string) bool {
	return label == AllLabel
}

// LabelToID resolves a display label to its category id.
// Unknown labels (and the "all" label) return AllID with ok=false.
func LabelToID(label string) (int, bool) {
	id, ok := byLabel[label]
	if !ok {
		return AllID, false
	}
	return id, true
}

// IDToLabel resolves a category id to its display label
func IDToLabel(id int) (string, bool) {
	if id == AllID {
		return AllLabel, true
	}
	label, ok := byID[id]
	if !ok {
		return UnknownLabel, false
	}
	return label, true
}

// IsValidLabel reports whether label is a team or the "all" selector
func IsValidLabel(label string) bool {
	if IsAll(label) {
		return true
	}
	_, ok := byLabel[label]
	return ok
}
