package domain

// JobCategory groups related positions.
type JobCategory struct {
	Name      string
	Positions []string
}

// JobCategories is the fixed position taxonomy in display order.
var JobCategories = []JobCategory{
	{Name: "개발", Positions: []string{"프론트엔드 개발자", "백엔드 개발자", "DevOps 엔지니어", "머신러닝 엔지니어"}},
	{Name: "디자인", Positions: []string{"UI/UX 디자이너", "프로덕트 디자이너", "그래픽 디자이너"}},
	{Name: "데이터", Positions: []string{"데이터 분석가", "데이터 사이언티스트", "데이터 엔지니어"}},
	{Name: "기획", Positions: []string{"프로덕트 매니저", "서비스 기획자", "비즈니스 분석가"}},
	{Name: "품질", Positions: []string{"QA 엔지니어", "QC 담당자", "테스트 엔지니어"}},
}

// AllPositions flattens JobCategories into a single ordered list.
func AllPositions() []string {
	var out []string
	for _, c := range JobCategories {
		out = append(out, c.Positions...)
	}
	return out
}

// Experience is a candidate's career length bucket.
type Experience string

// ExperienceLevels is the ordered experience enumeration.
var ExperienceLevels = []Experience{
	"신입", "1년", "2년", "3년", "4년",
	"5년", "6년", "7년", "8년", "9년", "10년 이상",
}

// ExperienceNewGrad is the entry-level bucket.
const ExperienceNewGrad Experience = "신입"

var experienceWeights = map[Experience]float64{
	"신입": 0.80,
	"1년": 0.85,
	"2년": 0.90,
	"3년": 0.95,
}

// QualityWeight returns the multiplicative resume score weight for the level.
// Levels without an explicit weight score at full value.
func (e Experience) QualityWeight() float64 {
	if w, ok := experienceWeights[e]; ok {
		return w
	}
	return 1.0
}

// Regions lists candidate locations in display order.
var Regions = []string{
	"서울", "경기", "부산", "대구", "인천",
	"광주", "대전", "울산", "세종", "기타",
}

// RegionTier classifies a region's salary and quality band.
type RegionTier string

const (
	TierCapital RegionTier = "capital"
	TierMetro   RegionTier = "metro"
	TierOther   RegionTier = "other"
)

// EducationLevels lists the education buckets used on candidate profiles.
var EducationLevels = []string{"고졸", "전문대졸", "대졸", "석사", "박사"}
