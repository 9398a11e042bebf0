package population

import "fmt"

const namePoolSize = 100

var surnames = []string{
	"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임",
	"한", "오", "서", "신", "권", "황", "안", "송", "류", "전",
}

var givenNames = []string{
	"민수", "지은", "준호", "서영", "하늘", "민아", "성진", "유리", "지수", "도현",
	"민철", "수진", "현우", "예린", "태현", "소영", "도윤", "채영", "민성", "지훈",
	"윤서", "준표", "소희", "태영", "은지", "승현", "다은", "민호", "수빈", "재현",
}

var companies = []string{
	"삼성전자", "LG전자", "SK하이닉스", "현대자동차", "KT",
	"네이버", "카카오", "쿠팡", "배달의민족", "토스",
	"라인", "넥슨", "NHN", "우아한형제들", "마켓컬리",
	"당근마켓", "직방", "야놀자", "무신사", "29CM",
}

// FallbackSkill is assigned when a position has no skill pool.
const FallbackSkill = "기본 스킬"

var skillsByPosition = map[string][]string{
	"프론트엔드 개발자": {"React", "Vue.js", "Angular", "JavaScript", "TypeScript", "HTML/CSS", "Webpack"},
	"백엔드 개발자": {"Python", "Java", "Node.js", "Spring", "Django", "MySQL", "PostgreSQL", "Redis"},
	"DevOps 엔지니어": {"AWS", "Docker", "Kubernetes", "Jenkins", "Terraform", "Ansible", "Git"},
	"머신러닝 엔지니어": {"Python", "TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "SQL"},
	"UI/UX 디자이너": {"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator", "Principle", "Zeplin"},
	"프로덕트 디자이너": {"Figma", "Sketch", "Framer", "Principle", "InVision", "Miro", "Adobe Creative"},
	"데이터 분석가": {"SQL", "Python", "R", "Tableau", "Power BI", "Excel", "Google Analytics"},
	"데이터 사이언티스트": {"Python", "R", "SQL", "Jupyter", "Pandas", "Scikit-learn", "TensorFlow"},
	"프로덕트 매니저": {"JIRA", "Confluence", "Figma", "Analytics", "A/B Testing", "SQL", "Excel"},
	"QA 엔지니어": {"Selenium", "Postman", "JIRA", "TestRail", "Python", "Java", "Git"},
}

// SkillPool returns the skill pool for a position, or a one-element fallback
// pool when the position is unmapped.
func SkillPool(position string) []string {
	if pool, ok := skillsByPosition[position]; ok {
		return append([]string(nil), pool...)
	}
	return []string{FallbackSkill}
}

func (m *Model) buildNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%s", m.Choice(surnames), m.Choice(givenNames))
	}
	return names
}
