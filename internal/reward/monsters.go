package reward

// MonsterTemplate scales a stage's base numbers into one monster.
type MonsterTemplate struct {
	Name     string
	Emoji    string
	HPScale  float64
	AtkScale float64
}

// monsters is indexed by ((stage-1) mod 35); the table repeats past stage 35.
var monsters = [...]MonsterTemplate{
	{"슬라임", "💧", 1.0, 1.0},
	{"고블린", "👺", 1.2, 1.1},
	{"스켈레톤", "💀", 1.5, 1.3},
	{"오크", "👹", 2.0, 1.5},
	{"트롤", "🧟", 2.5, 1.8},
	{"골렘", "🗿", 3.0, 2.0},
	{"와이번", "🐲", 4.0, 2.5},
	{"다크나이트", "🦇", 5.0, 3.0},
	{"리치", "🧙", 6.0, 3.5},
	{"드래곤", "🔥", 10.0, 5.0},
	{"아이언 골렘", "🤖", 4.0, 2.2},
	{"그리폰", "🦅", 4.5, 2.8},
	{"뱀파이어", "🧛", 5.0, 3.2},
	{"지옥견", "🐕‍🦺", 5.5, 3.5},
	{"데스 나이트", "⚔️", 6.5, 4.0},
	{"크라켄", "🦑", 8.0, 4.5},
	{"피닉스", "🐦‍🔥", 7.0, 5.0},
	{"베히모스", "🐗", 12.0, 4.0},
	{"마왕의 그림자", "👤", 9.0, 5.5},
	{"마왕", "😈", 15.0, 7.0},
	{"서큐버스", "💋", 10.0, 6.0},
	{"인큐버스", "👿", 10.0, 6.0},
	{"듀라한", "🎃", 11.0, 6.5},
	{"바실리스크", "🐍", 12.0, 6.5},
	{"만티코어", "🦁", 13.0, 7.0},
	{"키메라", "🦁🐍", 14.0, 7.0},
	{"히드라", "🐲🐲", 16.0, 7.5},
	{"타락천사", "👼🖤", 18.0, 8.0},
	{"고대 드래곤", "🐉", 20.0, 9.0},
	{"세계의 포식자", "🪐", 30.0, 10.0},
	{"공허의 감시자", "👁️", 35.0, 11.0},
	{"심연의 군주", "👑", 40.0, 12.0},
	{"혼돈의 기사", "🛡️", 45.0, 13.0},
	{"절망의 화신", "☠️", 50.0, 14.0},
	{"종말의 짐승", "🦖", 60.0, 15.0},
}

// MonsterCount is the number of distinct monster templates.
const MonsterCount = len(monsters)

// Template returns the monster template used at stage. Stages below 1 use the first entry.
func Template(stage int) MonsterTemplate {
	if stage < 1 {
		return monsters[0]
	}
	return monsters[(stage-1)%MonsterCount]
}
