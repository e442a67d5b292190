package battle

// ==================== Combat Rules ====================

const (
	CritPercent     = 10
	CritMultiplier  = 1.5
	SkillMultiplier = 2.5
	SkillMPCost     = 20
	PotionHeal      = 50
	MPPotionAmount  = 30
	BuffMultiplier  = 1.5
	DodgePercent    = 5
	MinDamage       = 1
)

// ==================== Records ====================

const (
	ReasonClear = "clear"
	ReasonDead  = "dead"

	DefaultRecordLimit = 10
	MaxRecordLimit     = 100
)

// ==================== Narration ====================

const (
	MsgAttackFmt     = "⚔️ %s에게 %d의 피해!"
	MsgCritSuffix    = " (치명타!)"
	MsgSkillFmt      = "⚡ 강타! %s에게 %d의 피해! (MP -%d)"
	MsgNoMP          = "💧 마력이 부족합니다!"
	MsgPotionFmt     = "🧪 HP 물약 사용! 체력 %d 회복."
	MsgNoPotion      = "물약이 없습니다!"
	MsgMPPotionFmt   = "💧 MP 물약 사용! 마력 %d 회복."
	MsgNoMPPotion    = "MP 물약이 없습니다!"
	MsgBuffFmt       = "⚡ 공격력 증폭제 사용! 공격력이 %d이 되었습니다."
	MsgNoBuff        = "공격력 증폭제가 없습니다!"
	MsgAlreadyBuffed = "이미 공격력이 증폭된 상태입니다."
	MsgFled          = "🏃 도망쳤습니다..."
	MsgDodgeFmt      = "💨 %s의 공격을 회피했습니다!"
	MsgHitFmt        = "🩸 %s에게 %d의 피해를 입었습니다."
	MsgRevived       = "👼 부활의 돌을 사용하여 부활했습니다!"
	MsgWonFmt        = "🎉 승리! %s 처치! 보상: %d 젤리"
	MsgDropsFmt      = "전리품: %s"
	MsgNextStageFmt  = "다음 스테이지(%d)가 개방되었습니다!"
	MsgLostFmt       = "💀 패배... %s에게 쓰러졌습니다."
	MsgStatusFmt     = "❤️ %d/%d 💧 %d/%d ⚔️ %d 🛡️ %d | %s ❤️ %d/%d"
	MsgUnknownAction = "알 수 없는 행동입니다."
)

// ==================== Error Messages ====================

const (
	ErrMsgGetSessionFailed     = "get dungeon session"
	ErrMsgStartSessionFailed   = "start dungeon session"
	ErrMsgApplyActionFailed    = "apply battle action"
	ErrMsgDiscardSessionFailed = "discard dungeon session"
	ErrMsgGetProgressFailed    = "get dungeon progress"
	ErrMsgSettingsFailed       = "dungeon settings"
	ErrMsgFavoritesFailed      = "dungeon favorites"
	ErrMsgRecordsFailed        = "dungeon records"
	ErrMsgGearFailed           = "load equipment"
	ErrMsgInvalidActionFmt     = "%w: unknown action %q"
	ErrMsgInvalidLogModeFmt    = "%w: log mode %q"
	ErrMsgInvalidStageFmt      = "%w: %d"
)

// ==================== Log Messages ====================

const (
	LogMsgStorageFailure  = "Dungeon storage failure"
	LogMsgSessionStarted  = "Dungeon session started"
	LogMsgTurnApplied     = "Dungeon turn applied"
	LogMsgBattleConcluded = "Battle concluded"
	LogMsgSessionDiscard  = "Dungeon session discarded"
	LogMsgActionRejected  = "Battle action rejected"
	LogMsgItemMissing     = "Battle item missing from inventory, carried count cleared"
)
