package models

// StatusEffectType classifies a status effect
type StatusEffectType string

const (
	EffectBuff      StatusEffectType = "Buff"
	EffectDebuff    StatusEffectType = "Debuff"
	EffectSpecial   StatusEffectType = "Special"
	EffectControl   StatusEffectType = "Control"
	EffectElemental StatusEffectType = "Elemental"
	EffectBlessing  StatusEffectType = "Blessing"
	EffectExclusive StatusEffectType = "Exclusive"
)

// StatusEffect represents a combat status effect
type StatusEffect struct {
	Icon        string           `json:"icon"`
	Name        string           `json:"name"`
	Type        StatusEffectType `json:"type"`
	Effect      string           `json:"effect"`
	Remark      string           `json:"remark,omitempty"`
	LastUpdated int64            `json:"last_updated,omitempty"`
}
