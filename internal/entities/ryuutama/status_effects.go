package ryuutama

// StatusKey names one of the six status effects
type StatusKey string

// Status effects
const (
	StatusInjury  StatusKey = "injury"
	StatusTired   StatusKey = "tired"
	StatusPoison  StatusKey = "poison"
	StatusMuddled StatusKey = "muddled"
	StatusSick    StatusKey = "sick"
	StatusShock   StatusKey = "shock"
)

// StatusCategory groups status effects by what they afflict
type StatusCategory string

// Status categories
const (
	CategoryBody StatusCategory = "body"
	CategoryMind StatusCategory = "mind"
)

// StatusEffect describes a status effect and how it is recovered from.
// A condition check on CheckStat greater than RecoveryValue cures it.
type StatusEffect struct {
	Key           StatusKey
	Description   string
	Category      StatusCategory
	CheckStat     StatKey
	RecoveryValue int
	Effect        string
}

var statusEffects = []StatusEffect{
	{
		Key:           StatusInjury,
		Description:   "Physical damage that impairs your body",
		Category:      CategoryBody,
		CheckStat:     StatStr,
		RecoveryValue: 5,
		Effect:        "-2 to all physical checks",
	},
	{
		Key:           StatusTired,
		Description:   "Exhaustion from travel or combat",
		Category:      CategoryBody,
		CheckStat:     StatStr,
		RecoveryValue: 6,
		Effect:        "Unable to use Concentration actions",
	},
	{
		Key:           StatusPoison,
		Description:   "Toxins affecting your system",
		Category:      CategoryBody,
		CheckStat:     StatStr,
		RecoveryValue: 7,
		Effect:        "Take 1 damage at the start of each day",
	},
	{
		Key:           StatusMuddled,
		Description:   "Confusion affecting your thinking",
		Category:      CategoryMind,
		CheckStat:     StatInt,
		RecoveryValue: 6,
		Effect:        "-2 to all mental checks",
	},
	{
		Key:           StatusSick,
		Description:   "Illness affecting your body",
		Category:      CategoryBody,
		CheckStat:     StatStr,
		RecoveryValue: 7,
		Effect:        "Take 1 damage to MP at start of each day",
	},
	{
		Key:           StatusShock,
		Description:   "Mental trauma from a shocking event",
		Category:      CategoryMind,
		CheckStat:     StatSpi,
		RecoveryValue: 7,
		Effect:        "Unable to use magic",
	},
}

// StatusKeys returns the status effects in sheet order
func StatusKeys() []StatusKey {
	keys := make([]StatusKey, len(statusEffects))
	for i, e := range statusEffects {
		keys[i] = e.Key
	}
	return keys
}

// LookupStatusEffect returns the status effect for key and whether it exists
func LookupStatusEffect(key StatusKey) (StatusEffect, bool) {
	for _, e := range statusEffects {
		if e.Key == key {
			return e, true
		}
	}
	return StatusEffect{}, false
}

// Valid reports whether k is one of the six status effects
func (k StatusKey) Valid() bool {
	_, ok := LookupStatusEffect(k)
	return ok
}
