package ryuutama

import "strings"

// ClassSkill is one entry of a class's skill list
type ClassSkill struct {
	Name         string
	Description  string
	Effect       string
	Usable       string
	StatUsed     string
	TargetNumber string
}

// Class is a character class and its three skills
type Class struct {
	Name   string
	Skills []ClassSkill
}

// SkillNames returns the skill names in rulebook order
func (c Class) SkillNames() []string {
	names := make([]string, len(c.Skills))
	for i, skill := range c.Skills {
		names[i] = skill.Name
	}
	return names
}

// Skill returns the named skill and whether the class has it
func (c Class) Skill(name string) (ClassSkill, bool) {
	for _, skill := range c.Skills {
		if strings.EqualFold(skill.Name, name) {
			return skill, true
		}
	}
	return ClassSkill{}, false
}

// Class names
const (
	ClassMinstrel = "Minstrel"
	ClassMerchant = "Merchant"
	ClassHunter   = "Hunter"
	ClassHealer   = "Healer"
	ClassFarmer   = "Farmer"
	ClassArtisan  = "Artisan"
	ClassNoble    = "Noble"
)

var classes = []Class{
	{
		Name:   ClassMinstrel,
		Skills: []ClassSkill{
			{
				Name:         "Well-traveled",
				Description:  "As a minstrel who makes their earning by constant travel, you've learned how to travel safely.",
				Effect:       "+1 to Journey Checks (Travel/Direction/Camping Checks; always in effect)",
				Usable:       "-",
				StatUsed:     "-",
				TargetNumber: "-",
			},
			{
				Name:         "Knowledge of Tradition",
				Description:  "The people you have met on your travels have taught you their old songs and legends. You have learned a great deal about the world in this way.",
				Effect:       "You can get more information about the things you see and hear.",
				Usable:       "Anytime you come across something interesting",
				StatUsed:     "[INT + INT]",
				TargetNumber: "GM's discretion",
			},
			{
				Name:         "Music",
				Description:  "You can play music that reinvigorates your companions. Once per scenario you may choose one terrain or weather type you are currently traveling through and gain it as a song. For example, if your character is currently in a rainy grassland, they might learn 'Rain Song' or 'Ballad of the Grassland,' but not 'Desert Rumba.' You may later use the song only if it matches the specific condition in which it was acquired: for example, 'Rain Song' can be used anytime it is raining, regardless of terrain. You can name your song whatever you like.",
				Effect:       "Give all party members a +1 bonus to their next roll. Critical: +3 bonus. Fumble: Any PCs with Condition of 6 or less gain the [Muddled: 6] status effect.",
				Usable:       "Usable when in a suitable area. Each use reduces the Minstrel's HP by 1",
				StatUsed:     "[DEX + SPI]",
				TargetNumber: "Topography",
			},
		},
	},
	{
		Name:   ClassMerchant,
		Skills: []ClassSkill{
			{
				Name:         "Well-spoken",
				Description:  "As a merchant who earns their keep by trading, your communication skills are top notch.",
				Effect:       "Negotiation Check [INT + SPI] gets +1, always in effect",
				Usable:       "Any Negotiation Check",
				StatUsed:     "-",
				TargetNumber: "-",
			},
			{
				Name:         "Animal Owner",
				Description:  "You have learned how to raise animals that will help you carry your goods. Normally, only one animal can be taken on a Journey for free (without paying their daily food and water costs). With this skill, you can keep more animals without incurring their food and water costs.",
				Effect:       "You can keep 2 more animals for a total of 3 without paying for their food and water.",
				Usable:       "-",
				StatUsed:     "-",
				TargetNumber: "-",
			},
			{
				Name:         "Trader",
				Description:  "When you go shopping, you can buy items cheaply and sell items at a higher price. However, in order to do so, you must buy or sell at least four items of the same type at once. When buying, you must have enough money to buy all the items at their normal price. If you succeed on the check, the price of the items will change. If you fail a check when buying, you cannot cancel the deal: You must buy the goods at full price.",
				Effect:       "You may buy items at a reduced price or sell items at an increased value.",
				Usable:       "When selling/buying 4 or more of the same item",
				StatUsed:     "[INT + SPI]",
				TargetNumber: "See table (6-7: 10%, 8-9: 20%, 10-13: 40%, 14-17: 60%, 18+: 80%)",
			},
		},
	},
	{
		Name:   ClassHunter,
		Skills: []ClassSkill{
			{
				Name:         "Animal Tracking",
				Description:  "You can track four types of monsters (animal, phantom beast, demonstone, or phantom plant) by following their prints and spoor. You will also receive a +1 bonus to damage against a monster tracked using this skill.",
				Effect:       "Find a monster's location. +1 bonus to damage against any monsters found.",
				Usable:       "When finding an animal's tracks",
				StatUsed:     "[STR + INT]",
				TargetNumber: "Topography",
			},
			{
				Name:         "Trapping",
				Description:  "You are able to harvest valuable materials, such as leather or food, from defeated monsters. The type of item you receive on a success is shown in the Monster's entry in the Dragonica.",
				Effect:       "Harvest materials from a defeated Monster",
				Usable:       "After defeating a monster",
				StatUsed:     "[DEX + INT]",
				TargetNumber: "Monster level x2",
			},
			{
				Name:         "Hunting",
				Description:  "You are able to catch small wild animals for food. This skill is used just before the camp check is made, however, if you decide to go hunting, you cannot also help set up camp. The higher the result of the check, the more food you catch.",
				Effect:       "Receive a number of rations equal to Check result – target number, but cannot participate in the camp check. Critical: All food is Delicious. Fumble: Afflicted by [Injury: 6] status effect",
				Usable:       "Before camp check, once per day",
				StatUsed:     "[DEX + INT]",
				TargetNumber: "Topography",
			},
		},
	},
	{
		Name:   ClassHealer,
		Skills: []ClassSkill{
			{
				Name:         "Healing",
				Description:  "You heal a companion's injuries by creating a secret remedy from Healing Herbs and water. Any Healing Herb may be used, but the process takes time, so this skill is less effective if used during combat.",
				Effect:       "Target character recovers HP equal to the result of [INT + SPI]. During combat, recover only the result of [INT] (only 1 die.)",
				Usable:       "Spend 1 Healing Herb",
				StatUsed:     "[INT + SPI] (During combat, [INT] only)",
				TargetNumber: "None",
			},
			{
				Name:         "First Aid",
				Description:  "You can relieve a character's status effect for one hour. This also reduces the strength of the status ailment by your current level. If this reduces the strength of the status ailment to 0 or below, the status effect is immediately cured. A character may only receive First Aid once per day, regardless of whether or not the check is successful.",
				Effect:       "Relieve a character's status effect for 1 hour. Then, reduce that status effect's strength permanently by a number equal to the Healer's level.",
				Usable:       "A character with a status effect who has not yet received first aid today",
				StatUsed:     "[INT + SPI]",
				TargetNumber: "Status effect's strength",
			},
			{
				Name:         "Herb Gathering",
				Description:  "You know where to find potent Healing Herbs. Once each morning, when you succeed on this Skill Check, you can explore the wilderness to obtain a Healing Herb. The Healing Herb obtained depends on the current terrain.",
				Effect:       "Find a single Healing Herb. Critical: Find 3 Healing Herbs. Fumble: Afflicted with [Poison: 6]",
				Usable:       "Once each morning, before the Travel check",
				StatUsed:     "[STR + INT]",
				TargetNumber: "Topography",
			},
		},
	},
	{
		Name:   ClassFarmer,
		Skills: []ClassSkill{
			{
				Name:         "Robust",
				Description:  "Thanks to your healthy lifestyle, your body is sturdy, and you are in tune with its natural rhythm. You are naturally resistant to ill effects and can carry more items.",
				Effect:       "+1 bonus to Condition Checks. +3 bonus to Carrying Capacity",
				Usable:       "-",
				StatUsed:     "-",
				TargetNumber: "-",
			},
			{
				Name:         "Animal Owner",
				Description:  "You have learned how to raise animals that will help you carry your goods. Normally, only one animal can be taken on a Journey for free (without paying their daily food and water costs). With this skill, you can keep more animals without incurring their food and water costs.",
				Effect:       "You can keep 2 more animals for a total of 3 without paying for their food and water.",
				Usable:       "-",
				StatUsed:     "-",
				TargetNumber: "-",
			},
			{
				Name:         "Side-Job",
				Description:  "Since a farmer's life can be tough without extra money in the off-season, you've taken up another job on the side. When you choose the Farmer Class, choose a single Skill from any other class that requires a Skill Check. You may use that skill as if you were a member of that class. However, you aren't as practiced as a person of that class, so you will always have a -1 penalty to the check.",
				Effect:       "Use a single skill from another class with a -1 penalty",
				Usable:       "Depends on the skill",
				StatUsed:     "Depends on the skill",
				TargetNumber: "Depends on the skill",
			},
		},
	},
	{
		Name:   ClassArtisan,
		Skills: []ClassSkill{
			{
				Name:         "Trapping",
				Description:  "You are able to harvest valuable materials, such as leather or food, from defeated monsters. The type of item you receive on a success is shown in the Monster's entry in the Dragonica.",
				Effect:       "Take materials from a defeated Monster",
				Usable:       "After defeating a monster",
				StatUsed:     "[DEX + INT]",
				TargetNumber: "Monster level x2",
			},
			{
				Name:         "Crafting",
				Description:  "You can use this skill to make handy, cute, beautiful or delicious things. If you have time and tools, you can make things during your Journey. Each craft is different, and so are the things each character can make. When choosing the Artisan class, choose a single category from this list: Weapons, Armor, Shoes, Capes, Staves, Hats, Accessories, Food, Sundries, Camping Equipment, or Containers.",
				Effect:       "Make an item from your specialization. Choose the specialization category when choosing this class.",
				Usable:       "Anytime you have the time (1 day per size) and materials (1/2 the gold cost)",
				StatUsed:     "[STR + DEX]",
				TargetNumber: "See table",
			},
			{
				Name:         "Repair",
				Description:  "You can repair damaged items, restoring their durability to full. Use the table to determine the Repair Check target number. This costs 10% of the item's value, regardless of success or failure. You may retry a failed skill check, but you must pay the cost again.",
				Effect:       "Repair an item and return its durability to its original value",
				Usable:       "Anytime you have the time (1 day per size) and materials (10% the gold cost)",
				StatUsed:     "[STR + DEX]",
				TargetNumber: "See table (Price: ≤100g: 6, ≤1000g: 8, ≤10,000g: 10, ≤100,000g: 14, More: 18)",
			},
		},
	},
	{
		Name:   ClassNoble,
		Skills: []ClassSkill{
			{
				Name:         "Etiquette",
				Description:  "Due to your long years of tutelage and experience in noble society, you are aware of the importance of proper etiquette. When speaking to someone of rank or status, you are able to leave them with a positive impression of you when you win a contested Etiquette check.",
				Effect:       "Leave a positive impression on someone of high rank or status.",
				Usable:       "Conversing with someone of rank or status",
				StatUsed:     "[DEX + INT]",
				TargetNumber: "contested",
			},
			{
				Name:         "Refined Education",
				Description:  "After years of study under a learned tutor, you have memorized facts and trivia about many aspects of the world. You know more than the average person about history, famous people and well-traveled places.",
				Effect:       "Know detailed information about the things you see or hear.",
				Usable:       "Seeing or hearing something.",
				StatUsed:     "[INT + INT]",
				TargetNumber: "GM's discretion",
			},
			{
				Name:         "Weapon Grace",
				Description:  "After long years of practice and extensive training under a master-at-arms, you have learned to be graceful when wielding a certain weapon. When creating your character, choose either Blade, Polearm or Bow. You receive this weapon as a Mastered Weapon. If you already have this chosen category as a Mastered Weapon, you receive a +1 bonus to your Accuracy checks when using a weapon from that category.",
				Effect:       "Choose Blade/Polearm/Bow; it becomes an additional Mastered Weapon. If chosen category is already a Mastered Weapon, gain +1 bonus to Accuracy checks.",
				Usable:       "-",
				StatUsed:     "-",
				TargetNumber: "-",
			},
		},
	},
}

// ClassNames returns the class names in rulebook order
func ClassNames() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}

// LookupClass returns the class by name, ignoring case
func LookupClass(name string) (Class, bool) {
	for _, c := range classes {
		if strings.EqualFold(c.Name, name) {
			skills := make([]ClassSkill, len(c.Skills))
			copy(skills, c.Skills)
			return Class{Name: c.Name, Skills: skills}, true
		}
	}
	return Class{}, false
}

// Character types
const (
	TypeAttack    = "Attack"
	TypeTechnical = "Technical"
	TypeMagic     = "Magic"
)

// CharacterType is one of the three character types and its level 1 abilities
type CharacterType struct {
	Name      string
	Abilities string
}

var characterTypes = []CharacterType{
	{Name: TypeAttack, Abilities: "Toughness: Max HP + 4\nPower: +1 bonus to damage rolls during combat\nWeapon Focus: Gain 1 more Mastered Weapon"},
	{Name: TypeTechnical, Abilities: "Accurate: Gain an extra +1 bonus to any check when using Concentration for a total bonus of +1\nQuick: +1 bonus to initiative checks in combat\nPocket: Your Carrying Capacity is increased +3"},
	{Name: TypeMagic, Abilities: "Will: Max MP +4\nSpellbook: Acquire 2 Incantation spells per level\nSeasonal Sorcerer: Acquire Seasonal Magic"},
}

// CharacterTypeNames returns the type names in rulebook order
func CharacterTypeNames() []string {
	names := make([]string, len(characterTypes))
	for i, t := range characterTypes {
		names[i] = t.Name
	}
	return names
}

// LookupCharacterType returns the type by name, ignoring case
func LookupCharacterType(name string) (CharacterType, bool) {
	for _, t := range characterTypes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return CharacterType{}, false
}
