package models

import "time"

const MaxAffirmationTextLength = 500

var AffirmationCategories = []string{
	"self-love",
	"abundance",
	"health",
	"relationships",
	"career",
	"confidence",
	"healing",
	"manifestation",
	"gratitude",
	"peace",
	"success",
	"creativity",
}

type Affirmation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null" json:"text"`
	Category  string    `gorm:"not null;index:idx_affirmations_category_active" json:"category"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_affirmations_category_active" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type BuiltinAffirmation struct {
	Text     string
	Category string
	Tags     []string
}

func DefaultAffirmations() []BuiltinAffirmation {
	return []BuiltinAffirmation{
		{Text: "I am worthy of love and respect exactly as I am.", Category: "self-love", Tags: []string{"worth", "respect"}},
		{Text: "I choose to treat myself with kindness and compassion.", Category: "self-love", Tags: []string{"kindness", "compassion"}},
		{Text: "I am enough, I have enough, I do enough.", Category: "self-love", Tags: []string{"enough", "acceptance"}},
		{Text: "I forgive myself for past mistakes and embrace growth.", Category: "self-love", Tags: []string{"forgiveness", "growth"}},
		{Text: "My self-worth is not determined by others' opinions.", Category: "self-love", Tags: []string{"worth", "independence"}},
		{Text: "I am a magnet for abundance and prosperity.", Category: "abundance", Tags: []string{"prosperity", "attraction"}},
		{Text: "Money flows to me easily and effortlessly.", Category: "abundance", Tags: []string{"money", "flow"}},
		{Text: "I deserve to live a life of abundance and joy.", Category: "abundance", Tags: []string{"deserve", "joy"}},
		{Text: "Opportunities for wealth and success surround me.", Category: "abundance", Tags: []string{"opportunities", "wealth"}},
		{Text: "I am grateful for the abundance that flows into my life.", Category: "abundance", Tags: []string{"grateful", "flow"}},
		{Text: "My body is strong, healthy, and full of energy.", Category: "health", Tags: []string{"strength", "energy"}},
		{Text: "I nourish my body with healthy choices every day.", Category: "health", Tags: []string{"nourish", "choices"}},
		{Text: "Every cell in my body vibrates with perfect health.", Category: "health", Tags: []string{"cells", "vibration"}},
		{Text: "I listen to my body's wisdom and honor its needs.", Category: "health", Tags: []string{"wisdom", "honor"}},
		{Text: "I am healing and becoming stronger every day.", Category: "health", Tags: []string{"healing", "stronger"}},
		{Text: "I attract loving and supportive relationships.", Category: "relationships", Tags: []string{"attract", "support"}},
		{Text: "I communicate with love, honesty, and clarity.", Category: "relationships", Tags: []string{"communication", "honesty"}},
		{Text: "I am surrounded by people who love and appreciate me.", Category: "relationships", Tags: []string{"surrounded", "appreciation"}},
		{Text: "I give and receive love freely and unconditionally.", Category: "relationships", Tags: []string{"give", "receive"}},
		{Text: "My relationships are based on mutual respect and understanding.", Category: "relationships", Tags: []string{"respect", "understanding"}},
		{Text: "I am successful in all my professional endeavors.", Category: "career", Tags: []string{"success", "professional"}},
		{Text: "My work brings me joy, fulfillment, and abundance.", Category: "career", Tags: []string{"joy", "fulfillment"}},
		{Text: "I am a valuable asset to any team or organization.", Category: "career", Tags: []string{"valuable", "asset"}},
		{Text: "Opportunities for career advancement come to me easily.", Category: "career", Tags: []string{"advancement", "opportunities"}},
		{Text: "I am confident in my skills and abilities.", Category: "career", Tags: []string{"confident", "skills"}},
		{Text: "I believe in myself and my ability to succeed.", Category: "confidence", Tags: []string{"believe", "succeed"}},
		{Text: "I speak my truth with confidence and clarity.", Category: "confidence", Tags: []string{"truth", "clarity"}},
		{Text: "I am brave, bold, and beautiful in my uniqueness.", Category: "confidence", Tags: []string{"brave", "unique"}},
		{Text: "I trust my intuition and make decisions with confidence.", Category: "confidence", Tags: []string{"intuition", "decisions"}},
		{Text: "I radiate confidence and inspire others.", Category: "confidence", Tags: []string{"radiate", "inspire"}},
		{Text: "I am healing on all levels - mind, body, and spirit.", Category: "healing", Tags: []string{"mind", "body", "spirit"}},
		{Text: "I release all that no longer serves my highest good.", Category: "healing", Tags: []string{"release", "highest good"}},
		{Text: "Every breath I take brings healing energy into my being.", Category: "healing", Tags: []string{"breath", "energy"}},
		{Text: "I am patient and gentle with myself during healing.", Category: "healing", Tags: []string{"patient", "gentle"}},
		{Text: "My past experiences have made me wiser and stronger.", Category: "healing", Tags: []string{"experiences", "wiser"}},
		{Text: "I am a powerful creator of my own reality.", Category: "manifestation", Tags: []string{"creator", "reality"}},
		{Text: "My thoughts and intentions manifest into reality.", Category: "manifestation", Tags: []string{"thoughts", "intentions"}},
		{Text: "I align my actions with my dreams and desires.", Category: "manifestation", Tags: []string{"align", "dreams"}},
		{Text: "The universe conspires to help me achieve my goals.", Category: "manifestation", Tags: []string{"universe", "goals"}},
		{Text: "I manifest my desires with ease and grace.", Category: "manifestation", Tags: []string{"ease", "grace"}},
		{Text: "I am grateful for all the blessings in my life.", Category: "gratitude", Tags: []string{"blessings", "grateful"}},
		{Text: "Gratitude fills my heart and transforms my perspective.", Category: "gratitude", Tags: []string{"heart", "perspective"}},
		{Text: "I appreciate the beauty and wonder in everyday moments.", Category: "gratitude", Tags: []string{"beauty", "wonder"}},
		{Text: "I am thankful for both challenges and victories.", Category: "gratitude", Tags: []string{"challenges", "victories"}},
		{Text: "Gratitude opens my heart to receive more blessings.", Category: "gratitude", Tags: []string{"opens", "receive"}},
		{Text: "I am at peace with myself and the world around me.", Category: "peace", Tags: []string{"peace", "world"}},
		{Text: "I choose inner peace over external chaos.", Category: "peace", Tags: []string{"inner peace", "chaos"}},
		{Text: "Calmness and serenity flow through my being.", Category: "peace", Tags: []string{"calmness", "serenity"}},
		{Text: "I release worry and embrace the present moment.", Category: "peace", Tags: []string{"worry", "present"}},
		{Text: "Peace is my natural state of being.", Category: "peace", Tags: []string{"natural", "state"}},
		{Text: "Success flows to me in perfect timing.", Category: "success", Tags: []string{"flows", "timing"}},
		{Text: "I am destined for greatness and success.", Category: "success", Tags: []string{"destined", "greatness"}},
		{Text: "Every step I take leads me closer to success.", Category: "success", Tags: []string{"steps", "closer"}},
		{Text: "I celebrate my achievements and learn from setbacks.", Category: "success", Tags: []string{"celebrate", "learn"}},
		{Text: "Success is my birthright and I claim it now.", Category: "success", Tags: []string{"birthright", "claim"}},
		{Text: "I am a creative being with unlimited potential.", Category: "creativity", Tags: []string{"creative", "potential"}},
		{Text: "Inspiration flows through me effortlessly.", Category: "creativity", Tags: []string{"inspiration", "flows"}},
		{Text: "I trust my creative process and honor my ideas.", Category: "creativity", Tags: []string{"trust", "ideas"}},
		{Text: "My creativity brings joy and value to the world.", Category: "creativity", Tags: []string{"joy", "value"}},
		{Text: "I express myself freely and authentically.", Category: "creativity", Tags: []string{"express", "authentically"}},
	}
}
