package scoring

import (
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
)

// KidsPole is one pole of a JVDT-2 axis.
type KidsPole string

const (
	PoleStory    KidsPole = "Story"
	PoleFacts    KidsPole = "Facts"
	PoleWhy      KidsPole = "Why"
	PoleHow      KidsPole = "How"
	PoleDream    KidsPole = "Dream"
	PolePlan     KidsPole = "Plan"
	PoleKind     KidsPole = "Kind"
	PoleFair     KidsPole = "Fair"
	PoleBalanced KidsPole = "Balanced"
)

// ArchetypeKey is the dominant pole per kids axis.
type ArchetypeKey struct {
	Seeing   KidsPole
	Thinking KidsPole
	Doing    KidsPole
	Caring   KidsPole
}

func (k ArchetypeKey) String() string {
	return strings.Join([]string{string(k.Seeing), string(k.Thinking), string(k.Doing), string(k.Caring)}, "-")
}

// HasBalanced reports whether any axis lacks a dominant pole.
func (k ArchetypeKey) HasBalanced() bool {
	for _, p := range []KidsPole{k.Seeing, k.Thinking, k.Doing, k.Caring} {
		if p == PoleBalanced || p == "" {
			return true
		}
	}
	return false
}

// LookupArchetype returns the archetype for k, falling back to
// DefaultArchetype when any axis is balanced.
func LookupArchetype(k ArchetypeKey) models.Archetype {
	a, ok := Archetypes[k]
	if k.HasBalanced() || !ok {
		a = DefaultArchetype
	}
	a.Key = k.String()
	return a
}

var DefaultArchetype = models.Archetype{
	Title:          "Balanced Explorer",
	Tagline:        "Uses many skills to learn and grow!",
	KidDescription: "Cool! You use a mix of different superpowers to learn and explore. That means you can be good at lots of things!",
	TeacherNote:    "Shows flexibility across different learning styles.",
	Badge:          "🤝🌟",
	Gradient:       "from-emerald-300 via-blue-300 to-purple-300",
}

var Archetypes = map[ArchetypeKey]models.Archetype{
	{PoleStory, PoleWhy, PoleDream, PoleKind}: {
		Title:          "The Imaginative Helper",
		Tagline:        "Learns through stories, dreams big, and cares deeply.",
		KidDescription: "Wow! You love stories (🖼️), asking 'Why?' (❓), dreaming up big ideas (💭), and being super kind (💖). Telling stories to help people is your superpower!",
		TeacherNote:    "Natural empath and storyteller; connects ideas emotionally and wants to help others.",
		Badge:          "🎨🤝",
		Gradient:       "from-amber-300 via-violet-300 to-pink-300",
	},
	{PoleStory, PoleWhy, PoleDream, PoleFair}: {
		Title:          "The Wise Dreamer",
		Tagline:        "Dreams up fair ideas that make the world better.",
		KidDescription: "Stories (🖼️) and asking 'Why?' (❓) are your jam! You have big dreams (💭) and always want things to be fair (⚖️). You're great at imagining fair ways to play!",
		TeacherNote:    "Balances imagination with justice; loves stories with morals and lessons.",
		Badge:          "📜🌍",
		Gradient:       "from-amber-300 via-violet-300 to-slate-300",
	},
	{PoleStory, PoleWhy, PolePlan, PoleKind}: {
		Title:          "The Gentle Organizer",
		Tagline:        "Plans kind ways to make good ideas real.",
		KidDescription: "You learn well with stories (🖼️) and like knowing 'Why?' (❓). You also enjoy having a plan (🗺️) and being really kind (💖). Making kind plans is one of your talents!",
		TeacherNote:    "Likes stories but also structure; leads softly and kindly.",
		Badge:          "🗂️💗",
		Gradient:       "from-amber-300 via-violet-300 to-rose-300",
	},
	{PoleStory, PoleWhy, PolePlan, PoleFair}: {
		Title:          "The Thoughtful Guardian",
		Tagline:        "Keeps things fair and true to their meaning.",
		KidDescription: "You like stories (🖼️) and understanding 'Why?' (❓). Making clear plans (🗺️) and keeping things fair (⚖️) are important to you. You're awesome at making sure rules make sense!",
		TeacherNote:    "Protects principles; values tradition, fairness, and responsibility.",
		Badge:          "🛡️📖",
		Gradient:       "from-amber-300 via-violet-300 to-slate-300",
	},
	{PoleStory, PoleHow, PoleDream, PoleKind}: {
		Title:          "The Creative Builder",
		Tagline:        "Turns ideas into kind actions.",
		KidDescription: "Stories (🖼️) help you learn, and you love knowing 'How?' (⚙️). You dream up cool new things (💭) and are always kind (💖). You can imagine amazing ways to help others!",
		TeacherNote:    "Loves to make things, enjoys showing others how ideas can help.",
		Badge:          "🛠️💝",
		Gradient:       "from-amber-300 via-cyan-300 to-pink-300",
	},
	{PoleStory, PoleHow, PoleDream, PoleFair}: {
		Title:          "The Inventive Maker",
		Tagline:        "Builds fair and fun new worlds.",
		KidDescription: "You're great with stories (🖼️) and figuring out 'How?' (⚙️). You dream big (💭) but always make sure things are fair (⚖️). You're like an inventor who makes fair games!",
		TeacherNote:    "Engineer-artist hybrid; imaginative but grounded in systems and fairness.",
		Badge:          "🧩⚖️",
		Gradient:       "from-amber-300 via-cyan-300 to-slate-300",
	},
	{PoleStory, PoleHow, PolePlan, PoleKind}: {
		Title:          "The Caring Designer",
		Tagline:        "Plans carefully to create good things for people.",
		KidDescription: "You like learning from stories (🖼️) and knowing 'How?' (⚙️). Following a plan (🗺️) feels good, and you're super kind (💖). You're fantastic at planning nice things for others!",
		TeacherNote:    "Likes clear instructions, builds things that help or comfort others.",
		Badge:          "📐💕",
		Gradient:       "from-amber-300 via-cyan-300 to-rose-300",
	},
	{PoleStory, PoleHow, PolePlan, PoleFair}: {
		Title:          "The Balanced Planner",
		Tagline:        "Makes sure every plan works well and treats people right.",
		KidDescription: "Stories (🖼️) are fun, and you like knowing 'How?' (⚙️). You stick to the plan (🗺️) and make sure everything is fair (⚖️). You're great at making sure plans work for everyone!",
		TeacherNote:    "Practical, dependable, and just; ensures both order and inclusion.",
		Badge:          "📋⚖️",
		Gradient:       "from-amber-300 via-cyan-300 to-slate-300",
	},
	{PoleFacts, PoleWhy, PoleDream, PoleKind}: {
		Title:          "The Thoughtful Inventor",
		Tagline:        "Finds smart, kind reasons for new ideas.",
		KidDescription: "You like facts (📊) and always ask 'Why?' (❓). You have big dreams (💭) and a kind heart (💖). You're good at thinking up kind reasons for your awesome ideas!",
		TeacherNote:    "Analytical yet caring; blends reason with compassion.",
		Badge:          "🔬💡",
		Gradient:       "from-blue-300 via-violet-300 to-pink-300",
	},
	{PoleFacts, PoleWhy, PoleDream, PoleFair}: {
		Title:          "The Principled Creator",
		Tagline:        "Dreams up fair solutions using what they know.",
		KidDescription: "Facts (📊) and asking 'Why?' (❓) help you learn. You dream big (💭) and believe in being fair (⚖️). You're amazing at creating fair ideas based on what you know!",
		TeacherNote:    "Wants ideas to be correct and just; loves solving real problems.",
		Badge:          "⚖️💡",
		Gradient:       "from-blue-300 via-violet-300 to-slate-300",
	},
	{PoleFacts, PoleWhy, PolePlan, PoleKind}: {
		Title:          "The Patient Helper",
		Tagline:        "Plans carefully to do kind things that work.",
		KidDescription: "You like facts (📊), understanding 'Why?' (❓), and having a plan (🗺️). Being kind (💖) is important too! You're great at planning helpful things step-by-step.",
		TeacherNote:    "Values order and kindness; solid team player who likes clear steps.",
		Badge:          "📚💗",
		Gradient:       "from-blue-300 via-violet-300 to-rose-300",
	},
	{PoleFacts, PoleWhy, PolePlan, PoleFair}: {
		Title:          "The Reliable Judge",
		Tagline:        "Thinks before acting and keeps things fair.",
		KidDescription: "Facts (📊) and asking 'Why?' (❓) guide you. You like clear plans (🗺️) and making sure things are fair (⚖️). You're really good at thinking carefully and being fair!",
		TeacherNote:    "Calm, objective, consistent; great at mediating or leading by fairness.",
		Badge:          "⚖️📝",
		Gradient:       "from-blue-300 via-violet-300 to-slate-300",
	},
	{PoleFacts, PoleHow, PoleDream, PoleKind}: {
		Title:          "The Practical Dreamer",
		Tagline:        "Uses facts to make kind ideas real.",
		KidDescription: "Wow! You're great at using facts (📊) to understand 'How?' things work (⚙️). You love dreaming up big ideas (💭) and using them to be kind to others (💖). That's your superpower!",
		TeacherNote:    "Curious and compassionate; applies learning to help others.",
		Badge:          "🔧💝",
		Gradient:       "from-blue-300 via-cyan-300 to-pink-300",
	},
	{PoleFacts, PoleHow, PoleDream, PoleFair}: {
		Title:          "The Inventive Fixer",
		Tagline:        "Figures out fair new ways to improve things.",
		KidDescription: "You use facts (📊) and know 'How?' (⚙️) things work. You dream (💭) of better ways and want things to be fair (⚖️). You're like a super-fixer who makes things fair!",
		TeacherNote:    "Problem-solver; experiments until systems feel fair for everyone.",
		Badge:          "⚙️⚖️",
		Gradient:       "from-blue-300 via-cyan-300 to-slate-300",
	},
	{PoleFacts, PoleHow, PolePlan, PoleKind}: {
		Title:          "The Helpful Builder",
		Tagline:        "Follows clear steps to make life easier for others.",
		KidDescription: "You like facts (📊), knowing 'How?' (⚙️), and following plans (🗺️). You're also very kind (💖)! You're wonderful at building things carefully to help people.",
		TeacherNote:    "Systematic worker; thrives on routine and helping through action.",
		Badge:          "🔧💕",
		Gradient:       "from-blue-300 via-cyan-300 to-rose-300",
	},
	{PoleFacts, PoleHow, PolePlan, PoleFair}: {
		Title:          "The Logical Leader",
		Tagline:        "Keeps things running smoothly and fairly.",
		KidDescription: "Facts (📊), knowing 'How?' (⚙️), and having a plan (🗺️) are your style! You make sure everything is fair (⚖️). You're fantastic at organizing things so they work well for everyone!",
		TeacherNote:    "Natural organizer; leads by fairness, facts, and responsibility.",
		Badge:          "📊⚖️",
		Gradient:       "from-blue-300 via-cyan-300 to-slate-300",
	},
}

var teacherTips = map[KidsPole]string{
	PoleStory: "Encourage adding one fact to each idea.",
	PoleFacts: "Encourage adding one example or story to each fact.",
	PoleWhy:   "Ask: What's one way this helps someone today?",
	PoleHow:   "Ask: What's one reason this idea matters?",
	PoleDream: "Help them write 3 small steps before starting.",
	PolePlan:  "Ask: Is there room for a new idea here?",
	PoleKind:  "Help them practice saying 'no' kindly but clearly.",
	PoleFair:  "Ask: Can we start by saying something kind?",
}

var parentTips = map[KidsPole]string{
	PoleStory: "use stories and pictures to explain things",
	PoleFacts: "provide clear facts and step-by-step explanations",
	PoleWhy:   "explain the reasons behind rules and ideas",
	PoleHow:   "show practical examples and real-world uses",
	PoleDream: "encourage big ideas and creative thinking",
	PolePlan:  "help them organize and plan before starting",
	PoleKind:  "emphasize helping others and being gentle",
	PoleFair:  "focus on rules, fairness, and treating everyone equally",
}
