package constant

type StyleKeyword struct {
	Keyword   string
	Trend     string
	Responses []string
}

type MoodKeyword struct {
	Keyword  string
	Response string
}

// StyleKeywords are matched in this order; the first hit wins.
var StyleKeywords = []StyleKeyword{
	{
		Keyword: "90s",
		Trend:   "90s Revival",
		Responses: []string{
			"I love the 90s vibe! Think grunge, oversized flannels, and that effortlessly cool streetwear aesthetic. 🎸",
			"90s Revival is all about that nostalgic, rebellious spirit with baggy jeans and vintage tees! ✨",
			"The 90s Revival style brings back that iconic grunge and hip-hop influenced look! 🎯",
		},
	},
	{
		Keyword: "grunge",
		Trend:   "90s Revival",
		Responses: []string{
			"Grunge is such a timeless look! Perfect for that edgy, laid-back 90s Revival style. 🎸",
			"Love the grunge aesthetic! It's a key part of our 90s Revival trend. 🔥",
		},
	},
	{
		Keyword: "minimalist",
		Trend:   "Minimalist Chic",
		Responses: []string{
			"Minimalist Chic is perfect for that clean, sophisticated look! ✨",
			"I love minimalist style - it's all about quality pieces and timeless elegance! 💎",
			"Minimalist Chic focuses on simple, refined pieces that make a statement through subtlety! 🌟",
		},
	},
	{
		Keyword: "clean",
		Trend:   "Minimalist Chic",
		Responses: []string{
			"A clean aesthetic sounds perfect for Minimalist Chic! Think simple lines and neutral colors. ✨",
			"Clean and simple - that's the essence of Minimalist Chic style! 💫",
		},
	},
	{
		Keyword: "professional",
		Trend:   "Minimalist Chic",
		Responses: []string{
			"For a professional look, Minimalist Chic is ideal - sophisticated yet approachable! 👔",
			"Professional style with a modern twist? Minimalist Chic has you covered! ✨",
		},
	},
	{
		Keyword: "tech",
		Trend:   "Hacker Mode",
		Responses: []string{
			"Tech-inspired fashion? Hacker Mode is perfect - it's all about that innovative, digital aesthetic! 🎯",
			"Hacker Mode combines tech culture with street style for a truly unique look! 💻",
			"Love the tech vibe! Hacker Mode creates that perfect intersection of innovation and style! ⚡",
		},
	},
	{
		Keyword: "hacker",
		Trend:   "Hacker Mode",
		Responses: []string{
			"Hacker Mode is our most innovative style - tech-inspired looks that make a statement! 🎯",
			"The Hacker Mode aesthetic is all about that cutting-edge, digital nomad vibe! 💻",
		},
	},
	{
		Keyword: "innovative",
		Trend:   "Hacker Mode",
		Responses: []string{
			"Innovative style calls for Hacker Mode - where technology meets fashion! ⚡",
			"For something truly innovative, try Hacker Mode - it's our most unique aesthetic! 🚀",
		},
	},
}

var MoodKeywords = []MoodKeyword{
	{Keyword: "casual", Response: "For a casual day, I'd recommend something comfortable yet stylish! What kind of casual are you thinking - laid-back grunge or clean minimalist? 😊"},
	{Keyword: "formal", Response: "For formal occasions, Minimalist Chic offers that perfect sophisticated elegance! 👔"},
	{Keyword: "creative", Response: "Feeling creative? Hacker Mode might be perfect for expressing your innovative side! 🎨"},
	{Keyword: "confident", Response: "Confidence looks good in any style! What aesthetic matches your confident mood today? 💪"},
	{Keyword: "relaxed", Response: "For a relaxed vibe, 90s Revival offers that perfect laid-back, effortless cool! 😌"},
	{Keyword: "edgy", Response: "Edgy style calls for some 90s Revival grunge vibes! 🔥"},
	{Keyword: "sophisticated", Response: "Sophisticated style is exactly what Minimalist Chic delivers! ✨"},
}

var (
	Greetings     = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}
	QuestionWords = []string{"what", "how", "why", "when", "where", "which"}
)

const (
	GreetingResponse      = "Hey there! 👋 I'm excited to help you find your perfect style today! What kind of look are you going for? Casual, formal, or something unique? 🎨"
	StyleQuestionResponse = "Great question! I can help you explore different styles based on your mood, occasion, or personal preferences. Try describing how you want to feel or look! ✨"
	QuestionResponse      = "That's an interesting question! I'm here to help with style and fashion advice. What kind of look are you trying to achieve? 🎨"
	DefaultChatResponse   = "I love your style curiosity! 💫 Tell me more about what you're looking for - are you feeling more casual, professional, or want to try something completely different? I'm here to help you find the perfect look! ✨"
)
