package catalog

var chatReplies = map[string]string{
	"en": "I'm having trouble answering right now. While I reconnect, try describing your day in a few short sentences and I'll help you polish them.",
	"es": "¡Hola! Ahora mismo tengo problemas para responder. Mientras tanto, intenta describir tu día en español con frases cortas.",
	"fr": "Bonjour ! J'ai un petit souci pour répondre en ce moment. En attendant, essayez de décrire votre journée en français avec des phrases simples.",
	"de": "Hallo! Ich kann gerade nicht richtig antworten. Versuche inzwischen, deinen Tag auf Deutsch in kurzen Sätzen zu beschreiben.",
	"it": "Ciao! Al momento ho qualche difficoltà a rispondere. Nel frattempo, prova a descrivere la tua giornata in italiano con frasi brevi.",
	"pt": "Olá! Estou com dificuldade para responder agora. Enquanto isso, tente descrever o seu dia em português com frases curtas.",
	"ja": "こんにちは！今はうまく返答できません。そのあいだに、今日の出来事を日本語の短い文で書いてみましょう。",
	"ta": "வணக்கம்! இப்போது பதிலளிப்பதில் சிக்கல் உள்ளது. அதுவரை, உங்கள் நாளை தமிழில் சிறிய வாக்கியங்களில் விவரிக்க முயற்சி செய்யுங்கள்.",
}

// DefaultChatOptions returns the follow-up suggestions offered when none
// could be generated.
func DefaultChatOptions() []string {
	return []string{"Tell me more", "Give me an example", "Let's practice"}
}

// CannedChatReply returns the stored tutor reply for a language, falling
// back to English.
func CannedChatReply(language string) string {
	if reply, ok := chatReplies[ResolveLanguage(language)]; ok {
		return reply
	}
	return chatReplies[DefaultLanguage]
}
