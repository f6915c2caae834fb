package catalog

import "strings"

func section(title string, lines ...string) map[string]any {
	return map[string]any{"title": title, "content": strings.Join(lines, "\n")}
}

func quizItem(question, answer string, options ...string) map[string]any {
	return map[string]any{"question": question, "options": options, "answer": answer}
}

func lessonObject(title, intro, summary string, sections, quiz []any) map[string]any {
	return map[string]any{
		"title":        title,
		"introduction": intro,
		"sections":     sections,
		"quiz":         quiz,
		"summary":      summary,
	}
}

type lessonKey struct{ code, title string }

// Builders rather than values so every caller gets its own copy.
var languageLessons = map[lessonKey]func() map[string]any{
	{"es", "Basic Greetings"}: func() map[string]any {
		return lessonObject("Basic Greetings",
			"Learn how to greet people in Spanish at any time of day.",
			"In this lesson, we learned basic Spanish greetings and how to have a simple conversation.",
			[]any{
				section("Common Greetings",
					"- Hola = Hello",
					"- Buenos días = Good morning",
					"- Buenas tardes = Good afternoon",
					"- Buenas noches = Good night",
					"- ¿Cómo estás? = How are you?",
					"- Bien, gracias = Fine, thank you"),
				section("Practice Dialogue",
					"A: ¡Hola! ¿Cómo estás?",
					"B: ¡Hola! Bien, gracias. ¿Y tú?",
					"A: Muy bien, gracias."),
			},
			[]any{
				quizItem("How do you say 'Hello' in Spanish?", "Hola", "Hola", "Adiós", "Gracias", "Por favor"),
				quizItem("What does 'Buenos días' mean?", "Good morning", "Good night", "Good morning", "Good afternoon", "Goodbye"),
			})
	},
	{"es", "Calendar & Time"}: func() map[string]any {
		return lessonObject("Calendar & Time",
			"Name the days of the week and the months of the year in Spanish.",
			"You can now name the days of the week and the first months of the year.",
			[]any{
				section("Days of the Week",
					"- Lunes = Monday",
					"- Martes = Tuesday",
					"- Miércoles = Wednesday",
					"- Jueves = Thursday",
					"- Viernes = Friday",
					"- Sábado = Saturday",
					"- Domingo = Sunday"),
				section("Months",
					"- Enero = January",
					"- Febrero = February",
					"- Marzo = March",
					"- Abril = April"),
			},
			[]any{
				quizItem("What is 'Monday' in Spanish?", "Lunes", "Lunes", "Martes", "Miércoles", "Domingo"),
			})
	},
	{"fr", "Basic Greetings"}: func() map[string]any {
		return lessonObject("Basic Greetings",
			"Start conversations in French with these everyday greetings.",
			"This lesson covered essential French greetings and basic conversation starters.",
			[]any{
				section("Basic Greetings",
					"- Bonjour = Hello/Good day",
					"- Bonsoir = Good evening",
					"- Au revoir = Goodbye",
					"- Comment allez-vous? = How are you?",
					"- Très bien, merci = Very well, thank you"),
			},
			[]any{
				quizItem("What does 'Bonjour' mean?", "Hello", "Goodbye", "Hello", "Good night", "Please"),
			})
	},
}

var titleLessons = map[string]func() map[string]any{
	"Basic Greetings": func() map[string]any {
		return lessonObject("Basic Greetings",
			"Learn essential greetings to start conversations.",
			"You've learned basic greetings for different times of day.",
			[]any{
				section("Common Greetings",
					"- Hello - The most basic greeting",
					"- Hi - Informal greeting",
					"- Good morning - Morning greeting",
					"- Good afternoon - Afternoon greeting",
					"- Good evening - Evening greeting"),
				section("Practice",
					"- Practice these greetings with a partner",
					"- Try using different greetings at different times of day"),
			},
			[]any{
				quizItem("What greeting would you use at 9 AM?", "Good morning", "Good morning", "Good evening", "Good afternoon"),
			})
	},
}

// CannedLesson returns stored content for a lesson, preferring a version
// written for the language, then a language-neutral one, then a generic
// placeholder titled after the lesson. The result is a fresh map the caller
// may modify.
func CannedLesson(language, title string) map[string]any {
	code := ResolveLanguage(language)
	if build, ok := languageLessons[lessonKey{code, title}]; ok {
		return build()
	}
	if build, ok := titleLessons[title]; ok {
		return build()
	}
	return FallbackLesson(title)
}

// FallbackLesson is the placeholder served when nothing better is known.
func FallbackLesson(title string) map[string]any {
	return lessonObject(title,
		"Welcome to this lesson!",
		"More content coming soon!",
		[]any{
			section("Getting Started", "We're preparing the best content for you. Please try again in a moment."),
		},
		[]any{})
}
