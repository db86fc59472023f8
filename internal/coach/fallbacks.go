package coach

import "fmt"

func fallbackMessage(mc MessageContext, stats UserStats) string {
	switch mc {
	case ContextSessionStart:
		return "Time to grind! Laten we dit doen! 🔥💪"
	case ContextSessionEnd:
		return "Sessie voltooid! Je bent een absolute unit! 🏆✨"
	case ContextLevelUp:
		return "LEVEL UP! Je bent echt next level bezig! 🚀⭐"
	case ContextStreak:
		return fmt.Sprintf("%d dagen streak! Je bent on fire! 🔥🔥", stats.Streak)
	case ContextStruggle:
		return "Even een dipje? Dat hoort erbij! Je komt er wel! 💪❤️"
	default:
		return "Keep going, je doet het geweldig! 🌟"
	}
}

func fallbackQuestions(subject string, d Difficulty) StudyQuestions {
	return StudyQuestions{
		Questions: []string{
			fmt.Sprintf("Wat is het belangrijkste concept in %s? 🤔", subject),
			fmt.Sprintf("Hoe kun je %s toepassen in het echte leven? 💡", subject),
			fmt.Sprintf("Wat vind je het moeilijkste aan %s? 🤯", subject),
			fmt.Sprintf("Welke strategie werkt het beste voor jou bij %s? 🎯", subject),
			fmt.Sprintf("Hoe zou je %s uitleggen aan een vriend? 👥", subject),
		},
		Difficulty: d,
		Fallback:   true,
	}
}

func fallbackTips() []string {
	return []string{
		"Plan je studiesessies van tevoren in je agenda 📅",
		"Gebruik de Pomodoro techniek: 25 min studeren, 5 min pauze 🍅",
		"Maak samenvattingen in je eigen woorden 📝",
		"Test jezelf regelmatig met flashcards 🃏",
		"Zoek een rustige studieplek zonder afleiding 🤫",
	}
}

func fallbackAnalysis(subject string) StudyAnalysis {
	return StudyAnalysis{
		Feedback: fmt.Sprintf("Goed bezig met %s! 🔥 Je bent op de goede weg. Keep grinding!", subject),
		Tips: []string{
			"Maak duidelijke samenvattingen met kopjes",
			"Gebruik kleuren om belangrijke info te markeren",
			"Test jezelf regelmatig met vragen",
		},
		Strengths:    []string{"Goede structuur", "Duidelijke notities"},
		Improvements: []string{"Meer voorbeelden toevoegen", "Verbanden tussen concepten tekenen"},
		StudyPlan: []string{
			"Herhaal de hoofdpunten",
			"Maak oefenvragen",
			"Leg het uit aan iemand anders",
		},
		Difficulty:    DifficultyMedium,
		EstimatedTime: 30,
		Fallback:      true,
	}
}
