package content

import (
	"strings"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// Topic slugs understood by the education flows.
const (
	TopicMalaria        = "malaria"
	TopicChildHealth    = "child-health"
	TopicMaternalHealth = "maternal-health"
	TopicMentalHealth   = "mental-health"
)

// TopicAudioCode maps a topic to the digit callers press on the audio
// information line.
func TopicAudioCode(topic string) string {
	switch topic {
	case TopicMalaria:
		return "1"
	case TopicChildHealth:
		return "2"
	case TopicMaternalHealth:
		return "3"
	case TopicMentalHealth:
		return "4"
	}
	return "0"
}

var fallbackContent = map[string]domain.HealthContent{
	TopicMalaria: {
		Title: "Malaria Prevention",
		Body: "Malaria is spread by mosquito bites and is dangerous for pregnant women and " +
			"young children. Sleeping under an insecticide-treated bed net every night is the " +
			"best protection. Clear standing water around your home and seek treatment at a " +
			"health facility as soon as anyone develops fever.",
		KeyPoints: []string{
			"Use bed nets every night",
			"Clear stagnant water",
			"Seek treatment for fever",
			"Take prescribed medication fully",
		},
		AudioScript: "Let us talk about preventing malaria. Sleep under a treated bed net " +
			"every night. Clear standing water near your home. If you or your child has " +
			"fever, go to the health centre the same day and finish all the medicine you " +
			"are given.",
		CulturalNotes: "Bed nets are distributed free at many health centres in Sierra Leone. " +
			"Encourage the whole household to use them, not only children.",
		ActionItems: []string{
			"Check your bed net for holes tonight",
			"Clear water containers around the house",
			"Visit the health centre if fever lasts more than a day",
		},
	},
	TopicChildHealth: {
		Title: "Child Health",
		Body: "Exclusive breastfeeding for the first six months gives babies the strongest " +
			"start. Keep to the vaccination schedule, watch for danger signs such as fast " +
			"breathing or refusal to feed, and make sure young children eat a varied diet.",
		KeyPoints: []string{
			"Breastfeed exclusively for 6 months",
			"Vaccinate on schedule",
			"Watch for danger signs",
			"Ensure proper nutrition",
		},
		AudioScript: "Your baby grows best on breast milk alone for the first six months. " +
			"Take your child for every vaccination. If your child breathes fast, will not " +
			"feed, or is unusually sleepy, go to the health centre straight away.",
		CulturalNotes: "Growth monitoring visits are a good moment to ask the nurse any " +
			"question about feeding or development.",
		ActionItems: []string{
			"Check your child's vaccination card",
			"Plan the next growth monitoring visit",
			"Learn the danger signs listed above",
		},
	},
	TopicMaternalHealth: {
		Title: "Maternal Health",
		Body: "Regular prenatal care is essential for a healthy pregnancy. Attend every " +
			"scheduled checkup at your local health centre, take iron and folic acid as " +
			"prescribed, plan to deliver at a health facility and learn the danger signs " +
			"that need immediate care.",
		KeyPoints: []string{
			"Attend all prenatal visits",
			"Deliver at health facility",
			"Recognize danger signs",
			"Eat nutritious foods",
		},
		AudioScript: "Pregnancy checkups protect you and your baby. Go to every visit, even " +
			"when you feel well. Plan now to deliver at a health facility with a skilled " +
			"attendant. Severe headache, blurred vision, heavy bleeding or strong belly " +
			"pain means go to the facility immediately.",
		CulturalNotes: "In Sierra Leone, community support is very important. Involve family " +
			"members and traditional birth attendants while also seeking care at the health " +
			"facility.",
		ActionItems: []string{
			"Schedule your next health centre visit",
			"Arrange emergency transport in advance",
			"Discuss your delivery plan with your family",
		},
	},
	TopicMentalHealth: {
		Title: "Mental Health",
		Body: "Persistent sadness, loss of interest, poor sleep and difficulty concentrating " +
			"are common and treatable. Talking to trusted people, staying active and keeping " +
			"regular sleep all help. Seek help when symptoms persist or daily life becomes " +
			"difficult.",
		KeyPoints: []string{
			"Talk to trusted people",
			"Stay physically active",
			"Avoid alcohol and drugs",
			"Seek help when needed",
		},
		AudioScript: "Feeling low for a long time is not a weakness, it is a health matter. " +
			"Talk with someone you trust. Keep moving your body and sleeping at regular " +
			"times. If sad feelings last more than two weeks, ask for help at the health " +
			"centre.",
		CulturalNotes: "New mothers often feel overwhelmed. Checking in on a mother's mood is " +
			"as important as checking on the baby.",
		ActionItems: []string{
			"Name one person you can talk to this week",
			"Take a short walk each day",
			"Visit the health centre if symptoms persist",
		},
	},
}

// genericFallback is served for unknown topics so education requests
// never hard-fail.
var genericFallback = domain.HealthContent{
	Title: "Maternal Health",
	Body: "This is important information about your health. Regular prenatal care is " +
		"essential for a healthy pregnancy. Attend all your scheduled checkups at your " +
		"local health centre, eat nutritious foods, get enough rest, and seek help when " +
		"you notice warning signs.",
	KeyPoints: []string{
		"Attend regular prenatal checkups",
		"Eat a balanced diet with vegetables and fruits",
		"Get adequate rest and sleep",
		"Stay hydrated by drinking clean water",
		"Seek immediate help if you notice warning signs",
	},
	AudioScript: "Let us talk about your health. Remember to attend all your prenatal " +
		"checkups. Eat good food, rest well, and always ask for help when you need it.",
	CulturalNotes: "In Sierra Leone, community support is very important. Involve family " +
		"members while also seeking modern medical care.",
	ActionItems: []string{
		"Schedule your next health centre visit",
		"Discuss this topic with your family",
		"Write down questions for your healthcare provider",
	},
}

// Fallback returns the static content for a topic. The result is a copy;
// callers may truncate or reformat freely.
func Fallback(topic string) *domain.HealthContent {
	if c, ok := fallbackContent[topic]; ok {
		out := c
		return &out
	}
	out := genericFallback
	return &out
}

// KnownTopic reports whether a topic slug has dedicated content.
func KnownTopic(topic string) bool {
	_, ok := fallbackContent[topic]
	return ok
}

// FallbackChatReply answers a free-text health question with keyword
// heuristics when the assistant model is unavailable. Every branch keeps
// the caller pointed at a safe next step.
func FallbackChatReply(message string) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "emergency") || strings.Contains(m, "urgent") ||
		strings.Contains(m, "bleeding") || strings.Contains(m, "convulsion"):
		return "For medical emergencies call 117 immediately. Severe bleeding, severe headache, " +
			"blurred vision, convulsions or difficulty breathing need care now. Go to the " +
			"nearest health facility right away."
	case strings.Contains(m, "fever") || strings.Contains(m, "sick") || strings.Contains(m, "pain"):
		return "I understand you're not feeling well. Reply EMER for emergency or BOOK for a " +
			"consultation. If symptoms are severe, call 117 immediately."
	case strings.Contains(m, "pregnan") || strings.Contains(m, "baby") || strings.Contains(m, "prenatal"):
		return "For pregnancy and baby health: reply MOM for maternal health information or BOOK " +
			"for a consultation with a maternal health specialist. For emergencies call 117."
	case strings.Contains(m, "help") || strings.Contains(m, "?"):
		return "HealthConnect commands: HEALTH - main menu, BOOK - consultations, EDUC - education, " +
			"EMER - emergency, STATUS - appointments. For emergencies, call 117."
	default:
		return "I didn't understand. Reply HELP for commands or HEALTH for the main menu. " +
			"For emergencies, call 117."
	}
}
