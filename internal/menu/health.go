package menu

// Node ids of the health menu.
const (
	NodeMain         NodeID = "main"
	NodeConsultation NodeID = "consultation"
	NodeEducation    NodeID = "education"
	NodeEmergency    NodeID = "emergency"
	NodeAccount      NodeID = "account"
	NodeLanguage     NodeID = "language"
)

func actionRef(id ActionID, args ...string) *ActionRef {
	return &ActionRef{ID: id, Args: args}
}

// HealthNodes is the declarative menu shared by every channel. Digits
// drive USSD and voice navigation; the uppercase tokens are the SMS
// keyword commands, bound at the root so a single keyword resolves in
// one step.
func HealthNodes() []*Node {
	return []*Node{
		{
			ID: NodeMain,
			Prompt: "Welcome to HealthConnect\n" +
				"1. Book Consultation\n" +
				"2. Health Education\n" +
				"3. Emergency Services\n" +
				"4. My Account\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Node: NodeConsultation},
				{Token: "2", Node: NodeEducation},
				{Token: "3", Node: NodeEmergency},
				{Token: "4", Node: NodeAccount},

				{Token: "HEALTH", Node: NodeMain},
				{Token: "BOOK", Node: NodeConsultation},
				{Token: "EDUC", Node: NodeEducation},
				{Token: "EMER", Action: actionRef(ActionEmergency)},
				{Token: "HELP", Action: actionRef(ActionHelp)},
				{Token: "VOICE", Action: actionRef(ActionBookVoice)},
				{Token: "TEXT", Action: actionRef(ActionBookText)},
				{Token: "MALARIA", Action: actionRef(ActionEducation, "malaria")},
				{Token: "CHILD", Action: actionRef(ActionEducation, "child-health")},
				{Token: "MOM", Action: actionRef(ActionEducation, "maternal-health")},
				{Token: "MENTAL", Action: actionRef(ActionEducation, "mental-health")},
				{Token: "STATUS", Action: actionRef(ActionStatus)},

				{Token: TokenFreeText, Action: actionRef(ActionAssistant)},
			},
		},
		{
			ID: NodeConsultation,
			Prompt: "Book Consultation\n" +
				"1. Voice Call\n" +
				"2. SMS Consultation\n" +
				"3. Emergency\n" +
				"9. Back\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Action: actionRef(ActionBookVoice)},
				{Token: "2", Action: actionRef(ActionBookText)},
				{Token: "3", Action: actionRef(ActionEmergency)},
			},
		},
		{
			ID: NodeEducation,
			Prompt: "Health Education\n" +
				"1. Malaria Prevention\n" +
				"2. Child Health\n" +
				"3. Maternal Health\n" +
				"4. Mental Health\n" +
				"9. Back\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Action: actionRef(ActionEducation, "malaria")},
				{Token: "2", Action: actionRef(ActionEducation, "child-health")},
				{Token: "3", Action: actionRef(ActionEducation, "maternal-health")},
				{Token: "4", Action: actionRef(ActionEducation, "mental-health")},
			},
		},
		{
			ID: NodeEmergency,
			Prompt: "EMERGENCY SERVICES\n" +
				"1. Call Emergency (117)\n" +
				"2. Send Location SMS\n" +
				"3. Maternal Emergency\n" +
				"9. Back\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Action: actionRef(ActionEmergencyCall)},
				{Token: "2", Action: actionRef(ActionLocationSMS)},
				{Token: "3", Action: actionRef(ActionMaternal)},
			},
		},
		{
			ID: NodeAccount,
			Prompt: "My Account\n" +
				"1. View Profile\n" +
				"2. Recent Consultations\n" +
				"3. Update Language\n" +
				"9. Back\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Action: actionRef(ActionProfile)},
				{Token: "2", Action: actionRef(ActionRecent)},
				{Token: "3", Node: NodeLanguage},
			},
		},
		{
			ID: NodeLanguage,
			Prompt: "Update Language\n" +
				"1. English\n" +
				"2. Krio\n" +
				"9. Back\n" +
				"0. Exit",
			Transitions: []Transition{
				{Token: "1", Action: actionRef(ActionSetLanguage, "English")},
				{Token: "2", Action: actionRef(ActionSetLanguage, "Krio")},
			},
		},
	}
}

// NewHealthTree builds and validates the standard menu.
func NewHealthTree(actionKnown func(ActionID) bool) (*Tree, error) {
	return New(NodeMain, HealthNodes(), actionKnown)
}
